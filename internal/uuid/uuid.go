// Package uuid wraps ID generation behind an interface so repositories can
// be tested with deterministic IDs.
package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique ID strings.
type Generator interface {
	New() string
}

// Google generates random V4 UUIDs.
type Google struct{}

// New returns a fresh UUID string.
func (Google) New() string {
	return uuid.NewString()
}

// Sequence generates predictable IDs ("test-id-1", "test-id-2", ...) for
// tests. Not safe for concurrent use.
type Sequence struct {
	Prefix string
	n      int
}

// New returns the next ID in the sequence.
func (s *Sequence) New() string {
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "test-id"
	}
	return fmt.Sprintf("%s-%d", prefix, s.n)
}
