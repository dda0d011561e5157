package sheets

//go:generate mockgen -destination=mock/mock.go -package=mocksheets -source=interface.go

import (
	"context"

	"github.com/hindren/qudprops/internal/engine"
)

// Repository persists evaluated property sheets so downstream consumers
// (wiki exporters, diff tooling) don't re-resolve the whole tree. Sheets
// round-trip through JSON, so numeric values come back as float64.
type Repository interface {
	// Put stores the sheet for one entity, replacing any previous one.
	Put(ctx context.Context, name string, sheet engine.PropertySheet) error

	// Get retrieves the stored sheet for an entity. Returns a not_found
	// error when no sheet is cached.
	Get(ctx context.Context, name string) (engine.PropertySheet, error)

	// Delete removes a cached sheet. Deleting an absent sheet is not an
	// error.
	Delete(ctx context.Context, name string) error

	// PutSnapshot stores a batch of sheets under a generated run ID,
	// keeping them together so a consumer can read one consistent
	// evaluation pass.
	PutSnapshot(ctx context.Context, sheets map[string]engine.PropertySheet) (string, error)

	// GetSnapshot retrieves every sheet stored under a run ID.
	GetSnapshot(ctx context.Context, runID string) (map[string]engine.PropertySheet, error)
}
