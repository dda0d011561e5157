// Package svalue resolves level-scaled value specifications ("sValues")
// into concrete dice strings. A specification is a comma-separated list of
// tiers, each "threshold:dice"; a tier with no threshold applies from
// level 1. Resolution picks the tier with the highest threshold that does
// not exceed the requested level, falling back to the lowest tier when the
// level is below every threshold.
package svalue

import (
	"sort"
	"strconv"
	"strings"

	qerr "github.com/hindren/qudprops/internal/errors"
)

type tier struct {
	threshold int
	value     string
}

// Value is a parsed level-scaled specification.
type Value struct {
	source string
	tiers  []tier // sorted ascending by threshold
}

// Parse parses a level-scaled specification string.
func Parse(spec string) (*Value, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return nil, qerr.MalformedExpression("empty sValue specification")
	}

	v := &Value{source: trimmed}
	for _, entry := range strings.Split(trimmed, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return nil, qerr.MalformedExpressionf("empty tier in sValue %q", spec)
		}

		threshold := 1
		value := entry
		if idx := strings.IndexByte(entry, ':'); idx >= 0 {
			n, err := strconv.Atoi(strings.TrimSpace(entry[:idx]))
			if err != nil || n < 1 {
				return nil, qerr.MalformedExpressionf("bad tier threshold in sValue %q", spec)
			}
			threshold = n
			value = strings.TrimSpace(entry[idx+1:])
		}
		if value == "" {
			return nil, qerr.MalformedExpressionf("empty tier value in sValue %q", spec)
		}

		v.tiers = append(v.tiers, tier{threshold: threshold, value: value})
	}

	sort.SliceStable(v.tiers, func(i, j int) bool {
		return v.tiers[i].threshold < v.tiers[j].threshold
	})

	return v, nil
}

// At returns the dice string applicable at the given level: the highest
// tier whose threshold is <= level, or the lowest tier when the level sits
// below every threshold.
func (v *Value) At(level int) string {
	selected := v.tiers[0].value
	for _, t := range v.tiers {
		if t.threshold > level {
			break
		}
		selected = t.value
	}
	return selected
}

// String returns the original specification text.
func (v *Value) String() string {
	return v.source
}

// Resolve parses spec and resolves it at level in one step.
func Resolve(spec string, level int) (string, error) {
	v, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return v.At(level), nil
}

// EffectiveLevel interprets a level field that is usually a scalar but is
// occasionally recorded as a range like "18-29" (a data-entry quirk). For
// ranges the first number is taken. The returned error carries the
// ambiguous_level code when that recovery happened, so callers may report
// it while still using the value.
func EffectiveLevel(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n, nil
	}

	low, _, found := strings.Cut(trimmed, "-")
	if found {
		if n, err := strconv.Atoi(strings.TrimSpace(low)); err == nil {
			return n, qerr.AmbiguousLevel("level given as range " + trimmed)
		}
	}

	return 0, qerr.MalformedExpressionf("unparseable level %q", raw)
}
