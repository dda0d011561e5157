package engine

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hindren/qudprops/internal/blueprint"
)

// Field lookup helpers. These wrap the store's FieldValue resolution and
// the value conversions the property functions lean on; absent values stay
// nil all the way through.

func (g *Engine) fv(e *blueprint.Entity, group blueprint.Group, key, attr string) (string, bool) {
	return g.store.FieldValue(e, group, key, attr)
}

func (g *Engine) part(e *blueprint.Entity, key, attr string) (string, bool) {
	return g.fv(e, blueprint.GroupPart, key, attr)
}

func (g *Engine) partStr(e *blueprint.Entity, key, attr string) *string {
	if v, ok := g.part(e, key, attr); ok {
		return &v
	}
	return nil
}

func (g *Engine) partInt(e *blueprint.Entity, key, attr string) *int {
	v, ok := g.part(e, key, attr)
	if !ok {
		return nil
	}
	return intOrNil(v)
}

func (g *Engine) partPresent(e *blueprint.Entity, key string) bool {
	return g.store.IsFieldPresent(e, blueprint.GroupPart, key)
}

func (g *Engine) stat(e *blueprint.Entity, key, attr string) (string, bool) {
	return g.fv(e, blueprint.GroupStat, key, attr)
}

func (g *Engine) statStr(e *blueprint.Entity, key, attr string) *string {
	if v, ok := g.stat(e, key, attr); ok {
		return &v
	}
	return nil
}

func (g *Engine) statInt(e *blueprint.Entity, key, attr string) *int {
	v, ok := g.stat(e, key, attr)
	if !ok {
		return nil
	}
	return intOrNil(v)
}

func (g *Engine) tagPresent(e *blueprint.Entity, key string) bool {
	return g.store.IsFieldPresent(e, blueprint.GroupTag, key)
}

func (g *Engine) tagValue(e *blueprint.Entity, key string) *string {
	if v, ok := g.fv(e, blueprint.GroupTag, key, "Value"); ok {
		return &v
	}
	return nil
}

func (g *Engine) skillPresent(e *blueprint.Entity, key string) bool {
	return g.store.IsFieldPresent(e, blueprint.GroupSkill, key)
}

func (g *Engine) propertyValue(e *blueprint.Entity, key string) *string {
	if v, ok := g.fv(e, blueprint.GroupProperty, key, "Value"); ok {
		return &v
	}
	return nil
}

func (g *Engine) intPropertyValue(e *blueprint.Entity, key string) *string {
	if v, ok := g.fv(e, blueprint.GroupIntProperty, key, "Value"); ok {
		return &v
	}
	return nil
}

func (g *Engine) xtagStr(e *blueprint.Entity, key, attr string) *string {
	if v, ok := g.fv(e, blueprint.GroupXTag, key, attr); ok {
		return &v
	}
	return nil
}

func (g *Engine) xtagPresent(e *blueprint.Entity, key string) bool {
	return g.store.IsFieldPresent(e, blueprint.GroupXTag, key)
}

func (g *Engine) builderStr(e *blueprint.Entity, key, attr string) *string {
	if v, ok := g.fv(e, blueprint.GroupBuilder, key, attr); ok {
		return &v
	}
	return nil
}

// inherits reports ancestry through the store.
func (g *Engine) inherits(e *blueprint.Entity, ancestor string) bool {
	return g.store.InheritsFrom(e, ancestor)
}

// Pointer and conversion helpers.

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

// intOrNil converts a numeric string, returning nil for anything that is
// not a plain integer.
func intOrNil(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

func intOrDefault(v *string, def int) int {
	if v == nil {
		return def
	}
	if n := intOrNil(*v); n != nil {
		return *n
	}
	return def
}

func strOrDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func boolOrDefault(v *string, def bool) bool {
	if v == nil {
		return def
	}
	switch strings.ToLower(*v) {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

// floorDiv divides with the quotient rounded toward negative infinity,
// matching the source game's attribute-modifier arithmetic.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// isPlaceholderEntry reports whether an inventory name is a placeholder
// like "*Junk 1" rather than a real entity reference.
func isPlaceholderEntry(name string) bool {
	return name != "" && strings.ContainsRune("*#@", rune(name[0]))
}

// posOrNeg returns "+" for non-negative values so bonuses render with an
// explicit sign.
func posOrNeg(n int) string {
	if n < 0 {
		return ""
	}
	return "+"
}

var (
	oldstyleColor = regexp.MustCompile(`&[a-zA-Z]`)
	newstyleColor = regexp.MustCompile(`\{\{[^|{}]*\|([^{}]*)\}\}`)
)

// stripColorCodes removes both old-style ("&Y") and new-style
// ("{{y|text}}") display color markup.
func stripColorCodes(s string) string {
	s = oldstyleColor.ReplaceAllString(s, "")
	for newstyleColor.MatchString(s) {
		s = newstyleColor.ReplaceAllString(s, "$1")
	}
	return s
}

// makeListFromWords joins words as natural English: "a", "a and b",
// "a, b, and c".
func makeListFromWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	default:
		return strings.Join(words[:len(words)-1], ", ") + ", and " + words[len(words)-1]
	}
}
