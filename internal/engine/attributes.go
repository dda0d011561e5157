package engine

import (
	"math"

	"github.com/hindren/qudprops/internal/blueprint"
	"github.com/hindren/qudprops/internal/dice"
	qerr "github.com/hindren/qudprops/internal/errors"
	"github.com/hindren/qudprops/internal/rules"
	"github.com/hindren/qudprops/internal/svalue"
)

// StatMode selects which view of a randomized stat to resolve.
type StatMode int

const (
	// ModeAvg resolves the expected value, truncated the way the source
	// game truncates character-sheet stats.
	ModeAvg StatMode = iota

	// ModeMin resolves the lowest possible value.
	ModeMin

	// ModeMax resolves the highest possible value.
	ModeMax
)

// Level returns the entity's raw level field, preferring the level-scaled
// form. The value may itself be a range string for a handful of objects.
func (g *Engine) Level(e *blueprint.Entity) *string {
	if v := g.statStr(e, "Level", "sValue"); v != nil {
		return v
	}
	return g.statStr(e, "Level", "Value")
}

// effectiveLevel resolves the level field to a scalar, recovering from
// range-form levels by taking the lower bound.
func (g *Engine) effectiveLevel(e *blueprint.Entity) *int {
	raw := g.Level(e)
	if raw == nil {
		return nil
	}

	n, err := svalue.EffectiveLevel(*raw)
	if err != nil {
		if !qerr.IsAmbiguousLevel(err) {
			g.log.Warn("unparseable level field", "entity", e.Name, "level", *raw)
			return nil
		}
		g.log.Debug("level given as range, using lower bound", "entity", e.Name, "level", *raw)
	}
	return &n
}

// Attribute resolves the raw value string for a named attribute such as
// Strength. Active characters prefer the level-scaled stat field over the
// flat one; armor pieces expose a dedicated per-attribute field instead.
func (g *Engine) Attribute(e *blueprint.Entity, attr string) *string {
	if g.Classify(e) == ActiveCharacter {
		if spec := g.statStr(e, attr, "sValue"); spec != nil {
			level := g.effectiveLevel(e)
			if level == nil {
				return nil
			}
			resolved, err := svalue.Resolve(*spec, *level)
			if err != nil {
				g.log.Warn("malformed sValue", "entity", e.Name, "stat", attr, "spec", *spec, "error", err)
				return nil
			}
			return &resolved
		}
		if v := g.statStr(e, attr, "Value"); v != nil {
			return v
		}
		return nil
	}

	if g.inherits(e, "Armor") {
		return g.partStr(e, "Armor", attr)
	}
	return nil
}

// BoostFactor returns the multiplier applied to a stat after resolution.
// Boosts only apply when the stat has a level-scaled value; minion-role
// entities take a one-tier reduction on the core attributes.
func (g *Engine) BoostFactor(e *blueprint.Entity, attr string) *float64 {
	if g.Classify(e) != ActiveCharacter {
		return nil
	}

	v, ok := g.stat(e, attr, "Boost")
	if !ok {
		return nil
	}
	boostPtr := intOrNil(v)
	if boostPtr == nil {
		return nil
	}
	if g.statStr(e, attr, "sValue") == nil {
		return nil
	}

	boost := *boostPtr
	if role := g.Role(e); role != nil && *role == "Minion" && rules.IsCoreStat(attr) {
		boost--
	}

	if boost > 0 {
		return floatPtr(0.25*float64(boost) + 1.0)
	}
	return floatPtr(0.20*float64(boost) + 1.0)
}

// AttributeValue resolves the named attribute to its minimum, maximum, or
// average integer value, applying the boost factor.
//
// The rounding here mirrors the source game exactly: boosted bounds round
// up on each side, then the average is the truncated midpoint of those
// bounds rather than the scaled dice average.
func (g *Engine) AttributeValue(e *blueprint.Entity, attr string, mode StatMode) *int {
	raw := g.Attribute(e, attr)
	if raw == nil {
		return nil
	}

	expr, err := dice.Parse(*raw)
	if err != nil {
		g.log.Warn("malformed attribute value", "entity", e.Name, "stat", attr, "value", *raw, "error", err)
		return nil
	}

	factor := g.BoostFactor(e, attr)
	if factor == nil {
		switch mode {
		case ModeMin:
			return intPtr(expr.Minimum())
		case ModeMax:
			return intPtr(expr.Maximum())
		default:
			return intPtr(int(expr.Average()))
		}
	}

	minVal := int(math.Ceil(float64(expr.Minimum()) * *factor))
	if mode == ModeMin {
		return intPtr(minVal)
	}
	maxVal := int(math.Ceil(float64(expr.Maximum()) * *factor))
	if mode == ModeMax {
		return intPtr(maxVal)
	}
	return intPtr(floorDiv(minVal+maxVal, 2))
}

// AttributeModifier returns the attribute's modifier: (value - 16) halved
// with floor division, so 15 yields -1 rather than 0.
func (g *Engine) AttributeModifier(e *blueprint.Entity, attr string, mode StatMode) *int {
	val := g.AttributeValue(e, attr, mode)
	if val == nil {
		return nil
	}
	return intPtr(floorDiv(*val-16, 2))
}

// Role returns the entity's assigned role, such as "Minion" or "Hero".
func (g *Engine) Role(e *blueprint.Entity) *string {
	return g.propertyValue(e, "Role")
}
