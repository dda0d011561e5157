package engine

import (
	"strings"

	"github.com/hindren/qudprops/internal/blueprint"
	qerr "github.com/hindren/qudprops/internal/errors"
)

// FactionLoyalty is a single faction membership with its loyalty value.
type FactionLoyalty struct {
	Faction string
	Value   int
}

// Strength returns the strength a mutation affects, or the creature's strength.
func (g *Engine) Strength(e *blueprint.Entity) *string {
	return g.Attribute(e, "Strength")
}

// StrengthMult returns the stat bonus multiplier for intrinsic strength.
func (g *Engine) StrengthMult(e *blueprint.Entity) *float64 {
	return g.BoostFactor(e, "Strength")
}

// StrengthExtrinsic returns extra strength from mutations.
func (g *Engine) StrengthExtrinsic(e *blueprint.Entity) *int {
	if g.Classify(e) != ActiveCharacter {
		return nil
	}
	val := 0
	for _, m := range e.Mutations() {
		switch m.Name {
		case "HeightenedStrength":
			val += (m.Level-1)/2 + 2
		case "SlogGlands":
			val += 6
		}
	}
	if val == 0 {
		return nil
	}
	return intPtr(val)
}

// Agility returns the agility a mutation affects, or the creature's agility.
func (g *Engine) Agility(e *blueprint.Entity) *string {
	return g.Attribute(e, "Agility")
}

// AgilityMult returns the stat bonus multiplier for intrinsic agility.
func (g *Engine) AgilityMult(e *blueprint.Entity) *float64 {
	return g.BoostFactor(e, "Agility")
}

// AgilityExtrinsic returns extra agility from mutations.
func (g *Engine) AgilityExtrinsic(e *blueprint.Entity) *int {
	if g.Classify(e) != ActiveCharacter {
		return nil
	}
	for _, m := range e.Mutations() {
		if m.Name == "HeightenedAgility" {
			return intPtr((m.Level-1)/2 + 2)
		}
	}
	return nil
}

// Toughness returns the toughness a mutation affects, or the creature's toughness.
func (g *Engine) Toughness(e *blueprint.Entity) *string {
	return g.Attribute(e, "Toughness")
}

// ToughnessMult returns the stat bonus multiplier for intrinsic toughness.
func (g *Engine) ToughnessMult(e *blueprint.Entity) *float64 {
	return g.BoostFactor(e, "Toughness")
}

// ToughnessExtrinsic returns extra toughness from mutations.
func (g *Engine) ToughnessExtrinsic(e *blueprint.Entity) *int {
	if g.Classify(e) != ActiveCharacter {
		return nil
	}
	for _, m := range e.Mutations() {
		if m.Name == "HeightenedToughness" {
			return intPtr((m.Level-1)/2 + 2)
		}
	}
	return nil
}

// Intelligence returns the intelligence a mutation affects, or the creature's.
func (g *Engine) Intelligence(e *blueprint.Entity) *string {
	return g.Attribute(e, "Intelligence")
}

// IntelligenceMult returns the stat bonus multiplier for intrinsic intelligence.
func (g *Engine) IntelligenceMult(e *blueprint.Entity) *float64 {
	return g.BoostFactor(e, "Intelligence")
}

// IntelligenceExtrinsic returns extra intelligence from extrinsic factors.
// Nothing currently grants any.
func (g *Engine) IntelligenceExtrinsic(e *blueprint.Entity) *int {
	return nil
}

// Willpower returns the willpower a mutation affects, or the creature's.
func (g *Engine) Willpower(e *blueprint.Entity) *string {
	return g.Attribute(e, "Willpower")
}

// WillpowerMult returns the stat bonus multiplier for intrinsic willpower.
func (g *Engine) WillpowerMult(e *blueprint.Entity) *float64 {
	return g.BoostFactor(e, "Willpower")
}

// WillpowerExtrinsic returns extra willpower from extrinsic factors.
// Nothing currently grants any.
func (g *Engine) WillpowerExtrinsic(e *blueprint.Entity) *int {
	return nil
}

// Ego returns the creature's ego stat or the ego bonus an item supplies.
// A couple of artifacts carry hand-maintained overrides.
func (g *Engine) Ego(e *blueprint.Entity) *string {
	if e.Name == "Stopsvaalinn" {
		return strPtr("1")
	}
	val := g.Attribute(e, "Ego")
	if e.Name == "Wraith-Knight Templar" && val != nil {
		return strPtr(*val + "+3d1")
	}
	return val
}

// EgoMult returns the stat bonus multiplier for intrinsic ego.
func (g *Engine) EgoMult(e *blueprint.Entity) *float64 {
	return g.BoostFactor(e, "Ego")
}

// EgoExtrinsic returns extra ego from mutations.
func (g *Engine) EgoExtrinsic(e *blueprint.Entity) *int {
	if g.Classify(e) != ActiveCharacter {
		return nil
	}
	for _, m := range e.Mutations() {
		if m.Name == "Beak" {
			return intPtr(1)
		}
	}
	return nil
}

// HP returns the hitpoints of a creature or object as its raw field, since
// hitpoints may be given in level-scaled form.
func (g *Engine) HP(e *blueprint.Entity) *string {
	if !g.IsCharacter(e) {
		return nil
	}
	if v := g.statStr(e, "Hitpoints", "sValue"); v != nil {
		return v
	}
	return g.statStr(e, "Hitpoints", "Value")
}

// Demeanor returns how the creature initially reacts to the player.
func (g *Engine) Demeanor(e *blueprint.Entity) *string {
	if g.Classify(e) != ActiveCharacter {
		return nil
	}
	if calm := g.partStr(e, "Brain", "Calm"); calm != nil {
		if strings.ToLower(*calm) == "true" {
			return strPtr("docile")
		}
		return strPtr("neutral")
	}
	if hostile := g.partStr(e, "Brain", "Hostile"); hostile != nil {
		if strings.ToLower(*hostile) == "true" {
			return strPtr("aggressive")
		}
		return strPtr("neutral")
	}
	return nil
}

// Faction returns the factions this creature has loyalty to, parsed from a
// field like "Joppa-100,Barathrumites-100". Entries that don't match the
// format are skipped and logged rather than failing the whole list.
func (g *Engine) Faction(e *blueprint.Entity) []FactionLoyalty {
	raw := g.partStr(e, "Brain", "Factions")
	if raw == nil {
		return nil
	}
	var ret []FactionLoyalty
	for _, entry := range strings.Split(*raw, ",") {
		name, value, found := strings.Cut(entry, "-")
		if !found {
			err := qerr.InconsistentDataf("faction entry %q has no loyalty value", entry)
			g.log.Warn("skipping malformed faction", "entity", e.Name, "entry", entry, "error", err)
			continue
		}
		n := intOrNil(value)
		if n == nil {
			err := qerr.InconsistentDataf("faction entry %q has non-numeric loyalty", entry)
			g.log.Warn("skipping malformed faction", "entity", e.Name, "entry", entry, "error", err)
			continue
		}
		ret = append(ret, FactionLoyalty{Faction: name, Value: *n})
	}
	return ret
}

// Gender returns the creature's fixed gender, or its random gender when only
// one option is listed.
func (g *Engine) Gender(e *blueprint.Entity) *string {
	if g.Classify(e) != ActiveCharacter {
		return nil
	}
	if v := g.tagValue(e, "Gender"); v != nil {
		return v
	}
	if v := g.tagValue(e, "RandomGender"); v != nil && !strings.Contains(*v, ",") {
		return v
	}
	return nil
}

// Pronouns returns the pronoun set of a creature, if any.
func (g *Engine) Pronouns(e *blueprint.Entity) *string {
	if !g.inherits(e, "Creature") {
		return nil
	}
	return g.tagValue(e, "PronounSet")
}

// Movespeed returns the move speed of a creature. The stat is stored
// inverted, so 100 on a stat line is baseline and lower is faster.
func (g *Engine) Movespeed(e *blueprint.Entity) *int {
	if !g.inherits(e, "Creature") {
		return nil
	}
	ms := g.statInt(e, "MoveSpeed", "Value")
	if ms == nil {
		return nil
	}
	return intPtr(200 - *ms)
}

// XPValue returns the experience awarded for defeating this creature. The
// sentinel "*XP" resolves to a role-based multiple of the level.
func (g *Engine) XPValue(e *blueprint.Entity) *int {
	level := g.Level(e)
	if level == nil {
		return nil
	}
	lv := intOrNil(*level)
	if lv == nil {
		// range-form levels are not wiki-enabled
		return nil
	}
	xp := g.statStr(e, "XPValue", "sValue")
	if xp == nil {
		xp = g.statStr(e, "XPValue", "Value")
	}
	if xp == nil {
		return nil
	}
	if *xp == "*XP" {
		role := strOrDefault(g.Role(e), "Minion")
		switch role {
		case "Minion":
			return intPtr(*lv * 10)
		case "Leader":
			return intPtr(*lv * 50)
		case "Hero":
			return intPtr(*lv * 100)
		default:
			return intPtr(*lv * 25)
		}
	}
	return intOrNil(*xp)
}

// XPTier returns the experience tier, the level in brackets of five.
func (g *Engine) XPTier(e *blueprint.Entity) *int {
	level := g.Level(e)
	if level == nil {
		return nil
	}
	lv := intOrNil(*level)
	if lv == nil {
		return nil
	}
	return intPtr(*lv / 5)
}
