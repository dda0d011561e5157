package engine

import (
	"strings"

	"github.com/hindren/qudprops/internal/blueprint"
)

// MutationEntry is a resolved mutation with its level. Gas mutations carry
// the gas blueprint appended to the name the way the wiki expects them.
type MutationEntry struct {
	Name  string
	Level int
}

// InventoryItem is one guaranteed or chance-based inventory entry.
type InventoryItem struct {
	Name     string
	Count    string
	Equipped string
	Chance   string
}

// ID returns the blueprint name. Always present.
func (g *Engine) ID(e *blueprint.Entity) string {
	return e.Name
}

// InheritingFrom returns the parent blueprint's name, empty only for the
// hierarchy root.
func (g *Engine) InheritingFrom(e *blueprint.Entity) *string {
	if e.Parent == nil {
		return nil
	}
	return strPtr(e.Parent.Name)
}

// Aquatic reports whether the creature must stay submerged.
func (g *Engine) Aquatic(e *blueprint.Entity) *bool {
	if !g.inherits(e, "Creature") {
		return nil
	}
	v := g.partStr(e, "Brain", "Aquatic")
	if v == nil {
		return nil
	}
	return boolPtr(*v == "true")
}

// BleedLiquid returns what liquid something bleeds, when it isn't blood.
func (g *Engine) BleedLiquid(e *blueprint.Entity) *string {
	robotic := g.isFullyRoboticized(e)
	if !g.partPresent(e, "BleedLiquid") && !robotic {
		return nil
	}
	liquid := "oil"
	if !robotic {
		raw := strOrDefault(g.partStr(e, "BleedLiquid", "Liquid"), "")
		liquid, _, _ = strings.Cut(raw, "-")
	}
	if liquid == "blood" {
		return nil
	}
	return strPtr(liquid)
}

// BodyType returns the anatomy of the creature.
func (g *Engine) BodyType(e *blueprint.Entity) *string {
	return g.partStr(e, "Body", "Anatomy")
}

// ButcheredInto returns what a corpse can be butchered into.
func (g *Engine) ButcheredInto(e *blueprint.Entity) *string {
	return g.partStr(e, "Butcherable", "OnSuccess")
}

// Corpse returns the corpse blueprint a character drops, unless the corpse
// chance is zero or the creature is always roboticized.
func (g *Engine) Corpse(e *blueprint.Entity) *string {
	bp := g.partStr(e, "Corpse", "CorpseBlueprint")
	if bp == nil {
		return nil
	}
	if intOrDefault(g.partStr(e, "Corpse", "CorpseChance"), 0) <= 0 {
		return nil
	}
	if g.isFullyRoboticized(e) {
		return nil
	}
	return bp
}

// CorpseChance returns the percent chance of a corpse dropping.
func (g *Engine) CorpseChance(e *blueprint.Entity) *int {
	chance := g.partInt(e, "Corpse", "CorpseChance")
	if chance == nil || *chance <= 0 {
		return nil
	}
	if g.isFullyRoboticized(e) {
		return nil
	}
	return chance
}

// DynamicTable returns the dynamic encounter tables the object belongs to.
func (g *Engine) DynamicTable(e *blueprint.Entity) []string {
	if g.tagPresent(e, "ExcludeFromDynamicEncounters") {
		return nil
	}
	var tables []string
	for _, key := range e.Keys(blueprint.GroupTag) {
		if !strings.HasPrefix(key, "DynamicObjectsTable") {
			continue
		}
		if v, ok := g.fv(e, blueprint.GroupTag, key, "Value"); ok && v == "{{{remove}}}" {
			// explicitly removed from an inherited table
			continue
		}
		if _, name, found := strings.Cut(key, ":"); found {
			tables = append(tables, name)
		}
	}
	return tables
}

// Flyover reports whether a flying creature can pass over this object.
func (g *Engine) Flyover(e *blueprint.Entity) *bool {
	if !g.inherits(e, "Wall") && !g.inherits(e, "Furniture") {
		return nil
	}
	return boolPtr(g.tagPresent(e, "Flyover"))
}

// HurtByDefoliant reports how badly defoliant gas hurts this object: 1 for
// normal damage, 2 for significant damage.
func (g *Engine) HurtByDefoliant(e *blueprint.Entity) *int {
	return g.hurtByGas(e, "LivePlant")
}

// HurtByFungicide reports how badly fungicide hurts this object: 1 for
// normal damage, 2 for significant damage.
func (g *Engine) HurtByFungicide(e *blueprint.Entity) *int {
	return g.hurtByGas(e, "LiveFungus")
}

func (g *Engine) hurtByGas(e *blueprint.Entity, marker string) *int {
	if !g.tagPresent(e, marker) {
		return nil
	}
	if g.partPresent(e, "Combat") && !g.tagPresent(e, "GasDamageAsIfInanimate") {
		return intPtr(1)
	}
	return intPtr(2)
}

// InventoryItems returns the character's inventory, skipping table
// placeholders like "*Junk 1".
func (g *Engine) InventoryItems(e *blueprint.Entity) []InventoryItem {
	var ret []InventoryItem
	for _, inv := range e.Inventory() {
		if isPlaceholderEntry(inv.Name) {
			continue
		}
		ret = append(ret, InventoryItem{
			Name:     inv.Name,
			Count:    inv.Count,
			Equipped: "no", // not yet implemented
			Chance:   inv.Chance,
		})
	}
	return ret
}

// IsSwarmer reports whether the creature fights in swarms.
func (g *Engine) IsSwarmer(e *blueprint.Entity) *bool {
	if g.inherits(e, "Creature") && g.partPresent(e, "Swarmer") {
		return boolPtr(true)
	}
	return nil
}

// SwarmBonus returns the to-hit bonus swarmers gain per adjacent ally.
func (g *Engine) SwarmBonus(e *blueprint.Entity) *int {
	return g.partInt(e, "Swarmer", "ExtraBonus")
}

// MutationList returns the creature's mutations with levels. Fully
// roboticized creatures gain DarkVision 12 unless they already have a
// vision mutation.
func (g *Engine) MutationList(e *blueprint.Entity) []MutationEntry {
	var ret []MutationEntry
	hasVision := false
	for _, m := range e.Mutations() {
		name := m.Name + m.GasObject
		ret = append(ret, MutationEntry{Name: name, Level: m.Level})
		if m.Name == "NightVision" || m.Name == "DarkVision" {
			hasVision = true
		}
	}
	if g.isFullyRoboticized(e) && !hasVision {
		ret = append(ret, MutationEntry{Name: "DarkVision", Level: 12})
	}
	return ret
}

// NoProne reports whether the creature cannot be knocked down.
func (g *Engine) NoProne(e *blueprint.Entity) *bool {
	if g.partPresent(e, "NoKnockdown") {
		return boolPtr(true)
	}
	return nil
}

// OnEat returns the effects granted when the object is eaten, such as
// "BreatheOnEatFireBreather5".
func (g *Engine) OnEat(e *blueprint.Entity) []string {
	var effects []string
	for _, key := range e.Keys(blueprint.GroupPart) {
		if !strings.HasSuffix(key, "OnEat") {
			continue
		}
		effect := key
		if class, ok := g.fv(e, blueprint.GroupPart, key, "Class"); ok {
			effect += class
			if level, ok := g.fv(e, blueprint.GroupPart, key, "Level"); ok {
				effect += level
			}
		}
		effects = append(effects, effect)
	}
	return effects
}

// Pettable reports whether the creature can be petted.
func (g *Engine) Pettable(e *blueprint.Entity) *bool {
	if g.partPresent(e, "Pettable") {
		return boolPtr(true)
	}
	return nil
}

// Phase describes the object's phase state when it isn't in normal phase.
func (g *Engine) Phase(e *blueprint.Entity) *string {
	if g.partPresent(e, "HologramMaterial") || g.tagPresent(e, "Omniphase") {
		return strPtr("omniphase")
	}
	if g.tagPresent(e, "Nullphase") {
		return strPtr("nullphase")
	}
	if g.tagPresent(e, "Astral") {
		return strPtr("out of phase")
	}
	for _, m := range e.Mutations() {
		if m.Name == "Spinnerets" && m.Phase == "True" {
			return strPtr("out of phase")
		}
	}
	return nil
}

// RenderStr returns the character used to draw this object in text mode.
// Gases all render as a shade block.
func (g *Engine) RenderStr(e *blueprint.Entity) *string {
	if g.partPresent(e, "Gas") {
		return strPtr("▓")
	}
	return g.partStr(e, "Render", "RenderString")
}

// ColorStr returns the color code attached to the render string.
func (g *Engine) ColorStr(e *blueprint.Entity) *string {
	if v := g.partStr(e, "Render", "ColorString"); v != nil {
		return v
	}
	return g.partStr(e, "Gas", "ColorString")
}

// ReputationBonus returns the reputation changes granted by the object.
// The source field comes in two shapes: "Fungi:200,Consortium:-200" with
// per-faction values, or "Antelopes,Goatfolk" sharing a single Value.
func (g *Engine) ReputationBonus(e *blueprint.Entity) []FactionLoyalty {
	factions := g.partStr(e, "AddsRep", "Faction")
	if factions == nil {
		return nil
	}
	shared := strOrDefault(g.partStr(e, "AddsRep", "Value"), "")
	var reps []FactionLoyalty
	for _, entry := range strings.Split(*factions, ",") {
		name, value, found := strings.Cut(entry, ":")
		if !found {
			value = shared
		}
		n := intOrNil(value)
		if n == nil {
			g.log.Warn("unparseable reputation value", "entity", e.Name, "faction", name, "value", value)
			continue
		}
		reps = append(reps, FactionLoyalty{Faction: name, Value: *n})
	}
	return reps
}

// Seeping reports whether a gas seeps through walls.
func (g *Engine) Seeping(e *blueprint.Entity) *string {
	if !g.partPresent(e, "Gas") {
		return nil
	}
	if v := g.partStr(e, "Gas", "Seeping"); v != nil && *v == "true" {
		return strPtr("yes")
	}
	if v := g.tagValue(e, "GasGenerationAddSeeping"); v != nil && *v == "true" {
		return strPtr("yes")
	}
	return strPtr("no")
}

// Skills returns the skills the creature knows.
func (g *Engine) Skills(e *blueprint.Entity) []string {
	return e.Keys(blueprint.GroupSkill)
}

// Solid reports whether the object blocks movement. Security doors and most
// thrown weapons suppress the flag entirely since "can be walked through"
// would be misleading for them.
func (g *Engine) Solid(e *blueprint.Entity) *bool {
	v := g.partStr(e, "Physics", "Solid")
	if v == nil {
		return nil
	}
	if *v == "true" || *v == "True" {
		return boolPtr(true)
	}
	if e.Parent != nil && e.Parent.Name == "Door" {
		return nil
	}
	if g.partPresent(e, "ThrownWeapon") && !strings.Contains(e.Name, "Boulder") {
		return nil
	}
	return boolPtr(false)
}

// WaterRitualable reports whether the creature can share the water ritual.
func (g *Engine) WaterRitualable(e *blueprint.Entity) *bool {
	if g.xtagPresent(e, "WaterRitual") || g.partPresent(e, "GivesRep") {
		return boolPtr(true)
	}
	return nil
}

// WaterRitualSkill returns the skill this individual teaches in the water
// ritual, if any.
func (g *Engine) WaterRitualSkill(e *blueprint.Entity) *string {
	if !g.xtagPresent(e, "WaterRitual") && !g.partPresent(e, "GivesRep") {
		return nil
	}
	return g.xtagStr(e, "WaterRitual", "SellSkill")
}

// MutatedPlant reports whether this object is a mutated plant.
func (g *Engine) MutatedPlant(e *blueprint.Entity) *bool {
	if g.inherits(e, "MutatedPlant") {
		return boolPtr(true)
	}
	return nil
}

// IsPlant reports whether the food item counts as plant matter.
func (g *Engine) IsPlant(e *blueprint.Entity) *bool {
	if g.tagPresent(e, "Plant") {
		return boolPtr(true)
	}
	return nil
}

// IsFungus reports whether the food item counts as fungus.
func (g *Engine) IsFungus(e *blueprint.Entity) *bool {
	if g.tagPresent(e, "Mushroom") {
		return boolPtr(true)
	}
	return nil
}

// IsMeat reports whether the food item counts as meat.
func (g *Engine) IsMeat(e *blueprint.Entity) *bool {
	if g.tagPresent(e, "Meat") {
		return boolPtr(true)
	}
	return nil
}

// IsOccluding reports whether the object blocks line of sight.
func (g *Engine) IsOccluding(e *blueprint.Entity) *bool {
	v := g.partStr(e, "Render", "Occluding")
	if v != nil && (*v == "true" || *v == "True") {
		return boolPtr(true)
	}
	return nil
}

// Metal reports whether the object is made of metal.
func (g *Engine) Metal(e *blueprint.Entity) *bool {
	if g.partPresent(e, "Metal") || g.isFullyRoboticized(e) {
		return boolPtr(true)
	}
	return nil
}
