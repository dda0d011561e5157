package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hindren/qudprops/internal/blueprint"
	"github.com/hindren/qudprops/internal/rules"
)

// ModEntry is one item mod with its tier.
type ModEntry struct {
	Name string
	Tier int
}

// Animatable reports whether the object can be animated into a creature.
func (g *Engine) Animatable(e *blueprint.Entity) *bool {
	if g.tagPresent(e, "Animatable") {
		return boolPtr(true)
	}
	return nil
}

// Bits returns the build bits gained by disassembling the object, in their
// display order, such as "0034".
func (g *Engine) Bits(e *blueprint.Entity) *string {
	if !g.partPresent(e, "TinkerItem") {
		return nil
	}
	canDis := strOrDefault(g.partStr(e, "TinkerItem", "CanDisassemble"), "")
	canBuild := strOrDefault(g.partStr(e, "TinkerItem", "CanBuild"), "")
	if canDis == "false" && canBuild == "false" {
		return nil
	}
	bits := g.partStr(e, "TinkerItem", "Bits")
	if bits == nil {
		return nil
	}
	return strPtr(rules.TranslateBits(*bits))
}

// CanBuild reports whether the item can be tinkered up. Returns false only
// when the item can be disassembled but not built, which is the interesting
// asymmetry.
func (g *Engine) CanBuild(e *blueprint.Entity) *bool {
	if strOrDefault(g.partStr(e, "TinkerItem", "CanBuild"), "") == "true" {
		return boolPtr(true)
	}
	if strOrDefault(g.partStr(e, "TinkerItem", "CanDisassemble"), "") == "true" {
		return boolPtr(false)
	}
	return nil
}

// CanDisassemble reports whether the item can be taken apart for bits.
func (g *Engine) CanDisassemble(e *blueprint.Entity) *bool {
	if strOrDefault(g.partStr(e, "TinkerItem", "CanDisassemble"), "") == "true" {
		return boolPtr(true)
	}
	if strOrDefault(g.partStr(e, "TinkerItem", "CanBuild"), "") == "true" {
		return boolPtr(false)
	}
	return nil
}

// CarryBonus returns the carry weight bonus percentage.
func (g *Engine) CarryBonus(e *blueprint.Entity) *int {
	return g.partInt(e, "Armor", "CarryBonus")
}

// ChairLevel returns the level of a chair, zero when unspecified.
func (g *Engine) ChairLevel(e *blueprint.Entity) *int {
	if !g.partPresent(e, "Chair") {
		return nil
	}
	return intPtr(intOrDefault(g.partStr(e, "Chair", "Level"), 0))
}

// ChargePerDram returns the charge per dram for liquid-fueled cells.
func (g *Engine) ChargePerDram(e *blueprint.Entity) *int {
	return g.partInt(e, "LiquidFueledEnergyCell", "ChargePerDram")
}

// ChargeUsed totals the charge the item draws across all of its parts.
// Programmable recoilers are excluded since imprinting is reported
// separately, and a handful of objects carry hand-maintained totals.
func (g *Engine) ChargeUsed(e *blueprint.Entity) *int {
	charge := 0
	for _, part := range e.PartNames() {
		if part == "ProgrammableRecoiler" {
			continue
		}
		if chg := g.partInt(e, part, "ChargeUse"); chg != nil && *chg > 0 {
			charge += *chg
		}
	}
	if override, ok := g.tables.ChargeUseOverrides[e.Name]; ok {
		charge = override
	}
	if charge <= 0 {
		return nil
	}
	return intPtr(charge)
}

// ChargeFunction describes what the drawn charge powers. A single consumer
// renders as its plain label; multiple consumers render as a comma list
// with per-function charge amounts appended.
func (g *Engine) ChargeFunction(e *blueprint.Entity) *string {
	var funcs, detailed []string
	for _, part := range e.PartNames() {
		if part == "ProgrammableRecoiler" {
			continue
		}
		chg := g.partInt(e, part, "ChargeUse")
		if chg == nil || *chg <= 0 {
			continue
		}
		label, ok := rules.ChargeFunctionLabels[part]
		if !ok {
			if status := g.partStr(e, part, "NameForStatus"); status != nil {
				label = *status
			} else if part == "Chair" {
				label = "Chair Effect"
			} else {
				label = part
			}
		}
		funcs = append(funcs, label)
		detailed = append(detailed, fmt.Sprintf("%s [%d]", label, *chg))
	}
	if reason, ok := g.tables.ChargeUseReasons[e.Name]; ok {
		funcs = append(funcs, reason)
		if amt, ok := g.tables.ChargeUseOverrides[e.Name]; ok {
			detailed = append(detailed, fmt.Sprintf("%s [%d]", reason, amt))
		} else {
			detailed = append(detailed, reason)
		}
	}
	switch len(funcs) {
	case 0:
		return nil
	case 1:
		return strPtr(funcs[0])
	default:
		return strPtr(strings.Join(detailed, ", "))
	}
}

// Commerce returns the trade value of the object.
func (g *Engine) Commerce(e *blueprint.Entity) *float64 {
	if !g.inherits(e, "Item") && !g.inherits(e, "BaseThrownWeapon") {
		return nil
	}
	raw := g.partStr(e, "Commerce", "Value")
	if raw == nil {
		return nil
	}
	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		g.log.Warn("unparseable commerce value", "entity", e.Name, "value", *raw)
		return nil
	}
	return floatPtr(v)
}

// Complexity returns the tinkering complexity, with mods raising it. Mods
// flagged if-complex only apply on items that are already complex.
func (g *Engine) Complexity(e *blueprint.Entity) *int {
	val := intOrDefault(g.partStr(e, "Examiner", "Complexity"), 0)
	addCost := func(mod string) {
		cost, ok := g.tables.ModComplexity[mod]
		if !ok {
			return
		}
		if cost.IfComplex && val <= 0 {
			return
		}
		val += cost.Complexity
	}
	if mods := g.partStr(e, "AddMod", "Mods"); mods != nil {
		for _, mod := range strings.Split(*mods, ",") {
			addCost(mod)
		}
	}
	for _, part := range e.PartNames() {
		if strings.HasPrefix(part, "Mod") {
			addCost(part)
		}
	}
	if val > 0 || boolOr(g.CanBuild(e), false) {
		return intPtr(val)
	}
	return nil
}

// CookEffect returns the possible cooking effects of an ingredient.
func (g *Engine) CookEffect(e *blueprint.Entity) []string {
	t := g.partStr(e, "PreparedCookingIngredient", "type")
	if t == nil {
		return nil
	}
	return strings.Split(*t, ",")
}

// Cursed reports whether the item cannot be unequipped normally.
func (g *Engine) Cursed(e *blueprint.Entity) *bool {
	if g.partPresent(e, "Cursed") {
		return boolPtr(true)
	}
	return nil
}

// DestroyOnUnequip reports whether the item is destroyed when removed.
func (g *Engine) DestroyOnUnequip(e *blueprint.Entity) *bool {
	if g.partPresent(e, "DestroyOnUnequip") {
		return boolPtr(true)
	}
	return nil
}

// DisplayName returns the render name with all color markup removed.
func (g *Engine) DisplayName(e *blueprint.Entity) string {
	dname := strOrDefault(g.partStr(e, "Render", "DisplayName"), "")
	return stripColorCodes(dname)
}

// DramsPerUse returns the drams of liquid consumed by each shot.
func (g *Engine) DramsPerUse(e *blueprint.Entity) *int {
	if g.partPresent(e, "LiquidAmmoLoader") {
		return intPtr(1) // liquid loaders always draw one dram per action
	}
	return nil
}

// EatDesc returns the message shown when the item is eaten.
func (g *Engine) EatDesc(e *blueprint.Entity) *string {
	return g.partStr(e, "Food", "Message")
}

// EMPSensitive reports whether an electromagnetic pulse disables the item.
func (g *Engine) EMPSensitive(e *blueprint.Entity) *bool {
	flagged := []string{
		"EquipStatBoost", "BootSequence", "NavigationBonus", "SaveModifier",
		"LiquidFueledPowerPlant", "LiquidProducer", "TemperatureAdjuster",
	}
	for _, part := range flagged {
		if strOrDefault(g.partStr(e, part, "IsEMPSensitive"), "") == "true" {
			return boolPtr(true)
		}
	}
	always := []string{
		"EnergyCellSocket", "ZeroPointEnergyCollector",
		"ModFlaming", "ModFreezing", "ModElectrified",
	}
	for _, part := range always {
		if g.partPresent(e, part) {
			return boolPtr(true)
		}
	}
	return nil
}

// EnergyCellRequired reports whether the item needs a cell slotted to work.
func (g *Engine) EnergyCellRequired(e *blueprint.Entity) *bool {
	if g.partPresent(e, "EnergyCellSocket") {
		return boolPtr(true)
	}
	return nil
}

// ExoticFood reports whether preserving requires explicit confirmation.
func (g *Engine) ExoticFood(e *blueprint.Entity) *bool {
	if g.tagPresent(e, "ChooseToPreserve") {
		return boolPtr(true)
	}
	return nil
}

// FlameTemperature returns the temperature at which the item catches fire.
func (g *Engine) FlameTemperature(e *blueprint.Entity) *int {
	if !g.inherits(e, "Item") {
		return nil
	}
	if !g.partPresent(e, "Physics") {
		return nil
	}
	return g.partInt(e, "Physics", "FlameTemperature")
}

// HarvestedInto returns what the object yields when harvested.
func (g *Engine) HarvestedInto(e *blueprint.Entity) *string {
	return g.partStr(e, "Harvestable", "OnSuccess")
}

// Healing returns the healing dice of a food item, such as "1d16+24".
func (g *Engine) Healing(e *blueprint.Entity) *string {
	return g.partStr(e, "Food", "Healing")
}

// Hidden returns the difficulty to spot the object, when it hides.
func (g *Engine) Hidden(e *blueprint.Entity) *int {
	return g.partInt(e, "Hidden", "Difficulty")
}

// Hunger returns how much hunger the food satiates, such as "Snack".
func (g *Engine) Hunger(e *blueprint.Entity) *string {
	return g.partStr(e, "Food", "Satiation")
}

// IllOnEat reports whether eating this (non-corpse) item makes you sick.
func (g *Engine) IllOnEat(e *blueprint.Entity) *bool {
	if g.inherits(e, "Corpse") {
		return nil
	}
	if strOrDefault(g.partStr(e, "Food", "IllOnEat"), "") == "true" {
		return boolPtr(true)
	}
	return nil
}

// ImprintChargeCost returns the charge needed to imprint a programmable
// recoiler.
func (g *Engine) ImprintChargeCost(e *blueprint.Entity) *int {
	if !g.partPresent(e, "ProgrammableRecoiler") {
		return nil
	}
	if charge := g.partInt(e, "ProgrammableRecoiler", "ChargeUse"); charge != nil {
		return charge
	}
	return intPtr(10000) // default imprint cost
}

// IsCurrency reports whether the item trades at a fixed price.
func (g *Engine) IsCurrency(e *blueprint.Entity) *bool {
	if strOrDefault(g.intPropertyValue(e, "Currency"), "") == "1" {
		return boolPtr(true)
	}
	return nil
}

// LeaksWhenBroken returns the percent-per-turn dice leaked once broken.
func (g *Engine) LeaksWhenBroken(e *blueprint.Entity) *string {
	if !g.partPresent(e, "LeakWhenBroken") {
		return nil
	}
	if amt := g.partStr(e, "LeakWhenBroken", "PercentPerTurn"); amt != nil {
		return amt
	}
	return strPtr("10-20")
}

// LightRadius returns the radius of light the object gives off.
func (g *Engine) LightRadius(e *blueprint.Entity) *int {
	if v := g.partInt(e, "LightSource", "Radius"); v != nil {
		return v
	}
	return g.partInt(e, "ActiveLightSource", "Radius")
}

// LiquidGen returns how many turns a liquid generator takes per dram.
func (g *Engine) LiquidGen(e *blueprint.Entity) *int {
	return g.partInt(e, "LiquidProducer", "Rate")
}

// LiquidType returns the liquid a generator produces.
func (g *Engine) LiquidType(e *blueprint.Entity) *string {
	return g.partStr(e, "LiquidProducer", "Liquid")
}

// LiquidBurst returns the liquid an exploding object bursts into.
func (g *Engine) LiquidBurst(e *blueprint.Entity) *string {
	return g.partStr(e, "LiquidBurst", "Liquid")
}

// MaxAmmo returns how much ammo can be loaded at once.
func (g *Engine) MaxAmmo(e *blueprint.Entity) *int {
	return g.partInt(e, "MagazineAmmoLoader", "MaxAmmo")
}

// MaxCharge returns how much charge a cell can hold.
func (g *Engine) MaxCharge(e *blueprint.Entity) *int {
	return g.partInt(e, "EnergyCell", "MaxCharge")
}

// MaxVol returns the maximum liquid volume of a container.
func (g *Engine) MaxVol(e *blueprint.Entity) *int {
	return g.partInt(e, "LiquidVolume", "MaxVolume")
}

// ModCount returns how many mods the item carries.
func (g *Engine) ModCount(e *blueprint.Entity) *int {
	val := 0
	if mods := g.partStr(e, "AddMod", "Mods"); mods != nil {
		val += len(strings.Split(*mods, ","))
	}
	for _, part := range e.PartNames() {
		if strings.HasPrefix(part, "Mod") {
			val++
		}
	}
	if val == 0 {
		return nil
	}
	return intPtr(val)
}

// Mods returns the mods attached to the item with their tiers.
func (g *Engine) Mods(e *blueprint.Entity) []ModEntry {
	var mods []ModEntry
	if raw := g.partStr(e, "AddMod", "Mods"); raw != nil {
		names := strings.Split(*raw, ",")
		var tiers []string
		if t := g.partStr(e, "AddMod", "Tiers"); t != nil {
			tiers = strings.Split(*t, ",")
		}
		for i, name := range names {
			tier := 1
			if i < len(tiers) {
				tier = intOrDefault(&tiers[i], 1)
			}
			mods = append(mods, ModEntry{Name: name, Tier: tier})
		}
	}
	for _, part := range e.PartNames() {
		if !strings.HasPrefix(part, "Mod") {
			continue
		}
		tier := 1
		if t := g.partInt(e, part, "Tier"); t != nil {
			tier = *t
		}
		mods = append(mods, ModEntry{Name: part, Tier: tier})
	}
	return mods
}

// MovespeedBonus returns the move speed bonus an item grants.
func (g *Engine) MovespeedBonus(e *blueprint.Entity) *int {
	if !g.inherits(e, "Item") {
		return nil
	}
	bonus := g.partInt(e, "MoveCostMultiplier", "Amount")
	if bonus == nil {
		return nil
	}
	return intPtr(-*bonus)
}

// PreservedInto returns what a preservable item produces.
func (g *Engine) PreservedInto(e *blueprint.Entity) *string {
	return g.partStr(e, "PreservableItem", "Result")
}

// PreservedQuantity returns how many preserves the item yields.
func (g *Engine) PreservedQuantity(e *blueprint.Entity) *int {
	return g.partInt(e, "PreservableItem", "Number")
}

// Reflect returns the percentage of damage reflected, for glass armor.
func (g *Engine) Reflect(e *blueprint.Entity) *int {
	return g.partInt(e, "ModGlassArmor", "Tier")
}

// SaveModifier returns the save type the item modifies.
func (g *Engine) SaveModifier(e *blueprint.Entity) *string {
	return g.partStr(e, "SaveModifier", "Vs")
}

// SaveModifierAmount returns the size of the save modifier.
func (g *Engine) SaveModifierAmount(e *blueprint.Entity) *int {
	if g.partStr(e, "SaveModifier", "Vs") == nil {
		return nil
	}
	return g.partInt(e, "SaveModifier", "Amount")
}

// Spectacles reports whether the item corrects vision.
func (g *Engine) Spectacles(e *blueprint.Entity) *bool {
	if g.partPresent(e, "Spectacles") {
		return boolPtr(true)
	}
	return nil
}

// Thirst returns how much thirst the item slakes.
func (g *Engine) Thirst(e *blueprint.Entity) *int {
	return g.partInt(e, "Food", "Thirst")
}

// Tier returns the object's tier. An entity's own data always wins over
// the chain: the tag set directly on the entity, then its own disassembly
// bits, then the level in brackets of five, and only then a tag inherited
// from an ancestor.
func (g *Engine) Tier(e *blueprint.Entity) *int {
	if tier, ok := e.OwnFieldValue(blueprint.GroupTag, "Tier", "Value"); ok {
		return intOrNil(tier)
	}
	if bits, ok := e.OwnFieldValue(blueprint.GroupPart, "TinkerItem", "Bits"); ok && bits != "" {
		last := bits[len(bits)-1]
		if last >= '0' && last <= '9' {
			return intPtr(int(last - '0'))
		}
		return intPtr(0)
	}
	if level := g.effectiveLevel(e); level != nil {
		return intPtr(*level / 5)
	}
	if tier := g.tagValue(e, "Tier"); tier != nil {
		return intOrNil(*tier)
	}
	return nil
}

// Title returns the raw display name of the object, keeping color markup.
// A handful of objects carry hand-maintained display overrides.
func (g *Engine) Title(e *blueprint.Entity) *string {
	val := e.Name
	switch {
	case g.builderStr(e, "GoatfolkHero1", "ForceName") != nil:
		val = *g.builderStr(e, "GoatfolkHero1", "ForceName")
	case e.Name == "Wraith-Knight Templar":
		val = "&MWraith-Knight Templar of the Binary Honorum"
	case e.Name == "TreeSkillsoft":
		val = "&YSkillsoft Plus"
	case e.Name == "SingleSkillsoft1":
		val = "&YSkillsoft [&Wlow sp&Y]"
	case e.Name == "SingleSkillsoft2":
		val = "&YSkillsoft [&Wmedium sp&Y]"
	case e.Name == "SingleSkillsoft3":
		val = "&YSkillsoft [&Whigh sp&Y]"
	case e.Name == "Schemasoft2":
		val = "&YSchemasoft [&Wlow-tier&Y]"
	case e.Name == "Schemasoft3":
		val = "&YSchemasoft [&Wmid-tier&Y]"
	case e.Name == "Schemasoft4":
		val = "&YSchemasoft [&Whigh-tier&Y]"
	default:
		if dn := g.partStr(e, "Render", "DisplayName"); dn != nil {
			val = *dn
		}
	}
	if g.isFullyRoboticized(e) {
		prefix := strOrDefault(g.partStr(e, "Roboticized", "NamePrefix"), "{{c|mechanical}}")
		val = prefix + " " + val
	}
	return strPtr(val)
}

// ToHit returns the bonus or penalty to hit.
func (g *Engine) ToHit(e *blueprint.Entity) *int {
	if g.inherits(e, "Armor") {
		return g.partInt(e, "Armor", "ToHit")
	}
	if g.partPresent(e, "MeleeWeapon") {
		return g.partInt(e, "MeleeWeapon", "HitBonus")
	}
	return nil
}

// TwoHanded reports whether the weapon occupies both hands. Natural
// equipment that uses non-hand slots is excluded.
func (g *Engine) TwoHanded(e *blueprint.Entity) *bool {
	if !g.inherits(e, "MeleeWeapon") && !g.inherits(e, "MissileWeapon") {
		return nil
	}
	if slots := g.tagValue(e, "UsesSlots"); slots != nil && *slots != "Hand" {
		return nil
	}
	if g.partStr(e, "Physics", "bUsesTwoSlots") != nil ||
		g.partStr(e, "Physics", "UsesTwoSlots") != nil {
		return boolPtr(true)
	}
	return boolPtr(false)
}

// UnknownName returns the display name of an unidentified complex item,
// such as "weird artifact".
func (g *Engine) UnknownName(e *blueprint.Entity) *string {
	return g.unidentifiedName(e, "UnknownDisplayName", "weird artifact")
}

// UnknownAltName returns the partially identified display name, such as
// "device".
func (g *Engine) UnknownAltName(e *blueprint.Entity) *string {
	return g.unidentifiedName(e, "AlternateDisplayName", "device")
}

func (g *Engine) unidentifiedName(e *blueprint.Entity, attr, fallback string) *string {
	complexity := g.Complexity(e)
	if complexity == nil || *complexity <= 0 {
		return nil
	}
	if u := g.partInt(e, "Examiner", "Understanding"); u != nil && *u >= *complexity {
		return nil
	}
	name := strOrDefault(g.partStr(e, "Examiner", attr), fallback)
	if name == "*med" {
		return nil
	}
	return strPtr(name)
}

// UsesSlots returns the body slots the item occupies when equipped, which
// may be more than the slot it is worn on.
func (g *Engine) UsesSlots(e *blueprint.Entity) []string {
	slots := g.tagValue(e, "UsesSlots")
	if slots == nil {
		return nil
	}
	return strings.Split(*slots, ",")
}

// Weight returns the carry weight of the object. Cosmetic, unreal, and
// gravity-immune objects have none.
func (g *Engine) Weight(e *blueprint.Entity) *int {
	if g.inherits(e, "InertObject") || g.inherits(e, "CosmeticObject") {
		return nil
	}
	if strOrDefault(g.partStr(e, "Physics", "IsReal"), "") == "false" {
		return nil
	}
	if g.tagPresent(e, "IgnoresGravity") || g.tagPresent(e, "ExcavatoryTerrainFeature") {
		return nil
	}
	return g.partInt(e, "Physics", "Weight")
}
