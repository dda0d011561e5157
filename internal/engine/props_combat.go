package engine

import (
	"fmt"
	"strings"

	"github.com/hindren/qudprops/internal/blueprint"
	"github.com/hindren/qudprops/internal/rules"
)

// projectileObject resolves the projectile fired by a missile weapon,
// checking the ammo loader parts in their priority order. Bows are not
// resolvable this way since their projectile depends on the loaded arrow.
func (g *Engine) projectileObject(e *blueprint.Entity) *blueprint.Entity {
	if !g.partPresent(e, "MissileWeapon") && !g.partPresent(e, "AmmoArrow") {
		return nil
	}
	for _, loader := range rules.ProjectileLoaderParts {
		name := g.partStr(e, loader, "ProjectileObject")
		if name == nil || *name == "" {
			continue
		}
		proj, ok := g.store.ResolveReference(*name)
		if !ok {
			g.log.Warn("projectile references unknown object", "entity", e.Name, "projectile", *name)
			return nil
		}
		return proj
	}
	return nil
}

// projectileField reads a part attribute off the resolved projectile.
func (g *Engine) projectileField(e *blueprint.Entity, part, attr string) *string {
	proj := g.projectileObject(e)
	if proj == nil {
		return nil
	}
	return g.partStr(proj, part, attr)
}

// Accuracy returns the weapon accuracy of a gun; zero is the (best) default.
func (g *Engine) Accuracy(e *blueprint.Entity) *int {
	if !g.partPresent(e, "MissileWeapon") {
		return nil
	}
	return intPtr(intOrDefault(g.partStr(e, "MissileWeapon", "WeaponAccuracy"), 0))
}

// Ammo returns the kind of ammunition the weapon consumes.
func (g *Engine) Ammo(e *blueprint.Entity) *string {
	if ammoPart := g.partStr(e, "MagazineAmmoLoader", "AmmoPart"); ammoPart != nil {
		if name, ok := rules.AmmoTypeNames[*ammoPart]; ok {
			return strPtr(name)
		}
		return nil
	}
	if chg := g.partInt(e, "EnergyAmmoLoader", "ChargeUse"); chg != nil && *chg > 0 {
		if g.partPresent(e, "EnergyCellSocket") &&
			strOrDefault(g.partStr(e, "EnergyCellSocket", "SlotType"), "") == "EnergyCell" {
			return strPtr("energy")
		}
		if g.partPresent(e, "LiquidFueledPowerPlant") {
			return g.partStr(e, "LiquidFueledPowerPlant", "Liquid")
		}
		return nil
	}
	if g.partPresent(e, "LiquidAmmoLoader") {
		return g.partStr(e, "LiquidAmmoLoader", "Liquid")
	}
	return nil
}

// AmmoDamageTypes returns the damage attributes carried by the projectile,
// such as ["Exsanguination", "Disintegrate"].
func (g *Engine) AmmoDamageTypes(e *blueprint.Entity) []string {
	attrs := g.projectileField(e, "Projectile", "Attributes")
	if attrs == nil {
		return nil
	}
	return strings.Fields(*attrs)
}

// AmmoPerAction returns the ammo drawn per action, which can differ from
// the shots per action.
func (g *Engine) AmmoPerAction(e *blueprint.Entity) *int {
	return g.partInt(e, "MissileWeapon", "AmmoPerAction")
}

// Damage returns the damage dice of the weapon. Projectile damage wins for
// missile weapons; thrown weapons default to 1.
func (g *Engine) Damage(e *blueprint.Entity) *string {
	var val *string
	if g.inherits(e, "MeleeWeapon") || g.partPresent(e, "MeleeWeapon") {
		val = g.partStr(e, "MeleeWeapon", "BaseDamage")
	}
	if g.partPresent(e, "Gaslight") {
		val = g.partStr(e, "Gaslight", "ChargedDamage")
	}
	if g.partPresent(e, "ThrownWeapon") {
		if g.partPresent(e, "GeomagneticDisc") {
			val = g.partStr(e, "GeomagneticDisc", "Damage")
		} else if v := g.partStr(e, "ThrownWeapon", "Damage"); v != nil {
			val = v
		} else {
			val = strPtr("1")
		}
	}
	if proj := g.projectileField(e, "Projectile", "BaseDamage"); proj != nil && *proj != "" {
		val = proj
	}
	return val
}

// ElementalDamage returns the elemental damage range dealt, if any.
// Flaming and freezing mods deal 80%-120% of their tier; electrified mods
// deal 100%-150%.
func (g *Engine) ElementalDamage(e *blueprint.Entity) *string {
	for _, mod := range []string{"ModFlaming", "ModFreezing"} {
		if !g.partPresent(e, mod) {
			continue
		}
		tier := g.partInt(e, mod, "Tier")
		if tier == nil {
			return nil
		}
		low := int(float64(*tier) * 0.8)
		high := int(float64(*tier) * 1.2)
		return strPtr(fmt.Sprintf("%d-%d", low, high))
	}
	if g.partPresent(e, "ModElectrified") {
		tier := g.partInt(e, "ModElectrified", "Tier")
		if tier == nil {
			return nil
		}
		return strPtr(fmt.Sprintf("%d-%d", *tier, int(float64(*tier)*1.5)))
	}
	return g.partStr(e, "MeleeWeapon", "ElementalDamage")
}

// ElementalType returns the type of the elemental damage dealt.
func (g *Engine) ElementalType(e *blueprint.Entity) *string {
	switch {
	case g.partPresent(e, "ModFlaming"):
		return strPtr("Fire")
	case g.partPresent(e, "ModFreezing"):
		return strPtr("Cold")
	case g.partPresent(e, "ModElectrified"):
		return strPtr("Electric")
	}
	return g.partStr(e, "MeleeWeapon", "Element")
}

// GasEmitted returns the gas blueprint a weapon's projectile emits on hit.
func (g *Engine) GasEmitted(e *blueprint.Entity) *string {
	return g.projectileField(e, "GasOnHit", "Blueprint")
}

// IsMissile reports whether the item is a missile weapon.
func (g *Engine) IsMissile(e *blueprint.Entity) *bool {
	if g.inherits(e, "MissileWeapon") || g.partPresent(e, "MissileWeapon") {
		return boolPtr(true)
	}
	return nil
}

// IsThrown reports whether the item is a thrown weapon.
func (g *Engine) IsThrown(e *blueprint.Entity) *bool {
	if g.partPresent(e, "ThrownWeapon") {
		return boolPtr(true)
	}
	return nil
}

// LightProjectile reports whether the gun fires light instead of matter,
// which heat-immune creatures shrug off.
func (g *Engine) LightProjectile(e *blueprint.Entity) *bool {
	if g.tagPresent(e, "Light") {
		return boolPtr(true)
	}
	return nil
}

// MaxPV returns the penetration cap: base PV plus the weapon's maximum
// strength bonus.
func (g *Engine) MaxPV(e *blueprint.Entity) *int {
	pv := g.PV(e)
	if pv == nil {
		return nil
	}
	val := *pv
	if g.inherits(e, "MeleeWeapon") || g.partPresent(e, "MeleeWeapon") {
		if bonus := g.partInt(e, "MeleeWeapon", "MaxStrengthBonus"); bonus != nil {
			val += *bonus
		}
	}
	return intPtr(val)
}

// OmniphaseProjectile reports whether the projectile hits across phases.
func (g *Engine) OmniphaseProjectile(e *blueprint.Entity) *bool {
	proj := g.projectileObject(e)
	if proj == nil {
		return nil
	}
	if g.store.IsFieldPresent(proj, blueprint.GroupPart, "OmniphaseProjectile") ||
		g.store.IsFieldPresent(proj, blueprint.GroupTag, "Omniphase") {
		return boolPtr(true)
	}
	return nil
}

// PenetratingAmmo reports whether projectiles pierce through targets.
func (g *Engine) PenetratingAmmo(e *blueprint.Entity) *bool {
	if g.projectileField(e, "Projectile", "PenetrateCreatures") != nil {
		return boolPtr(true)
	}
	return nil
}

// PoisonOnHit describes the weapon's poison rider with its defaults filled
// in.
func (g *Engine) PoisonOnHit(e *blueprint.Entity) *string {
	if !g.partPresent(e, "PoisonOnHit") {
		return nil
	}
	pct := strOrDefault(g.partStr(e, "PoisonOnHit", "Chance"), "100")
	save := strOrDefault(g.partStr(e, "PoisonOnHit", "Strength"), "15")
	dmg := strOrDefault(g.partStr(e, "PoisonOnHit", "DamageIncrement"), "3d3")
	duration := strOrDefault(g.partStr(e, "PoisonOnHit", "Duration"), "6-9")
	return strPtr(fmt.Sprintf("%s%% to poison on hit, toughness save %s. %s damage for %s turns.",
		pct, save, dmg, duration))
}

// PV returns the displayed penetration value. The game adds 4 to internal
// penetration numbers for display, so this does too.
func (g *Engine) PV(e *blueprint.Entity) *int {
	var pv *int
	if g.inherits(e, "MeleeWeapon") || g.partPresent(e, "MeleeWeapon") {
		val := 4
		if bonus := g.partInt(e, "Gaslight", "ChargedPenetrationBonus"); bonus != nil {
			val += *bonus
		} else if bonus := g.partInt(e, "MeleeWeapon", "PenBonus"); bonus != nil {
			val += *bonus
		}
		pv = intPtr(val)
	}
	if missile := g.projectileField(e, "Projectile", "BasePenetration"); missile != nil {
		if n := intOrNil(*missile); n != nil {
			pv = intPtr(*n + 4)
		}
	}
	if g.partPresent(e, "ThrownWeapon") {
		val := intOrDefault(g.partStr(e, "ThrownWeapon", "Penetration"), 1)
		pv = intPtr(val + 4)
	}
	return pv
}

// PVPowered reports whether the penetration changes when powered.
func (g *Engine) PVPowered(e *blueprint.Entity) *bool {
	isVibro := boolOr(g.Vibro(e), false)
	if isVibro && g.partPresent(e, "MissileWeapon") {
		return nil
	}
	if isVibro {
		chg := g.partInt(e, "VibroWeapon", "ChargeUse")
		if chg == nil || *chg > 0 {
			return boolPtr(true)
		}
	}
	if g.partPresent(e, "Gaslight") && intOrDefault(g.partStr(e, "Gaslight", "ChargeUse"), 0) > 0 {
		return boolPtr(true)
	}
	if attrs := g.projectileField(e, "Projectile", "Attributes"); attrs != nil && *attrs == "Vorpal" {
		return boolPtr(true)
	}
	return nil
}

// RealityDistortionBased reports whether the item's effect is subject to
// reality stabilization.
func (g *Engine) RealityDistortionBased(e *blueprint.Entity) *bool {
	if proj := g.projectileObject(e); proj != nil {
		if strOrDefault(g.partStr(proj, "TreatAsSolid", "RealityDistortionBased"), "") == "true" {
			return boolPtr(true)
		}
		if strOrDefault(g.partStr(proj, "VampiricWeapon", "RealityDistortionBased"), "") == "true" {
			return boolPtr(true)
		}
	}
	if strOrDefault(g.partStr(e, "MechanicalWings", "IsRealityDistortionBased"), "") == "true" {
		return boolPtr(true)
	}
	if strOrDefault(g.partStr(e, "DeploymentGrenade", "UsabilityEvent"), "") == "CheckRealityDistortionUsability" {
		return boolPtr(true)
	}
	for _, part := range []string{"Displacer", "SpaceTimeVortex", "EngulfingClones", "GreaterVoider"} {
		if g.partPresent(e, part) {
			return boolPtr(true)
		}
	}
	return nil
}

// ShotCooldown returns the cooldown dice before the weapon can fire again.
func (g *Engine) ShotCooldown(e *blueprint.Entity) *string {
	return g.partStr(e, "CooldownAmmoLoader", "Cooldown")
}

// Shots returns how many projectiles are fired per shot action.
func (g *Engine) Shots(e *blueprint.Entity) *int {
	return g.partInt(e, "MissileWeapon", "ShotsPerAction")
}

// TempOnEnter returns the temperature change caused to a cell the weapon or
// projectile passes through. Can be a dice string.
func (g *Engine) TempOnEnter(e *blueprint.Entity) *string {
	if v := g.projectileField(e, "TemperatureOnEntering", "Amount"); v != nil {
		return v
	}
	return g.partStr(e, "TemperatureOnEntering", "Amount")
}

// TempOnHit returns the temperature change caused by a hit.
func (g *Engine) TempOnHit(e *blueprint.Entity) *string {
	if v := g.projectileField(e, "TemperatureOnHit", "Amount"); v != nil {
		return v
	}
	return g.partStr(e, "TemperatureOnHit", "Amount")
}

// TempOnHitMax returns the temperature past which the on-hit change no
// longer applies.
func (g *Engine) TempOnHitMax(e *blueprint.Entity) *int {
	if v := g.projectileField(e, "TemperatureOnHit", "MaxTemp"); v != nil {
		return intOrNil(*v)
	}
	return g.partInt(e, "TemperatureOnHit", "MaxTemp")
}

// UnpoweredDamage returns the damage dice a charge-fed weapon deals while
// unpowered.
func (g *Engine) UnpoweredDamage(e *blueprint.Entity) *string {
	return g.partStr(e, "Gaslight", "UnchargedDamage")
}

// Vibro reports whether the weapon penetrates adaptively.
func (g *Engine) Vibro(e *blueprint.Entity) *bool {
	if g.partPresent(e, "GeomagneticDisc") {
		return boolPtr(true)
	}
	if g.partPresent(e, "MissileWeapon") {
		if attrs := g.projectileField(e, "Projectile", "Attributes"); attrs != nil {
			for _, a := range strings.Fields(*attrs) {
				if a == "Vorpal" {
					return boolPtr(true)
				}
			}
		}
		return nil
	}
	if g.inherits(e, "MeleeWeapon") || g.inherits(e, "NaturalWeapon") {
		if g.partPresent(e, "VibroWeapon") {
			return boolPtr(true)
		}
	}
	return nil
}

// WeaponSkill returns the skill tree governing the weapon's use.
func (g *Engine) WeaponSkill(e *blueprint.Entity) *string {
	var val *string
	if g.inherits(e, "MeleeWeapon") || g.partPresent(e, "MeleeWeapon") {
		val = g.partStr(e, "MeleeWeapon", "Skill")
	}
	if g.inherits(e, "MissileWeapon") {
		if v := g.partStr(e, "MissileWeapon", "Skill"); v != nil {
			val = v
		}
	}
	if g.partPresent(e, "Gaslight") {
		val = g.partStr(e, "Gaslight", "ChargedSkill")
	}
	// projectiles inherit a melee skill they shouldn't display
	if g.inherits(e, "Projectile") {
		val = nil
	}
	if g.inherits(e, "Shield") {
		val = strPtr("Shield")
	}
	return val
}
