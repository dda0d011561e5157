package engine

import (
	"sort"

	"github.com/hindren/qudprops/internal/blueprint"
	qerr "github.com/hindren/qudprops/internal/errors"
)

// PropFunc computes one derived property. A nil result means the property
// does not apply to the entity, which is different from a zero value.
type PropFunc func(e *blueprint.Entity) any

// PropertySheet holds the resolved properties of one entity. Properties
// that came back absent are not present in the map.
type PropertySheet map[string]any

func wrapInt(f func(*blueprint.Entity) *int) PropFunc {
	return func(e *blueprint.Entity) any {
		if v := f(e); v != nil {
			return *v
		}
		return nil
	}
}

func wrapStr(f func(*blueprint.Entity) *string) PropFunc {
	return func(e *blueprint.Entity) any {
		if v := f(e); v != nil {
			return *v
		}
		return nil
	}
}

func wrapBool(f func(*blueprint.Entity) *bool) PropFunc {
	return func(e *blueprint.Entity) any {
		if v := f(e); v != nil {
			return *v
		}
		return nil
	}
}

func wrapFloat(f func(*blueprint.Entity) *float64) PropFunc {
	return func(e *blueprint.Entity) any {
		if v := f(e); v != nil {
			return *v
		}
		return nil
	}
}

func wrapStrings(f func(*blueprint.Entity) []string) PropFunc {
	return func(e *blueprint.Entity) any {
		if v := f(e); len(v) > 0 {
			return v
		}
		return nil
	}
}

// Catalog returns the full property registry, keyed by the lowercase names
// downstream templates use.
func (g *Engine) Catalog() map[string]PropFunc {
	return map[string]PropFunc{
		"accuracy":               wrapInt(g.Accuracy),
		"acid":                   wrapInt(func(e *blueprint.Entity) *int { return g.Resistance(e, "Acid") }),
		"agility":                wrapStr(g.Agility),
		"agilityextrinsic":       wrapInt(g.AgilityExtrinsic),
		"agilitymult":            wrapFloat(g.AgilityMult),
		"ammo":                   wrapStr(g.Ammo),
		"ammodamagetypes":        wrapStrings(g.AmmoDamageTypes),
		"ammoperaction":          wrapInt(g.AmmoPerAction),
		"animatable":             wrapBool(g.Animatable),
		"aquatic":                wrapBool(g.Aquatic),
		"av":                     wrapInt(g.AV),
		"bits":                   wrapStr(g.Bits),
		"bleedliquid":            wrapStr(g.BleedLiquid),
		"bodytype":               wrapStr(g.BodyType),
		"butcheredinto":          wrapStr(g.ButcheredInto),
		"canbuild":               wrapBool(g.CanBuild),
		"candisassemble":         wrapBool(g.CanDisassemble),
		"carrybonus":             wrapInt(g.CarryBonus),
		"chairlevel":             wrapInt(g.ChairLevel),
		"chargefunction":         wrapStr(g.ChargeFunction),
		"chargeperdram":          wrapInt(g.ChargePerDram),
		"chargeused":             wrapInt(g.ChargeUsed),
		"cold":                   wrapInt(func(e *blueprint.Entity) *int { return g.Resistance(e, "Cold") }),
		"colorstr":               wrapStr(g.ColorStr),
		"commerce":               wrapFloat(g.Commerce),
		"complexity":             wrapInt(g.Complexity),
		"cookeffect":             wrapStrings(g.CookEffect),
		"corpse":                 wrapStr(g.Corpse),
		"corpsechance":           wrapInt(g.CorpseChance),
		"cursed":                 wrapBool(g.Cursed),
		"damage":                 wrapStr(g.Damage),
		"demeanor":               wrapStr(g.Demeanor),
		"desc":                   wrapStr(g.Desc),
		"destroyonunequip":       wrapBool(g.DestroyOnUnequip),
		"displayname":            func(e *blueprint.Entity) any { return g.DisplayName(e) },
		"dramsperuse":            wrapInt(g.DramsPerUse),
		"dv":                     wrapInt(g.DV),
		"dynamictable":           wrapStrings(g.DynamicTable),
		"eatdesc":                wrapStr(g.EatDesc),
		"ego":                    wrapStr(g.Ego),
		"egoextrinsic":           wrapInt(g.EgoExtrinsic),
		"egomult":                wrapFloat(g.EgoMult),
		"electric":               wrapInt(func(e *blueprint.Entity) *int { return g.Resistance(e, "Electric") }),
		"electrical":             wrapInt(func(e *blueprint.Entity) *int { return g.Resistance(e, "Electric") }),
		"elementaldamage":        wrapStr(g.ElementalDamage),
		"elementaltype":          wrapStr(g.ElementalType),
		"empsensitive":           wrapBool(g.EMPSensitive),
		"energycellrequired":     wrapBool(g.EnergyCellRequired),
		"exoticfood":             wrapBool(g.ExoticFood),
		"faction":                func(e *blueprint.Entity) any { return nilIfEmptyFactions(g.Faction(e)) },
		"flametemperature":       wrapInt(g.FlameTemperature),
		"flyover":                wrapBool(g.Flyover),
		"gasemitted":             wrapStr(g.GasEmitted),
		"gender":                 wrapStr(g.Gender),
		"harvestedinto":          wrapStr(g.HarvestedInto),
		"hasmentalshield":        wrapBool(g.HasMentalShield),
		"healing":                wrapStr(g.Healing),
		"heat":                   wrapInt(func(e *blueprint.Entity) *int { return g.Resistance(e, "Heat") }),
		"hidden":                 wrapInt(g.Hidden),
		"hp":                     wrapStr(g.HP),
		"hunger":                 wrapStr(g.Hunger),
		"hurtbydefoliant":        wrapInt(g.HurtByDefoliant),
		"hurtbyfungicide":        wrapInt(g.HurtByFungicide),
		"id":                     func(e *blueprint.Entity) any { return g.ID(e) },
		"illoneat":               wrapBool(g.IllOnEat),
		"imprintchargecost":      wrapInt(g.ImprintChargeCost),
		"inheritingfrom":         wrapStr(g.InheritingFrom),
		"intelligence":           wrapStr(g.Intelligence),
		"intelligenceextrinsic":  wrapInt(g.IntelligenceExtrinsic),
		"intelligencemult":       wrapFloat(g.IntelligenceMult),
		"inventory":              func(e *blueprint.Entity) any { return nilIfEmptyInventory(g.InventoryItems(e)) },
		"iscurrency":             wrapBool(g.IsCurrency),
		"isfungus":               wrapBool(g.IsFungus),
		"ismeat":                 wrapBool(g.IsMeat),
		"ismissile":              wrapBool(g.IsMissile),
		"isoccluding":            wrapBool(g.IsOccluding),
		"isplant":                wrapBool(g.IsPlant),
		"isswarmer":              wrapBool(g.IsSwarmer),
		"isthrown":               wrapBool(g.IsThrown),
		"leakswhenbroken":        wrapStr(g.LeaksWhenBroken),
		"lightprojectile":        wrapBool(g.LightProjectile),
		"lightradius":            wrapInt(g.LightRadius),
		"liquidburst":            wrapStr(g.LiquidBurst),
		"liquidgen":              wrapInt(g.LiquidGen),
		"liquidtype":             wrapStr(g.LiquidType),
		"lv":                     wrapStr(g.Level),
		"ma":                     wrapInt(g.MA),
		"marange":                wrapStr(g.MARange),
		"maxammo":                wrapInt(g.MaxAmmo),
		"maxcharge":              wrapInt(g.MaxCharge),
		"maxpv":                  wrapInt(g.MaxPV),
		"maxvol":                 wrapInt(g.MaxVol),
		"metal":                  wrapBool(g.Metal),
		"modcount":               wrapInt(g.ModCount),
		"mods":                   func(e *blueprint.Entity) any { return nilIfEmptyMods(g.Mods(e)) },
		"movespeed":              wrapInt(g.Movespeed),
		"movespeedbonus":         wrapInt(g.MovespeedBonus),
		"mutatedplant":           wrapBool(g.MutatedPlant),
		"mutations":              func(e *blueprint.Entity) any { return nilIfEmptyMutations(g.MutationList(e)) },
		"noprone":                wrapBool(g.NoProne),
		"omniphaseprojectile":    wrapBool(g.OmniphaseProjectile),
		"oneat":                  wrapStrings(g.OnEat),
		"penetratingammo":        wrapBool(g.PenetratingAmmo),
		"pettable":               wrapBool(g.Pettable),
		"phase":                  wrapStr(g.Phase),
		"poisononhit":            wrapStr(g.PoisonOnHit),
		"preservedinto":          wrapStr(g.PreservedInto),
		"preservedquantity":      wrapInt(g.PreservedQuantity),
		"pronouns":               wrapStr(g.Pronouns),
		"pv":                     wrapInt(g.PV),
		"pvpowered":              wrapBool(g.PVPowered),
		"quickness":              wrapInt(g.Quickness),
		"realitydistortionbased": wrapBool(g.RealityDistortionBased),
		"reflect":                wrapInt(g.Reflect),
		"renderstr":              wrapStr(g.RenderStr),
		"reputationbonus":        func(e *blueprint.Entity) any { return nilIfEmptyFactions(g.ReputationBonus(e)) },
		"role":                   wrapStr(g.Role),
		"savemodifier":           wrapStr(g.SaveModifier),
		"savemodifieramt":        wrapInt(g.SaveModifierAmount),
		"seeping":                wrapStr(g.Seeping),
		"shotcooldown":           wrapStr(g.ShotCooldown),
		"shots":                  wrapInt(g.Shots),
		"skills":                 wrapStrings(g.Skills),
		"solid":                  wrapBool(g.Solid),
		"spectacles":             wrapBool(g.Spectacles),
		"strength":               wrapStr(g.Strength),
		"strengthextrinsic":      wrapInt(g.StrengthExtrinsic),
		"strengthmult":           wrapFloat(g.StrengthMult),
		"swarmbonus":             wrapInt(g.SwarmBonus),
		"temponenter":            wrapStr(g.TempOnEnter),
		"temponhit":              wrapStr(g.TempOnHit),
		"temponhitmax":           wrapInt(g.TempOnHitMax),
		"thirst":                 wrapInt(g.Thirst),
		"tier":                   wrapInt(g.Tier),
		"title":                  wrapStr(g.Title),
		"tohit":                  wrapInt(g.ToHit),
		"toughness":              wrapStr(g.Toughness),
		"toughnessextrinsic":     wrapInt(g.ToughnessExtrinsic),
		"toughnessmult":          wrapFloat(g.ToughnessMult),
		"twohanded":              wrapBool(g.TwoHanded),
		"unknownaltname":         wrapStr(g.UnknownAltName),
		"unknownname":            wrapStr(g.UnknownName),
		"unpowereddamage":        wrapStr(g.UnpoweredDamage),
		"usesslots":              wrapStrings(g.UsesSlots),
		"vibro":                  wrapBool(g.Vibro),
		"waterritualable":        wrapBool(g.WaterRitualable),
		"waterritualskill":       wrapStr(g.WaterRitualSkill),
		"weaponskill":            wrapStr(g.WeaponSkill),
		"weight":                 wrapInt(g.Weight),
		"willpower":              wrapStr(g.Willpower),
		"willpowerextrinsic":     wrapInt(g.WillpowerExtrinsic),
		"willpowermult":          wrapFloat(g.WillpowerMult),
		"wornon":                 wrapStr(g.WornOn),
		"xptier":                 wrapInt(g.XPTier),
		"xpvalue":                wrapInt(g.XPValue),
	}
}

// PropertyNames returns the sorted names the catalog serves.
func (g *Engine) PropertyNames() []string {
	catalog := g.Catalog()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate resolves one named property for the entity. The result is nil
// with no error when the property does not apply.
func (g *Engine) Evaluate(e *blueprint.Entity, name string) (any, error) {
	f, ok := g.Catalog()[name]
	if !ok {
		return nil, qerr.NotFoundf("no property named %q", name)
	}
	return f(e), nil
}

// Sheet resolves every catalog property for the entity, keeping only the
// ones that apply.
func (g *Engine) Sheet(e *blueprint.Entity) PropertySheet {
	sheet := make(PropertySheet)
	for name, f := range g.Catalog() {
		if v := f(e); v != nil {
			sheet[name] = v
		}
	}
	return sheet
}

func nilIfEmptyFactions(v []FactionLoyalty) any {
	if len(v) == 0 {
		return nil
	}
	return v
}

func nilIfEmptyInventory(v []InventoryItem) any {
	if len(v) == 0 {
		return nil
	}
	return v
}

func nilIfEmptyMods(v []ModEntry) any {
	if len(v) == 0 {
		return nil
	}
	return v
}

func nilIfEmptyMutations(v []MutationEntry) any {
	if len(v) == 0 {
		return nil
	}
	return v
}
