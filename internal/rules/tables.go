// Package rules holds the static data tables the engine consults:
// name-keyed overrides, modifier complexity costs, and fixed label maps.
// They are plain data so deployments can validate or extend them without
// touching engine logic.
package rules

// ModCost describes the complexity a "Mod"-prefixed subcomponent adds to
// an item. Mods with IfComplex true only add complexity when the item is
// already complex.
type ModCost struct {
	Complexity int
	IfComplex  bool
}

// Tables bundles the override data injected into the engine. Zero-value
// maps are treated as empty.
type Tables struct {
	// ChargeUseOverrides replaces the computed charge-use total for the
	// named entities.
	ChargeUseOverrides map[string]int

	// ChargeUseReasons supplies an extra charge-function label for the
	// named entities.
	ChargeUseReasons map[string]string

	// ModComplexity maps mod part names to their complexity cost.
	ModComplexity map[string]ModCost

	// FactionNames maps faction identifiers to display names.
	FactionNames map[string]string

	// CyberneticsInfixes maps cybernetic part names to the rules text
	// inserted before behavior descriptions.
	CyberneticsInfixes map[string]string

	// CyberneticsPostfixes maps cybernetic part names to the rules text
	// appended after the standard implant block.
	CyberneticsPostfixes map[string]string
}

// DefaultTables returns the stock override data.
func DefaultTables() Tables {
	return Tables{
		ChargeUseOverrides: map[string]int{
			"Ontological Anchor":        500,
			"Ganglionic Teleprojector":  100,
			"Night-Sight Interpolators": 1,
			"Precinct Navigator":        2,
		},
		ChargeUseReasons: map[string]string{
			"Ontological Anchor":        "Reality Stabilization",
			"Ganglionic Teleprojector":  "Domination",
			"Night-Sight Interpolators": "Night Vision",
			"Precinct Navigator":        "Pathfinding",
		},
		ModComplexity: map[string]ModCost{
			"ModCounterweighted": {Complexity: 1, IfComplex: true},
			"ModMasterwork":      {Complexity: 1, IfComplex: true},
			"ModScoped":          {Complexity: 1, IfComplex: true},
			"ModSpringLoaded":    {Complexity: 1, IfComplex: true},
			"ModNav":             {Complexity: 1, IfComplex: false},
			"ModFlaming":         {Complexity: 1, IfComplex: false},
			"ModFreezing":        {Complexity: 1, IfComplex: false},
			"ModElectrified":     {Complexity: 1, IfComplex: false},
			"ModGlassArmor":      {Complexity: 2, IfComplex: false},
			"ModPolarized":       {Complexity: 1, IfComplex: false},
			"ModJacked":          {Complexity: 1, IfComplex: false},
			"ModOverloaded":      {Complexity: 1, IfComplex: true},
		},
		FactionNames: map[string]string{
			"Joppa":                "villagers of Joppa",
			"Kyakukya":             "villagers of Kyakukya",
			"YdFreehold":           "the Yd Freehold",
			"Barathrumites":        "Barathrumites",
			"Mechanimists":         "Mechanimists",
			"HighlyEntropicBeings": "highly entropic beings",
			"Antelopes":            "antelopes",
			"Apes":                 "apes",
			"Fungi":                "fungi",
			"Consortium":           "Consortium of Phyta",
		},
		CyberneticsInfixes: map[string]string{
			"CyberneticsMedassistModule":  "Compatible with ampoule-loaded injectors.",
			"CyberneticsOnboardRecoiler":  "Teleports its implantee to an imprinted location when activated.",
			"CyberneticsNightVision":      "Grants night vision while installed.",
			"CyberneticsPenetratingRadar": "Reveals the layout of nearby walls on the implantee's map.",
		},
		CyberneticsPostfixes: map[string]string{
			"CyberneticsMedassistModule": "Loaded ampoules are consumed on use.",
			"CyberneticsOnboardRecoiler": "Imprints are overwritten by subsequent imprinting.",
		},
	}
}

// CoreStatNames are the six creature attributes eligible for the minion
// boost reduction.
var CoreStatNames = []string{
	"Strength", "Agility", "Toughness", "Intelligence", "Willpower", "Ego",
}

// IsCoreStat reports whether name is one of the six creature attributes.
func IsCoreStat(name string) bool {
	for _, s := range CoreStatNames {
		if s == name {
			return true
		}
	}
	return false
}

// ProjectileLoaderParts lists the loader parts consulted, in priority
// order, when delegating weapon properties to a projectile entity.
var ProjectileLoaderParts = []string{
	"BioAmmoLoader",
	"AmmoArrow",
	"MagazineAmmoLoader",
	"EnergyAmmoLoader",
	"LiquidAmmoLoader",
}

// ChargeFunctionLabels maps charge-consuming part names to the functional
// label shown to players.
var ChargeFunctionLabels = map[string]string{
	"StunOnHit":            "Stun effect",
	"EnergyAmmoLoader":     "Weapon Power",
	"Gaslight":             "Weapon Power",
	"VibroWeapon":          "Adaptive Penetration",
	"MechanicalWings":      "Flight",
	"RocketSkates":         "Power Skate",
	"GeomagneticDisc":      "Throw Effect",
	"Teleporter":           "Teleportation",
	"EquipStatBoost":       "Stat Boost",
	"PartsGas":             "Gas Dispersion",
	"ReduceCooldowns":      "Cooldown Reduction",
	"RealityStabilization": "Reality Stabilization",
	"LatchesOn":            "Latch Effect",
	"Toolbox":              "Tinker Bonus",
	"ConversationScript":   "Audio Processing",
}

// BehaviorDescriptionParts are the parts whose BehaviorDescription text is
// folded into an item's description.
var BehaviorDescriptionParts = []string{
	"LatchesOn",
	"SapChargeOnHit",
	"TemperatureAdjuster",
	"Toolbox",
	"Cybernetics2BaseItem",
	"FollowersGetTeleport",
	"IntPropertyChanger",
}

// AmmoTypeNames maps magazine ammo part names to display names.
var AmmoTypeNames = map[string]string{
	"AmmoSlug":         "lead slug",
	"AmmoShotgunShell": "shotgun shell",
	"AmmoGrenade":      "grenade",
	"AmmoMissile":      "missile",
	"AmmoArrow":        "arrow",
	"AmmoDart":         "dart",
}

// bitCodes translates disassembly bit letters to their canonical digit
// form; digits pass through unchanged.
var bitCodes = map[rune]rune{
	'B': '0', 'b': '0',
	'R': '1', 'r': '1',
	'G': '2', 'g': '2',
	'C': '3', 'c': '3',
}

// TranslateBits converts a raw TinkerItem bit string to canonical digits.
func TranslateBits(raw string) string {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		if d, ok := bitCodes[r]; ok {
			out = append(out, d)
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
