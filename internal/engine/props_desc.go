package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hindren/qudprops/internal/blueprint"
	"github.com/hindren/qudprops/internal/rules"
)

// Desc returns the short description with the appended rules text the game
// renders under it: reputation, missile weapon stats, resistances and stat
// bonuses, cybernetics rules, and the various postfix parts. The ordering
// below mimics the in-game ordering of the rules as closely as possible
// without iterating parts in raw definition order.
func (g *Engine) Desc(e *blueprint.Entity) *string {
	short := g.partStr(e, "Description", "Short")
	if short == nil || *short == "A hideous specimen." {
		// hide objects with the placeholder description
		return nil
	}
	desc := *short
	var extra []string

	isItem := g.inherits(e, "Item")
	if isItem {
		extra = append(extra, g.descReputation(e)...)
		if g.partPresent(e, "MissileWeapon") {
			extra = append(extra, g.descMissileRules(e))
		}
		if resists := g.descResists(e); len(resists) > 0 {
			extra = append(extra, strings.Join(resists, "\n"))
		}
		if bonus := g.CarryBonus(e); bonus != nil && *bonus != 0 {
			extra = append(extra, "{{rules|"+posOrNeg(*bonus)+strconv.Itoa(*bonus)+"% carry capacity}}")
		}
		if g.partPresent(e, "Shield") {
			extra = append(extra, "{{rules|Shields only grant their AV when you successfully block an attack.}}")
		}
		if g.partPresent(e, "ComputeNode") &&
			strOrDefault(g.partStr(e, "ComputeNode", "WorksOnEquipper"), "") == "true" {
			power := strOrDefault(g.partStr(e, "ComputeNode", "Power"), "20")
			extra = append(extra, "{{rules|When equipped and powered, provides "+power+
				" units of compute power to the local lattice.}}")
		}
		if g.partPresent(e, "ActiveLightSource") &&
			strOrDefault(g.partStr(e, "ActiveLightSource", "WorksOnEquipper"), "") == "true" &&
			strOrDefault(g.partStr(e, "ActiveLightSource", "ShowInShortDescription"), "true") == "true" {
			radius := strOrDefault(g.partStr(e, "ActiveLightSource", "Radius"), "5")
			extra = append(extra, "{{rules|When equipped, provides light in radius "+radius+".}}")
		}
		switch e.Name {
		case "Rocket Skates":
			extra = append(extra,
				"{{rules|Replaces Sprint with Power Skate (unlimited duration).}}",
				"{{rules|Emits plumes of fire when the wearer moves while power skating.}}")
		case "Banner of the Holy Rhombus":
			extra = append(extra,
				"{{rules|Bestows the {{r|war trance}} effect to the Putus Templar who can see this item.")
		}
		if g.partPresent(e, "SaveModifier") &&
			strOrDefault(g.partStr(e, "SaveModifier", "ShowInShortDescription"), "true") == "true" {
			amt := strOrDefault(g.partStr(e, "SaveModifier", "Amount"), "1")
			line := amt + " on saves"
			if vs := g.partStr(e, "SaveModifier", "Vs"); vs != nil && *vs != "" {
				line += " vs. " + makeListFromWords(strings.Split(*vs, ","))
			}
			extra = append(extra, "{{rules|"+line+".}}")
		}
	}

	if g.isFullyRoboticized(e) {
		postfix := strOrDefault(g.partStr(e, "Roboticized", "DescriptionPostfix"),
			"There is a low, persistent hum emanating outward.")
		desc += " " + postfix
	}
	if g.partPresent(e, "PartsGas") {
		var rule string
		if chance := g.partStr(e, "PartsGas", "Chance"); chance != nil {
			rule = *chance + "% chance per turn to repel gases near its"
		} else {
			rule = "Repels gases near its"
		}
		if isItem {
			if e.Name == "Wrist Fan" {
				rule += " wielder or wearer."
			} else {
				rule += " user."
			}
		} else {
			rule += "elf."
		}
		extra = append(extra, "{{rules|"+rule+"}}")
	}
	if g.intPropertyValue(e, "GenotypeBasedDescription") != nil {
		extra = append(extra,
			"[True kin]\n"+strOrDefault(g.propertyValue(e, "TrueManDescription"), ""),
			"[Mutant]\n"+strOrDefault(g.propertyValue(e, "MutantDescription"), ""))
	}
	if rule := g.descCybernetics(e, len(extra) > 0); rule != "" {
		extra = append(extra, rule)
	}
	if text := g.partStr(e, "RulesDescription", "Text"); text != nil {
		if strOrDefault(g.partStr(e, "RulesDescription", "AltForGenotype"), "") == "True Kin" {
			alt := strOrDefault(g.partStr(e, "RulesDescription", "GenotypeAlt"), "")
			extra = append(extra,
				"[Mutant]\n{{rules|"+*text+"}}",
				"[True Kin]\n{{rules|"+alt+"}}")
		} else {
			extra = append(extra, "{{rules|"+*text+"}}")
		}
	}
	if g.partPresent(e, "AddsTelepathyOnEquip") {
		extra = append([]string{"{{rules|Grants you Telepathy.}}"}, extra...)
	}
	if g.partPresent(e, "ReduceEnergyCosts") &&
		strOrDefault(g.partStr(e, "ReduceEnergyCosts", "GenerateShortDescription"), "true") == "true" {
		num := intOrDefault(g.partStr(e, "ReduceEnergyCosts", "PercentageReduction"), 0)
		pre := ""
		if intOrDefault(g.partStr(e, "ReduceEnergyCosts", "ChargeUse"), 0) != 0 {
			pre = "when powered, "
		}
		scope := strOrDefault(g.partStr(e, "ReduceEnergyCosts", "ScopeDescription"), "")
		line := fmt.Sprintf("%sprovides %d%% reduction in %s.", pre, num, scope)
		extra = append(extra, "{{rules|"+strings.ToUpper(line[:1])+line[1:]+"}}")
	}
	if mark := g.partStr(e, "Description", "Mark"); mark != nil && *mark != "" {
		extra = append(extra, *mark)
	}
	if g.partPresent(e, "BonusPostfix") {
		extra = append(extra, strOrDefault(g.partStr(e, "BonusPostfix", "Postfix"), ""))
	}

	if len(extra) > 0 {
		desc += "\n\n" + strings.Join(extra, "\n")
	}
	desc = strings.ReplaceAll(desc, "\r\n", "\n")
	desc = strings.ReplaceAll(desc, "~J211", "")
	return &desc
}

// descReputation renders the reputation rules lines for an AddsRep part.
func (g *Engine) descReputation(e *blueprint.Entity) []string {
	if !g.partPresent(e, "AddsRep") {
		return nil
	}
	var lines []string
	for _, rep := range g.ReputationBonus(e) {
		amt := strconv.Itoa(rep.Value)
		if rep.Value >= 0 {
			amt = "+" + amt
		}
		var txt string
		if rep.Faction == "*allvisiblefactions" {
			txt = amt + " reputation with every faction"
		} else {
			name := rep.Faction
			if display, ok := g.tables.FactionNames[name]; ok {
				name = display
			}
			txt = amt + " reputation with " + name
		}
		lines = append(lines, "{{rules|"+txt+"}}")
	}
	return lines
}

// descMissileRules renders the weapon-class block for missile weapons.
func (g *Engine) descMissileRules(e *blueprint.Entity) string {
	skill := strOrDefault(g.partStr(e, "MissileWeapon", "Skill"), "Rifle")
	switch skill {
	case "Rifle":
		skill = "Bows & Rifles"
	case "HeavyWeapons":
		skill = "Heavy Weapon"
	}
	accuracy := intOrDefault(g.partStr(e, "MissileWeapon", "WeaponAccuracy"), 0)
	accuracyStr := "Very Low"
	switch {
	case accuracy <= 0:
		accuracyStr = "Very High"
	case accuracy < 5:
		accuracyStr = "High"
	case accuracy < 10:
		accuracyStr = "Medium"
	case accuracy < 25:
		accuracyStr = "Low"
	}
	var b strings.Builder
	b.WriteString("{{rules|")
	b.WriteString("Weapon Class: " + skill)
	b.WriteString("\nAccuracy: " + accuracyStr)
	if ammoPer := intOrDefault(g.partStr(e, "MissileWeapon", "AmmoPerAction"), 1); ammoPer > 1 {
		fmt.Fprintf(&b, "\nMultiple ammo used per shot: %d", ammoPer)
	}
	shotsPer := intOrDefault(g.partStr(e, "MissileWeapon", "ShotsPerAction"), 1)
	if boolOrDefault(g.partStr(e, "MissileWeapon", "bShowShotsPerAction"), true) && shotsPer > 1 {
		fmt.Fprintf(&b, "\nMultiple projectiles per shot: %d", shotsPer)
	}
	if boolOrDefault(g.partStr(e, "MissileWeapon", "NoWildfire"), false) {
		b.WriteString("\nSpray fire: This item can be fired while adjacent to multiple " +
			"enemies without risk of the shot going wild.")
	}
	if skill == "Heavy Weapon" {
		b.WriteString("\n-25 move speed")
	}
	if penStat := g.partStr(e, "MissileWeapon", "ProjectilePenetrationStat"); penStat != nil {
		b.WriteString("\nProjectiles fired with this weapon receive bonus penetration " +
			"based on the wielder's " + *penStat + ".")
	}
	b.WriteString("}}")
	return b.String()
}

// descResists renders the resistance and stat-bonus lines an item shows.
func (g *Engine) descResists(e *blueprint.Entity) []string {
	type attrLine struct {
		display    string
		posColor   string
		negColor   string
		resistance bool
		value      string
	}
	fromInt := func(v *int) string {
		if v == nil || *v == 0 {
			return ""
		}
		return strconv.Itoa(*v)
	}
	fromStr := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}
	willpower := fromStr(g.Willpower(e))
	ego := fromStr(g.Ego(e))
	if e.Name == "Stopsvaalinn" {
		// its ego bonus is already in the rule text
		ego = ""
	} else if e.Name == "Cyclopean Prism" {
		ego = "+1"
		willpower = "-1"
	}
	lines := []attrLine{
		{"Heat", "R", "R", true, fromInt(g.Resistance(e, "Heat"))},
		{"Cold", "C", "C", true, fromInt(g.Resistance(e, "Cold"))},
		{"Electrical", "W", "W", true, fromInt(g.Resistance(e, "Electric"))},
		{"Acid", "G", "G", true, fromInt(g.Resistance(e, "Acid"))},
		{"Willpower", "C", "R", false, willpower},
		{"Ego", "C", "R", false, ego},
		{"Agility", "C", "R", false, fromStr(g.Agility(e))},
		{"Toughness", "C", "R", false, fromStr(g.Toughness(e))},
		{"Strength", "C", "R", false, fromStr(g.Strength(e))},
		{"Intelligence", "C", "R", false, fromStr(g.Intelligence(e))},
		{"Quickness", "C", "R", false, fromInt(g.Quickness(e))},
		{"Move Speed", "C", "R", false, fromInt(g.MovespeedBonus(e))},
	}
	var out []string
	for _, line := range lines {
		if line.value == "" || line.value == "0" {
			continue
		}
		str := line.value
		if str[0] != '+' && str[0] != '-' {
			if n, err := strconv.Atoi(str); err == nil {
				str = posOrNeg(n) + str
			}
		}
		color := line.posColor
		if str[0] == '-' {
			color = line.negColor
		}
		str += " " + line.display
		if line.resistance {
			str += " Resistance"
		}
		out = append(out, "{{"+color+"|"+str+"}}")
	}
	return out
}

// descCybernetics renders the combined cybernetics rules block: the
// hardcoded infix for the implant family, any behavior description text,
// and the installation postfix with target slots and license cost.
func (g *Engine) descCybernetics(e *blueprint.Entity, hasOtherRules bool) string {
	var b strings.Builder
	for _, part := range sortedKeys(g.tables.CyberneticsInfixes) {
		if g.partPresent(e, part) {
			b.WriteString(g.tables.CyberneticsInfixes[part] + "\n\n")
			break
		}
	}
	for _, part := range rules.BehaviorDescriptionParts {
		if !g.partPresent(e, part) {
			continue
		}
		if desc := g.partStr(e, part, "BehaviorDescription"); desc != nil && *desc != "" {
			b.WriteString(*desc)
		}
	}
	if slots := g.partStr(e, "Cybernetics2BaseItem", "Slots"); slots != nil {
		bodyParts := strings.ReplaceAll(*slots, ",", ", ")
		cost := strOrDefault(g.partStr(e, "Cybernetics2BaseItem", "Cost"), "")
		if hasOtherRules || b.Len() > 0 {
			b.WriteString("\n\n")
		}
		if g.tagPresent(e, "CyberneticsDestroyOnRemoval") {
			b.WriteString("Destroyed when uninstalled.\n")
		}
		b.WriteString("Target body parts: " + bodyParts + "\n")
		b.WriteString("License points: " + cost + "\n")
		b.WriteString("Only compatible with True Kin genotypes")
		for _, part := range sortedKeys(g.tables.CyberneticsPostfixes) {
			if g.partPresent(e, part) {
				b.WriteString("\n" + g.tables.CyberneticsPostfixes[part])
				break
			}
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "{{rules|" + b.String() + "}}"
}
