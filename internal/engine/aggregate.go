package engine

import (
	"fmt"
	"strings"

	"github.com/hindren/qudprops/internal/blueprint"
)

// AV returns the armor value an item provides, or the full armor value a
// creature has after mutations and guaranteed equipment.
func (g *Engine) AV(e *blueprint.Entity) *int {
	var av *int
	if v := g.partInt(e, "Armor", "AV"); v != nil {
		av = v
	}
	if v := g.partInt(e, "Shield", "AV"); v != nil {
		av = v
	}

	if g.IsCharacter(e) {
		base := g.statInt(e, "AV", "Value")
		if base == nil {
			g.log.Warn("character has no AV stat", "entity", e.Name)
			return nil
		}
		total := *base
		appliedBodyAV := false
		for _, m := range e.Mutations() {
			switch m.Name {
			case "Carapace":
				total += m.Level/2 + 3
				appliedBodyAV = true
			case "Quills":
				total += m.Level/3 + 2
				appliedBodyAV = true
			case "Horns":
				total += (m.Level-1)/3 + 1
			case "MultiHorns":
				total += (m.Level + 1) / 4
			case "SlogGlands":
				total++
			}
		}
		for _, inv := range e.Inventory() {
			if isPlaceholderEntry(inv.Name) {
				continue
			}
			item, ok := g.store.ResolveReference(inv.Name)
			if !ok {
				g.log.Debug("inventory references unknown object", "entity", e.Name, "item", inv.Name)
				continue
			}
			itemAV := g.AV(item)
			if itemAV == nil || *itemAV == 0 {
				continue
			}
			// body-slot armor is replaced by a carapace or quills,
			// not worn alongside it
			if appliedBodyAV && strOrDefault(g.WornOn(item), "") == "Body" {
				continue
			}
			total += *itemAV
		}
		return intPtr(total)
	}
	return av
}

// DV returns the dodge value of an item, or a creature's full dodge value:
// base 6, explicit DV bonus, dodge skills, the agility modifier, mutations,
// and guaranteed equipment. Immobile and inactive characters sit at -10.
func (g *Engine) DV(e *blueprint.Entity) *int {
	var dv *int
	if v := g.partInt(e, "Armor", "DV"); v != nil {
		dv = v
	}
	if v := g.partInt(e, "Shield", "DV"); v != nil {
		dv = v
	} else if class := g.Classify(e); class == InactiveCharacter {
		dv = intPtr(-10)
	} else if class == ActiveCharacter {
		mobile, specified := g.part(e, "Brain", "Mobile")
		if specified && (mobile == "false" || mobile == "False") {
			dv = intPtr(-10)
		} else {
			total := 6
			if v := g.statInt(e, "DV", "Value"); v != nil {
				total += *v
			}
			if g.skillPresent(e, "Acrobatics_Dodge") { // Spry
				total += 2
			}
			if g.skillPresent(e, "Acrobatics_Tumble") { // Tumble
				total += 1
			}
			mod := g.AttributeModifier(e, "Agility", ModeAvg)
			if mod == nil {
				g.log.Warn("character has no Agility attribute", "entity", e.Name)
				return nil
			}
			total += *mod
			appliedBodyDV := false
			for _, m := range e.Mutations() {
				if m.Name == "Carapace" {
					total -= 2
					appliedBodyDV = true
				}
			}
			for _, inv := range e.Inventory() {
				if isPlaceholderEntry(inv.Name) {
					continue
				}
				item, ok := g.store.ResolveReference(inv.Name)
				if !ok {
					continue
				}
				itemDV := g.DV(item)
				if itemDV == nil || *itemDV == 0 {
					continue
				}
				if appliedBodyDV && strOrDefault(g.WornOn(item), "") == "Body" {
					continue
				}
				total += *itemDV
			}
			dv = intPtr(total)
		}
	}
	return dv
}

// HasMentalShield reports whether the creature is immune to mental effects.
func (g *Engine) HasMentalShield(e *blueprint.Entity) *bool {
	if g.Classify(e) != ActiveCharacter {
		return nil
	}
	if g.partPresent(e, "MentalShield") ||
		strings.Contains(e.Name, "Mechanical") ||
		g.isFullyRoboticized(e) {
		return boolPtr(true)
	}
	return nil
}

// MA returns the object's mental armor, averaged over the willpower range.
func (g *Engine) MA(e *blueprint.Entity) *int {
	if boolOr(g.HasMentalShield(e), false) {
		// robots, liquids, furniture and the like are not subject
		// to mental effects
		return nil
	}
	switch g.Classify(e) {
	case InactiveCharacter:
		return intPtr(0)
	case ActiveCharacter:
		ma := 4
		if v := g.statInt(e, "MA", "Value"); v != nil {
			ma += *v
		}
		mod := g.AttributeModifier(e, "Willpower", ModeAvg)
		if mod == nil {
			g.log.Warn("character has no Willpower attribute", "entity", e.Name)
			return nil
		}
		return intPtr(ma + *mod)
	}
	return nil
}

// MARange returns the creature's full range of possible MA values. When the
// willpower modifier varies, the range renders as a dice expression such as
// "-3+1d2" so downstream parsers never see forms like "-2--1".
func (g *Engine) MARange(e *blueprint.Entity) *string {
	if boolOr(g.HasMentalShield(e), false) {
		return nil
	}
	if g.Classify(e) != ActiveCharacter {
		return nil
	}
	ma := 4
	if v := g.statInt(e, "MA", "Value"); v != nil {
		ma += *v
	}
	minMod := g.AttributeModifier(e, "Willpower", ModeMin)
	maxMod := g.AttributeModifier(e, "Willpower", ModeMax)
	if minMod == nil || maxMod == nil {
		return nil
	}
	if *minMod == *maxMod {
		return strPtr(fmt.Sprintf("%d", ma+*minMod))
	}
	return strPtr(fmt.Sprintf("%d+1d%d", ma+*minMod-1, *maxMod-*minMod+1))
}

// Resistance returns the elemental resistance or weakness for the given
// element ("Heat", "Cold", "Electric", "Acid").
func (g *Engine) Resistance(e *blueprint.Entity, element string) *int {
	var val *string
	if v := g.statStr(e, element+"Resistance", "Value"); v != nil {
		val = v
	}
	if g.partPresent(e, "Armor") {
		armorField := element
		if element == "Electric" {
			armorField = "Elec" // short form on armor
		}
		val = g.partStr(e, "Armor", armorField)
	}

	var out *int
	if val != nil {
		out = intOrNil(*val)
	}

	if g.isFullyRoboticized(e) {
		switch element {
		case "Heat", "Cold":
			out = intPtr(25)
		case "Electric":
			out = intPtr(-50)
		}
	}
	for _, m := range e.Mutations() {
		if m.Name == "Carapace" && (element == "Heat" || element == "Cold") {
			base := 0
			if out != nil {
				base = *out
			}
			out = intPtr(base + m.Level*5 + 5)
		}
		if m.Name == "SlogGlands" && element == "Acid" {
			out = intPtr(100)
		}
	}
	return out
}

// Quickness returns the action speed of a creature, or the speed bonus of
// a piece of armor. Mutation bonuses stack on the creature's speed stat,
// defaulting to the baseline 100 when the stat is unset.
func (g *Engine) Quickness(e *blueprint.Entity) *int {
	if g.Classify(e) == ActiveCharacter {
		mutationVal := 0
		for _, m := range e.Mutations() {
			switch m.Name {
			case "ColdBlooded":
				mutationVal -= 10
			case "HeightenedSpeed":
				mutationVal += m.Level*2 + 13
			}
		}
		speed := g.statInt(e, "Speed", "Value")
		if mutationVal != 0 {
			base := 100
			if speed != nil {
				base = *speed
			}
			return intPtr(base + mutationVal)
		}
		return speed
	}
	if g.partPresent(e, "Armor") {
		return g.partInt(e, "Armor", "SpeedBonus")
	}
	return nil
}

// WornOn returns the body slot an item equips to. This is the slot it is
// worn on, not the set of slots it occupies once equipped.
func (g *Engine) WornOn(e *blueprint.Entity) *string {
	var slot *string
	if v := g.partStr(e, "Shield", "WornOn"); v != nil {
		slot = v
	}
	if v := g.partStr(e, "Armor", "WornOn"); v != nil {
		slot = v
	}
	if e.Name == "Hooks" {
		slot = strPtr("Feet") // manual fix
	}
	return slot
}

// isFullyRoboticized reports whether the roboticized builder always fires.
func (g *Engine) isFullyRoboticized(e *blueprint.Entity) bool {
	if !g.partPresent(e, "Roboticized") {
		return false
	}
	return strOrDefault(g.partStr(e, "Roboticized", "ChanceOneIn"), "") == "1"
}
