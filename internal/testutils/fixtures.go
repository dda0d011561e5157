// Package testutils holds shared fixtures for tests that need a populated
// definition tree or a live Redis instance.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hindren/qudprops/internal/blueprint"
)

// CreateTestIndex builds a small definition tree with the common base
// blueprints (Object, Creature, Item, MeleeWeapon) and one leaf creature
// and weapon, returning the index and the entities by name.
func CreateTestIndex(t *testing.T) (*blueprint.Index, map[string]*blueprint.Entity) {
	t.Helper()

	idx := blueprint.NewIndex()
	ents := make(map[string]*blueprint.Entity)
	add := func(e *blueprint.Entity) *blueprint.Entity {
		require.NoError(t, idx.Add(e))
		ents[e.Name] = e
		return e
	}

	object := add(blueprint.New("Object", nil).
		Set(blueprint.GroupPart, "Physics", "Takeable", "true").
		Set(blueprint.GroupPart, "Render", "DisplayName", "object"))

	creature := add(blueprint.New("Creature", object).
		Set(blueprint.GroupPart, "Physics", "Takeable", "false").
		Set(blueprint.GroupPart, "Brain", "Mobile", "true").
		Set(blueprint.GroupStat, "AV", "Value", "0").
		Set(blueprint.GroupStat, "DV", "Value", "0").
		Mark(blueprint.GroupPart, "Combat"))

	item := add(blueprint.New("Item", object))
	melee := add(blueprint.New("MeleeWeapon", item).
		Set(blueprint.GroupPart, "MeleeWeapon", "BaseDamage", "1d2").
		Set(blueprint.GroupPart, "MeleeWeapon", "Skill", "Cudgel"))

	add(blueprint.New("Snapjaw Scavenger", creature).
		Set(blueprint.GroupPart, "Render", "DisplayName", "snapjaw scavenger").
		Set(blueprint.GroupStat, "Level", "Value", "2").
		Set(blueprint.GroupStat, "Strength", "sValue", "12,14:16").
		Set(blueprint.GroupStat, "Hitpoints", "sValue", "10,14:20"))

	add(blueprint.New("Iron Dagger", melee).
		Set(blueprint.GroupPart, "Render", "DisplayName", "iron dagger").
		Set(blueprint.GroupPart, "MeleeWeapon", "BaseDamage", "1d4").
		Set(blueprint.GroupPart, "MeleeWeapon", "PenBonus", "1").
		Set(blueprint.GroupPart, "Physics", "Weight", "2"))

	return idx, ents
}
