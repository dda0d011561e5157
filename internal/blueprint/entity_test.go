package blueprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindren/qudprops/internal/blueprint"
)

func buildTree() (root, creature, snapjaw *blueprint.Entity) {
	root = blueprint.New("Object", nil).
		Set(blueprint.GroupPart, "Physics", "Takeable", "true").
		Set(blueprint.GroupStat, "Hitpoints", "Value", "1")

	creature = blueprint.New("Creature", root).
		Set(blueprint.GroupPart, "Physics", "Takeable", "false").
		Mark(blueprint.GroupPart, "Combat").
		Mark(blueprint.GroupPart, "Brain").
		Set(blueprint.GroupStat, "AV", "Value", "2")

	snapjaw = blueprint.New("Snapjaw", creature).
		Set(blueprint.GroupStat, "Hitpoints", "Value", "12").
		Set(blueprint.GroupStat, "Level", "Value", "3")

	return root, creature, snapjaw
}

func TestEntity_FieldValueChainFallback(t *testing.T) {
	_, _, snapjaw := buildTree()

	// Own value wins.
	v, ok := snapjaw.FieldValue(blueprint.GroupStat, "Hitpoints", "Value")
	require.True(t, ok)
	assert.Equal(t, "12", v)

	// Falls back to nearest ancestor.
	v, ok = snapjaw.FieldValue(blueprint.GroupStat, "AV", "Value")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	v, ok = snapjaw.FieldValue(blueprint.GroupPart, "Physics", "Takeable")
	require.True(t, ok)
	assert.Equal(t, "false", v, "nearest ancestor overrides the root")

	// Absent everywhere is absent, not empty.
	_, ok = snapjaw.FieldValue(blueprint.GroupStat, "Strength", "Value")
	assert.False(t, ok)
}

func TestEntity_OwnFieldValueSkipsAncestors(t *testing.T) {
	_, creature, snapjaw := buildTree()

	// Own data resolves.
	v, ok := snapjaw.OwnFieldValue(blueprint.GroupStat, "Hitpoints", "Value")
	require.True(t, ok)
	assert.Equal(t, "12", v)

	// Inherited data does not.
	_, ok = snapjaw.OwnFieldValue(blueprint.GroupStat, "AV", "Value")
	assert.False(t, ok)
	v, ok = creature.OwnFieldValue(blueprint.GroupStat, "AV", "Value")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestEntity_IsFieldPresent(t *testing.T) {
	_, creature, snapjaw := buildTree()

	assert.True(t, creature.IsFieldPresent(blueprint.GroupPart, "Combat"))
	assert.True(t, snapjaw.IsFieldPresent(blueprint.GroupPart, "Combat"), "inherited presence counts")
	assert.False(t, snapjaw.IsFieldPresent(blueprint.GroupPart, "MissileWeapon"))
}

func TestEntity_InheritsFrom(t *testing.T) {
	_, _, snapjaw := buildTree()

	assert.True(t, snapjaw.InheritsFrom("Creature"))
	assert.True(t, snapjaw.InheritsFrom("Object"))
	assert.True(t, snapjaw.InheritsFrom("Snapjaw"), "an entity inherits from itself")
	assert.False(t, snapjaw.InheritsFrom("Item"))
}

func TestEntity_KeysMergeAncestorFirst(t *testing.T) {
	_, _, snapjaw := buildTree()

	parts := snapjaw.PartNames()
	assert.Equal(t, []string{"Physics", "Combat", "Brain"}, parts)
}

func TestEntity_Mutations(t *testing.T) {
	root := blueprint.New("Object", nil)
	crab := blueprint.New("Crab", root).
		Set(blueprint.GroupMutation, "Carapace", "Level", "4").
		Set(blueprint.GroupMutation, "Spinnerets", "Level", "1").
		Set(blueprint.GroupMutation, "Spinnerets", "Phase", "True")

	muts := crab.Mutations()
	require.Len(t, muts, 2)
	assert.Equal(t, blueprint.Mutation{Name: "Carapace", Level: 4}, muts[0])
	assert.Equal(t, "True", muts[1].Phase)
}

func TestEntity_InventoryDefaults(t *testing.T) {
	root := blueprint.New("Object", nil)
	scavenger := blueprint.New("Scavenger", root).
		Mark(blueprint.GroupInventory, "Iron Vinereaper").
		Set(blueprint.GroupInventory, "Leather Armor", "Number", "1").
		Set(blueprint.GroupInventory, "Leather Armor", "Chance", "50").
		Mark(blueprint.GroupInventory, "*Junk 1")

	inv := scavenger.Inventory()
	require.Len(t, inv, 3)
	assert.Equal(t, blueprint.InventoryEntry{Name: "Iron Vinereaper", Count: "1", Chance: "100"}, inv[0])
	assert.Equal(t, blueprint.InventoryEntry{Name: "Leather Armor", Count: "1", Chance: "50"}, inv[1])
	assert.Equal(t, "*Junk 1", inv[2].Name, "placeholders are preserved for callers to skip")
}
