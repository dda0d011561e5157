package engine_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hindren/qudprops/internal/blueprint"
	mockblueprint "github.com/hindren/qudprops/internal/blueprint/mock"
	"github.com/hindren/qudprops/internal/engine"
)

// newWorld builds the shared definition tree the engine tests resolve
// against: a root object, the creature and item base blueprints, and a few
// leaf entities the individual tests extend.
func newWorld(t *testing.T) (*blueprint.Index, map[string]*blueprint.Entity) {
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
		Set(blueprint.GroupPart, "Physics", "Weight", "0").
		Set(blueprint.GroupPart, "Render", "DisplayName", "object"))

	creature := add(blueprint.New("Creature", object).
		Set(blueprint.GroupPart, "Physics", "Takeable", "false").
		Set(blueprint.GroupPart, "Brain", "Mobile", "true").
		Set(blueprint.GroupPart, "Body", "Anatomy", "Humanoid").
		Set(blueprint.GroupStat, "AV", "Value", "0").
		Set(blueprint.GroupStat, "DV", "Value", "0").
		Mark(blueprint.GroupPart, "Combat"))

	item := add(blueprint.New("Item", object))
	add(blueprint.New("MeleeWeapon", ents["Item"]).
		Set(blueprint.GroupPart, "MeleeWeapon", "BaseDamage", "1d2").
		Set(blueprint.GroupPart, "MeleeWeapon", "Skill", "Cudgel"))
	add(blueprint.New("MissileWeapon", item))
	add(blueprint.New("Armor", item))
	add(blueprint.New("Shield", ents["Armor"]))
	add(blueprint.New("Furniture", object).
		Set(blueprint.GroupPart, "Physics", "Takeable", "false"))
	add(blueprint.New("Wall", object).
		Set(blueprint.GroupPart, "Physics", "Takeable", "false").
		Set(blueprint.GroupPart, "Physics", "Solid", "true"))
	add(blueprint.New("Gas", object).
		Set(blueprint.GroupPart, "Physics", "Takeable", "false").
		Mark(blueprint.GroupPart, "Gas"))

	_ = creature
	return idx, ents
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEngine(t *testing.T, idx *blueprint.Index) *engine.Engine {
	t.Helper()
	g, err := engine.New(&engine.Config{
		Store:  idx,
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	return g
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := engine.New(&engine.Config{})
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	idx, ents := newWorld(t)

	snapjaw := blueprint.New("Snapjaw Scavenger", ents["Creature"])
	require.NoError(t, idx.Add(snapjaw))
	boulder := blueprint.New("Boulder", ents["Furniture"])
	require.NoError(t, idx.Add(boulder))
	poisonGas := blueprint.New("Poison Gas", ents["Gas"])
	require.NoError(t, idx.Add(poisonGas))
	dagger := blueprint.New("Dagger", ents["MeleeWeapon"])
	require.NoError(t, idx.Add(dagger))

	g := newEngine(t, idx)

	tests := []struct {
		name   string
		entity *blueprint.Entity
		want   engine.CharacterClass
	}{
		{"creature with combat and brain is active", snapjaw, engine.ActiveCharacter},
		{"stationary object is inactive", boulder, engine.InactiveCharacter},
		{"gas is not a character even when untakeable", poisonGas, engine.NotCharacter},
		{"takeable item is not a character", dagger, engine.NotCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Classify(tt.entity))
		})
	}
}

func TestIsCharacter(t *testing.T) {
	idx, ents := newWorld(t)

	snapjaw := blueprint.New("Snapjaw Scavenger", ents["Creature"])
	require.NoError(t, idx.Add(snapjaw))
	boulder := blueprint.New("Boulder", ents["Furniture"])
	require.NoError(t, idx.Add(boulder))
	dagger := blueprint.New("Dagger", ents["MeleeWeapon"])
	require.NoError(t, idx.Add(dagger))

	g := newEngine(t, idx)

	assert.True(t, g.IsCharacter(snapjaw))
	assert.True(t, g.IsCharacter(boulder))
	assert.False(t, g.IsCharacter(dagger))
}

func TestEngine_WithMockStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockblueprint.NewMockStore(ctrl)

	e := blueprint.New("Widget", nil)
	store.EXPECT().
		FieldValue(e, blueprint.GroupPart, "Physics", "Takeable").
		Return("true", true).
		AnyTimes()
	store.EXPECT().
		IsFieldPresent(e, blueprint.GroupPart, gomock.Any()).
		Return(false).
		AnyTimes()

	g, err := engine.New(&engine.Config{
		Store:  store,
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	assert.Equal(t, engine.NotCharacter, g.Classify(e))
}
