package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindren/qudprops/internal/blueprint"
	"github.com/hindren/qudprops/internal/engine"
)

func TestAttribute_LevelScaledPreferredOverFlat(t *testing.T) {
	idx, ents := newWorld(t)
	goat := blueprint.New("Goatfolk", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "15").
		Set(blueprint.GroupStat, "Strength", "sValue", "16,18:20,26:24").
		Set(blueprint.GroupStat, "Strength", "Value", "99")
	require.NoError(t, idx.Add(goat))

	g := newEngine(t, idx)

	got := g.Strength(goat)
	require.NotNil(t, got)
	assert.Equal(t, "16", *got, "level 15 sits below the 18 tier")
}

func TestAttribute_FlatValueFallback(t *testing.T) {
	idx, ents := newWorld(t)
	goat := blueprint.New("Goatfolk", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "15").
		Set(blueprint.GroupStat, "Agility", "Value", "22")
	require.NoError(t, idx.Add(goat))

	g := newEngine(t, idx)

	got := g.Agility(goat)
	require.NotNil(t, got)
	assert.Equal(t, "22", *got)
}

func TestAttribute_ArmorReadsItsOwnField(t *testing.T) {
	idx, ents := newWorld(t)
	helm := blueprint.New("Crysteel Helm", ents["Armor"]).
		Set(blueprint.GroupPart, "Armor", "Ego", "2")
	require.NoError(t, idx.Add(helm))

	g := newEngine(t, idx)

	got := g.Ego(helm)
	require.NotNil(t, got)
	assert.Equal(t, "2", *got)
	assert.Nil(t, g.Strength(helm), "armor without a strength field has none")
}

func TestAttribute_AbsentStaysAbsent(t *testing.T) {
	idx, ents := newWorld(t)
	snapjaw := blueprint.New("Snapjaw Scavenger", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "2")
	require.NoError(t, idx.Add(snapjaw))

	g := newEngine(t, idx)

	assert.Nil(t, g.Strength(snapjaw))
	assert.Nil(t, g.AttributeValue(snapjaw, "Strength", engine.ModeAvg))
	assert.Nil(t, g.AttributeModifier(snapjaw, "Strength", engine.ModeAvg))
}

func TestBoostFactor(t *testing.T) {
	idx, ents := newWorld(t)

	boosted := blueprint.New("Girshling", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "10").
		Set(blueprint.GroupStat, "Strength", "sValue", "14-18").
		Set(blueprint.GroupStat, "Strength", "Boost", "2")
	require.NoError(t, idx.Add(boosted))

	drained := blueprint.New("Wisp", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "10").
		Set(blueprint.GroupStat, "Ego", "sValue", "10-20").
		Set(blueprint.GroupStat, "Ego", "Boost", "-1")
	require.NoError(t, idx.Add(drained))

	flatBoost := blueprint.New("Ogre", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "10").
		Set(blueprint.GroupStat, "Strength", "Value", "20").
		Set(blueprint.GroupStat, "Strength", "Boost", "2")
	require.NoError(t, idx.Add(flatBoost))

	minion := blueprint.New("Girshling Minion", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "10").
		Set(blueprint.GroupStat, "Strength", "sValue", "14-18").
		Set(blueprint.GroupStat, "Strength", "Boost", "2").
		Set(blueprint.GroupProperty, "Role", "Value", "Minion")
	require.NoError(t, idx.Add(minion))

	g := newEngine(t, idx)

	t.Run("positive boost", func(t *testing.T) {
		f := g.StrengthMult(boosted)
		require.NotNil(t, f)
		assert.InDelta(t, 1.5, *f, 1e-9)
	})
	t.Run("negative boost", func(t *testing.T) {
		f := g.EgoMult(drained)
		require.NotNil(t, f)
		assert.InDelta(t, 0.8, *f, 1e-9)
	})
	t.Run("boost without a level-scaled stat is inert", func(t *testing.T) {
		assert.Nil(t, g.StrengthMult(flatBoost))
	})
	t.Run("minion role drops the boost one step on core stats", func(t *testing.T) {
		f := g.StrengthMult(minion)
		require.NotNil(t, f)
		assert.InDelta(t, 1.25, *f, 1e-9)
	})
}

func TestAttributeValue_BoostRounding(t *testing.T) {
	idx, ents := newWorld(t)
	girshling := blueprint.New("Girshling", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "10").
		Set(blueprint.GroupStat, "Strength", "sValue", "14-18").
		Set(blueprint.GroupStat, "Strength", "Boost", "2")
	require.NoError(t, idx.Add(girshling))

	wisp := blueprint.New("Wisp", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "10").
		Set(blueprint.GroupStat, "Ego", "sValue", "10-20").
		Set(blueprint.GroupStat, "Ego", "Boost", "-1")
	require.NoError(t, idx.Add(wisp))

	g := newEngine(t, idx)

	// 14..18 at x1.5: bounds round up individually, then the average
	// is the truncated midpoint of the rounded bounds.
	tests := []struct {
		mode engine.StatMode
		want int
	}{
		{engine.ModeMin, 21},
		{engine.ModeMax, 27},
		{engine.ModeAvg, 24},
	}
	for _, tt := range tests {
		got := g.AttributeValue(girshling, "Strength", tt.mode)
		require.NotNil(t, got)
		assert.Equal(t, tt.want, *got)
	}

	// 10..20 at x0.8
	neg := []struct {
		mode engine.StatMode
		want int
	}{
		{engine.ModeMin, 8},
		{engine.ModeMax, 16},
		{engine.ModeAvg, 12},
	}
	for _, tt := range neg {
		got := g.AttributeValue(wisp, "Ego", tt.mode)
		require.NotNil(t, got)
		assert.Equal(t, tt.want, *got)
	}
}

func TestAttributeValue_UnboostedAverageTruncates(t *testing.T) {
	idx, ents := newWorld(t)
	crab := blueprint.New("Crab", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "Value", "5").
		Set(blueprint.GroupStat, "Toughness", "Value", "15-16")
	require.NoError(t, idx.Add(crab))

	g := newEngine(t, idx)

	got := g.AttributeValue(crab, "Toughness", engine.ModeAvg)
	require.NotNil(t, got)
	assert.Equal(t, 15, *got, "15.5 truncates to 15")
}

func TestAttributeModifier(t *testing.T) {
	idx, ents := newWorld(t)
	g := newEngine(t, idx)

	tests := []struct {
		value string
		want  int
	}{
		{"16", 0},
		{"15", -1},
		{"18", 1},
		{"0", -8},
		{"17", 0},
		{"14", -1},
	}
	for _, tt := range tests {
		e := blueprint.New("Mod"+tt.value, ents["Creature"]).
			Set(blueprint.GroupStat, "Level", "Value", "1").
			Set(blueprint.GroupStat, "Willpower", "Value", tt.value)
		require.NoError(t, idx.Add(e))

		got := g.AttributeModifier(e, "Willpower", engine.ModeAvg)
		require.NotNil(t, got, "value %s", tt.value)
		assert.Equal(t, tt.want, *got, "value %s", tt.value)
	}
}

func TestLevel_RangeFormUsesLowerBound(t *testing.T) {
	idx, ents := newWorld(t)
	tinker := blueprint.New("Barathrumite Tinker", ents["Creature"]).
		Set(blueprint.GroupStat, "Level", "sValue", "18-29").
		Set(blueprint.GroupStat, "Strength", "sValue", "15,20:19")
	require.NoError(t, idx.Add(tinker))

	g := newEngine(t, idx)

	got := g.Strength(tinker)
	require.NotNil(t, got)
	assert.Equal(t, "15", *got, "effective level 18 stays below the 20 tier")
}
