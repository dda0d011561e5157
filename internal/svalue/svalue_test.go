package svalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerr "github.com/hindren/qudprops/internal/errors"
	"github.com/hindren/qudprops/internal/svalue"
)

func TestResolve_TierSelection(t *testing.T) {
	spec := "1:10-14,10:14-18,20:20-24"

	tests := []struct {
		level int
		want  string
	}{
		{level: 1, want: "10-14"},
		{level: 9, want: "10-14"},
		{level: 10, want: "14-18"},
		{level: 19, want: "14-18"},
		{level: 20, want: "20-24"},
		{level: 35, want: "20-24"},
	}

	for _, tt := range tests {
		got, err := svalue.Resolve(spec, tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "level %d", tt.level)
	}
}

func TestResolve_BareTierAppliesFromLevelOne(t *testing.T) {
	got, err := svalue.Resolve("2d6+3", 14)
	require.NoError(t, err)
	assert.Equal(t, "2d6+3", got)
}

func TestResolve_LevelBelowEveryThreshold(t *testing.T) {
	// Nearest available tier is used when nothing matches.
	got, err := svalue.Resolve("5:1d4,15:2d4", 2)
	require.NoError(t, err)
	assert.Equal(t, "1d4", got)
}

func TestResolve_UnsortedTiers(t *testing.T) {
	got, err := svalue.Resolve("20:3d6,1:1d6,10:2d6", 12)
	require.NoError(t, err)
	assert.Equal(t, "2d6", got)
}

func TestParse_Malformed(t *testing.T) {
	for _, spec := range []string{"", ",", "x:1d4", "0:1d4", "5:"} {
		_, err := svalue.Parse(spec)
		require.Error(t, err, "spec %q", spec)
		assert.True(t, qerr.IsMalformedExpression(err), "spec %q: %v", spec, err)
	}
}

func TestEffectiveLevel(t *testing.T) {
	n, err := svalue.EffectiveLevel("18")
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	// Range levels recover to the lower bound and report the ambiguity.
	n, err = svalue.EffectiveLevel("18-29")
	require.Error(t, err)
	assert.True(t, qerr.IsAmbiguousLevel(err))
	assert.Equal(t, 18, n)

	_, err = svalue.EffectiveLevel("high")
	require.Error(t, err)
	assert.True(t, qerr.IsMalformedExpression(err))
}
