package blueprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindren/qudprops/internal/blueprint"
	qerr "github.com/hindren/qudprops/internal/errors"
)

func TestIndex_AddAndResolve(t *testing.T) {
	idx := blueprint.NewIndex()

	root := blueprint.New("Object", nil)
	require.NoError(t, idx.Add(root))
	require.NoError(t, idx.Add(blueprint.New("Creature", root)))

	e, ok := idx.ResolveReference("Creature")
	require.True(t, ok)
	assert.Equal(t, "Creature", e.Name)

	_, ok = idx.ResolveReference("Missing")
	assert.False(t, ok)

	_, err := idx.Get("Missing")
	require.Error(t, err)
	assert.True(t, qerr.IsNotFound(err))

	assert.Equal(t, 2, idx.Len())
}

func TestIndex_RejectsDuplicatesAndAnonymous(t *testing.T) {
	idx := blueprint.NewIndex()

	require.NoError(t, idx.Add(blueprint.New("Object", nil)))

	err := idx.Add(blueprint.New("Object", nil))
	require.Error(t, err)
	assert.True(t, qerr.IsInvalidArgument(err))

	err = idx.Add(blueprint.New("", nil))
	require.Error(t, err)
	assert.True(t, qerr.IsInvalidArgument(err))
}

func TestIndex_DelegatesToEntity(t *testing.T) {
	idx := blueprint.NewIndex()

	root := blueprint.New("Object", nil).Set(blueprint.GroupStat, "AV", "Value", "1")
	child := blueprint.New("Wall", root)
	require.NoError(t, idx.Add(root))
	require.NoError(t, idx.Add(child))

	v, ok := idx.FieldValue(child, blueprint.GroupStat, "AV", "Value")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	assert.True(t, idx.InheritsFrom(child, "Object"))
	assert.True(t, idx.IsFieldPresent(child, blueprint.GroupStat, "AV"))
}
