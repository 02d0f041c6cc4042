package mcgc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRootIncrementsCount(t *testing.T) {
	h, err := Init(1000)
	require.NoError(t, err)

	assert.Equal(t, 0, h.NumRoots())

	var a, b Ref
	require.NoError(t, h.AddRoot(&a))
	require.NoError(t, h.AddRoot(&b))

	assert.Equal(t, 2, h.NumRoots())
}

func TestAddRootRejectsPastCapacity(t *testing.T) {
	h, err := New(Config{Size: 1000, MaxRoots: 2})
	require.NoError(t, err)

	var a, b, c Ref
	require.NoError(t, h.AddRoot(&a))
	require.NoError(t, h.AddRoot(&b))

	err = h.AddRoot(&c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyRoots))
}

func TestSaveAndRestoreRootsUnwindsScope(t *testing.T) {
	h, err := Init(1000)
	require.NoError(t, err)

	var outer Ref
	require.NoError(t, h.AddRoot(&outer))

	rp := h.SaveRoots()

	var inner1, inner2 Ref
	require.NoError(t, h.AddRoot(&inner1))
	require.NoError(t, h.AddRoot(&inner2))
	assert.Equal(t, 3, h.NumRoots())

	h.RestoreRoots(rp)
	assert.Equal(t, 1, h.NumRoots())
}

func TestRestoreRootsToZeroClearsAll(t *testing.T) {
	h, err := Init(1000)
	require.NoError(t, err)

	var a, b Ref
	require.NoError(t, h.AddRoot(&a))
	require.NoError(t, h.AddRoot(&b))

	h.RestoreRoots(0)
	assert.Equal(t, 0, h.NumRoots())
}

func TestDefaultMaxRootsMatchesReference(t *testing.T) {
	h, err := Init(1000)
	require.NoError(t, err)

	var last Ref
	for i := 0; i < DefaultMaxRoots; i++ {
		var r Ref
		require.NoError(t, h.AddRoot(&r))
		last = r
	}
	_ = last

	var overflow Ref
	err = h.AddRoot(&overflow)
	assert.True(t, errors.Is(err, ErrTooManyRoots))
}
