package cmatrix_test

import (
	"testing"

	"github.com/katalvlaran/phasesync/cmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCDense_InvalidDimensions verifies that non-positive shapes are
// rejected with ErrInvalidDimensions before any allocation is retained.
func TestNewCDense_InvalidDimensions(t *testing.T) {
	_, err := cmatrix.NewCDense(0, 3)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions, "zero rows must error")

	_, err = cmatrix.NewCDense(3, -1)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions, "negative cols must error")
}

// TestCDense_AtSetBounds verifies that public indexers return ErrOutOfRange
// instead of panicking on invalid indices.
func TestCDense_AtSetBounds(t *testing.T) {
	m, err := cmatrix.NewCDense(2, 3)
	require.NoError(t, err, "2x3 allocation should succeed")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange, "row past end must error")
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange, "negative column must error")
	err = m.Set(-1, 0, 1)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange, "negative row must error")
	err = m.Set(0, 3, 1)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange, "column past end must error")
}

// TestCDense_SetAtRoundTrip verifies basic storage semantics.
func TestCDense_SetAtRoundTrip(t *testing.T) {
	m, err := cmatrix.NewCDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 3+4i))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3+4i, v, "Set then At must return the stored value")

	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), v, "untouched cells stay zero")
}

// TestCDense_CloneIndependence verifies that Clone is a deep copy.
func TestCDense_CloneIndependence(t *testing.T) {
	m, err := cmatrix.NewCDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1+1i))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1+1i, v, "mutating the clone must not touch the original")
}

// TestCDense_RowCol verifies row/column extraction and its bounds checks.
func TestCDense_RowCol(t *testing.T) {
	m, err := cmatrix.FromRows([][]complex128{
		{1, 2i},
		{3, 4},
	})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []complex128{3, 4}, row, "row copy mismatch")

	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []complex128{2i, 4}, col, "column copy mismatch")

	_, err = m.Row(2)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	_, err = m.Col(-1)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange)
}
