package cmatrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/phasesync/cmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampPhases is the canonical 4×4 anti-symmetric relative-phase matrix
// M[i][j] = j - i (radians) used across the package tests.
func rampPhases() [][]float64 {
	return [][]float64{
		{0, 1, 2, 3},
		{-1, 0, 1, 2},
		{-2, -1, 0, 1},
		{-3, -2, -1, 0},
	}
}

// TestFromRelativePhases_Hermitian verifies that an exactly anti-symmetric
// zero-diagonal M yields an exactly Hermitian C with unit diagonal.
func TestFromRelativePhases_Hermitian(t *testing.T) {
	c, err := cmatrix.FromRelativePhases(rampPhases())
	require.NoError(t, err, "anti-symmetric ramp must build")
	require.Equal(t, 4, c.Rows())
	require.Equal(t, 4, c.Cols())

	assert.NoError(t, cmatrix.ValidateHermitian(c, 1e-12), "exp(i·M) of anti-symmetric M must be Hermitian")

	// Zero diagonal of M means C[k][k] = exp(0) = 1.
	var k int
	for k = 0; k < 4; k++ {
		v, err := c.At(k, k)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, real(v), 1e-12, "diagonal real part")
		assert.InDelta(t, 0.0, imag(v), 1e-12, "diagonal imaginary part")
	}
}

// TestFromRelativePhases_UnitModulus verifies that every entry of C lies on
// the unit circle with the phase prescribed by M.
func TestFromRelativePhases_UnitModulus(t *testing.T) {
	m := rampPhases()
	c, err := cmatrix.FromRelativePhases(m)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			v, err := c.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, cmplx.Abs(v), 1e-12, "entries of exp(i·M) are unit modulus")
			if i != j {
				assert.InDelta(t, m[i][j], cmplx.Phase(v), 1e-12, "phase must equal M[i][j]")
			}
		}
	}
}

// TestFromRelativePhases_InputGates verifies the ingestion error taxonomy.
func TestFromRelativePhases_InputGates(t *testing.T) {
	_, err := cmatrix.FromRelativePhases(nil)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions, "empty input must error")

	_, err = cmatrix.FromRelativePhases([][]float64{{0, 1}, {0}})
	assert.ErrorIs(t, err, cmatrix.ErrRagged, "ragged rows must error")

	_, err = cmatrix.FromRelativePhases([][]float64{{0, 1, 2}, {-1, 0, 1}})
	assert.ErrorIs(t, err, cmatrix.ErrNonSquare, "rectangular input must error")

	_, err = cmatrix.FromRelativePhases([][]float64{{0, math.NaN()}, {0, 0}})
	assert.ErrorIs(t, err, cmatrix.ErrNaNInf, "NaN entry must error")
}

// TestFromRows_Gates verifies strict ingestion of prebuilt complex rows.
func TestFromRows_Gates(t *testing.T) {
	_, err := cmatrix.FromRows(nil)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions)

	_, err = cmatrix.FromRows([][]complex128{{1, 2}, {3}})
	assert.ErrorIs(t, err, cmatrix.ErrRagged)

	m, err := cmatrix.FromRows([][]complex128{{1, 2i}, {3, 4}})
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2i, v)
}

// TestNewIdentity verifies the neutral element shape and contents.
func TestNewIdentity(t *testing.T) {
	ident, err := cmatrix.NewIdentity(3)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			v, err := ident.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, complex128(1), v)
			} else {
				assert.Equal(t, complex128(0), v)
			}
		}
	}

	_, err = cmatrix.NewIdentity(0)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions)
}
