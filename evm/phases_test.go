package evm_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/phasesync/cmatrix"
	"github.com/katalvlaran/phasesync/evm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPhases_Radians verifies the element-wise argument in radians.
func TestPhases_Radians(t *testing.T) {
	z := []complex128{1, 1i, -1, -1i}
	got := evm.Phases(z, false)
	require.Len(t, got, 4)

	assert.InDelta(t, 0.0, got[0], 1e-12)
	assert.InDelta(t, math.Pi/2, got[1], 1e-12)
	assert.InDelta(t, math.Pi, got[2], 1e-12)
	assert.InDelta(t, -math.Pi/2, got[3], 1e-12)
}

// TestPhases_Degrees verifies the degree conversion path.
func TestPhases_Degrees(t *testing.T) {
	z := []complex128{1, 1i, -1i}
	got := evm.Phases(z, true)

	assert.InDelta(t, 0.0, got[0], 1e-9)
	assert.InDelta(t, 90.0, got[1], 1e-9)
	assert.InDelta(t, -90.0, got[2], 1e-9)
}

// TestPhases_ShapePreserved verifies per-element independence and that an
// empty input yields an empty (non-nil) result.
func TestPhases_ShapePreserved(t *testing.T) {
	assert.Len(t, evm.Phases(nil, false), 0)
	assert.Len(t, evm.Phases(make([]complex128, 7), true), 7)
}

// TestAnchorTo verifies the global-phase rotation: the anchor entry lands
// at zero phase, every other entry keeps its phase difference to it, and
// moduli are untouched.
func TestAnchorTo(t *testing.T) {
	z := []complex128{cmplx.Exp(0.4i), 2 * cmplx.Exp(1.1i), cmplx.Exp(-2.0i)}
	out, err := evm.AnchorTo(z, 0)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, cmplx.Phase(out[0]), 1e-12, "anchor entry has zero phase")
	assert.InDelta(t, 1.1-0.4, cmplx.Phase(out[1]), 1e-12, "phase differences preserved")
	assert.InDelta(t, -2.0-0.4, cmplx.Phase(out[2]), 1e-12)
	assert.InDelta(t, 2.0, cmplx.Abs(out[1]), 1e-12, "moduli untouched")
}

// TestAnchorTo_Gates verifies index and zero-modulus error conditions.
func TestAnchorTo_Gates(t *testing.T) {
	z := []complex128{1, 0}
	_, err := evm.AnchorTo(z, 5)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	_, err = evm.AnchorTo(z, -1)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	_, err = evm.AnchorTo(z, 1)
	assert.ErrorIs(t, err, evm.ErrEstimatorDegenerate, "zero-modulus anchor carries no phase")
}
