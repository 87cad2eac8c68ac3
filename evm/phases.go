// Package evm — phase-domain helpers.
//
// Purpose:
//   - Convert complex estimator output into real phase values.
//   - Resolve the global-phase ambiguity of eigenvector-based recovery.
//
// Both helpers are stateless pure functions over caller-owned slices.
package evm

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/phasesync/cmatrix"
)

// radToDeg converts radians to degrees.
const radToDeg = 180.0 / math.Pi

// Phases returns the element-wise argument (angle) of z, in radians by
// default or degrees when deg is true. Angles lie in (−π, π] (or
// (−180°, 180°]). Pure numeric transform applied independently per
// element; no error conditions. A nil input yields an empty slice.
// Complexity: O(N).
func Phases(z []complex128, deg bool) []float64 {
	out := make([]float64, len(z))
	var i int
	for i = 0; i < len(z); i++ {
		out[i] = cmplx.Phase(z[i])
		if deg {
			out[i] *= radToDeg
		}
	}

	return out
}

// AnchorTo rotates z by the unit scalar conj(z[k])/|z[k]|, so that entry k
// has exactly zero phase. Eigenvectors are defined up to a global complex
// rotation; anchoring one entry makes recovered phases comparable to
// ground truth measured relative to that same point.
//
// Stage 1 (Validate): 0 ≤ k < len(z), |z[k]| > 0.
// Stage 2 (Execute): multiply every entry by the anchoring scalar.
//
// Errors:
//   - cmatrix.ErrOutOfRange       — k outside [0, len(z)).
//   - ErrEstimatorDegenerate      — |z[k]| == 0 (no phase to anchor on).
//
// Complexity: O(N) time and memory.
func AnchorTo(z []complex128, k int) ([]complex128, error) {
	// Validate the anchor index.
	if k < 0 || k >= len(z) {
		return nil, cmatrix.ErrOutOfRange
	}
	// Validate the anchor modulus: a zero entry carries no phase.
	mod := cmplx.Abs(z[k])
	if mod == 0 {
		return nil, ErrEstimatorDegenerate
	}
	// Rotate all entries by the conjugate unit phase of the anchor.
	rot := cmplx.Conj(z[k]) / complex(mod, 0)
	out := make([]complex128, len(z))
	var i int
	for i = 0; i < len(z); i++ {
		out[i] = z[i] * rot
	}

	return out, nil
}
