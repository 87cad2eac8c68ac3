// SPDX-License-Identifier: MIT
// Package cmatrix — builders for strict ingestion of measurement data.
//
// Purpose:
//   - Turn caller-owned raw data (relative-phase matrices, row slices) into
//     validated CDense values in a single deterministic pass.
//   - Enforce the numeric policy at the boundary: finite values only, no
//     ragged rows, explicit shape errors before any allocation is retained.
//
// Determinism & Policy:
//   - Fixed i→j fill order; no data-dependent branching beyond validation.
//   - Builders do NOT validate anti-symmetry of relative-phase input: that
//     is the upstream measurement convention, and noise may violate it
//     slightly. Hermitian-ness of the derived matrix is checked downstream
//     by consumers (evm.New) where it is a hard precondition.
//
// AI-Hints:
//   - FromRelativePhases is the canonical entry: C[i][j] = exp(i·M[i][j]).
//   - Use NewIdentity for diagonal shifts and neutral elements.

package cmatrix

import "math/cmplx"

// FromRelativePhases builds the Hermitian measurement matrix
// C[i][j] = exp(i·M[i][j]) from a real relative-phase matrix M (radians).
//
// Implementation:
//   - Stage 1: Validate outer length > 0, rows non-ragged and square, all
//     entries finite.
//   - Stage 2: Allocate N×N CDense and fill C[i][j] = exp(i·M[i][j]).
//
// Inputs:
//   - phases: N×N real matrix; phases[i][j] is the measured relative phase
//     advance from point i to point j, in radians.
//
// Returns:
//   - *CDense: the complex measurement matrix C.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrRagged (unequal row lengths),
//     ErrNonSquare (rows ≠ cols), ErrNaNInf (non-finite entry).
//
// Determinism:
//   - Fixed i→j order; output depends only on the input values.
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// Notes:
//   - If M is exactly anti-symmetric with zero diagonal, C is exactly
//     Hermitian with unit diagonal. Noisy M yields approximately Hermitian
//     C; the tolerance decision belongs to the consumer, not the builder.
func FromRelativePhases(phases [][]float64) (*CDense, error) {
	// Validate the outer dimension before touching rows.
	n := len(phases)
	if n == 0 {
		return nil, validatorErrorf("FromRelativePhases", ErrInvalidDimensions)
	}
	// Validate row lengths: non-ragged and square in one pass.
	var i, j int
	for i = 0; i < n; i++ {
		if len(phases[i]) != len(phases[0]) {
			return nil, validatorErrorf("FromRelativePhases", ErrRagged)
		}
	}
	if len(phases[0]) != n {
		return nil, validatorErrorf("FromRelativePhases", ErrNonSquare)
	}
	// Validate finiteness before allocating the output.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if isNonFinite(phases[i][j]) {
				return nil, validatorErrorf("FromRelativePhases", ErrNaNInf)
			}
		}
	}
	// Allocate and fill C[i][j] = exp(i·M[i][j]) in fixed order.
	out, err := NewCDense(n, n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = cmplx.Exp(complex(0, phases[i][j]))
		}
	}

	return out, nil
}

// FromRows builds a CDense from a prebuilt complex row-slice matrix.
//
// Implementation:
//   - Stage 1: Validate outer length > 0 and non-ragged rows.
//   - Stage 2: Copy rows into flat row-major storage.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrRagged (unequal row lengths).
//
// Complexity: O(r*c) time and memory.
//
// Notes:
//   - Finiteness is NOT enforced here; use ValidateFinite when ingesting
//     untrusted data. Rectangular input is accepted (kernels that need a
//     square matrix validate it themselves).
func FromRows(rows [][]complex128) (*CDense, error) {
	// Validate outer dimension.
	r := len(rows)
	if r == 0 || len(rows[0]) == 0 {
		return nil, validatorErrorf("FromRows", ErrInvalidDimensions)
	}
	c := len(rows[0])
	// Validate non-ragged rows.
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, validatorErrorf("FromRows", ErrRagged)
		}
	}
	// Allocate and copy row by row.
	out, err := NewCDense(r, c)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		copy(out.data[i*c:(i+1)*c], rows[i])
	}

	return out, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for diagonal shifts (ShiftDiagonal).
func NewIdentity(n int) (*CDense, error) {
	// Allocate an n×n zero matrix via the constructor.
	ident, err := NewCDense(n, n) // O(1) alloc + O(n²) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	var i int
	for i = 0; i < n; i++ { // fixed i order guarantees reproducibility
		ident.data[i*n+i] = 1 // direct write; shape already validated
	}

	// Return the identity matrix.
	return ident, nil
}
