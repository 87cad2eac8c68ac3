// SPDX-License-Identifier: MIT
// Package: cmatrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/builders minimal by delegating shape/nil/Hermitian checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - The Hermitian check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - Use ValidateHermitian before spectral methods to fail fast.
//  - Use ValidateVecLen for any MatVec-like operations to avoid ad hoc length code.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package cmatrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: *CDense value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m *CDense) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Inputs: *CDense value.
// Errors: ErrNonSquare if not square.
// Complexity: O(1).
// AI-Hints: Use before spectral or factorization methods.
func ValidateSquare(m *CDense) error {
	// Check the square condition explicitly.
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two *CDense values.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/elementwise kernels and compatibility guards.
func ValidateSameShape(a, b *CDense) error {
	// Execute comparisons
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []complex128, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch) // vector length must match the matrix dimension
	}

	return nil
}

// ValidateFinite – Ensures every entry of m has finite real and imaginary
// parts (no NaN, no ±Inf).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Errors: ErrNaNInf on the first offending entry.
// Complexity: O(r*c). Space: O(1).
func ValidateFinite(m *CDense) error {
	// Scan the flat storage in a single deterministic pass.
	var k int
	var v complex128
	for k = 0; k < len(m.data); k++ {
		v = m.data[k]
		if isNonFinite(real(v)) || isNonFinite(imag(v)) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateHermitian – Ensures m satisfies C ≈ conj(C)ᵗ within eps.
//
// Implementation:
//   - Stage 1: NotNil → Square (composite, fixed order).
//   - Stage 2: scan the upper triangle incl. diagonal; for each (i,j) require
//     |Re(m[i,j]) - Re(m[j,i])| ≤ eps and |Im(m[i,j]) + Im(m[j,i])| ≤ eps.
//     On the diagonal the same inequality bounds 2·|Im(m[i,i])| by eps, so
//     diagonal entries must be (near-)real.
//
// Inputs:
//   - m: candidate Hermitian matrix.
//   - eps: non-negative tolerance (typ. 1e-9 for float64 data).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian.
//
// Complexity: O(n²) time, O(1) space.
// AI-Hints: This is the hard construction-time precondition of evm.New;
// violations are never silently corrected.
func ValidateHermitian(m *CDense, eps float64) error {
	// Composite gate: nil → square.
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	// Upper-triangle scan (incl. diagonal): single source of the tolerance rule.
	var (
		n    = m.r
		i, j int
		a, b complex128
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			a = m.data[i*n+j] // element (i,j)
			b = m.data[j*n+i] // element (j,i)
			if math.Abs(real(a)-real(b)) > eps || math.Abs(imag(a)+imag(b)) > eps {
				return validatorErrorf("ValidateHermitian", ErrNotHermitian) // fail-fast on the first violation
			}
		}
	}

	return nil
}
