// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// cmatrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers
// (if any).

package cmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmatrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> structural violations
// (Hermitian-ness) -> numerical failures (ErrEigenFailed).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("cmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *CDense (receiver or argument) was
	// used.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrNotHermitian signals that a matrix expected to be Hermitian violated
	// C ≈ conj(C)ᵗ within the configured numeric tolerance (eps).
	ErrNotHermitian = errors.New("cmatrix: matrix is not Hermitian within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (ingestion, builders).
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")

	// ErrRagged indicates that row-slice input has rows of unequal length.
	ErrRagged = errors.New("cmatrix: ragged row input")

	// ErrEigenFailed indicates that the underlying symmetric eigensolver
	// failed to converge. Propagated unchanged; never retried.
	ErrEigenFailed = errors.New("cmatrix: eigen decomposition failed")
)
