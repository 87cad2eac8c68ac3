// SPDX-License-Identifier: MIT
// Package cmatrix provides universal operations on CDense matrices,
// including element-wise addition, matrix multiplication, conjugate
// transpose, scalar scaling, matrix-vector products and diagonal shifts.
// All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the module.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels must use central validators and return plain sentinels or
//     wrapped via cmatrixErrorf at the facade.

package cmatrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opScale         = "Scale"
	opMul           = "Mul"
	opConjTranspose = "ConjTranspose"
	opMatVec        = "MatVec"
	opShiftDiagonal = "ShiftDiagonal"
	opEigen         = "EigenHermitian"
)

// cmatrixErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for
// uniform reporting across kernels. Use only when err != nil to avoid
// creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func cmatrixErrorf(tag string, err error) error {
	// Single formatting point: "<tag>: <underlying>", still matches errors.Is/As.
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns the element-wise sum a + b.
//
// Implementation:
//   - Stage 1: Validate both operands non-nil and same shape.
//   - Stage 2: Single flat-slice loop over the backing storage.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism: fixed flat index order.
// Complexity: O(r*c) time, O(r*c) space for the result.
func Add(a, b *CDense) (*CDense, error) {
	// Composite validation: nil → shape.
	if err := ValidateNotNil(a); err != nil {
		return nil, cmatrixErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, cmatrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, cmatrixErrorf(opAdd, err)
	}
	// Allocate result and accumulate in one flat pass.
	out, err := NewCDense(a.r, a.c)
	if err != nil {
		return nil, cmatrixErrorf(opAdd, err)
	}
	var k int
	for k = 0; k < len(a.data); k++ {
		out.data[k] = a.data[k] + b.data[k]
	}

	return out, nil
}

// Scale returns alpha * m for a complex scalar alpha.
//
// Errors: ErrNilMatrix.
// Determinism: fixed flat index order.
// Complexity: O(r*c).
func Scale(m *CDense, alpha complex128) (*CDense, error) {
	// Validate the single operand.
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opScale, err)
	}
	// Allocate result and scale in one flat pass.
	out, err := NewCDense(m.r, m.c)
	if err != nil {
		return nil, cmatrixErrorf(opScale, err)
	}
	var k int
	for k = 0; k < len(m.data); k++ {
		out.data[k] = alpha * m.data[k]
	}

	return out, nil
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: Validate operands non-nil and a.Cols == b.Rows.
//   - Stage 2: Classic i→k→j loop order over flat storage (cache-friendly
//     row-major accumulation).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: fixed i→k→j order; no data-dependent branches.
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b *CDense) (*CDense, error) {
	// Composite validation: nil → inner-dimension compatibility.
	if err := ValidateNotNil(a); err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, cmatrixErrorf(opMul, ErrDimensionMismatch)
	}
	// Allocate result and accumulate.
	out, err := NewCDense(a.r, b.c)
	if err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}
	var (
		i, k, j int
		aik     complex128
	)
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k] // hoist the shared factor
			if aik == 0 {
				continue // skip zero rows of work; result order unaffected
			}
			for j = 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// ConjTranspose returns the conjugate transpose m^H (entries conjugated,
// indices swapped). A Hermitian matrix satisfies m == m^H within tolerance.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ConjTranspose(m *CDense) (*CDense, error) {
	// Validate the single operand.
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opConjTranspose, err)
	}
	// Allocate the transposed shape and fill with conjugates.
	out, err := NewCDense(m.c, m.r)
	if err != nil {
		return nil, cmatrixErrorf(opConjTranspose, err)
	}
	var i, j int
	var v complex128
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = m.data[i*m.c+j]
			out.data[j*m.r+i] = complex(real(v), -imag(v))
		}
	}

	return out, nil
}

// MatVec computes the matrix-vector product y = m·x.
//
// Implementation:
//   - Stage 1: Validate m non-nil and len(x) == m.Cols.
//   - Stage 2: Row-major accumulation, fixed i→j order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(r) space.
func MatVec(m *CDense, x []complex128) ([]complex128, error) {
	// Composite validation: nil matrix → vector length.
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, cmatrixErrorf(opMatVec, err)
	}
	// Accumulate row by row.
	y := make([]complex128, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			y[i] += m.data[i*m.c+j] * x[j]
		}
	}

	return y, nil
}

// ShiftDiagonal returns m + alpha·I for a real shift alpha.
// This is the "reconstructor matrix" of the eigenvector method: shifting
// the spectrum of a Hermitian matrix by alpha leaves its eigenvectors
// unchanged while moving every eigenvalue to λ + alpha.
//
// Implementation:
//   - Stage 1: Validate m non-nil and square.
//   - Stage 2: Clone m, then add alpha on the diagonal in a single loop.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²) clone + O(n) diagonal writes.
func ShiftDiagonal(m *CDense, alpha float64) (*CDense, error) {
	// Composite validation: nil → square.
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opShiftDiagonal, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, cmatrixErrorf(opShiftDiagonal, err)
	}
	// Clone, then shift the diagonal deterministically.
	out := m.Clone()
	var i int
	for i = 0; i < m.r; i++ {
		out.data[i*m.r+i] += complex(alpha, 0)
	}

	return out, nil
}
