// Package cmatrix offers complex dense matrices and the kernels needed by
// eigenvector-based phase reconstruction.
//
// The cmatrix package provides:
//
//   - CDense, a row-major complex128 matrix with bounds-checked access.
//   - Builders (FromRelativePhases, FromRows, NewIdentity) for strict
//     ingestion of measurement data into Hermitian form.
//   - Central validators (Hermitian-ness, shape, finiteness) returning
//     package sentinels matched via errors.Is.
//   - Linear-algebra kernels: Add, Scale, Mul, ConjTranspose, MatVec and
//     ShiftDiagonal, all fail-fast validated and deterministic.
//   - EigenHermitian, a Hermitian eigendecomposition delegated to gonum's
//     symmetric eigensolver through a real 2N×2N embedding.
//
// Dense complex storage is best for the small-to-medium N (tens to a few
// thousand observation points) this library targets, where O(N²) memory
// and one O(N³) factorization are acceptable.
//
// See the examples in this package and evm for usage patterns.
package cmatrix
