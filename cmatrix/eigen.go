// SPDX-License-Identifier: MIT
// Package cmatrix — Hermitian eigendecomposition.
//
// Purpose:
//   - Provide the single spectral primitive the reconstructor depends on:
//     eigenvalues and eigenvectors of a Hermitian complex matrix.
//   - Delegate the numerically load-bearing part (dense symmetric
//     eigendecomposition) to gonum's mature, well-tested solver instead of
//     hand-rolling an iteration.
//
// Method (real symmetric embedding):
//   - Write C = A + iB with A = Re(C), B = Im(C). Hermitian C means A is
//     symmetric and B is anti-symmetric, so the real 2N×2N block matrix
//
//     S = | A  -B |
//         | B   A |
//
//     is symmetric. If C·(x+iy) = λ·(x+iy) then S·(x;y) = λ·(x;y), and the
//     λ-eigenspace of S is exactly {(Re(αv); Im(αv)) : α ∈ ℂ} — every
//     eigenvalue of C appears in S with doubled multiplicity, and every
//     eigenvector (x;y) of S maps back to a complex eigenvector x+iy of C
//     with the same Euclidean norm.
//   - gonum's EigenSym returns the 2N eigenvalues in ascending order, so
//     the pairs are adjacent; taking every second eigenpair yields the N
//     eigenvalues of C (still ascending) and one unit-norm eigenvector per
//     pair.
//
// Degenerate spectra:
//   - Within a degenerate eigenspace of C (multiplicity m ⇒ 2m adjacent
//     values of S) the naive "every second column" choice can return
//     complex-collinear vectors: a real-orthogonal pair (x; y), (-y; x)
//     maps to v and i·v. The extraction therefore clusters (numerically)
//     equal embedded eigenvalues and complex-orthonormalizes the mapped
//     vectors within each cluster via modified Gram-Schmidt, discarding
//     near-zero residuals, so the returned columns always form a unitary
//     eigenbasis and V·diag(λ)·V^H reconstructs C.

package cmatrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// spectralClusterTol is the relative tolerance used to decide that two
// adjacent embedded eigenvalues belong to the same eigenspace of C. The
// exact duplicates produced by the embedding are split only by solver
// round-off (≪ 1e-12 relative), so the threshold is generous for pairing
// while far below any physically distinct eigenvalue gap worth resolving.
const spectralClusterTol = 1e-9

// gsResidualTol is the norm threshold below which a Gram-Schmidt residual
// is treated as linearly dependent and discarded. Mapped columns have unit
// norm, and dependent directions show residuals at round-off level, so the
// gap around this threshold is many orders of magnitude wide.
const gsResidualTol = 1e-6

// EigenHermitian computes all eigenvalues and eigenvectors of a Hermitian
// matrix m.
//
// Implementation:
//   - Stage 1: Validate m non-nil, square, Hermitian within eps.
//   - Stage 2: Embed C = A + iB into the real symmetric 2N×2N matrix
//     [[A, -B], [B, A]] and factorize with gonum's EigenSym.
//   - Stage 3: Cluster the (pairwise-duplicated, ascending) embedded
//     eigenvalues, map each real eigenvector (x; y) in a cluster to the
//     complex vector x + iy, and keep a complex-orthonormal basis per
//     cluster (modified Gram-Schmidt, near-zero residuals discarded).
//
// Inputs:
//   - m: Hermitian *CDense (within eps); n := m.Rows().
//   - eps: Hermitian tolerance (typ. 1e-9 for float64 data).
//
// Returns:
//   - []float64: the n real eigenvalues of m, in ascending order.
//   - *CDense: n×n matrix whose column k is the unit-norm eigenvector for
//     eigenvalue k.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian (validation),
//     ErrEigenFailed (solver non-convergence; propagated, never retried).
//
// Determinism:
//   - The embedding fill order is fixed; gonum's solver is deterministic
//     for a given input.
//
// Complexity:
//   - Time O(n³) (dense symmetric eigendecomposition of size 2n),
//     Space O(n²).
//
// AI-Hints:
//   - Eigenvectors are defined up to a global complex phase; consumers that
//     need comparable phases should anchor one component (see evm.AnchorTo).
func EigenHermitian(m *CDense, eps float64) ([]float64, *CDense, error) {
	// Validate: notNil → square → Hermitian within eps.
	if err := ValidateHermitian(m, eps); err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}

	// Build the symmetric embedding S = [[A, -B], [B, A]].
	// SetSym writes both (i,j) and (j,i); the upper triangle determines S,
	// which also symmetrizes away any sub-eps Hermitian noise in m.
	var (
		n    = m.r
		sym  = mat.NewSymDense(2*n, nil)
		i, j int
		v    complex128
	)
	for i = 0; i < n; i++ {
		// Diagonal blocks: Re(C) at (i,j) and (n+i, n+j); Re is symmetric.
		for j = i; j < n; j++ {
			v = m.data[i*n+j]
			sym.SetSym(i, j, real(v))
			sym.SetSym(n+i, n+j, real(v))
		}
		// Off-diagonal block: S[i][n+j] = -Im(C[i][j]) for all (i,j).
		// Its mirror S[n+j][i] equals Im(C[j][i]) = -Im(C[i][j]) as required,
		// so a single SetSym per pair is consistent.
		for j = 0; j < n; j++ {
			sym.SetSym(i, n+j, -imag(m.data[i*n+j]))
		}
	}

	// Factorize; non-convergence surfaces as the package sentinel.
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, cmatrixErrorf(opEigen, ErrEigenFailed)
	}
	embedded := es.Values(nil) // 2n values, ascending, pairs adjacent
	var embeddedVecs mat.Dense
	es.VectorsTo(&embeddedVecs) // column k pairs with embedded[k]

	// Extract one complex eigenvector per duplicated pair, cluster by
	// cluster so degenerate eigenspaces come out complex-orthonormal.
	eigs := make([]float64, n)
	vecs, err := NewCDense(n, n)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	var (
		scale = 1.0 // relative scale for the clustering threshold
		next  = 0   // next output column to fill
		start int   // first embedded index of the current cluster
		stop  int   // one past the last embedded index of the cluster
	)
	if a := math.Abs(embedded[0]); a > scale {
		scale = a
	}
	if a := math.Abs(embedded[2*n-1]); a > scale {
		scale = a
	}
	clusterTol := spectralClusterTol * scale
	for start = 0; start < 2*n; start = stop {
		// Grow the cluster while adjacent embedded values are equal within tol.
		for stop = start + 1; stop < 2*n; stop++ {
			if embedded[stop]-embedded[start] > clusterTol {
				break
			}
		}
		// A cluster unions whole duplicated pairs: 2m embedded columns span
		// the realification of an m-dimensional complex eigenspace.
		half := (stop - start) / 2
		kept := 0
		var c, q, i int
		var dot complex128
		var nrm float64
		z := make([]complex128, n)
		for c = start; c < stop && kept < half; c++ {
			// Map the embedded column (x; y) to the complex candidate x + iy.
			for i = 0; i < n; i++ {
				z[i] = complex(embeddedVecs.At(i, c), embeddedVecs.At(n+i, c))
			}
			// Modified Gram-Schmidt against the vectors kept for this cluster.
			for q = next; q < next+kept; q++ {
				dot = 0
				for i = 0; i < n; i++ {
					dot += complex(real(vecs.data[i*n+q]), -imag(vecs.data[i*n+q])) * z[i]
				}
				for i = 0; i < n; i++ {
					z[i] -= dot * vecs.data[i*n+q]
				}
			}
			// Discard complex-dependent directions (v and i·v collapse here).
			nrm = 0
			for i = 0; i < n; i++ {
				nrm += real(z[i])*real(z[i]) + imag(z[i])*imag(z[i])
			}
			nrm = math.Sqrt(nrm)
			if nrm <= gsResidualTol {
				continue
			}
			// Keep the normalized residual as output column next+kept.
			for i = 0; i < n; i++ {
				vecs.data[i*n+(next+kept)] = z[i] / complex(nrm, 0)
			}
			eigs[next+kept] = embedded[start+2*kept]
			kept++
		}
		if kept != half {
			// The 2m columns must yield exactly m independent complex
			// directions; anything else is numerical breakdown.
			return nil, nil, cmatrixErrorf(opEigen, ErrEigenFailed)
		}
		next += half
	}
	if next != n {
		return nil, nil, cmatrixErrorf(opEigen, ErrEigenFailed)
	}

	return eigs, vecs, nil
}
