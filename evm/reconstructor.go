package evm

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/phasesync/cmatrix"
)

// Reconstructor — Eigenvector-Method phase reconstruction
//
// Description:
//
//	A Reconstructor owns one validated Hermitian measurement matrix C and
//	its eigendecomposition, computed exactly once at construction. Every
//	accessor is a pure read over that cached, immutable state, so a
//	constructed instance can never fail on ordinary numeric input.
//
// Algorithm Outline:
//  1. Gate: C must satisfy C ≈ conj(C)ᵗ within Eps, else construction
//     fails with cmatrix.ErrNotHermitian. Never silently corrected.
//  2. Decompose: eigenvalues λ_0 ≤ … ≤ λ_{N-1} (real, ascending) with
//     matching unit-norm eigenvectors v_0 … v_{N-1}.
//  3. Lead: pick v_k for the k maximizing |λ_k|; ties resolve to the
//     lowest index (deterministic).
//  4. Project: estimator[i] = v[i] / |v[i]| — componentwise projection
//     onto the unit circle, preserving each component's phase.
//  5. Fallback: if some |v[i]| == 0, draw a complex standard-normal
//     vector e and use s = Σ conj(e_i)·v_i, output the constant vector
//     s/|s|. Redraw while s == 0, at most MaxRedraws times, then fail
//     with ErrEstimatorDegenerate.
//
// The recovered phases carry one unresolved global rotation (eigenvectors
// are defined up to a complex unit scalar); see AnchorTo.
//
// Complexity:
//
//	Construction O(N³) time, O(N²) memory; accessors O(N) or O(N²) copies.
//
// Errors:
//   - ErrBadOptions                — nonsensical Options.
//   - cmatrix.ErrNotHermitian      — gate violation at construction.
//   - cmatrix.ErrEigenFailed       — eigensolver non-convergence (propagated).
//   - cmatrix.ErrDimensionMismatch — estimator input of wrong length.
//   - ErrEstimatorDegenerate       — fallback redraw cap exhausted.
type Reconstructor struct {
	c    *cmatrix.CDense // validated Hermitian input (private clone)
	eigs []float64       // ascending real eigenvalues, length n
	vecs *cmatrix.CDense // column k = eigenvector for eigs[k]
	n    int             // space dimension N
	opts Options         // effective configuration
	rng  *rand.Rand      // fallback stream, owned by this instance
}

// New constructs a Reconstructor for the Hermitian measurement matrix c.
//
// Stage 1 (Validate): resolve options (nil ⇒ DefaultOptions) and reject
// nonsensical values with ErrBadOptions.
// Stage 2 (Gate + Decompose): cmatrix.EigenHermitian validates nil/square/
// Hermitian-within-Eps and computes the one-time eigendecomposition.
// Stage 3 (Finalize): clone c so later caller mutations cannot reach the
// cached state; seed the fallback RNG per the deterministic seed policy.
//
// Complexity: O(N³) time, O(N²) memory.
func New(c *cmatrix.CDense, opts *Options) (*Reconstructor, error) {
	// Resolve options: nil means defaults, values are validated either way.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	// Hard precondition + the single eigendecomposition of the lifecycle.
	eigs, vecs, err := cmatrix.EigenHermitian(c, o.Eps)
	if err != nil {
		return nil, err // sentinel preserved for errors.Is at the caller
	}

	// Freeze all derived state; the instance is immutable from here on.
	return &Reconstructor{
		c:    c.Clone(),
		eigs: eigs,
		vecs: vecs,
		n:    len(eigs),
		opts: o,
		rng:  rngFromSeed(o.Seed),
	}, nil
}

// Dim returns the space dimension N (the matrix size).
// Complexity: O(1).
func (r *Reconstructor) Dim() int {
	return r.n
}

// Eigenvalues returns a copy of the ascending real eigenvalues of C.
// Complexity: O(N).
func (r *Reconstructor) Eigenvalues() []float64 {
	out := make([]float64, r.n)
	copy(out, r.eigs)

	return out
}

// Eigenvector returns a copy of the eigenvector paired with Eigenvalues()[k].
// Errors: cmatrix.ErrOutOfRange for k outside [0, N).
// Complexity: O(N).
func (r *Reconstructor) Eigenvector(k int) ([]complex128, error) {
	// Col performs the bounds check and copies the column.
	return r.vecs.Col(k)
}

// CMatrix returns a clone of the validated Hermitian input, for inspection.
// Complexity: O(N²).
func (r *Reconstructor) CMatrix() *cmatrix.CDense {
	return r.c.Clone()
}

// Alpha returns max(0, λ_min): the non-negative part of the smallest
// eigenvalue. Used as the diagonal shift of ReconstructorMatrix, it treats
// a negative smallest eigenvalue as noise floor rather than letting it bias
// the reconstruction; the operator-norm alternative is deliberately not
// used, since the noise is already embedded in the measurements.
// Complexity: O(1).
func (r *Reconstructor) Alpha() float64 {
	// Eigenvalues are ascending, so eigs[0] is the minimum.
	if lambda := r.eigs[0]; lambda > 0 {
		return lambda
	}

	return 0
}

// leadingIndex returns the index of the eigenvalue with the largest
// absolute value. Ties resolve to the lowest index: the scan keeps the
// first maximum it sees in ascending-eigenvalue order.
// Complexity: O(N).
func (r *Reconstructor) leadingIndex() int {
	var (
		best    = 0
		bestAbs = math.Abs(r.eigs[0])
		k       int
		a       float64
	)
	for k = 1; k < r.n; k++ {
		a = math.Abs(r.eigs[k])
		if a > bestAbs { // strict: equal magnitudes keep the earlier index
			best, bestAbs = k, a
		}
	}

	return best
}

// LeadingEigenvector returns the eigenvector paired with the eigenvalue of
// largest absolute value (not necessarily the algebraically largest).
// Exact-magnitude ties resolve deterministically to the lowest index.
// Repeated calls return equal values: the decomposition is cached and
// never recomputed.
// Complexity: O(N) copy.
func (r *Reconstructor) LeadingEigenvector() []complex128 {
	// Col cannot fail for an index produced by leadingIndex.
	v, _ := r.vecs.Col(r.leadingIndex())

	return v
}

// ReconstructorMatrix returns C + Alpha()·I, the identity-shifted Hermitian
// matrix of the published eigenvector method. Provided for inspection; the
// main reconstruction path does not require it (shifting changes no
// eigenvectors).
// Complexity: O(N²).
func (r *Reconstructor) ReconstructorMatrix() (*cmatrix.CDense, error) {
	return cmatrix.ShiftDiagonal(r.c, r.Alpha())
}

// SpectralGap returns |λ_lead| − max_{k≠lead} |λ_k|: the magnitude margin
// between the leading eigenvalue and the rest of the spectrum. A wide gap
// indicates a clean rank-one fit (low-noise measurements); a gap near zero
// means the leading direction is barely distinguished.
// For N == 1 the gap is |λ_0|.
// Complexity: O(N).
func (r *Reconstructor) SpectralGap() float64 {
	lead := r.leadingIndex()
	if r.n == 1 {
		return math.Abs(r.eigs[0])
	}
	// Second-largest magnitude over all non-leading indices.
	var (
		second = 0.0
		k      int
		a      float64
	)
	for k = 0; k < r.n; k++ {
		if k == lead {
			continue
		}
		if a = math.Abs(r.eigs[k]); a > second {
			second = a
		}
	}

	return math.Abs(r.eigs[lead]) - second
}

// EigenvectorEstimator projects v componentwise onto the unit circle:
// estimator[i] = v[i] / |v[i]|, preserving each component's phase while
// discarding magnitude.
//
// Degenerate path: if any component has exactly zero modulus, plain
// division is undefined at that index. The fallback draws a random complex
// vector e (independent standard-normal real and imaginary parts), forms
// the inner product s = Σ conj(e_i)·v_i and, when s ≠ 0, returns the
// constant vector s/|s| broadcast to length N. A zero draw is redrawn, at
// most MaxRedraws times (success has probability 1 in exact arithmetic;
// the cap guards the measure-zero failure mode).
//
// Stage 1 (Validate): len(v) must equal Dim().
// Stage 2 (Scan): detect zero-modulus components.
// Stage 3 (Project or Fallback): normal division, or the bounded redraw.
//
// Errors: cmatrix.ErrDimensionMismatch, ErrEstimatorDegenerate.
// Guarantee: every entry of a successful result has modulus 1.
// Complexity: O(N) per call (O(MaxRedraws·N) worst-case fallback).
func (r *Reconstructor) EigenvectorEstimator(v []complex128) ([]complex128, error) {
	// Validate the input length against the space dimension.
	if err := cmatrix.ValidateVecLen(v, r.n); err != nil {
		return nil, err
	}

	// Scan for exactly-zero components; |v[i]| is reused on the normal path.
	var (
		mods       = make([]float64, r.n)
		degenerate = false
		i          int
	)
	for i = 0; i < r.n; i++ {
		mods[i] = cmplx.Abs(v[i])
		if mods[i] == 0 {
			degenerate = true
		}
	}

	out := make([]complex128, r.n)
	if !degenerate {
		// Normal path: componentwise projection onto the unit circle.
		for i = 0; i < r.n; i++ {
			out[i] = v[i] / complex(mods[i], 0)
		}

		return out, nil
	}

	// Fallback: bounded redraw of a random projection direction.
	var (
		e       = make([]complex128, r.n)
		s       complex128
		attempt int
	)
	for attempt = 0; attempt < r.opts.MaxRedraws; attempt++ {
		drawComplexNormal(e, r.rng)
		// Complex inner product ⟨e, v⟩ = Σ conj(e_i)·v_i.
		s = 0
		for i = 0; i < r.n; i++ {
			s += cmplx.Conj(e[i]) * v[i]
		}
		if s == 0 {
			continue // exact-zero draw; redraw
		}
		// Broadcast the unit-modulus scalar to the output shape.
		sc := s / complex(cmplx.Abs(s), 0)
		for i = 0; i < r.n; i++ {
			out[i] = sc
		}

		return out, nil
	}

	return nil, ErrEstimatorDegenerate
}

// ReconstructComplexPhases is the primary entry point for consumers:
// the eigenvector estimator of the leading eigenvector. The result is a
// length-N complex vector of unit-modulus entries, directly consumable by
// Phases.
// Complexity: O(N) after the cached decomposition.
func (r *Reconstructor) ReconstructComplexPhases() ([]complex128, error) {
	return r.EigenvectorEstimator(r.LeadingEigenvector())
}
