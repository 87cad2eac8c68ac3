// Package evm defines options and sentinel errors for the eigenvector-method
// reconstructor.
package evm

import "errors"

var (
	// ErrBadOptions indicates a nonsensical Options value (negative Eps or
	// non-positive MaxRedraws).
	ErrBadOptions = errors.New("evm: invalid options")

	// ErrEstimatorDegenerate indicates that the randomized fallback for a
	// zero-modulus eigenvector component exhausted MaxRedraws without
	// drawing a usable random projection, or that an anchor component has
	// zero modulus. Exceeding the cap requires an (astronomically unlikely)
	// run of exact-zero inner products; surfacing it beats looping forever.
	ErrEstimatorDegenerate = errors.New("evm: degenerate estimator input")
)

// Options configures a Reconstructor.
//
// Fields:
//   - Eps        — Hermitian tolerance for the construction-time gate
//     (|C - conj(C)ᵗ| entry-wise, split into real/imaginary parts).
//     Zero or negative disables nothing: Eps must be ≥ 0, and 0 demands
//     exact Hermitian input.
//   - MaxRedraws — cap on random redraws in the degenerate estimator path.
//     The original method retries unboundedly; the cap turns a
//     probability-zero infinite loop into ErrEstimatorDegenerate.
//   - Seed       — seed for the fallback's random stream. Seed==0 selects a
//     fixed default stream, so results are reproducible out of the box;
//     pass distinct seeds to vary the (measure-zero) fallback draws.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Eps = 1e-7      // relax the gate for noisier instruments
//	r, err := New(c, &opts)
//	if err != nil {
//	  // errors.Is(err, cmatrix.ErrNotHermitian) on gate violation
//	}
type Options struct {
	Eps        float64
	MaxRedraws int
	Seed       int64
}

// DefaultEps is the default Hermitian-gate tolerance: small positive eps
// suited to float64 data assembled from real measurements.
const DefaultEps = 1e-9

// DefaultMaxRedraws bounds the degenerate-path redraw loop. A single redraw
// succeeds with probability 1 in exact arithmetic; 1000 is pure paranoia.
const DefaultMaxRedraws = 1000

// DefaultOptions returns the canonical configuration:
// Eps=DefaultEps, MaxRedraws=DefaultMaxRedraws, Seed=0 (fixed stream).
func DefaultOptions() Options {
	return Options{
		Eps:        DefaultEps,
		MaxRedraws: DefaultMaxRedraws,
		Seed:       0,
	}
}

// validate reports ErrBadOptions for nonsensical values.
// Complexity: O(1).
func (o *Options) validate() error {
	if o.Eps < 0 || o.MaxRedraws <= 0 {
		return ErrBadOptions
	}

	return nil
}
