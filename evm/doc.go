// Package evm reconstructs absolute phases from a noisy Hermitian
// relative-phase matrix via the eigenvector method of phase
// synchronization.
//
// 🚀 What is the eigenvector method (EVM)?
//
//	Given pairwise relative-phase measurements M[i][j] = μ_i − μ_j
//	corrupted by noise, the Hermitian matrix C[i][j] = exp(i·M[i][j]) is a
//	noisy rank-one model u·u^H with u_k = exp(i·μ_k). Its leading
//	eigenvector is the best ℓ²-fit to u, and projecting each component
//	onto the unit circle recovers the phases up to one global rotation.
//	It's widely used in:
//	  • Accelerator optics (betatron phase advance from BPM data)
//	  • Array signal processing & clock synchronization
//	  • Angular synchronization in cryo-EM and multireference alignment
//
// ✨ Key features:
//   - hard Hermitian gate at construction (cmatrix.ErrNotHermitian)
//   - one cached eigendecomposition; instances immutable afterwards
//   - deterministic leading-eigenvector choice (largest |λ|, lowest index on ties)
//   - unit-modulus estimator with a bounded randomized fallback for
//     exactly-zero components (MaxRedraws, seeded, reproducible)
//   - phase conversion (radians/degrees) and global-phase anchoring
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phasesync/evm"
//
//	c, _ := cmatrix.FromRelativePhases(measured) // C = exp(i·M)
//	opts := evm.DefaultOptions()
//
//	r, err := evm.New(c, &opts)       // Hermitian gate + eigendecomposition
//	est, err := r.ReconstructComplexPhases() // unit-modulus estimator
//	deg := evm.Phases(est, true)      // angles in degrees
//
// Performance:
//
//   - Time:   O(N³) once at construction (eigendecomposition), O(N) per
//     estimator call
//   - Memory: O(N²)
//
// See example_test.go for complete, runnable walkthroughs.
package evm
