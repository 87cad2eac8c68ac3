// Package phasesync recovers absolute phases from noisy pairwise
// relative-phase measurements via nonconvex phase synchronization.
//
// 🚀 What is phasesync?
//
//	A small, focused numerical library for the eigenvector method (EVM)
//	of phase synchronization. Given N observation points and a matrix of
//	measured relative phase advances M[i][j] (radians), it builds the
//	Hermitian measurement matrix C[i][j] = exp(i·M[i][j]) and recovers
//	each point's absolute phase from the leading eigenvector of C,
//	projecting every component onto the unit circle. Typical sources of
//	such data:
//	  • Beam position monitors along an accelerator beamline
//	  • Antenna arrays & sensor networks with pairwise phase offsets
//	  • Clock synchronization from relative timing measurements
//
// ✨ Key features:
//   - Strict construction-time Hermitian gate (fail fast, sentinel errors)
//   - Single cached eigendecomposition, immutable reconstructor instances
//   - Deterministic leading-eigenvector selection (lowest-index tie-break)
//   - Bounded randomized fallback for zero-modulus eigenvector components
//   - Phase-domain helpers: radians/degrees conversion, global-phase anchoring
//
// Under the hood, everything is organized under two subpackages:
//
//	cmatrix/ — complex dense matrices: builders, validators, kernels and
//	           the Hermitian eigendecomposition (delegated to gonum)
//	evm/     — the eigenvector-method Reconstructor and phase helpers
//
// Quick sketch:
//
//	M (N×N, anti-symmetric, radians)
//	  └─ cmatrix.FromRelativePhases ─▶ C = exp(i·M)   (Hermitian)
//	       └─ evm.New(C) ─▶ Reconstructor (one eigendecomposition)
//	            └─ ReconstructComplexPhases ─▶ unit-modulus estimator
//	                 └─ evm.Phases(est, true) ─▶ phases in degrees
//
// Dive into evm/doc.go for the algorithm outline and the example_test.go
// files for runnable examples.
//
//	go get github.com/katalvlaran/phasesync
package phasesync
