package evm_test

import (
	"testing"

	"github.com/katalvlaran/phasesync/cmatrix"
	"github.com/katalvlaran/phasesync/evm"
)

// benchC builds an n×n noise-free Hermitian measurement matrix from a
// linear phase ramp.
func benchC(b *testing.B, n int) *cmatrix.CDense {
	b.Helper()
	phases := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		phases[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			phases[i][j] = float64(j-i) * 0.01 // predictable anti-symmetric ramp
		}
	}
	c, err := cmatrix.FromRelativePhases(phases)
	if err != nil {
		b.Fatalf("builder failed: %v", err)
	}

	return c
}

// benchmarkNew measures construction cost (gate + eigendecomposition),
// the O(N³) step of the lifecycle.
func benchmarkNew(b *testing.B, n int) {
	c := benchC(b, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := evm.New(c, nil); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_Small benchmarks construction for 32 observation points.
func BenchmarkNew_Small(b *testing.B) { benchmarkNew(b, 32) }

// BenchmarkNew_Medium benchmarks construction for 128 observation points.
func BenchmarkNew_Medium(b *testing.B) { benchmarkNew(b, 128) }

// benchmarkReconstruct measures the per-call cost after the cached
// decomposition: leading-eigenvector copy + unit-circle projection.
func benchmarkReconstruct(b *testing.B, n int) {
	r, err := evm.New(benchC(b, n), nil)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = r.ReconstructComplexPhases(); err != nil {
			b.Fatalf("reconstruction failed: %v", err)
		}
	}
}

// BenchmarkReconstruct_Small benchmarks reconstruction for 32 points.
func BenchmarkReconstruct_Small(b *testing.B) { benchmarkReconstruct(b, 32) }

// BenchmarkReconstruct_Medium benchmarks reconstruction for 128 points.
func BenchmarkReconstruct_Medium(b *testing.B) { benchmarkReconstruct(b, 128) }
