package cmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/phasesync/cmatrix"
)

// ExampleFromRelativePhases builds the Hermitian measurement matrix
// C = exp(i·M) from an exactly anti-symmetric relative-phase ramp and
// verifies the structural invariants the reconstructor relies on.
func ExampleFromRelativePhases() {
	phases := [][]float64{
		{0, 1, 2, 3},
		{-1, 0, 1, 2},
		{-2, -1, 0, 1},
		{-3, -2, -1, 0},
	}

	c, err := cmatrix.FromRelativePhases(phases)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	diag, _ := c.At(0, 0)
	fmt.Printf("shape=%dx%d\n", c.Rows(), c.Cols())
	fmt.Printf("hermitian=%v\n", cmatrix.ValidateHermitian(c, 1e-12) == nil)
	fmt.Printf("diag=%.0f%+.0fi\n", real(diag), imag(diag))
	// Output:
	// shape=4x4
	// hermitian=true
	// diag=1+0i
}
