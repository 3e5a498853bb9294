// SPDX-License-Identifier: MIT
package spd_test

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/rng"
	"github.com/katalvlaran/geomkern/spd"
)

// ExampleSpace evaluates the generalized power function at the identity
// point of SPD(2), where Φ_λ(I, h) = 1 for every spectral vector and phase.
func ExampleSpace() {
	space, err := spd.New(2)
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	st := rng.NewState(4)
	st, phases := space.RandomPhases(st, 1)
	_ = st

	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	phi, err := space.PowerFunction([]float64{1.5, -0.5}, eye, phases[0])
	if err != nil {
		fmt.Println("power function failed:", err)
		return
	}

	fmt.Println("degree:", space.Degree())
	fmt.Println("dimension:", space.Dimension())
	fmt.Println("rho:", space.Rho())
	fmt.Printf("|phi| at identity: %.6f\n", cmplx.Abs(phi))

	// Output:
	// degree: 2
	// dimension: 3
	// rho: [-0.5 0.5]
	// |phi| at identity: 1.000000
}
