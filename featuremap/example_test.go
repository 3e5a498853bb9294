// SPDX-License-Identifier: MIT
package featuremap_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/featuremap"
	"github.com/katalvlaran/geomkern/hyperbolic"
	"github.com/katalvlaran/geomkern/rng"
)

// ExampleHyperbolic builds a small feature map on H² and evaluates it at the
// base point, where the power function is identically 1: the normalized
// feature row then has unit norm by construction.
func ExampleHyperbolic() {
	space, err := hyperbolic.New(2)
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	m, err := featuremap.NewHyperbolic(space, uniformHyperbolicSampler{},
		featuremap.Options{NumRandomPhases: 4, Normalize: true})
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	base := mat.NewDense(1, 3, []float64{1, 0, 0})
	_, features, err := m.Evaluate(rng.NewState(1), base,
		featuremap.Params{Lengthscale: 1, Smoothness: 1.5})
	if err != nil {
		fmt.Println("evaluation failed:", err)
		return
	}

	rows, cols := features.Dims()
	norm := 0.0
	for j := 0; j < cols; j++ {
		norm += features.At(0, j) * features.At(0, j)
	}

	fmt.Println("feature width:", m.NumFeatures())
	fmt.Printf("shape: [%d %d]\n", rows, cols)
	fmt.Printf("row norm: %.6f\n", norm)

	// Output:
	// feature width: 8
	// shape: [1 8]
	// row norm: 1.000000
}
