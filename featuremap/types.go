// SPDX-License-Identifier: MIT
package featuremap

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/rng"
)

// Params carries the kernel hyperparameters the spectral density depends on.
type Params struct {
	// Lengthscale of the kernel; must be positive.
	Lengthscale float64
	// Smoothness is the Matérn smoothness ν; +Inf selects the heat kernel.
	Smoothness float64
}

// Options configures a feature map.
type Options struct {
	// NumRandomPhases is O, half the feature width.
	NumRandomPhases int
	// Normalize divides every feature row by its own Euclidean norm.
	Normalize bool
}

// DefaultOptions returns the canonical configuration: 3000 random phases,
// normalization on.
func DefaultOptions() Options {
	return Options{NumRandomPhases: 3000, Normalize: true}
}

// HyperbolicSampler draws spectral parameters for hyperbolic space from the
// Matérn/heat spectral density weighted by the space's c(λ)⁻² factor.
// Implementations are external collaborators; they must thread the state
// exactly once per call.
type HyperbolicSampler interface {
	// Sample returns n spectral parameters for H^dim.
	Sample(st rng.State, n int, params Params, dim int) (rng.State, []float64)
}

// SPDSampler draws spectral vectors for SPD(n): one length-degree row per
// sample, weighted by the space's c(λ)⁻² factor.
type SPDSampler interface {
	// Sample returns an [n, degree] matrix of spectral vectors.
	Sample(st rng.State, n int, params Params, degree int, rho []float64) (rng.State, *mat.Dense)
}
