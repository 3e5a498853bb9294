// SPDX-License-Identifier: MIT
// Hyperbolic: the rejection-sampling feature map on H^d.

package featuremap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/hyperbolic"
	"github.com/katalvlaran/geomkern/rng"
)

// Hyperbolic is a random feature map on hyperbolic space. Immutable after
// NewHyperbolic; safe for concurrent use (all randomness is threaded through
// Evaluate's state argument).
type Hyperbolic struct {
	space   *hyperbolic.Space
	sampler HyperbolicSampler
	opts    Options
}

// NewHyperbolic constructs the map.
//
// Errors: ErrNilSpace, ErrNilSampler, ErrPhaseCount.
func NewHyperbolic(space *hyperbolic.Space, sampler HyperbolicSampler, opts Options) (*Hyperbolic, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if sampler == nil {
		return nil, ErrNilSampler
	}
	if opts.NumRandomPhases <= 0 {
		return nil, ErrPhaseCount
	}

	return &Hyperbolic{space: space, sampler: sampler, opts: opts}, nil
}

// NumFeatures returns the feature width 2·O, independent of batch size.
func (m *Hyperbolic) NumFeatures() int {
	return 2 * m.opts.NumRandomPhases
}

// Evaluate maps a batch of hyperboloid points, rows of the [N, d+1] input,
// to the [N, 2·O] feature matrix.
//
// Implementation:
//   - Stage 1: draw O boundary phases, then O spectral parameters from the
//     density sampler — one state thread, two advances.
//   - Stage 2: power function at every (input, phase k, λ_k) pair.
//   - Stage 3: real parts into columns [0, O), imaginary parts into
//     [O, 2·O); optional per-row Euclidean normalization.
//
// Determinism: identical state and inputs give bit-identical features.
// Complexity: O(N·O·d) power evaluations dominate.
//
// Errors: ErrEmptyBatch, ErrInputShape, ErrSamplerOutput, plus power
// function failures.
func (m *Hyperbolic) Evaluate(st rng.State, x *mat.Dense, params Params) (rng.State, *mat.Dense, error) {
	if x == nil {
		return st, nil, fmt.Errorf("Evaluate: %w", ErrEmptyBatch)
	}
	n, cols := x.Dims()
	if n == 0 {
		return st, nil, fmt.Errorf("Evaluate: %w", ErrEmptyBatch)
	}
	if cols != m.space.Dimension()+1 {
		return st, nil, fmt.Errorf("Evaluate: %d columns for H^%d: %w",
			cols, m.space.Dimension(), ErrInputShape)
	}

	order := m.opts.NumRandomPhases
	st, phases := m.space.RandomPhases(st, order)
	st, lambdas := m.sampler.Sample(st, order, params, m.space.Dimension())
	if len(lambdas) != order {
		return st, nil, fmt.Errorf("Evaluate: got %d spectral parameters, want %d: %w",
			len(lambdas), order, ErrSamplerOutput)
	}

	features := mat.NewDense(n, 2*order, nil)
	var p complex128
	var err error
	var i, k int
	for i = 0; i < n; i++ { // fixed (input, phase) order
		for k = 0; k < order; k++ {
			p, err = m.space.PowerFunction(lambdas[k], x.RawRowView(i), phases.RawRowView(k))
			if err != nil {
				return st, nil, fmt.Errorf("Evaluate: input %d, phase %d: %w", i, k, err)
			}
			features.Set(i, k, real(p))
			features.Set(i, order+k, imag(p))
		}
	}

	if m.opts.Normalize {
		normalizeRows(features)
	}

	return st, features, nil
}

// normalizeRows divides each row by its Euclidean norm. A zero row yields
// NaN that propagates, matching the package's degeneracy semantics.
func normalizeRows(features *mat.Dense) {
	rows, cols := features.Dims()
	var norm float64
	var i, j int
	for i = 0; i < rows; i++ {
		norm = 0
		for j = 0; j < cols; j++ {
			norm += features.At(i, j) * features.At(i, j)
		}
		norm = math.Sqrt(norm)
		for j = 0; j < cols; j++ {
			features.Set(i, j, features.At(i, j)/norm)
		}
	}
}
