// SPDX-License-Identifier: MIT
// SPD: the rejection-sampling feature map on SPD(n).

package featuremap

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/rng"
	"github.com/katalvlaran/geomkern/spd"
)

// SPD is a random feature map on the manifold of symmetric positive
// definite matrices. Immutable after NewSPD; safe for concurrent use.
type SPD struct {
	space   *spd.Space
	sampler SPDSampler
	opts    Options
}

// NewSPD constructs the map.
//
// Errors: ErrNilSpace, ErrNilSampler, ErrPhaseCount.
func NewSPD(space *spd.Space, sampler SPDSampler, opts Options) (*SPD, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if sampler == nil {
		return nil, ErrNilSampler
	}
	if opts.NumRandomPhases <= 0 {
		return nil, ErrPhaseCount
	}

	return &SPD{space: space, sampler: sampler, opts: opts}, nil
}

// NumFeatures returns the feature width 2·O, independent of batch size.
func (m *SPD) NumFeatures() int {
	return 2 * m.opts.NumRandomPhases
}

// Evaluate maps a batch of SPD(n) points to the [N, 2·O] feature matrix.
//
// Implementation mirrors the hyperbolic map: O phases and O spectral
// vectors (rows of the sampler's [O, n] matrix) on one threaded state, the
// power function at every (input, phase k, λ_k) pair, real parts in columns
// [0, O) and imaginary parts in [O, 2·O), optional per-row normalization.
//
// Determinism: identical state and inputs give bit-identical features.
// Complexity: O(N·O) Cholesky+QR power evaluations dominate.
//
// Errors: ErrEmptyBatch, ErrSamplerOutput, plus shape and definiteness
// failures from the power function.
func (m *SPD) Evaluate(st rng.State, x []*mat.Dense, params Params) (rng.State, *mat.Dense, error) {
	if len(x) == 0 {
		return st, nil, fmt.Errorf("Evaluate: %w", ErrEmptyBatch)
	}

	order := m.opts.NumRandomPhases
	st, phases := m.space.RandomPhases(st, order)
	st, lambdas := m.sampler.Sample(st, order, params, m.space.Degree(), m.space.Rho())
	if lambdas == nil {
		return st, nil, fmt.Errorf("Evaluate: nil spectral batch: %w", ErrSamplerOutput)
	}
	if r, c := lambdas.Dims(); r != order || c != m.space.Degree() {
		return st, nil, fmt.Errorf("Evaluate: got %d×%d spectral batch, want %d×%d: %w",
			r, c, order, m.space.Degree(), ErrSamplerOutput)
	}

	features := mat.NewDense(len(x), 2*order, nil)
	var p complex128
	var err error
	var i, k int
	for i = 0; i < len(x); i++ { // fixed (input, phase) order
		for k = 0; k < order; k++ {
			p, err = m.space.PowerFunction(lambdas.RawRowView(k), x[i], phases[k])
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
