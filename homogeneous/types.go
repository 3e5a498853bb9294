// SPDX-License-Identifier: MIT
// Package homogeneous: options, the Geometry capability interface, and the
// addition-theorem output tensor.

package homogeneous

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/group"
	"github.com/katalvlaran/geomkern/rng"
)

// ImagTolerance bounds the acceptable imaginary residue of a level
// contribution. Character sums of a positive-definite kernel are real;
// anything beyond this is reported as ErrComplexResidue.
const ImagTolerance = 1e-8

// Geometry is the capability interface a concrete homogeneous-space variant
// (Stiefel-like, Grassmannian-like, ...) must implement. Satisfying the
// interface is checked at compile time, so a variant with a missing hook
// cannot be constructed at all.
//
// Hooks:
//   - StabilizerDim        — manifold dimension of the stabilizer H.
//   - SampleStabilizer     — Haar-uniform H samples in H's own coordinates.
//   - ProjectToManifold    — the deterministic projection π: G → M
//     (e.g. "take a fixed sub-block of the matrix").
//   - EmbedManifold        — any right-inverse of π (a lift M → G; the lift
//     is non-unique and any valid one is acceptable).
//   - EmbedStabilizer      — embeds H elements into G's coordinates; used
//     exactly once, at space construction, to materialize the stabilizer
//     sample set.
//   - IdentityCharacterValue — the projected character value at the group
//     identity for a signature: the dimension of the H-invariant subspace
//     of that representation. Powers the closed-form diagonal fast path.
type Geometry interface {
	StabilizerDim() int
	SampleStabilizer(st rng.State, n int) (rng.State, []*mat.Dense)
	ProjectToManifold(g []*mat.Dense) []*mat.Dense
	EmbedManifold(x []*mat.Dense) ([]*mat.Dense, error)
	EmbedStabilizer(h []*mat.Dense) ([]*mat.Dense, error)
	IdentityCharacterValue(sig group.Signature) (float64, error)
}

// Options configures a compact homogeneous space.
//
// Fields:
//   - AverageOrder — S, the number of stabilizer samples; fixed for the life
//     of the space. Larger S tightens the positive-definiteness
//     approximation at O(S²) pairwise cost.
//   - NumLevels    — L, the number of frequency levels copied from the
//     ambient group's eigenfunction catalogue.
type Options struct {
	AverageOrder int
	NumLevels    int
}

// DefaultOptions returns the canonical configuration: S = 20, L = 10.
func DefaultOptions() Options {
	return Options{AverageOrder: 20, NumLevels: 10}
}

// Tensor is the [N1, N2, L] output of the full addition theorem. Level is
// the fastest-varying axis. Indexing past the bounds panics (programmer
// error); all values are real by construction.
type Tensor struct {
	n1, n2, levels int
	data           []float64
}

// newTensor allocates a zeroed [n1, n2, levels] tensor.
func newTensor(n1, n2, levels int) *Tensor {
	return &Tensor{n1: n1, n2: n2, levels: levels, data: make([]float64, n1*n2*levels)}
}

// Dims returns the tensor shape (N1, N2, L).
func (t *Tensor) Dims() (n1, n2, levels int) {
	return t.n1, t.n2, t.levels
}

// At returns the value at (i, j, level).
func (t *Tensor) At(i, j, level int) float64 {
	if i < 0 || i >= t.n1 || j < 0 || j >= t.n2 || level < 0 || level >= t.levels {
		panic("homogeneous: Tensor index out of range")
	}

	return t.data[(i*t.n2+j)*t.levels+level]
}

// set writes the value at (i, j, level); bounds are the caller's invariant.
func (t *Tensor) set(i, j, level int, v float64) {
	t.data[(i*t.n2+j)*t.levels+level] = v
}

// Level materializes one level as a fresh N1×N2 matrix.
func (t *Tensor) Level(level int) *mat.Dense {
	if level < 0 || level >= t.levels {
		panic("homogeneous: Tensor level out of range")
	}
	out := mat.NewDense(t.n1, t.n2, nil)
	var i, j int
	for i = 0; i < t.n1; i++ { // deterministic copy order
		for j = 0; j < t.n2; j++ {
			out.Set(i, j, t.data[(i*t.n2+j)*t.levels+level])
		}
	}

	return out
}
