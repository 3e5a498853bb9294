// SPDX-License-Identifier: MIT
// Space: the compact homogeneous space M = G/H.

package homogeneous

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/group"
	"github.com/katalvlaran/geomkern/rng"
)

// Space is a compact homogeneous space M = G/H: a compact Lie group G
// quotiented by a stabilizer subgroup H described through a Geometry.
//
// The stabilizer sample set (S Haar-uniform H points, embedded into G) is
// drawn at construction and reused for every subsequent evaluation; S is
// immutable for the life of the instance. The addition theorem is
// constructed once and cached.
type Space struct {
	g        group.Group
	geom     Geometry
	samples  []*mat.Dense // stabilizer samples embedded in G
	opts     Options
	addition *AdditionTheorem
}

// New constructs a Space, drawing the stabilizer sample set from the
// supplied random state and returning the successor state.
//
// Implementation:
//   - Stage 1: validate group, geometry, and options (fail fast).
//   - Stage 2: draw S Haar-uniform stabilizer samples in H's coordinates
//     and embed them into G — the one and only use of EmbedStabilizer.
//   - Stage 3: build and cache the addition theorem over the first L levels
//     of G's eigenfunction catalogue.
//
// Errors: ErrNilGroup, ErrNilGeometry, ErrAverageCount, ErrLevelCount,
// embedding errors, and catalogue errors from the group.
func New(g group.Group, geom Geometry, st rng.State, opts Options) (rng.State, *Space, error) {
	if g == nil {
		return st, nil, ErrNilGroup
	}
	if geom == nil {
		return st, nil, ErrNilGeometry
	}
	if opts.AverageOrder <= 0 {
		return st, nil, ErrAverageCount
	}
	if opts.NumLevels <= 0 {
		return st, nil, ErrLevelCount
	}

	st, rawH := geom.SampleStabilizer(st, opts.AverageOrder)
	embedded, err := geom.EmbedStabilizer(rawH)
	if err != nil {
		return st, nil, fmt.Errorf("homogeneous.New: %w", err)
	}

	addition, err := NewAdditionTheorem(g, geom, embedded, opts.NumLevels)
	if err != nil {
		return st, nil, fmt.Errorf("homogeneous.New: %w", err)
	}

	sp := &Space{
		g:        g,
		geom:     geom,
		samples:  embedded,
		opts:     opts,
		addition: addition,
	}

	return st, sp, nil
}

// Dimension returns dim(M) = dim(G) − dim(H).
func (s *Space) Dimension() int {
	return s.g.Dim() - s.geom.StabilizerDim()
}

// AverageOrder returns S.
func (s *Space) AverageOrder() int {
	return s.opts.AverageOrder
}

// Random draws n Haar-uniform points of G and projects them through π onto
// M, threading the random state.
func (s *Space) Random(st rng.State, n int) (rng.State, []*mat.Dense) {
	st, raw := s.g.Random(st, n)

	return st, s.geom.ProjectToManifold(raw)
}

// Addition returns the cached addition theorem.
func (s *Space) Addition() *AdditionTheorem {
	return s.addition
}

// Pairwise delegates to the cached addition theorem's full evaluation.
// Cost O(S²·N1·N2); prefer Diag on the diagonal.
func (s *Space) Pairwise(x, x2 []*mat.Dense) (*Tensor, error) {
	return s.addition.Pairwise(x, x2)
}

// Diag delegates to the closed-form O(N) diagonal fast path.
func (s *Space) Diag(x []*mat.Dense) (*mat.Dense, error) {
	return s.addition.Diag(x)
}
