// SPDX-License-Identifier: MIT
// AdditionTheorem: per-level orchestration of the averaged addition theorem.

package homogeneous

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/group"
)

// AdditionTheorem computes, for each frequency level of the ambient group G,
// the sum of outer products of same-level eigenfunctions on M = G/H via
// double-sided stabilizer averaging of the group character.
//
// State: the geometry hooks, the stabilizer sample set already embedded in
// G's coordinates, and the per-level catalogue copied from G at construction
// (signatures, eigenvalues, dimensions, and characters wrapped as
// AveragedCharacter). All of it is immutable after NewAdditionTheorem.
//
// Levels here operate at level granularity, not per-basis-function
// granularity: each level counts as a single eigenfunction for indexing.
type AdditionTheorem struct {
	geom    Geometry
	samples []*mat.Dense // stabilizer samples embedded in G; drawn once

	signatures  []group.Signature
	eigenvalues []float64
	dimensions  []int
	characters  []*AveragedCharacter

	torus func(batch []*mat.Dense) (*mat.Dense, error)
	diff  func(a, b []*mat.Dense) []*mat.Dense
}

// NewAdditionTheorem copies the first numLevels catalogue entries of g and
// wraps every character with the averaging order len(samples).
//
// Contract: g and geom non-nil, samples non-empty, numLevels > 0.
// Errors: ErrNilGroup, ErrNilGeometry, ErrAverageCount, ErrLevelCount, and
// any catalogue error from the group.
func NewAdditionTheorem(g group.Group, geom Geometry, samples []*mat.Dense, numLevels int) (*AdditionTheorem, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if geom == nil {
		return nil, ErrNilGeometry
	}
	if len(samples) == 0 {
		return nil, ErrAverageCount
	}
	if numLevels <= 0 {
		return nil, ErrLevelCount
	}

	eig, err := g.Eigenfunctions(numLevels)
	if err != nil {
		return nil, fmt.Errorf("NewAdditionTheorem: %w", err)
	}

	at := &AdditionTheorem{
		geom:        geom,
		samples:     samples,
		signatures:  append([]group.Signature(nil), eig.Signatures...),
		eigenvalues: append([]float64(nil), eig.Eigenvalues...),
		dimensions:  append([]int(nil), eig.Dimensions...),
		characters:  make([]*AveragedCharacter, numLevels),
		torus:       eig.TorusRepresentative,
		diff:        eig.Difference,
	}
	for level, chi := range eig.Characters {
		at.characters[level], err = NewAveragedCharacter(len(samples), chi)
		if err != nil {
			return nil, fmt.Errorf("NewAdditionTheorem: level %d: %w", level, err)
		}
	}

	return at, nil
}

// Pairwise computes the full addition-theorem tensor for two point batches.
//
// Implementation:
//   - Stage 1: validate non-empty batches; lift X and X2 into G via the
//     geometry's manifold embedding.
//   - Stage 2: pairwise differences g_i·g'_j⁻¹ (N1·N2 elements), then
//     right-convolve with the S stabilizer samples and left-convolve with
//     the same S samples. The fixed row-major layouts compose to (h₁, n, h₂)
//     with n = (i, j) — exactly the grid AveragedCharacter collapses.
//   - Stage 3: one torus reduction for all S·N1·N2·S elements; per level,
//     the averaged character times the level dimension (the multiplicity
//     weight of the theorem), written into the [N1, N2, L] tensor.
//
// Numerical semantics: contributions are real; any imaginary residue above
// ImagTolerance aborts with ErrComplexResidue. NaN/Inf from degenerate
// inputs propagate silently by design.
//
// Determinism: fixed batch, sample, and level orders.
// Complexity: O(S²·N1·N2) character evaluations — the dominant cost. Use
// Diag for the O(N) closed-form diagonal.
func (at *AdditionTheorem) Pairwise(x, x2 []*mat.Dense) (*Tensor, error) {
	if len(x) == 0 || len(x2) == 0 {
		return nil, fmt.Errorf("Pairwise: %w", ErrEmptyBatch)
	}

	gx, err := at.geom.EmbedManifold(x)
	if err != nil {
		return nil, fmt.Errorf("Pairwise: %w", err)
	}
	gx2, err := at.geom.EmbedManifold(x2)
	if err != nil {
		return nil, fmt.Errorf("Pairwise: %w", err)
	}

	// [N1*N2] pairwise relative elements, row-major over (i, j).
	diff := at.diff(gx, gx2)
	// [(N1*N2)*S]: right convolution, layout (n, h₂).
	diffH2 := at.diff(diff, at.samples)
	// [S*(N1*N2*S)]: left convolution, layout (h₁, n, h₂).
	h1DiffH2 := at.diff(at.samples, diffH2)

	gammas, err := at.torus(h1DiffH2)
	if err != nil {
		return nil, fmt.Errorf("Pairwise: %w", err)
	}

	n1, n2 := len(x), len(x2)
	out := newTensor(n1, n2, len(at.characters))
	var vals []complex128
	var i, j, level int
	var re, im float64
	for level = 0; level < len(at.characters); level++ { // level order fixed
		vals, err = at.characters[level].Values(gammas)
		if err != nil {
			return nil, fmt.Errorf("Pairwise: level %d: %w", level, err)
		}
		weight := float64(at.dimensions[level])
		for i = 0; i < n1; i++ {
			for j = 0; j < n2; j++ {
				re = real(vals[i*n2+j])
				im = imag(vals[i*n2+j])
				if math.Abs(im) > ImagTolerance*(1+math.Abs(re)) {
					return nil, fmt.Errorf("Pairwise: level %d at (%d,%d): imag=%g: %w",
						level, i, j, im, ErrComplexResidue)
				}
				out.set(i, j, level, weight*re)
			}
		}
	}

	return out, nil
}

// Diag computes the diagonal of Pairwise(X, X) in closed form.
//
// For each level the diagonal value equals
//
//	dimension(level) × (projected character value at the group identity)
//
// broadcast across all N inputs. This is an exact identity, not an
// approximation: averaging a character over H at the identity collapses to
// the dimension of the H-invariant subspace, supplied by the geometry's
// IdentityCharacterValue hook.
//
// Determinism: fixed level-then-point fill order.
// Complexity: O(N·L) — the mandatory fast path avoiding the O(S²) blow-up.
func (at *AdditionTheorem) Diag(x []*mat.Dense) (*mat.Dense, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("Diag: %w", ErrEmptyBatch)
	}

	out := mat.NewDense(len(x), len(at.characters), nil)
	var level, i int
	var projected float64
	var err error
	for level = 0; level < len(at.characters); level++ {
		projected, err = at.geom.IdentityCharacterValue(at.signatures[level])
		if err != nil {
			return nil, fmt.Errorf("Diag: level %d: %w", level, err)
		}
		v := float64(at.dimensions[level]) * projected
		for i = 0; i < len(x); i++ {
			out.Set(i, level, v)
		}
	}

	return out, nil
}

// NumLevels returns L.
func (at *AdditionTheorem) NumLevels() int {
	return len(at.characters)
}

// NumEigenfunctionsPerLevel returns the per-level eigenfunction counts. The
// averaged form operates at level granularity, so every level counts one.
func (at *AdditionTheorem) NumEigenfunctionsPerLevel() []int {
	out := make([]int, len(at.characters))
	for i := range out {
		out[i] = 1
	}

	return out
}

// NumEigenfunctions returns the total eigenfunction count (= L, see
// NumEigenfunctionsPerLevel).
func (at *AdditionTheorem) NumEigenfunctions() int {
	return len(at.characters)
}

// Eigenvalues returns the per-level eigenvalues, non-decreasing.
func (at *AdditionTheorem) Eigenvalues() []float64 {
	return append([]float64(nil), at.eigenvalues...)
}

// Signatures returns the per-level signatures in level order.
func (at *AdditionTheorem) Signatures() []group.Signature {
	return append([]group.Signature(nil), at.signatures...)
}

// Dimensions returns the per-level representation dimensions.
func (at *AdditionTheorem) Dimensions() []int {
	return append([]int(nil), at.dimensions...)
}

// AverageOrder returns S, the stabilizer sample count.
func (at *AdditionTheorem) AverageOrder() int {
	return len(at.samples)
}
