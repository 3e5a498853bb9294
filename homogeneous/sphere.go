// SPDX-License-Identifier: MIT
// SphereGeometry: the Stiefel-like variant V(1,3) = SO(3)/SO(2), i.e. the
// unit 2-sphere. Points of M are 3×1 unit columns; the stabilizer SO(2)
// embeds as blockdiag(1, h).

package homogeneous

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/group"
	"github.com/katalvlaran/geomkern/rng"
)

// sphereLiftEps guards the degenerate Householder lift when x ≈ e₁.
const sphereLiftEps = 1e-12

// SphereGeometry implements Geometry for S² = SO(3)/SO(2).
//
// Hooks:
//   - π takes the first column of a rotation (a Stiefel-style sub-block);
//   - the lift completes a unit column to a special-orthogonal frame via a
//     Householder reflection with an orientation fix;
//   - SO(2) elements embed as blockdiag(1, h);
//   - every SO(3) level contains exactly one SO(2)-invariant direction
//     (the zonal one), so the identity character value is 1 for all levels.
type SphereGeometry struct{}

// NewSphereGeometry constructs the S² geometry. Stateless; shareable.
func NewSphereGeometry() *SphereGeometry {
	return &SphereGeometry{}
}

// compile-time hook completeness check
var _ Geometry = (*SphereGeometry)(nil)

// StabilizerDim returns dim SO(2) = 1.
func (sg *SphereGeometry) StabilizerDim() int { return 1 }

// SampleStabilizer draws n Haar-uniform SO(2) elements: planar rotations
// with angle uniform on [0, 2π).
func (sg *SphereGeometry) SampleStabilizer(st rng.State, n int) (rng.State, []*mat.Dense) {
	st, us := st.Uniform(n)
	out := make([]*mat.Dense, n)
	var phi, c, s float64
	for i := 0; i < n; i++ { // deterministic sample order
		phi = 2 * math.Pi * us[i]
		c, s = math.Cos(phi), math.Sin(phi)
		out[i] = mat.NewDense(2, 2, []float64{c, -s, s, c})
	}

	return st, out
}

// ProjectToManifold maps rotations to their first columns (π: G → M).
func (sg *SphereGeometry) ProjectToManifold(g []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, len(g))
	for i, m := range g {
		out[i] = mat.NewDense(3, 1, []float64{m.At(0, 0), m.At(1, 0), m.At(2, 0)})
	}

	return out
}

// EmbedManifold lifts unit columns to SO(3) frames whose first column is the
// input point (a right-inverse of π; the lift is non-unique by design).
//
// Implementation: the Householder reflection H = I − 2vvᵀ/(vᵀv) with
// v = x − e₁ maps e₁ to x and is orthogonal with det = −1; negating the last
// column restores det = +1 without touching the first column. For x ≈ e₁
// the lift is the identity.
//
// Errors: ErrPointShape when a point is not a 3×1 column.
func (sg *SphereGeometry) EmbedManifold(x []*mat.Dense) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(x))
	var v [3]float64
	var vv float64
	var i, r, c int
	for i = 0; i < len(x); i++ {
		rows, cols := x[i].Dims()
		if rows != 3 || cols != 1 {
			return nil, fmt.Errorf("EmbedManifold[%d]: %w", i, ErrPointShape)
		}

		v[0] = x[i].At(0, 0) - 1
		v[1] = x[i].At(1, 0)
		v[2] = x[i].At(2, 0)
		vv = v[0]*v[0] + v[1]*v[1] + v[2]*v[2]

		frame := mat.NewDense(3, 3, nil)
		if vv < sphereLiftEps {
			// x ≈ e₁: identity lift.
			frame.Set(0, 0, 1)
			frame.Set(1, 1, 1)
			frame.Set(2, 2, 1)
			out[i] = frame

			continue
		}

		for r = 0; r < 3; r++ {
			for c = 0; c < 3; c++ {
				h := -2 * v[r] * v[c] / vv
				if r == c {
					h++
				}
				if c == 2 {
					h = -h // orientation fix: det −1 → +1
				}
				frame.Set(r, c, h)
			}
		}
		out[i] = frame
	}

	return out, nil
}

// EmbedStabilizer embeds SO(2) elements into SO(3) as blockdiag(1, h).
//
// Errors: ErrStabilizerShape when an element is not 2×2.
func (sg *SphereGeometry) EmbedStabilizer(h []*mat.Dense) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(h))
	for i, m := range h {
		rows, cols := m.Dims()
		if rows != 2 || cols != 2 {
			return nil, fmt.Errorf("EmbedStabilizer[%d]: %w", i, ErrStabilizerShape)
		}
		e := mat.NewDense(3, 3, nil)
		e.Set(0, 0, 1)
		e.Set(1, 1, m.At(0, 0))
		e.Set(1, 2, m.At(0, 1))
		e.Set(2, 1, m.At(1, 0))
		e.Set(2, 2, m.At(1, 1))
		out[i] = e
	}

	return out, nil
}

// IdentityCharacterValue returns the dimension of the SO(2)-invariant
// subspace of the level: 1 for every SO(3) signature (the zonal direction).
//
// Errors: ErrUnknownSignature for labels outside the ℓ = 0, 1, 2, ...
// catalogue.
func (sg *SphereGeometry) IdentityCharacterValue(sig group.Signature) (float64, error) {
	if len(sig) == 0 {
		return 0, fmt.Errorf("IdentityCharacterValue(%q): %w", sig, ErrUnknownSignature)
	}
	for _, ch := range sig {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("IdentityCharacterValue(%q): %w", sig, ErrUnknownSignature)
		}
	}

	return 1, nil
}
