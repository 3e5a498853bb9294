// SPDX-License-Identifier: MIT
// Concrete group: SO(3), the rotation group of R³.
//
// Everything about SO(3) harmonic analysis is closed-form, which makes it the
// reference group for the compact branch:
//   - torus rank 1; the torus representative of R is its rotation angle
//     θ = arccos((tr R − 1)/2) ∈ [0, π];
//   - irreducible representations are labeled ℓ = 0, 1, 2, ...;
//   - eigenvalues ℓ(ℓ+1), dimensions 2ℓ+1;
//   - characters χ_ℓ(θ) = sin((ℓ+½)θ)/sin(θ/2), with χ_ℓ(0) = 2ℓ+1.

package group

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/rng"
)

// soAngleEps guards the removable singularity of χ_ℓ at θ = 0.
const soAngleEps = 1e-10

// SpecialOrthogonal3 is the compact Lie group SO(3).
type SpecialOrthogonal3 struct{}

// NewSpecialOrthogonal3 constructs the SO(3) group. The value is stateless;
// one instance can be shared freely.
func NewSpecialOrthogonal3() *SpecialOrthogonal3 {
	return &SpecialOrthogonal3{}
}

// Dim returns the manifold dimension of SO(3).
func (g *SpecialOrthogonal3) Dim() int { return 3 }

// MatrixSize returns the side length of the defining representation.
func (g *SpecialOrthogonal3) MatrixSize() int { return 3 }

// Rank returns the torus-embedding dimension T.
func (g *SpecialOrthogonal3) Rank() int { return 1 }

// Random draws n Haar-uniform rotations.
//
// Implementation:
//   - Stage 1: draw a 3×3 standard-Gaussian matrix per sample.
//   - Stage 2: QR-factorize; multiply each Q column by the sign of the
//     matching R diagonal entry (Haar on O(3)); flip the first column if
//     det(Q) < 0 to land on SO(3) with determinant exactly +1.
//
// Determinism: one state advance per sample, fixed sample order.
// Complexity: O(n) factorizations of a 3×3 matrix.
func (g *SpecialOrthogonal3) Random(st rng.State, n int) (rng.State, []*mat.Dense) {
	out := make([]*mat.Dense, n)
	var raw *mat.Dense
	for i := 0; i < n; i++ { // deterministic sample order
		st, raw = st.NormalMat(3, 3)
		out[i] = orientedOrthonormal(raw)
	}

	return st, out
}

// orientedOrthonormal maps a square Gaussian matrix to a Haar-uniform
// special-orthogonal frame: QR, R-diagonal sign correction, then a first
// column flip forcing det = +1. Shared by every Haar draw in the package.
func orientedOrthonormal(raw *mat.Dense) *mat.Dense {
	n, _ := raw.Dims()

	var qr mat.QR
	qr.Factorize(raw)
	var q, r mat.Dense
	qr.QTo(&q)
	qr.RTo(&r)

	// R-diagonal sign correction: canonical representative of the QR orbit.
	var i, j int
	for j = 0; j < n; j++ {
		if r.At(j, j) < 0 {
			for i = 0; i < n; i++ {
				q.Set(i, j, -q.At(i, j))
			}
		}
	}

	// Orientation: determinant must be exactly +1, enforced by a sign flip.
	if mat.Det(&q) < 0 {
		for i = 0; i < n; i++ {
			q.Set(i, 0, -q.At(i, 0))
		}
	}

	return &q
}

// Eigenfunctions returns the first numLevels entries of the SO(3) catalogue.
//
// Contract: numLevels > 0 (ErrNumLevels otherwise). Levels are ordered by
// ℓ = 0..numLevels-1, which is non-decreasing in the eigenvalue ℓ(ℓ+1).
// Complexity: O(numLevels) construction; catalogue is immutable afterwards.
func (g *SpecialOrthogonal3) Eigenfunctions(numLevels int) (*Eigenfunctions, error) {
	if numLevels <= 0 {
		return nil, ErrNumLevels
	}

	eig := &Eigenfunctions{
		Signatures:  make([]Signature, numLevels),
		Eigenvalues: make([]float64, numLevels),
		Dimensions:  make([]int, numLevels),
		Characters:  make([]Character, numLevels),

		TorusRepresentative: so3TorusRepresentative,
		Difference:          so3Difference,
	}
	for ell := 0; ell < numLevels; ell++ {
		eig.Signatures[ell] = Signature(fmt.Sprintf("%d", ell))
		eig.Eigenvalues[ell] = float64(ell * (ell + 1))
		eig.Dimensions[ell] = 2*ell + 1
		eig.Characters[ell] = characterSO3{ell: ell}
	}

	return eig, nil
}

// so3TorusRepresentative reduces a batch of rotations to their rotation
// angles, returned as an [N, 1] matrix.
//
// Contract: every batch element is 3×3 (ErrMatrixShape otherwise). The angle
// is clamped into acos's domain before evaluation; numerical noise beyond
// the clamp propagates as-is.
func so3TorusRepresentative(batch []*mat.Dense) (*mat.Dense, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("TorusRepresentative: %w", ErrMatrixShape)
	}
	gammas := mat.NewDense(len(batch), 1, nil)
	var trace, cosTheta float64
	for i, m := range batch { // deterministic batch order
		r, c := m.Dims()
		if r != 3 || c != 3 {
			return nil, fmt.Errorf("TorusRepresentative[%d]: %w", i, ErrMatrixShape)
		}
		trace = m.At(0, 0) + m.At(1, 1) + m.At(2, 2)
		cosTheta = (trace - 1) / 2
		// Clamp: rounding can push |cosθ| marginally above 1.
		if cosTheta > 1 {
			cosTheta = 1
		} else if cosTheta < -1 {
			cosTheta = -1
		}
		gammas.Set(i, 0, math.Acos(cosTheta))
	}

	return gammas, nil
}

// so3Difference computes all pairwise relative rotations a_i · b_jᵀ
// (the inverse of a rotation is its transpose), row-major over (i, j).
func so3Difference(a, b []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, 0, len(a)*len(b))
	var d *mat.Dense
	for i := 0; i < len(a); i++ { // fixed (i, j) order: layout is load-bearing
		for j := 0; j < len(b); j++ {
			d = mat.NewDense(3, 3, nil)
			d.Mul(a[i], b[j].T())
			out = append(out, d)
		}
	}

	return out
}

// characterSO3 is the character of the (2ℓ+1)-dimensional irreducible
// representation of SO(3).
type characterSO3 struct {
	ell int
}

// Values evaluates χ_ℓ on an [N, 1] batch of rotation angles.
// The value is real for SO(3); it is returned as complex128 to satisfy the
// Character contract shared with groups whose characters are genuinely
// complex.
func (c characterSO3) Values(gammas *mat.Dense) ([]complex128, error) {
	rows, cols := gammas.Dims()
	if cols != 1 {
		return nil, fmt.Errorf("characterSO3.Values: %w", ErrTorusShape)
	}

	out := make([]complex128, rows)
	var theta, half, v float64
	for i := 0; i < rows; i++ {
		theta = gammas.At(i, 0)
		half = math.Sin(theta / 2)
		if math.Abs(half) < soAngleEps {
			v = float64(2*c.ell + 1) // χ_ℓ(0), the removable singularity
		} else {
			v = math.Sin((float64(c.ell)+0.5)*theta) / half
		}
		out[i] = complex(v, 0)
	}

	return out, nil
}
