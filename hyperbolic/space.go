// SPDX-License-Identifier: MIT
// Space: real hyperbolic space H^d, hyperboloid model.

package hyperbolic

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/rng"
)

// Space is real hyperbolic space H^d in the hyperboloid model. Immutable
// after New; safe for concurrent use.
type Space struct {
	dim int
	rho float64
}

// New constructs H^d.
//
// Errors: ErrDimension for d < 2 (H¹ is flat and has no Harish-Chandra
// normalization in this parametrization).
func New(dim int) (*Space, error) {
	if dim < 2 {
		return nil, fmt.Errorf("New(%d): %w", dim, ErrDimension)
	}

	return &Space{dim: dim, rho: float64(dim-1) / 2}, nil
}

// Dimension returns d.
func (s *Space) Dimension() int { return s.dim }

// Rho returns the half-sum of positive roots, (d−1)/2.
func (s *Space) Rho() float64 { return s.rho }

// RandomPhases draws n Haar-uniform boundary directions: unit vectors in
// R^d, one per row of the returned [n, d] matrix.
func (s *Space) RandomPhases(st rng.State, n int) (rng.State, *mat.Dense) {
	st, raw := st.NormalMat(n, s.dim)

	var norm float64
	var i, j int
	for i = 0; i < n; i++ {
		norm = 0
		for j = 0; j < s.dim; j++ {
			norm += raw.At(i, j) * raw.At(i, j)
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			// Measure-zero degenerate draw: pin to the first axis.
			raw.Set(i, 0, 1)

			continue
		}
		for j = 0; j < s.dim; j++ {
			raw.Set(i, j, raw.At(i, j)/norm)
		}
	}

	return st, raw
}

// PowerFunction evaluates the zonal power Φ_λ(x, b) for a single spectral
// parameter, hyperboloid point x ∈ R^{d+1}, and boundary direction b ∈ R^d:
//
//	Φ_λ(x, b) = exp((iλ − ρ) · log(x₀ − ⟨x', b⟩))
//
// Errors: ErrPointShape, ErrPhaseShape on length violations. Off-manifold
// points can drive the pairing non-positive; the resulting NaN/Inf
// propagates.
func (s *Space) PowerFunction(lam float64, x, b []float64) (complex128, error) {
	if len(x) != s.dim+1 {
		return 0, fmt.Errorf("PowerFunction: point length %d: %w", len(x), ErrPointShape)
	}
	if len(b) != s.dim {
		return 0, fmt.Errorf("PowerFunction: phase length %d: %w", len(b), ErrPhaseShape)
	}

	inner := x[0]
	for j := 0; j < s.dim; j++ {
		inner -= x[j+1] * b[j]
	}
	logu := math.Log(inner)

	return cmplx.Exp(complex(-s.rho*logu, lam*logu)), nil
}

// InvHarishChandra returns c(λ)⁻¹, the spectral-density normalizing factor,
// by dimension parity:
//
//	d = 2:    sqrt(|λ| · tanh(π|λ|))
//	d even:   exp(½(Σ_{j=0}^{d/2−2} log(λ² + (j+½)²) + log|λ| + log tanh(π|λ|)))
//	d odd:    exp(½ Σ_{j=1}^{(d−1)/2−1} log(λ² + j²))
//
// The odd-dimension product is empty for d = 3, giving the constant 1.
func (s *Space) InvHarishChandra(lam float64) float64 {
	abs := math.Abs(lam)
	if s.dim == 2 {
		return math.Sqrt(abs * math.Tanh(math.Pi*abs))
	}

	var logc float64
	if s.dim%2 == 0 {
		for j := 0; j <= s.dim/2-2; j++ {
			t := float64(j) + 0.5
			logc += math.Log(lam*lam + t*t)
		}
		logc += math.Log(abs) + math.Log(math.Tanh(math.Pi*abs))
	} else {
		for j := 1; j <= (s.dim-1)/2-1; j++ {
			logc += math.Log(lam*lam + float64(j*j))
		}
	}

	return math.Exp(logc / 2)
}

// Random draws n points of H^d: a Gaussian tangent vector v ∈ R^d lifted to
// the hyperboloid as x = (sqrt(1 + |v|²), v). Rows of the returned
// [n, d+1] matrix satisfy x₀² − |x'|² = 1 with x₀ ≥ 1.
func (s *Space) Random(st rng.State, n int) (rng.State, *mat.Dense) {
	st, v := st.NormalMat(n, s.dim)

	out := mat.NewDense(n, s.dim+1, nil)
	var norm2 float64
	var i, j int
	for i = 0; i < n; i++ {
		norm2 = 0
		for j = 0; j < s.dim; j++ {
			norm2 += v.At(i, j) * v.At(i, j)
			out.Set(i, j+1, v.At(i, j))
		}
		out.Set(i, 0, math.Sqrt(1+norm2))
	}

	return st, out
}
