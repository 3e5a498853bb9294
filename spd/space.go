// SPDX-License-Identifier: MIT
// Space: the manifold SPD(n) with the affine-invariant metric.

package spd

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/rng"
)

// Space is the manifold of symmetric strictly positive definite n×n
// matrices. Immutable after New; safe for concurrent use.
type Space struct {
	degree int
	rho    []float64
}

// New constructs SPD(n).
//
// Errors: ErrDegree for n < 1.
func New(degree int) (*Space, error) {
	if degree < 1 {
		return nil, fmt.Errorf("New(%d): %w", degree, ErrDegree)
	}

	rho := make([]float64, degree)
	for j := 0; j < degree; j++ {
		rho[j] = float64(j+1) - float64(degree+1)/2
	}

	return &Space{degree: degree, rho: rho}, nil
}

// Degree returns n, the matrix side length.
func (s *Space) Degree() int { return s.degree }

// Dimension returns the manifold dimension n(n+1)/2.
func (s *Space) Dimension() int { return s.degree * (s.degree + 1) / 2 }

// Rho returns a copy of the half-sum of positive roots,
// ρ_j = (j+1) − (n+1)/2 for j = 0..n−1.
func (s *Space) Rho() []float64 {
	return append([]float64(nil), s.rho...)
}

// RandomPhases draws count Haar-uniform SO(n) frames.
//
// Implementation:
//   - Stage 1: draw an n×n standard-Gaussian matrix per frame.
//   - Stage 2: QR-factorize; multiply each Q column by the sign of the
//     matching R diagonal entry (Haar on O(n)); flip the first column if
//     det(Q) < 0.
//
// Every returned frame is orthonormal with determinant exactly +1 — the
// canonical choice PowerFunction is defined against.
//
// Determinism: one state advance per frame, fixed frame order.
func (s *Space) RandomPhases(st rng.State, count int) (rng.State, []*mat.Dense) {
	out := make([]*mat.Dense, count)
	var raw *mat.Dense
	for k := 0; k < count; k++ { // deterministic frame order
		st, raw = st.NormalMat(s.degree, s.degree)
		out[k] = orientedFrame(raw)
	}

	return st, out
}

// orientedFrame maps a square Gaussian matrix to a Haar-uniform
// special-orthogonal frame: QR, R-diagonal sign correction, then a first
// column flip forcing det = +1.
func orientedFrame(raw *mat.Dense) *mat.Dense {
	n, _ := raw.Dims()

	var qr mat.QR
	qr.Factorize(raw)
	var q, r mat.Dense
	qr.QTo(&q)
	qr.RTo(&r)

	var i, j int
	for j = 0; j < n; j++ {
		if r.At(j, j) < 0 {
			for i = 0; i < n; i++ {
				q.Set(i, j, -q.At(i, j))
			}
		}
	}
	if mat.Det(&q) < 0 {
		for i = 0; i < n; i++ {
			q.Set(i, 0, -q.At(i, 0))
		}
	}

	return &q
}

// PowerFunction evaluates the generalized power Φ_λ(g, h) for a spectral
// vector λ ∈ R^n, point g ∈ SPD(n), and phase h ∈ SO(n):
//
//	g = L·Lᵀ;  Q·R = L·h;  u_j = |R_jj|
//	Φ_λ(g, h) = exp(Σ_j (ρ_j + iλ_j) · log u_j)
//
// Contract: g and h are n×n, λ has length n. Only the upper triangle of g
// is read (g must be symmetric by the manifold's definition).
//
// Errors: ErrSpectrumShape, ErrPointShape on shape violations;
// ErrNotPositiveDefinite when the Cholesky factorization fails.
func (s *Space) PowerFunction(lam []float64, g, h *mat.Dense) (complex128, error) {
	n := s.degree
	if len(lam) != n {
		return 0, fmt.Errorf("PowerFunction: spectral length %d: %w", len(lam), ErrSpectrumShape)
	}
	if err := s.checkPoint(g); err != nil {
		return 0, fmt.Errorf("PowerFunction: point: %w", err)
	}
	if r, c := h.Dims(); r != n || c != n {
		return 0, fmt.Errorf("PowerFunction: phase %d×%d: %w", r, c, ErrPointShape)
	}

	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, g.At(i, j))
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return 0, fmt.Errorf("PowerFunction: %w", ErrNotPositiveDefinite)
	}
	var l mat.TriDense
	chol.LTo(&l)

	var lh mat.Dense
	lh.Mul(&l, h)

	var qr mat.QR
	qr.Factorize(&lh)
	var r mat.Dense
	qr.RTo(&r)

	var exponent complex128
	var logu float64
	for j = 0; j < n; j++ {
		logu = math.Log(math.Abs(r.At(j, j)))
		exponent += complex(s.rho[j]*logu, lam[j]*logu)
	}

	return cmplx.Exp(exponent), nil
}

// InvHarishChandra returns c(λ)⁻¹: with d ranging over the ordered pairwise
// absolute differences |λ_i − λ_j| (i < j),
//
//	c(λ)⁻¹ = exp(½ Σ_d (log(π·d) + log tanh(π·d)))
//
// A spectral vector with coinciding components drives the factor to 0,
// which propagates (the density vanishes there).
//
// Errors: ErrSpectrumShape when λ does not have length n.
func (s *Space) InvHarishChandra(lam []float64) (float64, error) {
	if len(lam) != s.degree {
		return 0, fmt.Errorf("InvHarishChandra: spectral length %d: %w", len(lam), ErrSpectrumShape)
	}

	var logprod, d float64
	for i := 0; i < len(lam); i++ { // ordered pairs (i, j), i < j
		for j := i + 1; j < len(lam); j++ {
			d = math.Abs(lam[i] - lam[j])
			logprod += math.Log(math.Pi*d) + math.Log(math.Tanh(math.Pi*d))
		}
	}

	return math.Exp(logprod / 2), nil
}

// Random draws count points of SPD(n): a symmetric standard-Gaussian
// log-matrix exponentiated through its eigendecomposition. Every returned
// matrix is symmetric and strictly positive definite.
//
// Determinism: one state advance per point, fixed point order.
func (s *Space) Random(st rng.State, count int) (rng.State, []*mat.Dense) {
	n := s.degree
	out := make([]*mat.Dense, count)
	var raw *mat.Dense
	var i, j, k int
	for k = 0; k < count; k++ { // deterministic point order
		st, raw = st.NormalMat(n, n)

		sym := mat.NewSymDense(n, nil)
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				sym.SetSym(i, j, (raw.At(i, j)+raw.At(j, i))/2)
			}
		}

		var eig mat.EigenSym
		if !eig.Factorize(sym, true) {
			// Symmetric eigendecomposition cannot fail on finite input;
			// surface degenerate draws as NaN rather than panicking.
			out[k] = nanMatrix(n)

			continue
		}
		var vecs mat.Dense
		eig.VectorsTo(&vecs)
		vals := eig.Values(nil)

		// exp(sym) = V · diag(exp(w)) · Vᵀ
		scaled := mat.NewDense(n, n, nil)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				scaled.Set(i, j, vecs.At(i, j)*math.Exp(vals[j]))
			}
		}
		point := mat.NewDense(n, n, nil)
		point.Mul(scaled, vecs.T())
		out[k] = point
	}

	return st, out
}

// checkPoint validates the n×n shape contract.
func (s *Space) checkPoint(g *mat.Dense) error {
	if g == nil {
		return ErrPointShape
	}
	if r, c := g.Dims(); r != s.degree || c != s.degree {
		return fmt.Errorf("%d×%d: %w", r, c, ErrPointShape)
	}

	return nil
}

func nanMatrix(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, math.NaN())
		}
	}

	return m
}
