// SPDX-License-Identifier: MIT

// Package spd provides the noncompact symmetric-space primitives for the
// manifold SPD(n) of symmetric strictly positive definite n×n matrices with
// the affine-invariant metric.
//
// # What lives here
//
// As a symmetric space, SPD(n) = GL(n)₊/SO(n): the symmetry group is the
// identity component of the general linear group and the stabilizer is the
// rotation group. The package exposes the random-feature ingredients:
//
//   - RandomPhases — Haar-uniform SO(n) frames with determinant exactly +1;
//   - PowerFunction — the complex generalized power Φ_λ(g, h), the noncompact
//     analogue of a character;
//   - InvHarishChandra — the density-normalizing factor c(λ)⁻¹ for external
//     spectral-density samplers.
//
// # Power function
//
// For a spectral vector λ ∈ R^n, a point g ∈ SPD(n) and a phase h ∈ SO(n),
// with ρ_j = (j+1) − (n+1)/2 the half-sum of positive roots,
//
//	g = L·Lᵀ (Cholesky);  Q·R = L·h (QR);  u_j = |R_jj|
//	Φ_λ(g, h) = exp(Σ_j (ρ_j + iλ_j) · log u_j)
//
// The canonical det=+1 phase convention matters: Φ is only well defined up
// to this choice, which RandomPhases pins by construction.
//
// # Determinism
//
// All sampling threads an rng.State value: same state, same output,
// bit for bit.
package spd
