// SPDX-License-Identifier: MIT

// Package hyperbolic provides the noncompact symmetric-space primitives for
// real hyperbolic space H^d in the hyperboloid model.
//
// # What lives here
//
// Points of H^d are vectors x ∈ R^{d+1} on the upper sheet of the unit
// hyperboloid: x₀² − |x'|² = 1 with x₀ > 0, where x' = (x₁, ..., x_d).
// Boundary directions ("phases") are unit vectors b ∈ R^d.
//
// The package exposes the three ingredients a random-feature construction
// needs on a noncompact symmetric space:
//
//   - RandomPhases — Haar-uniform boundary directions;
//   - PowerFunction — the complex zonal power Φ_λ(x, b), the noncompact
//     analogue of a group character;
//   - InvHarishChandra — the density-normalizing factor c(λ)⁻¹, consumed by
//     external spectral-density samplers.
//
// # Power function
//
// For a spectral parameter λ and the half-sum of positive roots
// ρ = (d−1)/2,
//
//	Φ_λ(x, b) = exp((iλ − ρ) · log(x₀ − ⟨x', b⟩))
//
// The pairing x₀ − ⟨x', b⟩ is strictly positive for hyperboloid points and
// unit directions, so the logarithm is well defined. Off-manifold inputs
// produce NaN/Inf that propagate; shape violations fail fast with
// ErrPointShape or ErrPhaseShape.
//
// # Determinism
//
// All sampling threads an rng.State value: same state, same output,
// bit for bit.
package hyperbolic
