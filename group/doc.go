// SPDX-License-Identifier: MIT
// Package group defines the Lie-group and character primitives consumed by
// the compact-space machinery, plus one concrete group: SO(3).
//
// The abstractions mirror harmonic analysis on a compact matrix Lie group G:
//
//   - Group: dimension, matrix size, torus rank, Haar-uniform sampling, and
//     the eigenfunction catalogue (one entry per frequency level).
//   - Character: the trace of an irreducible unitary representation, a class
//     function evaluated on torus-embedded elements (each group element is
//     first reduced to its canonical torus representative).
//   - Eigenfunctions: the per-level catalogue — signatures (opaque, totally
//     ordered labels of irreducible representations), eigenvalues in
//     non-decreasing order, dimensions (multiplicities), characters, and the
//     two batched group operations every consumer needs: the torus
//     representative map and the pairwise group difference g·g'⁻¹.
//
// Levels are ordered by non-decreasing Laplace–Beltrami eigenvalue; that
// order is significant for downstream tensor axes and never changes after
// construction. All catalogue slices are built once and treated as
// immutable by callers.
//
// The concrete SpecialOrthogonal3 group makes the compact branch executable
// end to end: rank-1 torus, signatures ℓ = 0, 1, 2, ..., eigenvalues
// ℓ(ℓ+1), dimensions 2ℓ+1, and the closed-form characters
// χ_ℓ(θ) = sin((ℓ+½)θ)/sin(θ/2).
package group
