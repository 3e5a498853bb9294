// SPDX-License-Identifier: MIT
// Package homogeneous implements the compact branch of geomkern: kernels on
// a compact homogeneous space M = G/H through character averaging.
//
// # Mathematical background
//
// The sum of outer products of same-level Laplace–Beltrami eigenfunctions on
// M ("the addition theorem") is proportional to an integral of the group
// character over the stabilizer subgroup H:
//
//	χ_M(x) = ∫_H χ_G(xh) dh
//
// The integral is approximated by a fixed Monte-Carlo sample of H drawn once
// at space construction. To keep the resulting function a positive-definite
// kernel the average is taken over BOTH sides (double-sided averaging):
//
//	χ_M(g1, g2) ≈ (1/S²) Σ_u Σ_v χ_G(h_u · g2⁻¹g1 · h_v)
//
// Single-sided averaging would not symmetrize correctly and is deliberately
// not offered.
//
// # Components
//
//   - AveragedCharacter: wraps a group character with an average order S and
//     collapses [S, N, S] grids of doubly-convolved elements by arithmetic
//     mean over both S axes.
//   - AdditionTheorem: per-level orchestration — pairwise group differences,
//     double-sided stabilizer convolution, torus reduction, per-level
//     character evaluation weighted by the level dimension, assembled into an
//     [N1, N2, L] tensor. The diagonal has a closed-form O(N) fast path.
//   - Geometry: the per-manifold hooks (project, lift, stabilizer embedding,
//     identity character value). A concrete manifold variant is a Geometry
//     implementation; a missing hook is a compile-time error, not a runtime
//     surprise.
//   - Space: the manifold M = G/H itself — uniform sampling, dimension, and
//     the cached addition theorem.
//   - SphereGeometry: the shipped Stiefel-like variant V(1,3) = SO(3)/SO(2),
//     i.e. the 2-sphere.
//
// # Cost model
//
// The full pairwise evaluation performs O(S² · N1 · N2) character
// evaluations; this combinatorial blow-up is intrinsic to double-sided
// averaging. The diagonal fast path is exact and O(N); use it whenever only
// variances are needed.
//
// All random sampling threads an rng.State; a stabilizer sample set is drawn
// once per Space and is immutable for the life of the instance.
package homogeneous
