// Package geomkern computes positive-definite kernels on curved spaces —
// compact homogeneous spaces and noncompact symmetric spaces — through
// harmonic analysis: group characters for the compact branch, spectral
// (Plancherel) densities and random features for the noncompact branch.
//
// 🚀 What is geomkern?
//
//	A deterministic, batch-vectorized numeric library that brings together:
//		• Functional random state: threaded, replayable sampling tokens
//		• Lie-group primitives: characters, torus representatives, Haar draws
//		• Addition theorems: per-level character averaging on M = G/H
//		• Noncompact primitives: random phases and generalized power functions
//		• Random feature maps: Monte-Carlo kernel approximation on
//		  hyperbolic space and the manifold of SPD matrices
//
// ✨ Why choose geomkern?
//
//   - Fail-fast contracts – shape violations are caught before heavy math
//   - Reproducible by construction – counter-based random state, fixed loop orders
//   - Ecosystem backend – gonum carries the factorizations (QR, Cholesky, eigen)
//   - Extensible – plug in new homogeneous-space geometries via one interface
//
// Under the hood, everything is organized in leaf-to-root order:
//
//	rng/         — functional random-state token threaded through all sampling
//	group/       — Group/Character interfaces + concrete SO(3)
//	homogeneous/ — averaged characters, addition theorem, compact M = G/H
//	hyperbolic/  — hyperbolic-space phases, power function, c-function
//	spd/         — SPD-manifold phases, power function, c-function
//	featuremap/  — rejection-sampling random feature maps (both variants)
//
// Quick orientation:
//
//	    group ──► homogeneous          hyperbolic ──► featuremap
//	                  ▲                     spd    ──►     ▲
//	                  │                                    │
//	                 rng ──────────────────────────────────┘
//
// The compact branch turns pairwise group differences into an [N1, N2, L]
// addition-theorem tensor; the noncompact branch turns random phases and
// spectral parameters into an [N, 2·O] real feature matrix. Both consume the
// same threaded random state and never share or reuse a stale one.
package geomkern
