// SPDX-License-Identifier: MIT

// Package featuremap builds rejection-sampling random feature maps for the
// noncompact symmetric spaces (hyperbolic and SPD).
//
// # How a map is built
//
// A feature map approximates a geometric kernel k(x, x') by an inner product
// of finite feature vectors. For O random phases:
//
//  1. draw O Haar-uniform phases from the space;
//  2. draw O spectral parameters from the external density sampler, which
//     weights by the space's InvHarishChandra factor (same threaded state);
//  3. evaluate the space's power function at every (input, phase, spectral
//     parameter) pair — phase k always pairs with spectral parameter k;
//  4. concatenate real parts then imaginary parts into a [N, 2·O] matrix;
//  5. optionally divide each row by its own Euclidean norm.
//
// The feature width is always 2·O, independent of the batch size.
//
// # Collaborator boundary
//
// Spectral-density rejection samplers are collaborators, not part of this
// package: they implement HyperbolicSampler or SPDSampler. The maps only
// require that a sampler threads the rng.State like every other sampling
// primitive, so identical initial states yield bit-identical features.
package featuremap
