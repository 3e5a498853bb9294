// SPDX-License-Identifier: MIT
// Package group: interface and catalogue types shared by all compact groups.

package group

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/rng"
)

// Signature is an immutable, totally ordered label identifying an
// irreducible representation of a group. The string form keeps it opaque,
// hashable, and reproducibly sortable.
type Signature string

// Character evaluates a Lie-group character on torus-embedded elements.
//
// Contract: gammas is an [N, T] matrix whose rows are canonical torus
// representatives (T = torus rank of the group). Values returns one complex
// number per row, in row order. Implementations are pure: no state, no side
// effects, deterministic output for identical input.
type Character interface {
	Values(gammas *mat.Dense) ([]complex128, error)
}

// Group is a compact matrix Lie group G.
//
// Dim is the manifold dimension of G, MatrixSize the side length of its
// defining matrix representation, Rank the torus-embedding dimension T.
// Random draws n Haar-uniform elements, threading the random state.
// Eigenfunctions returns the first numLevels entries of the eigenfunction
// catalogue, ordered by non-decreasing eigenvalue.
type Group interface {
	Dim() int
	MatrixSize() int
	Rank() int
	Random(st rng.State, n int) (rng.State, []*mat.Dense)
	Eigenfunctions(numLevels int) (*Eigenfunctions, error)
}

// Eigenfunctions bundles the per-level catalogue of a group together with
// the two batched operations every spectral consumer needs. All slices have
// equal length (the number of levels) and are immutable after construction.
//
// TorusRepresentative reduces a batch of group elements to their canonical
// torus form ([len(batch), Rank] matrix). Difference computes all pairwise
// relative elements a_i · b_j⁻¹, returned row-major over (i, j) with length
// len(a)·len(b); the fixed layout is load-bearing for double-sided
// stabilizer averaging downstream.
type Eigenfunctions struct {
	Signatures  []Signature
	Eigenvalues []float64
	Dimensions  []int
	Characters  []Character

	TorusRepresentative func(batch []*mat.Dense) (*mat.Dense, error)
	Difference          func(a, b []*mat.Dense) []*mat.Dense
}

// NumLevels returns the number of catalogue levels, L.
func (e *Eigenfunctions) NumLevels() int {
	return len(e.Signatures)
}
