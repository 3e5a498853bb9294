// SPDX-License-Identifier: MIT
// AveragedCharacter: double-sided stabilizer averaging of a group character.

package homogeneous

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/geomkern/group"
)

// AveragedCharacter is the positive-definite surrogate of a homogeneous-space
// character: the wrapped group character evaluated on doubly-convolved
// elements h_u·x·h_v and averaged over both stabilizer axes.
//
// The average order S is immutable for the life of the value. Evaluation is
// a pure function of its input and S.
type AveragedCharacter struct {
	order int
	chi   group.Character
}

// NewAveragedCharacter wraps a plain character with an average order S.
//
// Errors: ErrAverageCount (S ≤ 0), ErrNilCharacter (nil character).
func NewAveragedCharacter(order int, chi group.Character) (*AveragedCharacter, error) {
	if order <= 0 {
		return nil, ErrAverageCount
	}
	if chi == nil {
		return nil, ErrNilCharacter
	}

	return &AveragedCharacter{order: order, chi: chi}, nil
}

// AverageOrder returns S.
func (a *AveragedCharacter) AverageOrder() int {
	return a.order
}

// Values evaluates the averaged character.
//
// Contract: gammas is an [S·N·S, T] batch of torus representatives of
// doubly-convolved elements laid out row-major as (h₁, n, h₂) — the left
// stabilizer index varies slowest, the right one fastest. The row count must
// be a multiple of S² (ErrAverageOrder otherwise; detected before the
// wrapped character runs).
//
// Implementation:
//   - Stage 1: validate the row count and recover N = rows / S².
//   - Stage 2: evaluate the wrapped character on all rows, then collapse the
//     logical [S, N, S] grid by arithmetic mean over both S axes.
//
// Determinism: fixed (u, g, v) accumulation order.
// Complexity: O(S²·N) character evaluations + O(S²·N) accumulation.
func (a *AveragedCharacter) Values(gammas *mat.Dense) ([]complex128, error) {
	rows, _ := gammas.Dims()
	sq := a.order * a.order
	if rows%sq != 0 {
		return nil, fmt.Errorf("AveragedCharacter.Values: rows=%d S=%d: %w", rows, a.order, ErrAverageOrder)
	}
	n := rows / sq

	vals, err := a.chi.Values(gammas)
	if err != nil {
		return nil, fmt.Errorf("AveragedCharacter.Values: %w", err)
	}

	// Collapse [S, N, S] by mean over the two S axes.
	out := make([]complex128, n)
	inv := complex(1/float64(sq), 0)
	var u, g, v, base int
	for u = 0; u < a.order; u++ { // slow axis: left stabilizer sample
		for g = 0; g < n; g++ {
			base = (u*n+g)*a.order // row offset of (u, g, 0)
			for v = 0; v < a.order; v++ { // fast axis: right stabilizer sample
				out[g] += vals[base+v]
			}
		}
	}
	for g = 0; g < n; g++ {
		out[g] *= inv
	}

	return out, nil
}
