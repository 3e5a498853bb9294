// SPDX-License-Identifier: MIT
package hyperbolic

import "errors"

var (
	// ErrDimension is returned by New for dimensions below 2.
	ErrDimension = errors.New("hyperbolic: dimension must be at least 2")

	// ErrPointShape is returned when a point is not a length d+1 vector.
	ErrPointShape = errors.New("hyperbolic: point must have length dim+1")

	// ErrPhaseShape is returned when a phase is not a length d vector.
	ErrPhaseShape = errors.New("hyperbolic: phase must have length dim")
)
