// SPDX-License-Identifier: MIT
package spd

import "errors"

var (
	// ErrDegree is returned by New for degrees below 1.
	ErrDegree = errors.New("spd: degree must be at least 1")

	// ErrPointShape is returned when a point is not an n×n matrix.
	ErrPointShape = errors.New("spd: point must be an n×n matrix")

	// ErrSpectrumShape is returned when a spectral vector does not have
	// length n.
	ErrSpectrumShape = errors.New("spd: spectral vector must have length n")

	// ErrNotPositiveDefinite is returned when Cholesky factorization of an
	// input point fails.
	ErrNotPositiveDefinite = errors.New("spd: point is not strictly positive definite")
)
