// SPDX-License-Identifier: MIT
// Package homogeneous: sentinel error set. All exported functions return
// these sentinels (optionally wrapped via fmt.Errorf("Op: %w", err)); tests
// match them with errors.Is. Numeric degeneracy (NaN/Inf) is NOT an error:
// it propagates through the pipeline by design.

package homogeneous

import "errors"

var (
	// ErrAverageCount is returned when the configured average order S is
	// not strictly positive.
	ErrAverageCount = errors.New("homogeneous: average order must be > 0")

	// ErrLevelCount is returned when the configured number of levels L is
	// not strictly positive.
	ErrLevelCount = errors.New("homogeneous: number of levels must be > 0")

	// ErrAverageOrder indicates that a doubly-convolved batch has a row
	// count that is not a multiple of S² — the [S, N, S] reshape underlying
	// double-sided averaging would be ill-defined.
	ErrAverageOrder = errors.New("homogeneous: batch rows not a multiple of S²")

	// ErrComplexResidue indicates that a level contribution carried an
	// imaginary part beyond tolerance. The addition theorem of a
	// positive-definite kernel is real; a residue is a computation error,
	// never a valid output.
	ErrComplexResidue = errors.New("homogeneous: imaginary residue beyond tolerance")

	// ErrEmptyBatch is returned when a point batch is empty.
	ErrEmptyBatch = errors.New("homogeneous: empty point batch")

	// ErrPointShape indicates a manifold point whose array shape differs
	// from the geometry's expected per-point shape.
	ErrPointShape = errors.New("homogeneous: manifold point has wrong shape")

	// ErrStabilizerShape indicates a stabilizer element whose shape differs
	// from the geometry's expected subgroup shape.
	ErrStabilizerShape = errors.New("homogeneous: stabilizer element has wrong shape")

	// ErrNilGroup is returned when a nil group is supplied to a constructor.
	ErrNilGroup = errors.New("homogeneous: group is nil")

	// ErrNilGeometry is returned when a nil geometry is supplied.
	ErrNilGeometry = errors.New("homogeneous: geometry is nil")

	// ErrNilCharacter is returned when wrapping a nil character.
	ErrNilCharacter = errors.New("homogeneous: character is nil")

	// ErrUnknownSignature is returned by a geometry asked for the identity
	// character value of a signature outside its catalogue.
	ErrUnknownSignature = errors.New("homogeneous: unknown signature")
)
