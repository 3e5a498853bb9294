// SPDX-License-Identifier: MIT
// Package group: sentinel error set. All exported functions return these
// sentinels (optionally wrapped with fmt.Errorf("...: %w")); tests match them
// via errors.Is. Panics are reserved for programmer errors in private helpers.

package group

import "errors"

var (
	// ErrNumLevels is returned when a non-positive number of levels is
	// requested from a group's eigenfunction catalogue.
	ErrNumLevels = errors.New("group: number of levels must be > 0")

	// ErrTorusShape indicates that a torus-embedded batch has the wrong
	// width for the character being evaluated (width must equal the rank).
	ErrTorusShape = errors.New("group: torus embedding width mismatch")

	// ErrMatrixShape indicates that a group-element batch contains a matrix
	// whose shape differs from the group's matrix size.
	ErrMatrixShape = errors.New("group: group element has wrong shape")
)
