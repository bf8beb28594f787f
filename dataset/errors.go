// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// dataset package. All methods return these sentinels and tests check them
// via errors.Is.

package dataset

import "errors"

var (
	// ErrNilVariable indicates a nil *Variable was passed where a value is required.
	ErrNilVariable = errors.New("dataset: nil variable")

	// ErrBadName indicates an empty variable name.
	ErrBadName = errors.New("dataset: variable name must be non-empty")

	// ErrBadRank indicates a variable rank outside the supported 1-D/2-D range,
	// or a rank unsuitable for the requested view (e.g. a 1-D dosage matrix).
	ErrBadRank = errors.New("dataset: unsupported variable rank")

	// ErrBadShape indicates non-positive extents or a dims/shape length mismatch.
	ErrBadShape = errors.New("dataset: invalid variable shape")

	// ErrShapeData indicates that the backing data length does not match the shape.
	ErrShapeData = errors.New("dataset: data length does not match shape")

	// ErrUnknownVariable indicates a name lookup for a variable not present.
	ErrUnknownVariable = errors.New("dataset: unknown variable")

	// ErrDuplicateVariable indicates an Add with a name that already exists.
	ErrDuplicateVariable = errors.New("dataset: duplicate variable")

	// ErrIndexOutOfBounds indicates an At index outside the variable's extents.
	ErrIndexOutOfBounds = errors.New("dataset: index out of bounds")
)
