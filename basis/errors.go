// SPDX-License-Identifier: MIT
// Package basis: sentinel error set. Algorithms return these sentinels
// and tests check them via errors.Is. Panics are reserved for internal
// invariant breaks (the N=4 admissibility health check) and nonsensical
// construction parameters.

package basis

import "errors"

var (
	// ErrNegativeMomentum is returned when an angular momentum (a tuple
	// entry or a target representation L) is negative. This is a caller
	// programming error, surfaced immediately.
	ErrNegativeMomentum = errors.New("basis: angular momentum must be non-negative")

	// ErrLengthMismatch is returned when the radial tuple nn and the
	// angular tuple ll disagree in length.
	ErrLengthMismatch = errors.New("basis: nn and ll must have equal length")

	// ErrRepIndex is returned by WignerIndex.At when a row or column
	// index lies beyond the representation dimension 2L+1.
	ErrRepIndex = errors.New("basis: representation index out of range")

	// ErrCountNotImplemented signals that no closed-form invariant count
	// is implemented for the requested body order; use RIBasis (or the
	// witness search in Admissible) instead of guessing.
	ErrCountNotImplemented = errors.New("basis: closed-form invariant count not implemented for this body order")

	// ErrSVDFailed indicates that the singular value decomposition did
	// not converge. With the matrix sizes produced here this points at
	// NaN/Inf inputs, i.e. a defect upstream.
	ErrSVDFailed = errors.New("basis: singular value decomposition failed to converge")
)
