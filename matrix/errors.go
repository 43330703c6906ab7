// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine should panic on user-triggered error conditions.
// Panics are reserved for nonsensical functional options (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/index -> nil -> dimension mismatch -> numeric (NaN/Inf, SVD).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from Cols() in MatVec.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSVDFailed indicates that the singular value decomposition backing the
	// pseudo-inverse did not converge.
	ErrSVDFailed = errors.New("matrix: singular value decomposition failed")
)
