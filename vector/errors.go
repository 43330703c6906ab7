// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ..." so it greps cleanly in logs.
// Callers match with errors.Is; context is added with fmt.Errorf("...: %w").

package vector

import "errors"

var (
	// ErrInvalidLength is returned when a requested length is non-positive.
	ErrInvalidLength = errors.New("vector: length must be > 0")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// length the caller fixed at construction.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates that a nil slice was passed where a vector is required.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrNaNInf signals that a NaN or ±Inf entry was found by AllFinite-style checks.
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")
)
