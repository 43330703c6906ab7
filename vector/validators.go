// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for length checks at the estimator boundary.
//   - Return sentinels wrapped with a validator tag so call sites can wrap again
//     with their own method context and errors.Is still matches.

package vector

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLen ensures x is non-nil and has exactly n entries.
// Time: O(1). Space: O(1).
func ValidateLen(x []float64, n int) error {
	// A nil slice has length 0 and is never a valid feature vector; it matches
	// both ErrNilVector and ErrDimensionMismatch.
	if x == nil {
		return validatorErrorf("ValidateLen", fmt.Errorf("%w: %w", ErrNilVector, ErrDimensionMismatch))
	}
	if len(x) != n {
		return validatorErrorf("ValidateLen", fmt.Errorf("got %d want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// AllFinite reports ErrNaNInf (with the offending index) if any entry of x is
// NaN or ±Inf.
// Time: O(n). Space: O(1).
func AllFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("AllFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}
