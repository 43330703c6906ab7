// SPDX-License-Identifier: MIT

package estimator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tdlearn/vector"
)

// ValidateFeatures checks the construction-time feature count.
func ValidateFeatures(n int) error {
	if n <= 0 {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidFeatures)
	}

	return nil
}

// ValidateTransition checks both feature vectors of tr against n.
// Errors are wrapped with op for context and still match ErrDimensionMismatch.
// Complexity: O(1).
func ValidateTransition(op string, n int, tr Transition) error {
	if err := vector.ValidateLen(tr.X, n); err != nil {
		return fmt.Errorf("%s: x: %w", op, err)
	}
	if err := vector.ValidateLen(tr.XNext, n); err != nil {
		return fmt.Errorf("%s: x': %w", op, err)
	}

	return nil
}

// ValidateVector checks a single named vector against n.
func ValidateVector(op, name string, n int, x []float64) error {
	if err := vector.ValidateLen(x, n); err != nil {
		return fmt.Errorf("%s: %s: %w", op, name, err)
	}

	return nil
}

// Named pairs a state component's name with its values for CheckFinite.
type Named struct {
	Name   string
	Values []float64
}

// CheckFinite scans the named components in order and reports the first
// non-finite entry as a wrapped ErrNonFinite.
// Complexity: O(total length).
func CheckFinite(op string, parts ...Named) error {
	for _, p := range parts {
		if err := vector.AllFinite(p.Values); err != nil {
			return fmt.Errorf("%s: %s: %w: %w", op, p.Name, ErrNonFinite, err)
		}
	}

	return nil
}

// CheckScalars is CheckFinite for scalar state such as F and M.
func CheckScalars(op string, names []string, vals ...float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %s=%v: %w", op, names[i], v, ErrNonFinite)
		}
	}

	return nil
}
