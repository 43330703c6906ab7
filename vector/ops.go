// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Flat-slice micro-kernels used by every update rule.
//   - Kernels assume lengths were validated at the boundary (ValidateLen).
//     They do not re-check, to keep hot loops branch-free.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1, one pass, no hidden allocations.

package vector

// ZeroSum is the neutral start value of every accumulator.
const ZeroSum = 0.0

// New allocates a zero vector of length n.
// Errors: ErrInvalidLength when n <= 0.
func New(n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	return make([]float64, n), nil
}

// Filled allocates a vector of length n with every entry set to v.
// Errors: ErrInvalidLength when n <= 0.
func Filled(n int, v float64) ([]float64, error) {
	out, err := New(n)
	if err != nil {
		return nil, err
	}
	Fill(out, v)

	return out, nil
}

// Dot returns a·b over len(a); callers validate lengths first.
// Time: O(n).
func Dot(a, b []float64) float64 {
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

// Axpy performs y ← y + alpha·x in place.
// Time: O(n).
func Axpy(alpha float64, x, y []float64) {
	if alpha == 0 {
		return // nothing to add
	}
	for i := range y {
		y[i] += alpha * x[i]
	}
}

// Scale performs x ← alpha·x in place.
// Time: O(n).
func Scale(alpha float64, x []float64) {
	for i := range x {
		x[i] *= alpha
	}
}

// ScaleAdd performs y ← alpha·y + x in place, the shape of every trace
// recursion (decay, then accumulate).
// Time: O(n).
func ScaleAdd(alpha float64, y, x []float64) {
	for i := range y {
		y[i] = alpha*y[i] + x[i]
	}
}

// Zero sets every entry of x to 0 without reallocating.
func Zero(x []float64) {
	for i := range x {
		x[i] = 0
	}
}

// Fill sets every entry of x to v.
func Fill(x []float64, v float64) {
	for i := range x {
		x[i] = v
	}
}

// Clone returns an independent copy of x (nil stays nil).
// Time: O(n). Space: O(n).
func Clone(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
