// SPDX-License-Identifier: MIT

package estimator

// Transition is one step of experience (x, r, x'). The slices are borrowed for
// the duration of a single call and never retained by an estimator.
type Transition struct {
	X      []float64 // features of the current state, length n
	Reward float64   // reward on the transition
	XNext  []float64 // features of the next state, length n
}

// Estimator is the read/reset capability every variant provides.
type Estimator interface {
	// Features returns n, fixed at construction.
	Features() int

	// Value returns the current estimate for feature vector x.
	// Errors: ErrDimensionMismatch.
	Value(x []float64) (float64, error)

	// Reset restores the post-construction state.
	Reset()

	// Diagnose returns a wrapped ErrNonFinite if any state entry is NaN or ±Inf.
	Diagnose() error
}

// VarianceEstimator additionally estimates the variance of the return.
type VarianceEstimator interface {
	Estimator

	// Variance returns the current variance estimate for feature vector x.
	Variance(x []float64) (float64, error)
}
