// SPDX-License-Identifier: MIT
// Package estimator: sentinel error set shared by every estimator package.

package estimator

import (
	"errors"

	"github.com/katalvlaran/tdlearn/vector"
)

var (
	// ErrInvalidFeatures is returned by constructors when n <= 0.
	ErrInvalidFeatures = errors.New("estimator: number of features must be > 0")

	// ErrDimensionMismatch is returned when a feature vector's length differs
	// from n. It is the vector package sentinel, so errors.Is matches either name.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrNonFinite reports that some owned vector or scalar holds NaN or ±Inf.
	ErrNonFinite = errors.New("estimator: non-finite state")
)
