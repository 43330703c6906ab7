// SPDX-License-Identifier: MIT

// Package lstd: functional configuration for ELSTD construction.
//   - Option / Options with documented defaults,
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions resolving setters over defaults.
package lstd

import (
	"math"

	"github.com/katalvlaran/tdlearn/matrix"
)

const (
	// DefaultEpsilon seeds A with the zero matrix (no regularization bias).
	DefaultEpsilon = 0.0
)

const (
	panicEpsilonInvalid = "lstd: WithEpsilon: epsilon must be finite, non-negative"
	panicRcondInvalid   = "lstd: WithRcond: rcond must be finite, non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options holds the resolved ELSTD configuration.
type Options struct {
	epsilon float64 // seed of A = ε·I
	rcond   float64 // pseudo-inverse cutoff forwarded to matrix.WithRcond
}

// WithEpsilon seeds A with ε·I at construction and on Reset. A small ε keeps A
// away from singular at the cost of a small bias.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if !validEpsilon(eps) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithRcond overrides the relative singular-value cutoff used by Theta.
// Panics if rcond is negative, NaN or ±Inf.
func WithRcond(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 {
		panic(panicRcondInvalid)
	}

	return func(o *Options) { o.rcond = rcond }
}

func validEpsilon(eps float64) bool {
	return !math.IsNaN(eps) && !math.IsInf(eps, 0) && eps >= 0
}

func gatherOptions(opts ...Option) Options {
	o := Options{epsilon: DefaultEpsilon, rcond: matrix.DefaultRcond}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
