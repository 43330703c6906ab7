// SPDX-License-Identifier: MIT

package idbd

import "math"

const (
	// DefaultMetaStep is η when WithMetaStep is not given.
	DefaultMetaStep = 1.0
)

const panicLogStepInvalid = "idbd: WithInitialLogStep: beta0 must be finite"

// Option mutates internal options.
type Option func(*Options)

// Options holds the resolved IDBD configuration.
type Options struct {
	metaStep   float64
	logStep    float64
	hasLogStep bool // false: β₀ = −1/n, resolved in New
}

// WithMetaStep sets η. It is checked by New, which returns ErrBadMetaStep
// for η ≤ 0, so a bad value arriving from user input is an error, not a panic.
func WithMetaStep(eta float64) Option {
	return func(o *Options) { o.metaStep = eta }
}

// WithInitialLogStep sets the initial log-stepsize β₀ for every feature,
// replacing the −1/n heuristic. Panics if beta0 is NaN or ±Inf.
func WithInitialLogStep(beta0 float64) Option {
	if math.IsNaN(beta0) || math.IsInf(beta0, 0) {
		panic(panicLogStepInvalid)
	}

	return func(o *Options) {
		o.logStep = beta0
		o.hasLogStep = true
	}
}

func gatherOptions(n int, opts ...Option) Options {
	o := Options{metaStep: DefaultMetaStep}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if !o.hasLogStep {
		o.logStep = -1 / float64(n)
	}

	return o
}
