// SPDX-License-Identifier: MIT

// Package idbd implements Incremental Delta-Bar-Delta: per-feature stepsizes
// learned by a meta-gradient on their logarithms.
//
// Given features x and an externally computed error δ:
//
//	β ← β + η·h·δ·x
//	α = exp(β)
//	w ← w + α·δ·x
//	h ← h·max(0, 1 − α·x²) + α·δ·x
//
// All products are elementwise. The max(0, ·) clamp keeps the memory h from
// flipping sign when α·x² exceeds 1.
//
// The adapter is used two ways: as a standalone regressor (Observe), or as a
// stepsize source for another learner via Stepsizes, e.g.
// td.(*TD).UpdateStepsizes.
package idbd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/vector"
)

const (
	opNew      = "IDBD.New"
	opUpdate   = "IDBD.Update"
	opObserve  = "IDBD.Observe"
	opValue    = "IDBD.Value"
	opDiagnose = "IDBD.Diagnose"
)

// State is a value snapshot of an IDBD adapter.
type State struct {
	W    []float64 // weights
	Beta []float64 // log-stepsizes
	H    []float64 // adaptation memory
}

// IDBD adapts one stepsize per feature.
type IDBD struct {
	n     int
	eta   float64
	beta0 float64
	w     []float64
	beta  []float64
	h     []float64
}

var _ estimator.Estimator = (*IDBD)(nil)

// New returns an IDBD adapter for n features with β = β₀ (default −1/n),
// w = 0 and h = 0.
// Errors: estimator.ErrInvalidFeatures when n <= 0; ErrBadMetaStep when η is
// not finite and positive.
func New(n int, opts ...Option) (*IDBD, error) {
	if err := estimator.ValidateFeatures(n); err != nil {
		return nil, err
	}
	o := gatherOptions(n, opts...)
	if math.IsNaN(o.metaStep) || math.IsInf(o.metaStep, 0) || o.metaStep <= 0 {
		return nil, fmt.Errorf("%s: eta=%v: %w", opNew, o.metaStep, ErrBadMetaStep)
	}

	beta, err := vector.Filled(n, o.logStep)
	if err != nil {
		return nil, err
	}

	return &IDBD{
		n:     n,
		eta:   o.metaStep,
		beta0: o.logStep,
		w:     make([]float64, n),
		beta:  beta,
		h:     make([]float64, n),
	}, nil
}

// Features returns n.
func (l *IDBD) Features() int { return l.n }

// MetaStep returns η.
func (l *IDBD) MetaStep() float64 { return l.eta }

// Value returns w·x.
func (l *IDBD) Value(x []float64) (float64, error) {
	if err := estimator.ValidateVector(opValue, "x", l.n, x); err != nil {
		return 0, err
	}

	return vector.Dot(l.w, x), nil
}

// Update applies one IDBD step for features x and error delta.
// Implementation:
//   - Stage 1: validate x (no mutation on error).
//   - Stage 2: per feature, meta step on β_i with the old h_i, then α_i,
//     w_i and the clamped h_i.
//
// Complexity: O(n).
func (l *IDBD) Update(x []float64, delta float64) error {
	if err := estimator.ValidateVector(opUpdate, "x", l.n, x); err != nil {
		return err
	}

	var alpha, step float64
	for i, xi := range x {
		l.beta[i] += l.eta * l.h[i] * delta * xi
		alpha = math.Exp(l.beta[i])
		step = alpha * delta * xi
		l.w[i] += step
		l.h[i] = l.h[i]*math.Max(0, 1-alpha*xi*xi) + step
	}

	return nil
}

// Observe treats (x, y) as a supervised example: δ = y − w·x, then Update.
// It returns δ.
func (l *IDBD) Observe(x []float64, y float64) (float64, error) {
	if err := estimator.ValidateVector(opObserve, "x", l.n, x); err != nil {
		return 0, err
	}
	delta := y - vector.Dot(l.w, x)

	return delta, l.Update(x, delta)
}

// Stepsizes returns α = exp(β), one stepsize per feature.
func (l *IDBD) Stepsizes() []float64 {
	out := make([]float64, l.n)
	for i, b := range l.beta {
		out[i] = math.Exp(b)
	}

	return out
}

// Weights returns a copy of w.
func (l *IDBD) Weights() []float64 { return vector.Clone(l.w) }

// State returns a snapshot of w, β and h.
func (l *IDBD) State() State {
	return State{W: vector.Clone(l.w), Beta: vector.Clone(l.beta), H: vector.Clone(l.h)}
}

// Reset restores β = β₀ and zeroes w and h. η is kept.
func (l *IDBD) Reset() {
	vector.Zero(l.w)
	vector.Zero(l.h)
	vector.Fill(l.beta, l.beta0)
}

// Diagnose reports estimator.ErrNonFinite if w, β or h diverged.
func (l *IDBD) Diagnose() error {
	return estimator.CheckFinite(opDiagnose,
		estimator.Named{Name: "w", Values: l.w},
		estimator.Named{Name: "beta", Values: l.beta},
		estimator.Named{Name: "h", Values: l.h},
	)
}
