// SPDX-License-Identifier: MIT

package trueonline

import (
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/vector"
)

const (
	opUpdate   = "TOTD.Update"
	opValue    = "TOTD.Value"
	opDiagnose = "TOTD.Diagnose"
)

// Params carries the per-step scalars of a TOTD update.
type Params struct {
	Alpha     float64 // stepsize; it also scales the dutch trace
	Gamma     float64 // discount of the current state, γ
	GammaNext float64 // discount of the next state, γ'
	Lambda    float64 // bootstrapping of the current state, λ
}

// State is a value snapshot of a TOTD estimator.
type State struct {
	W    []float64 // weights
	WOld []float64 // weights the previous step started from
	Z    []float64 // dutch trace
}

// TOTD is a true-online TD(λ) learner.
type TOTD struct {
	n    int
	w    []float64
	wOld []float64
	z    []float64
}

var _ estimator.Estimator = (*TOTD)(nil)

// New returns a TOTD learner for n features; w, w_old and z start at zero.
// Errors: estimator.ErrInvalidFeatures when n <= 0.
func New(n int) (*TOTD, error) {
	if err := estimator.ValidateFeatures(n); err != nil {
		return nil, err
	}

	return &TOTD{n: n, w: make([]float64, n), wOld: make([]float64, n), z: make([]float64, n)}, nil
}

// Features returns n.
func (l *TOTD) Features() int { return l.n }

// Value returns w·x.
func (l *TOTD) Value(x []float64) (float64, error) {
	if err := estimator.ValidateVector(opValue, "x", l.n, x); err != nil {
		return 0, err
	}

	return vector.Dot(l.w, x), nil
}

// Update applies one true-online TD(λ) step and returns δ.
// Implementation:
//   - Stage 1: validate x, x' (no mutation on error).
//   - Stage 2: δ, w·x and w_old·x from the weights this step starts with.
//   - Stage 3: dutch trace, using z·x from the previous trace.
//   - Stage 4: single pass that moves w_old to the start-of-step w and
//     applies w ← w + δz + α(w_old·x − w·x)x.
//
// Complexity: O(n).
func (l *TOTD) Update(tr estimator.Transition, p Params) (float64, error) {
	if err := estimator.ValidateTransition(opUpdate, l.n, tr); err != nil {
		return 0, err
	}
	x := tr.X
	wx := vector.Dot(l.w, x)
	d := tr.Reward + p.GammaNext*vector.Dot(l.w, tr.XNext) - wx
	corr := p.Alpha * (vector.Dot(l.wOld, x) - wx)

	decay := p.Gamma * p.Lambda
	zx := vector.Dot(l.z, x)
	for i := range l.z {
		l.z[i] = decay*l.z[i] + p.Alpha*x[i] - p.Alpha*decay*zx*x[i]
	}

	for i := range l.w {
		l.wOld[i] = l.w[i]
		l.w[i] += d*l.z[i] + corr*x[i]
	}

	return d, nil
}

// Weights returns a copy of w.
func (l *TOTD) Weights() []float64 { return vector.Clone(l.w) }

// Trace returns a copy of z.
func (l *TOTD) Trace() []float64 { return vector.Clone(l.z) }

// State returns a snapshot of w, w_old and z.
func (l *TOTD) State() State {
	return State{W: vector.Clone(l.w), WOld: vector.Clone(l.wOld), Z: vector.Clone(l.z)}
}

// Reset zeroes w, w_old and z.
func (l *TOTD) Reset() {
	vector.Zero(l.w)
	vector.Zero(l.wOld)
	vector.Zero(l.z)
}

// Diagnose reports estimator.ErrNonFinite if w, w_old or z diverged.
func (l *TOTD) Diagnose() error {
	return estimator.CheckFinite(opDiagnose,
		estimator.Named{Name: "w", Values: l.w},
		estimator.Named{Name: "w_old", Values: l.wOld},
		estimator.Named{Name: "z", Values: l.z},
	)
}
