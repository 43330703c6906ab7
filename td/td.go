package td

import (
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/vector"
)

const (
	opUpdate          = "TD.Update"
	opUpdateStepsizes = "TD.UpdateStepsizes"
	opValue           = "TD.Value"
	opDiagnose        = "TD.Diagnose"
)

// Params carries the per-step scalars of a TD(λ) update. None are retained.
type Params struct {
	Alpha     float64 // stepsize
	Gamma     float64 // discount of the current state, γ
	GammaNext float64 // discount of the next state, γ'
	Lambda    float64 // bootstrapping of the current state, λ
}

// State is a value snapshot of a TD estimator (copied slices).
type State struct {
	W []float64 // weights
	E []float64 // eligibility trace
}

// TD is a TD(λ) learner. The zero value is not usable; call New.
type TD struct {
	n int
	w []float64
	e []float64
}

var _ estimator.Estimator = (*TD)(nil)

// New returns a TD(λ) learner for n features with zero weights and trace.
// Errors: estimator.ErrInvalidFeatures when n <= 0.
func New(n int) (*TD, error) {
	if err := estimator.ValidateFeatures(n); err != nil {
		return nil, err
	}

	return &TD{n: n, w: make([]float64, n), e: make([]float64, n)}, nil
}

// Features returns n.
func (l *TD) Features() int { return l.n }

// Value returns w·x.
func (l *TD) Value(x []float64) (float64, error) {
	if err := estimator.ValidateVector(opValue, "x", l.n, x); err != nil {
		return 0, err
	}

	return vector.Dot(l.w, x), nil
}

// delta computes r + γ'·(w·x') − w·x with the current (pre-update) weights.
func (l *TD) delta(tr estimator.Transition, gammaNext float64) float64 {
	return tr.Reward + gammaNext*vector.Dot(l.w, tr.XNext) - vector.Dot(l.w, tr.X)
}

// Update applies one TD(λ) step and returns the TD error δ.
// Errors: estimator.ErrDimensionMismatch; state is untouched on error.
// Complexity: O(n).
func (l *TD) Update(tr estimator.Transition, p Params) (float64, error) {
	if err := estimator.ValidateTransition(opUpdate, l.n, tr); err != nil {
		return 0, err
	}
	d := l.delta(tr, p.GammaNext)
	vector.ScaleAdd(p.Gamma*p.Lambda, l.e, tr.X)
	vector.Axpy(p.Alpha*d, l.e, l.w)

	return d, nil
}

// UpdateStepsizes is Update with a per-feature stepsize vector:
// w_i ← w_i + alphas_i·δ·e_i. p.Alpha is ignored.
// Errors: estimator.ErrDimensionMismatch for x, x' or alphas.
// Complexity: O(n).
func (l *TD) UpdateStepsizes(tr estimator.Transition, alphas []float64, p Params) (float64, error) {
	if err := estimator.ValidateTransition(opUpdateStepsizes, l.n, tr); err != nil {
		return 0, err
	}
	if err := estimator.ValidateVector(opUpdateStepsizes, "alphas", l.n, alphas); err != nil {
		return 0, err
	}
	d := l.delta(tr, p.GammaNext)
	vector.ScaleAdd(p.Gamma*p.Lambda, l.e, tr.X)
	for i := range l.w {
		l.w[i] += alphas[i] * d * l.e[i]
	}

	return d, nil
}

// Weights returns a copy of w.
func (l *TD) Weights() []float64 { return vector.Clone(l.w) }

// Trace returns a copy of e.
func (l *TD) Trace() []float64 { return vector.Clone(l.e) }

// State returns a snapshot of every owned vector.
func (l *TD) State() State {
	return State{W: vector.Clone(l.w), E: vector.Clone(l.e)}
}

// Reset zeroes w and e in place.
func (l *TD) Reset() {
	vector.Zero(l.w)
	vector.Zero(l.e)
}

// Diagnose reports estimator.ErrNonFinite if w or e diverged.
func (l *TD) Diagnose() error {
	return estimator.CheckFinite(opDiagnose,
		estimator.Named{Name: "w", Values: l.w},
		estimator.Named{Name: "e", Values: l.e},
	)
}
