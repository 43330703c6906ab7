package variance

import (
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/td"
	"github.com/katalvlaran/tdlearn/vector"
)

const (
	opUpdate   = "DVTD.Update"
	opVariance = "DVTD.Variance"
	opDiagnose = "DVTD.Diagnose"
)

// Params carries the per-step scalars of a DVTD update.
type Params struct {
	Alpha      float64 // stepsize shared by both sides
	Gamma      float64 // discount of the current state, γ
	GammaNext  float64 // discount of the next state, γ'
	Lambda     float64 // bootstrapping of the current state, λ
	LambdaNext float64 // bootstrapping of the next state, λ'
}

// State is a value snapshot of a DVTD estimator.
type State struct {
	W    []float64 // value weights
	Z    []float64 // value trace
	WVar []float64 // variance weights
}

// DVTD estimates both the value and the variance of the λ-return.
type DVTD struct {
	n     int
	value *td.TD
	wVar  []float64
}

var _ estimator.VarianceEstimator = (*DVTD)(nil)

// New returns a DVTD learner for n features; all vectors start at zero.
// Errors: estimator.ErrInvalidFeatures when n <= 0.
func New(n int) (*DVTD, error) {
	value, err := td.New(n)
	if err != nil {
		return nil, err
	}

	return &DVTD{n: n, value: value, wVar: make([]float64, n)}, nil
}

// Features returns n.
func (l *DVTD) Features() int { return l.n }

// Value returns w·x from the value side.
func (l *DVTD) Value(x []float64) (float64, error) { return l.value.Value(x) }

// Variance returns w_var·x. It is read directly and not clipped at zero.
func (l *DVTD) Variance(x []float64) (float64, error) {
	if err := estimator.ValidateVector(opVariance, "x", l.n, x); err != nil {
		return 0, err
	}

	return vector.Dot(l.wVar, x), nil
}

// Update applies one DVTD step and returns the value TD error δ and the
// variance TD error ε.
// Implementation:
//   - Stage 1: validate x, x' (no mutation on error).
//   - Stage 2: TD(λ) step on the value side, yielding δ.
//   - Stage 3: one-step TD on w_var with reward δ² and discount (γ'λ')².
//
// Complexity: O(n).
func (l *DVTD) Update(tr estimator.Transition, p Params) (delta, deltaVar float64, err error) {
	if err = estimator.ValidateTransition(opUpdate, l.n, tr); err != nil {
		return 0, 0, err
	}
	delta, err = l.value.Update(tr, td.Params{Alpha: p.Alpha, Gamma: p.Gamma, GammaNext: p.GammaNext, Lambda: p.Lambda})
	if err != nil {
		return 0, 0, err
	}

	gv := p.GammaNext * p.LambdaNext
	gv *= gv
	deltaVar = delta*delta + gv*vector.Dot(l.wVar, tr.XNext) - vector.Dot(l.wVar, tr.X)
	vector.Axpy(p.Alpha*deltaVar, tr.X, l.wVar)

	return delta, deltaVar, nil
}

// Weights returns a copy of the value weights w.
func (l *DVTD) Weights() []float64 { return l.value.Weights() }

// VarianceWeights returns a copy of w_var.
func (l *DVTD) VarianceWeights() []float64 { return vector.Clone(l.wVar) }

// State returns a snapshot of w, z and w_var.
func (l *DVTD) State() State {
	s := l.value.State()

	return State{W: s.W, Z: s.E, WVar: vector.Clone(l.wVar)}
}

// Reset zeroes z, w and w_var.
func (l *DVTD) Reset() {
	l.value.Reset()
	vector.Zero(l.wVar)
}

// Diagnose reports estimator.ErrNonFinite if either side diverged.
func (l *DVTD) Diagnose() error {
	if err := l.value.Diagnose(); err != nil {
		return err
	}

	return estimator.CheckFinite(opDiagnose, estimator.Named{Name: "w_var", Values: l.wVar})
}
