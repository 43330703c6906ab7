package emphatic

import (
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/vector"
)

const (
	opTOETDUpdate   = "TrueOnlineETD.Update"
	opTOETDValue    = "TrueOnlineETD.Value"
	opTOETDDiagnose = "TrueOnlineETD.Diagnose"
)

// TrueOnlineParams carries the per-step scalars of a true-online ETD(λ)
// update. The current-state discount is not passed: it is the previous
// step's GammaNext, kept as state (0 before the first step).
type TrueOnlineParams struct {
	Alpha     float64 // stepsize
	GammaNext float64 // discount of the next state, γ'
	Lambda    float64 // bootstrapping of the current state, λ
	Rho       float64 // importance ratio for the current step
	Interest  float64 // interest in the current state
}

// TrueOnlineState is a value snapshot of a TrueOnlineETD estimator.
type TrueOnlineState struct {
	Theta []float64 // weights
	E     []float64 // dutch-style emphatic trace
	F     float64   // followon trace
	M     float64   // last emphasis
	D     float64   // carried correction scalar Δ·x'
	Gamma float64   // discount of the state the next call starts from
}

// TrueOnlineETD is true-online emphatic TD(λ). It avoids a second weight
// vector by carrying the scalar D = Δθ·x' from one step to the next.
type TrueOnlineETD struct {
	n       int
	theta   []float64
	e       []float64
	tracker Tracker
	d       float64
	gamma   float64
}

var _ estimator.Estimator = (*TrueOnlineETD)(nil)

// NewTrueOnlineETD returns a true-online ETD(λ) learner for n features.
// Errors: estimator.ErrInvalidFeatures when n <= 0.
func NewTrueOnlineETD(n int) (*TrueOnlineETD, error) {
	if err := estimator.ValidateFeatures(n); err != nil {
		return nil, err
	}

	return &TrueOnlineETD{n: n, theta: make([]float64, n), e: make([]float64, n)}, nil
}

// Features returns n.
func (l *TrueOnlineETD) Features() int { return l.n }

// Value returns θ·x.
func (l *TrueOnlineETD) Value(x []float64) (float64, error) {
	if err := estimator.ValidateVector(opTOETDValue, "x", l.n, x); err != nil {
		return 0, err
	}

	return vector.Dot(l.theta, x), nil
}

// Update applies one true-online ETD(λ) step and returns δ.
//
//	δ = r + γ'·θ·x' − θ·x
//	F ← F + I;  M = λI + (1−λ)F
//	S = ραM·(1 − ργλ·(x·e))
//	e_i ← ργλ·e_i + S·x_i
//	Δ_i = δ·e_i + D·(e_i − ραM·x_i);  θ_i += Δ_i
//	D ← Σ Δ_i·x'_i;  F ← ργ'·F;  γ ← γ'
//
// Complexity: O(n).
func (l *TrueOnlineETD) Update(tr estimator.Transition, p TrueOnlineParams) (float64, error) {
	if err := estimator.ValidateTransition(opTOETDUpdate, l.n, tr); err != nil {
		return 0, err
	}
	delta := tr.Reward + p.GammaNext*vector.Dot(l.theta, tr.XNext) - vector.Dot(l.theta, tr.X)
	// F was already discounted by γ' at the end of the previous step.
	m := l.tracker.Step(1, p.Lambda, p.Interest)

	decay := p.Rho * l.gamma * p.Lambda
	scaledM := p.Rho * p.Alpha * m
	s := scaledM * (1 - decay*vector.Dot(tr.X, l.e))

	var nextD, step float64
	for i := range l.e {
		l.e[i] = decay*l.e[i] + s*tr.X[i]
		step = delta*l.e[i] + l.d*(l.e[i]-scaledM*tr.X[i])
		l.theta[i] += step
		nextD += step * tr.XNext[i]
	}

	// prepare for next iteration
	l.d = nextD
	l.tracker.Correct(p.Rho * p.GammaNext)
	l.gamma = p.GammaNext

	return delta, nil
}

// Weights returns a copy of θ.
func (l *TrueOnlineETD) Weights() []float64 { return vector.Clone(l.theta) }

// State returns a snapshot of every owned value.
func (l *TrueOnlineETD) State() TrueOnlineState {
	return TrueOnlineState{
		Theta: vector.Clone(l.theta),
		E:     vector.Clone(l.e),
		F:     l.tracker.Followon(),
		M:     l.tracker.Emphasis(),
		D:     l.d,
		Gamma: l.gamma,
	}
}

// Reset zeroes θ, e, F, M, D and the carried discount.
func (l *TrueOnlineETD) Reset() {
	vector.Zero(l.theta)
	vector.Zero(l.e)
	l.tracker.Reset()
	l.d, l.gamma = 0, 0
}

// Diagnose reports estimator.ErrNonFinite if any state diverged.
func (l *TrueOnlineETD) Diagnose() error {
	if err := estimator.CheckFinite(opTOETDDiagnose,
		estimator.Named{Name: "theta", Values: l.theta},
		estimator.Named{Name: "e", Values: l.e},
	); err != nil {
		return err
	}
	if err := estimator.CheckScalars(opTOETDDiagnose, []string{"D"}, l.d); err != nil {
		return err
	}

	return l.tracker.Diagnose()
}
