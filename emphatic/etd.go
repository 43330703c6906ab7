package emphatic

import (
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/vector"
)

const (
	opETDUpdate   = "ETD.Update"
	opETDValue    = "ETD.Value"
	opETDDiagnose = "ETD.Diagnose"
)

// Params carries the per-step scalars of an ETD(λ) update.
type Params struct {
	Alpha     float64 // stepsize
	Gamma     float64 // discount of the current state, γ
	GammaNext float64 // discount of the next state, γ'
	Lambda    float64 // bootstrapping of the current state, λ
	Rho       float64 // importance ratio π(a|s)/μ(a|s) for the current step
	Interest  float64 // interest in the current state
}

// State is a value snapshot of an ETD estimator.
type State struct {
	W []float64 // weights
	Z []float64 // emphatic eligibility trace
	F float64   // followon trace
	M float64   // emphasis
}

// ETD is an emphatic TD(λ) learner.
type ETD struct {
	n       int
	w       []float64
	z       []float64
	tracker Tracker
}

var _ estimator.Estimator = (*ETD)(nil)

// NewETD returns an ETD(λ) learner for n features; all state starts at zero.
// Errors: estimator.ErrInvalidFeatures when n <= 0.
func NewETD(n int) (*ETD, error) {
	if err := estimator.ValidateFeatures(n); err != nil {
		return nil, err
	}

	return &ETD{n: n, w: make([]float64, n), z: make([]float64, n)}, nil
}

// Features returns n.
func (l *ETD) Features() int { return l.n }

// Value returns w·x.
func (l *ETD) Value(x []float64) (float64, error) {
	if err := estimator.ValidateVector(opETDValue, "x", l.n, x); err != nil {
		return 0, err
	}

	return vector.Dot(l.w, x), nil
}

// Update applies one ETD(λ) step and returns δ.
// Implementation:
//   - Stage 1: validate x, x' (no mutation on error).
//   - Stage 2: δ from pre-update weights.
//   - Stage 3: emphasis step, trace z ← ρ(M·x + γλ·z), weights w ← w + αδz.
//   - Stage 4: deferred followon correction F ← ρ·F.
//
// Complexity: O(n).
func (l *ETD) Update(tr estimator.Transition, p Params) (float64, error) {
	if err := estimator.ValidateTransition(opETDUpdate, l.n, tr); err != nil {
		return 0, err
	}
	d := tr.Reward + p.GammaNext*vector.Dot(l.w, tr.XNext) - vector.Dot(l.w, tr.X)
	m := l.tracker.Step(p.Gamma, p.Lambda, p.Interest)

	decay := p.Gamma * p.Lambda
	for i := range l.z {
		l.z[i] = p.Rho * (tr.X[i]*m + decay*l.z[i])
	}
	vector.Axpy(p.Alpha*d, l.z, l.w)

	// prepare for next iteration
	l.tracker.Correct(p.Rho)

	return d, nil
}

// Weights returns a copy of w.
func (l *ETD) Weights() []float64 { return vector.Clone(l.w) }

// Trace returns a copy of z.
func (l *ETD) Trace() []float64 { return vector.Clone(l.z) }

// Followon returns F (already corrected by the last step's ρ).
func (l *ETD) Followon() float64 { return l.tracker.Followon() }

// Emphasis returns the last step's M.
func (l *ETD) Emphasis() float64 { return l.tracker.Emphasis() }

// State returns a snapshot of every owned value.
func (l *ETD) State() State {
	return State{W: vector.Clone(l.w), Z: vector.Clone(l.z), F: l.tracker.Followon(), M: l.tracker.Emphasis()}
}

// Reset zeroes F, M, w and z.
func (l *ETD) Reset() {
	l.tracker.Reset()
	vector.Zero(l.w)
	vector.Zero(l.z)
}

// Diagnose reports estimator.ErrNonFinite if any state diverged.
func (l *ETD) Diagnose() error {
	if err := estimator.CheckFinite(opETDDiagnose,
		estimator.Named{Name: "w", Values: l.w},
		estimator.Named{Name: "z", Values: l.z},
	); err != nil {
		return err
	}

	return l.tracker.Diagnose()
}
