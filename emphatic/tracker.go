package emphatic

import "github.com/katalvlaran/tdlearn/estimator"

// Tracker holds the followon trace F and the emphasis M. The zero value is
// the post-construction state.
type Tracker struct {
	f float64 // followon trace F
	m float64 // emphasis M
}

// Step advances F and M for one transition and returns the new M.
//
//	F ← γ·F + interest
//	M ← λ·interest + (1−λ)·F
func (t *Tracker) Step(gamma, lambda, interest float64) float64 {
	t.f = gamma*t.f + interest
	t.m = lambda*interest + (1-lambda)*t.f

	return t.m
}

// Correct applies a deferred importance correction F ← rho·F. Call it after
// the current step's trace update has consumed M.
func (t *Tracker) Correct(rho float64) {
	t.f *= rho
}

// Followon returns F.
func (t *Tracker) Followon() float64 { return t.f }

// Emphasis returns the most recent M.
func (t *Tracker) Emphasis() float64 { return t.m }

// Reset zeroes F and M.
func (t *Tracker) Reset() {
	t.f, t.m = 0, 0
}

// Diagnose reports estimator.ErrNonFinite if F or M diverged.
func (t *Tracker) Diagnose() error {
	return estimator.CheckScalars("Tracker.Diagnose", []string{"F", "M"}, t.f, t.m)
}
