package gradient

import (
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/vector"
)

const (
	opGTDUpdate   = "GTD.Update"
	opGTDValue    = "GTD.Value"
	opGTDDiagnose = "GTD.Diagnose"
)

// GTD is gradient TD(λ) (TDC form) with an importance-weighted trace.
type GTD struct {
	n int
	w []float64
	h []float64
	e []float64
}

var _ estimator.Estimator = (*GTD)(nil)

// NewGTD returns a GTD(λ) learner for n features; w, h and e start at zero.
// Errors: estimator.ErrInvalidFeatures when n <= 0.
func NewGTD(n int) (*GTD, error) {
	if err := estimator.ValidateFeatures(n); err != nil {
		return nil, err
	}

	return &GTD{n: n, w: make([]float64, n), h: make([]float64, n), e: make([]float64, n)}, nil
}

// Features returns n.
func (l *GTD) Features() int { return l.n }

// Value returns w·x.
func (l *GTD) Value(x []float64) (float64, error) {
	if err := estimator.ValidateVector(opGTDValue, "x", l.n, x); err != nil {
		return 0, err
	}

	return vector.Dot(l.w, x), nil
}

// Update applies one GTD(λ) step and returns δ.
// Implementation:
//   - Stage 1: validate x, x' (no mutation on error).
//   - Stage 2: δ and h·x from pre-update w, h.
//   - Stage 3: trace e ← ρ(λγe + x), then the scalar e·h.
//   - Stage 4: w and h in one pass, both reading the old h.
//
// Complexity: O(n).
func (l *GTD) Update(tr estimator.Transition, p Params) (float64, error) {
	if err := estimator.ValidateTransition(opGTDUpdate, l.n, tr); err != nil {
		return 0, err
	}
	x, xp := tr.X, tr.XNext
	d := tr.Reward + p.GammaNext*vector.Dot(l.w, xp) - vector.Dot(l.w, x)
	hx := vector.Dot(l.h, x)

	decay := p.Lambda * p.Gamma
	for i := range l.e {
		l.e[i] = p.Rho * (decay*l.e[i] + x[i])
	}
	eh := vector.Dot(l.e, l.h)

	corr := p.GammaNext * (1 - p.Lambda) * eh
	for i := range l.w {
		l.w[i] += p.Alpha * (d*l.e[i] + corr*xp[i])
		l.h[i] += p.Beta * (d*l.e[i] - hx*x[i])
	}

	return d, nil
}

// Weights returns a copy of w.
func (l *GTD) Weights() []float64 { return vector.Clone(l.w) }

// Correction returns a copy of h.
func (l *GTD) Correction() []float64 { return vector.Clone(l.h) }

// Trace returns a copy of e.
func (l *GTD) Trace() []float64 { return vector.Clone(l.e) }

// State returns a snapshot of w, h and e.
func (l *GTD) State() State {
	return State{W: vector.Clone(l.w), H: vector.Clone(l.h), E: vector.Clone(l.e)}
}

// Reset zeroes w, h and e.
func (l *GTD) Reset() {
	vector.Zero(l.w)
	vector.Zero(l.h)
	vector.Zero(l.e)
}

// Diagnose reports estimator.ErrNonFinite if w, h or e diverged.
func (l *GTD) Diagnose() error {
	return estimator.CheckFinite(opGTDDiagnose,
		estimator.Named{Name: "w", Values: l.w},
		estimator.Named{Name: "h", Values: l.h},
		estimator.Named{Name: "e", Values: l.e},
	)
}
