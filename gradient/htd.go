package gradient

import (
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/vector"
)

const (
	opHTDUpdate   = "HTD.Update"
	opHTDValue    = "HTD.Value"
	opHTDDiagnose = "HTD.Diagnose"
)

// HTD is hybrid TD(λ): on-policy it behaves like TD(λ), off-policy like GTD(λ).
type HTD struct {
	n int
	w []float64
	h []float64
	e []float64 // importance-weighted trace
	z []float64 // on-policy trace
}

var _ estimator.Estimator = (*HTD)(nil)

// NewHTD returns an HTD(λ) learner for n features; all vectors start at zero.
// Errors: estimator.ErrInvalidFeatures when n <= 0.
func NewHTD(n int) (*HTD, error) {
	if err := estimator.ValidateFeatures(n); err != nil {
		return nil, err
	}

	return &HTD{
		n: n,
		w: make([]float64, n),
		h: make([]float64, n),
		e: make([]float64, n),
		z: make([]float64, n),
	}, nil
}

// Features returns n.
func (l *HTD) Features() int { return l.n }

// Value returns w·x.
func (l *HTD) Value(x []float64) (float64, error) {
	if err := estimator.ValidateVector(opHTDValue, "x", l.n, x); err != nil {
		return 0, err
	}

	return vector.Dot(l.w, x), nil
}

// Update applies one HTD(λ) step and returns δ.
// Implementation:
//   - Stage 1: validate x, x' (no mutation on error).
//   - Stage 2: δ from pre-update w.
//   - Stage 3: traces e ← ρ(λγe + x) and z ← λγz + x.
//   - Stage 4: scalars (z−e)·h and z·h from the old h, then w and h in one pass
//     along the direction γ'x' − x.
//
// Complexity: O(n).
func (l *HTD) Update(tr estimator.Transition, p Params) (float64, error) {
	if err := estimator.ValidateTransition(opHTDUpdate, l.n, tr); err != nil {
		return 0, err
	}
	x, xp := tr.X, tr.XNext
	d := tr.Reward + p.GammaNext*vector.Dot(l.w, xp) - vector.Dot(l.w, x)

	decay := p.Lambda * p.Gamma
	var diffH, zh float64
	for i := range l.e {
		l.e[i] = p.Rho * (decay*l.e[i] + x[i])
		l.z[i] = decay*l.z[i] + x[i]
		diffH += (l.z[i] - l.e[i]) * l.h[i]
		zh += l.z[i] * l.h[i]
	}

	var dir float64
	for i := range l.w {
		dir = p.GammaNext*xp[i] - x[i]
		l.w[i] += p.Alpha * (d*l.e[i] + dir*diffH)
		l.h[i] += p.Beta * (d*l.e[i] + dir*zh)
	}

	return d, nil
}

// Weights returns a copy of w.
func (l *HTD) Weights() []float64 { return vector.Clone(l.w) }

// Correction returns a copy of h.
func (l *HTD) Correction() []float64 { return vector.Clone(l.h) }

// Traces returns copies of the importance-weighted trace e and the on-policy trace z.
func (l *HTD) Traces() (e, z []float64) { return vector.Clone(l.e), vector.Clone(l.z) }

// State returns a snapshot of w, h, e and z.
func (l *HTD) State() State {
	return State{W: vector.Clone(l.w), H: vector.Clone(l.h), E: vector.Clone(l.e), Z: vector.Clone(l.z)}
}

// Reset zeroes w, h, e and z.
func (l *HTD) Reset() {
	vector.Zero(l.w)
	vector.Zero(l.h)
	vector.Zero(l.e)
	vector.Zero(l.z)
}

// Diagnose reports estimator.ErrNonFinite if any vector diverged.
func (l *HTD) Diagnose() error {
	return estimator.CheckFinite(opHTDDiagnose,
		estimator.Named{Name: "w", Values: l.w},
		estimator.Named{Name: "h", Values: l.h},
		estimator.Named{Name: "e", Values: l.e},
		estimator.Named{Name: "z", Values: l.z},
	)
}
