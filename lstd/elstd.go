// SPDX-License-Identifier: MIT

// Package lstd implements emphatic least-squares TD (ELSTD). Instead of
// stepping weights it accumulates the sufficient statistics
//
//	F ← γ·F + I;  M = λ·I + (1−λ)·F
//	z ← γλ·z + M·x
//	A ← A + z ⊗ (x − γ'·x')
//	b ← b + r·z
//
// and derives θ = A⁺·b on demand through an SVD pseudo-inverse, so a
// singular A (routine after fewer than n transitions) still yields the
// minimum-norm least-squares solution.
//
// Cost: Update is O(n²). Theta is an O(n³) solve; the result is cached until
// the next Update or Reset, but the first read after any accumulation always
// pays for a fresh solve.
package lstd

import (
	"fmt"

	"github.com/katalvlaran/tdlearn/emphatic"
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/matrix"
	"github.com/katalvlaran/tdlearn/vector"
)

const (
	opUpdate   = "ELSTD.Update"
	opTheta    = "ELSTD.Theta"
	opValue    = "ELSTD.Value"
	opReset    = "ELSTD.ResetWithEpsilon"
	opDiagnose = "ELSTD.Diagnose"
)

// Params carries the per-step scalars of an ELSTD update. There is no
// stepsize and no importance ratio: ELSTD is on-policy.
type Params struct {
	Gamma     float64 // discount of the current state, γ
	GammaNext float64 // discount of the next state, γ'
	Lambda    float64 // bootstrapping of the current state, λ
	Interest  float64 // interest in the current state
}

// State is a value snapshot of an ELSTD accumulator. A is row-major n×n.
type State struct {
	A []float64
	B []float64
	Z []float64
	F float64
	M float64
}

// ELSTD accumulates A, b and the emphatic trace.
type ELSTD struct {
	n       int
	eps     float64
	rcond   float64
	a       *matrix.Dense
	b       []float64
	z       []float64
	tracker emphatic.Tracker

	diff  []float64 // scratch for x − γ'·x'
	theta []float64 // cached A⁺·b, valid while !dirty
	dirty bool
}

var _ estimator.Estimator = (*ELSTD)(nil)

// New returns an ELSTD accumulator for n features with A = ε·I (ε from
// WithEpsilon, default 0) and zero b, z, F, M.
// Errors: estimator.ErrInvalidFeatures when n <= 0.
func New(n int, opts ...Option) (*ELSTD, error) {
	if err := estimator.ValidateFeatures(n); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	a, err := matrix.NewScaledIdentity(n, o.epsilon)
	if err != nil {
		return nil, err
	}

	return &ELSTD{
		n:     n,
		eps:   o.epsilon,
		rcond: o.rcond,
		a:     a,
		b:     make([]float64, n),
		z:     make([]float64, n),
		diff:  make([]float64, n),
		dirty: true,
	}, nil
}

// Features returns n.
func (l *ELSTD) Features() int { return l.n }

// Epsilon returns the seed ε that Reset restores A to.
func (l *ELSTD) Epsilon() float64 { return l.eps }

// Update accumulates one transition into A, b and z.
// Implementation:
//   - Stage 1: validate x, x' (no mutation on error).
//   - Stage 2: emphasis step (no importance correction).
//   - Stage 3: z ← γλz + Mx; A ← A + z(x − γ'x')ᵀ; b ← b + rz.
//   - Stage 4: invalidate the cached θ.
//
// Complexity: O(n²).
func (l *ELSTD) Update(tr estimator.Transition, p Params) error {
	if err := estimator.ValidateTransition(opUpdate, l.n, tr); err != nil {
		return err
	}
	m := l.tracker.Step(p.Gamma, p.Lambda, p.Interest)
	vector.Scale(p.Gamma*p.Lambda, l.z)
	vector.Axpy(m, tr.X, l.z)

	for i := range l.diff {
		l.diff[i] = tr.X[i] - p.GammaNext*tr.XNext[i]
	}
	if err := l.a.AddOuter(1, l.z, l.diff); err != nil {
		return fmt.Errorf("%s: %w", opUpdate, err)
	}
	vector.Axpy(tr.Reward, l.z, l.b)
	l.dirty = true

	return nil
}

// Theta returns a copy of θ = A⁺·b.
// Errors: matrix.ErrNaNInf if A diverged, matrix.ErrSVDFailed.
// Complexity: O(n³) on the first call after Update or Reset, O(n) afterwards.
func (l *ELSTD) Theta() ([]float64, error) {
	if l.dirty {
		theta, err := matrix.SolveLeastSquares(l.a, l.b, matrix.WithRcond(l.rcond))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opTheta, err)
		}
		l.theta, l.dirty = theta, false
	}

	return vector.Clone(l.theta), nil
}

// Value returns θ·x. It pays for a solve when the cache is stale.
// Errors: estimator.ErrDimensionMismatch, plus those of Theta.
func (l *ELSTD) Value(x []float64) (float64, error) {
	if err := estimator.ValidateVector(opValue, "x", l.n, x); err != nil {
		return 0, err
	}
	if _, err := l.Theta(); err != nil {
		return 0, err
	}

	return vector.Dot(l.theta, x), nil
}

// Accumulators returns copies of A and b.
func (l *ELSTD) Accumulators() (*matrix.Dense, []float64) {
	return l.a.Clone().(*matrix.Dense), vector.Clone(l.b)
}

// Trace returns a copy of z.
func (l *ELSTD) Trace() []float64 { return vector.Clone(l.z) }

// Followon returns F.
func (l *ELSTD) Followon() float64 { return l.tracker.Followon() }

// Emphasis returns the last step's M.
func (l *ELSTD) Emphasis() float64 { return l.tracker.Emphasis() }

// State returns a snapshot of A, b, z, F and M.
func (l *ELSTD) State() State {
	return State{
		A: l.a.RawCopy(),
		B: vector.Clone(l.b),
		Z: vector.Clone(l.z),
		F: l.tracker.Followon(),
		M: l.tracker.Emphasis(),
	}
}

// Reset restores A = ε·I with the current ε and zeroes b, z, F and M.
func (l *ELSTD) Reset() {
	_ = l.a.Reset(l.eps) // A is always square
	vector.Zero(l.b)
	vector.Zero(l.z)
	l.tracker.Reset()
	l.theta, l.dirty = nil, true
}

// ResetWithEpsilon is Reset with a new seed ε, which later Reset calls reuse.
// Errors: ErrBadEpsilon; state is untouched on error.
func (l *ELSTD) ResetWithEpsilon(eps float64) error {
	if !validEpsilon(eps) {
		return fmt.Errorf("%s: eps=%v: %w", opReset, eps, ErrBadEpsilon)
	}
	l.eps = eps
	l.Reset()

	return nil
}

// Diagnose reports estimator.ErrNonFinite if A, b, z, F or M diverged.
func (l *ELSTD) Diagnose() error {
	if err := estimator.CheckFinite(opDiagnose,
		estimator.Named{Name: "A", Values: l.a.RawCopy()},
		estimator.Named{Name: "b", Values: l.b},
		estimator.Named{Name: "z", Values: l.z},
	); err != nil {
		return err
	}

	return l.tracker.Diagnose()
}
