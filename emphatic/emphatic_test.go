package emphatic_test

import (
	"testing"

	"github.com/katalvlaran/tdlearn/emphatic"
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/td"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const tol = 1e-12

func randomTransitions(seed uint64, n, steps int) []estimator.Transition {
	rng := rand.New(rand.NewSource(seed))
	out := make([]estimator.Transition, steps)
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()
	}
	for s := range out {
		xp := make([]float64, n)
		for i := range xp {
			xp[i] = rng.Float64()
		}
		out[s] = estimator.Transition{X: x, Reward: rng.NormFloat64(), XNext: xp}
		x = xp
	}

	return out
}

// TestTracker_DeferredCorrection pins the order F←γF+I, M←λI+(1−λ)F, then F←ρF.
func TestTracker_DeferredCorrection(t *testing.T) {
	var tr emphatic.Tracker

	m := tr.Step(0.5, 0, 1)
	assert.Equal(t, 1.0, m)
	assert.Equal(t, 1.0, tr.Followon())
	tr.Correct(2) // this step's ρ only shows up next step
	assert.Equal(t, 2.0, tr.Followon())
	assert.Equal(t, 1.0, tr.Emphasis(), "correction must not touch M")

	m = tr.Step(0.5, 0, 1)
	assert.Equal(t, 2.0, m, "F = 0.5·2 + 1")
	tr.Correct(0)

	m = tr.Step(0.5, 0.25, 1)
	assert.Equal(t, 1.0, m, "F = 0.5·0 + 1, M = 0.25 + 0.75·1")

	tr.Reset()
	assert.Equal(t, emphatic.Tracker{}, tr)
	assert.NoError(t, tr.Diagnose())
}

// TestETD_MatchesTD checks ETD(λ) ≡ TD(λ) when interest ≡ 1, ρ ≡ 1 and M ≡ 1.
func TestETD_MatchesTD(t *testing.T) {
	cases := []struct {
		name          string
		gamma, lambda float64
	}{
		{name: "lambda=1", gamma: 0.9, lambda: 1},
		{name: "gamma=0", gamma: 0, lambda: 0.6},
	}
	const n = 5
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := td.New(n)
			require.NoError(t, err)
			l, err := emphatic.NewETD(n)
			require.NoError(t, err)

			for _, tr := range randomTransitions(3, n, 200) {
				dRef, err := ref.Update(tr, td.Params{Alpha: 0.01, Gamma: tc.gamma, GammaNext: tc.gamma, Lambda: tc.lambda})
				require.NoError(t, err)
				d, err := l.Update(tr, emphatic.Params{
					Alpha: 0.01, Gamma: tc.gamma, GammaNext: tc.gamma, Lambda: tc.lambda, Rho: 1, Interest: 1,
				})
				require.NoError(t, err)
				require.InDelta(t, dRef, d, tol)
				require.InDeltaSlice(t, ref.Weights(), l.Weights(), tol)
				require.Equal(t, 1.0, l.Emphasis())
			}
		})
	}
}

// TestETD_ConcreteScenario repeats the two-feature hand example with emphasis.
func TestETD_ConcreteScenario(t *testing.T) {
	l, err := emphatic.NewETD(2)
	require.NoError(t, err)

	d, err := l.Update(
		estimator.Transition{X: []float64{1, 0}, Reward: 1, XNext: []float64{0, 1}},
		emphatic.Params{Alpha: 0.1, Gamma: 0.9, GammaNext: 0.9, Lambda: 0, Rho: 0.5, Interest: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
	assert.InDeltaSlice(t, []float64{0.5, 0}, l.Trace(), tol, "z = ρ·M·x with M = 1")
	assert.InDeltaSlice(t, []float64{0.05, 0}, l.Weights(), tol)
	assert.InDelta(t, 0.5, l.Followon(), tol, "F corrected by ρ after the step")
	assert.InDelta(t, 1.0, l.Emphasis(), tol)
}

// TestETD_ZeroRhoCutsTrace shows ρ=0 zeroes the trace and the next followon.
func TestETD_ZeroRhoCutsTrace(t *testing.T) {
	l, err := emphatic.NewETD(2)
	require.NoError(t, err)
	p := emphatic.Params{Alpha: 0.1, Gamma: 0.9, GammaNext: 0.9, Lambda: 0.5, Rho: 1, Interest: 1}
	tr := estimator.Transition{X: []float64{1, 1}, Reward: 1, XNext: []float64{1, 0}}

	_, err = l.Update(tr, p)
	require.NoError(t, err)
	p.Rho = 0
	_, err = l.Update(tr, p)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, l.Trace())
	assert.Equal(t, 0.0, l.Followon())

	// Next step starts from F = 0: F = 0.9·0 + 1 = 1, M = 0.5 + 0.5·1 = 1.
	p.Rho = 1
	_, err = l.Update(tr, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, l.Emphasis(), tol)
}

// TestETD_ResetAndValidation covers reset equality and no-mutation on bad input.
func TestETD_ResetAndValidation(t *testing.T) {
	_, err := emphatic.NewETD(0)
	assert.ErrorIs(t, err, estimator.ErrInvalidFeatures)

	fresh, err := emphatic.NewETD(3)
	require.NoError(t, err)
	l, err := emphatic.NewETD(3)
	require.NoError(t, err)
	l.Reset()
	assert.Equal(t, fresh.State(), l.State())

	for _, tr := range randomTransitions(5, 3, 20) {
		_, err = l.Update(tr, emphatic.Params{Alpha: 0.1, Gamma: 0.9, GammaNext: 0.9, Lambda: 0.5, Rho: 1.2, Interest: 1})
		require.NoError(t, err)
	}
	before := l.State()
	_, err = l.Update(estimator.Transition{X: []float64{1, 2}, XNext: []float64{1, 2, 3}}, emphatic.Params{Alpha: 1, Rho: 1, Interest: 1})
	assert.ErrorIs(t, err, estimator.ErrDimensionMismatch)
	assert.Equal(t, before, l.State())
	_, err = l.Value([]float64{1})
	assert.ErrorIs(t, err, estimator.ErrDimensionMismatch)

	require.NoError(t, l.Diagnose())
	l.Reset()
	assert.Equal(t, fresh.State(), l.State())
}

// TestTrueOnlineETD_TwoSteps pins the carried D and discount against a hand computation.
func TestTrueOnlineETD_TwoSteps(t *testing.T) {
	l, err := emphatic.NewTrueOnlineETD(1)
	require.NoError(t, err)
	tr := estimator.Transition{X: []float64{1}, Reward: 1, XNext: []float64{1}}
	p := emphatic.TrueOnlineParams{Alpha: 0.5, GammaNext: 1, Lambda: 1, Rho: 1, Interest: 1}

	d, err := l.Update(tr, p)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
	s := l.State()
	assert.InDeltaSlice(t, []float64{0.5}, s.Theta, tol)
	assert.InDeltaSlice(t, []float64{0.5}, s.E, tol)
	assert.InDelta(t, 0.5, s.D, tol)
	assert.Equal(t, 1.0, s.Gamma)

	d, err = l.Update(tr, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, tol)
	s = l.State()
	assert.InDeltaSlice(t, []float64{0.75}, s.E, tol)
	assert.InDeltaSlice(t, []float64{1.375}, s.Theta, tol)
	assert.InDelta(t, 0.875, s.D, tol)
	assert.InDelta(t, 2.0, s.F, tol)
}

// TestTrueOnlineETD_TerminalLMS checks that with γ' ≡ 0 and λ ≡ 0 every step is
// the supervised update θ ← θ + α·(r − θ·x)·x.
func TestTrueOnlineETD_TerminalLMS(t *testing.T) {
	const n = 3
	l, err := emphatic.NewTrueOnlineETD(n)
	require.NoError(t, err)
	want := make([]float64, n)

	for _, tr := range randomTransitions(9, n, 100) {
		pred := 0.0
		for i := range want {
			pred += want[i] * tr.X[i]
		}
		for i := range want {
			want[i] += 0.1 * (tr.Reward - pred) * tr.X[i]
		}
		_, err = l.Update(tr, emphatic.TrueOnlineParams{Alpha: 0.1, GammaNext: 0, Lambda: 0, Rho: 1, Interest: 1})
		require.NoError(t, err)
	}
	assert.InDeltaSlice(t, want, l.Weights(), 1e-9)
}

// TestTrueOnlineETD_ResetAndValidation covers reset equality and no-mutation on bad input.
func TestTrueOnlineETD_ResetAndValidation(t *testing.T) {
	_, err := emphatic.NewTrueOnlineETD(-2)
	assert.ErrorIs(t, err, estimator.ErrInvalidFeatures)

	fresh, err := emphatic.NewTrueOnlineETD(2)
	require.NoError(t, err)
	l, err := emphatic.NewTrueOnlineETD(2)
	require.NoError(t, err)
	for _, tr := range randomTransitions(4, 2, 10) {
		_, err = l.Update(tr, emphatic.TrueOnlineParams{Alpha: 0.1, GammaNext: 0.9, Lambda: 0.9, Rho: 0.8, Interest: 1})
		require.NoError(t, err)
	}
	before := l.State()
	_, err = l.Update(estimator.Transition{X: []float64{1}, XNext: []float64{1, 1}}, emphatic.TrueOnlineParams{Alpha: 1})
	assert.ErrorIs(t, err, estimator.ErrDimensionMismatch)
	assert.Equal(t, before, l.State())

	v, err := l.Value([]float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, l.Weights()[0], v)
	require.NoError(t, l.Diagnose())

	l.Reset()
	assert.Equal(t, fresh.State(), l.State())
}
