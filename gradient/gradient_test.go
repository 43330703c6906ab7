package gradient_test

import (
	"testing"

	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/gradient"
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

func TestNew_InvalidFeatures(t *testing.T) {
	_, err := gradient.NewGTD(0)
	assert.ErrorIs(t, err, estimator.ErrInvalidFeatures)
	_, err = gradient.NewHTD(-1)
	assert.ErrorIs(t, err, estimator.ErrInvalidFeatures)
}

// TestGTD_TwoSteps checks the correction path against a hand computation.
func TestGTD_TwoSteps(t *testing.T) {
	l, err := gradient.NewGTD(2)
	require.NoError(t, err)
	tr := estimator.Transition{X: []float64{1, 0}, Reward: 1, XNext: []float64{0, 1}}
	p := gradient.Params{Alpha: 0.1, Beta: 0.05, Gamma: 0.9, GammaNext: 0.9, Lambda: 0, Rho: 1}

	d, err := l.Update(tr, p)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
	assert.InDeltaSlice(t, []float64{0.1, 0}, l.Weights(), tol)
	assert.InDeltaSlice(t, []float64{0.05, 0}, l.Correction(), tol)

	// δ = 1 − 0.1; h·x = e·h = 0.05; γ'(1−λ)(e·h) = 0.045.
	d, err = l.Update(tr, p)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, d, tol)
	assert.InDeltaSlice(t, []float64{0.19, 0.0045}, l.Weights(), tol)
	assert.InDeltaSlice(t, []float64{0.0925, 0}, l.Correction(), tol)
	assert.InDeltaSlice(t, []float64{1, 0}, l.Trace(), tol)
}

// TestGTD_LambdaOneOnPolicyMatchesTD checks that the x' correction vanishes at λ=1.
func TestGTD_LambdaOneOnPolicyMatchesTD(t *testing.T) {
	const n = 4
	ref, err := td.New(n)
	require.NoError(t, err)
	l, err := gradient.NewGTD(n)
	require.NoError(t, err)

	for _, tr := range randomTransitions(11, n, 200) {
		_, err = ref.Update(tr, td.Params{Alpha: 0.01, Gamma: 0.8, GammaNext: 0.8, Lambda: 1})
		require.NoError(t, err)
		_, err = l.Update(tr, gradient.Params{Alpha: 0.01, Beta: 0.005, Gamma: 0.8, GammaNext: 0.8, Lambda: 1, Rho: 1})
		require.NoError(t, err)
	}
	assert.InDeltaSlice(t, ref.Weights(), l.Weights(), 1e-9)
}

// TestGTD_ZeroRhoFreezesWeights: ρ=0 clears e, so only h moves.
func TestGTD_ZeroRhoFreezesWeights(t *testing.T) {
	l, err := gradient.NewGTD(3)
	require.NoError(t, err)
	stream := randomTransitions(12, 3, 20)
	for _, tr := range stream[:10] {
		_, err = l.Update(tr, gradient.Params{Alpha: 0.1, Beta: 0.1, Gamma: 0.9, GammaNext: 0.9, Lambda: 0.5, Rho: 1})
		require.NoError(t, err)
	}
	w := l.Weights()
	for _, tr := range stream[10:] {
		_, err = l.Update(tr, gradient.Params{Alpha: 0.1, Beta: 0.1, Gamma: 0.9, GammaNext: 0.9, Lambda: 0.5, Rho: 0})
		require.NoError(t, err)
	}
	assert.Equal(t, w, l.Weights())
	assert.Equal(t, []float64{0, 0, 0}, l.Trace())
}

// TestHTD_OnPolicyMatchesTD checks e ≡ z at every step and w follows TD(λ).
func TestHTD_OnPolicyMatchesTD(t *testing.T) {
	const n = 5
	ref, err := td.New(n)
	require.NoError(t, err)
	l, err := gradient.NewHTD(n)
	require.NoError(t, err)

	for _, tr := range randomTransitions(13, n, 300) {
		dRef, err := ref.Update(tr, td.Params{Alpha: 0.02, Gamma: 0.9, GammaNext: 0.9, Lambda: 0.7})
		require.NoError(t, err)
		d, err := l.Update(tr, gradient.Params{Alpha: 0.02, Beta: 0.01, Gamma: 0.9, GammaNext: 0.9, Lambda: 0.7, Rho: 1})
		require.NoError(t, err)

		e, z := l.Traces()
		require.Equal(t, e, z)
		require.InDelta(t, dRef, d, 1e-9)
		require.InDeltaSlice(t, ref.Weights(), l.Weights(), 1e-9)
	}
	assert.NotEqual(t, make([]float64, n), l.Correction(), "h still learns on-policy")
}

// TestHTD_OffPolicyUsesCorrection checks that e and z part ways when ρ≠1
// and that the (z−e)·h term moves w along γ'x' − x.
func TestHTD_OffPolicyUsesCorrection(t *testing.T) {
	l, err := gradient.NewHTD(1)
	require.NoError(t, err)
	tr := estimator.Transition{X: []float64{1}, Reward: 1, XNext: []float64{1}}
	p := gradient.Params{Alpha: 0.1, Beta: 0.1, Gamma: 0.5, GammaNext: 0.5, Lambda: 1, Rho: 1}

	// step 1: δ=1, e=z=1, w=0.1, h = 0.1·(1 + (0.5−1)·0) = 0.1
	_, err = l.Update(tr, p)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.1}, l.Weights(), tol)
	assert.InDeltaSlice(t, []float64{0.1}, l.Correction(), tol)

	// step 2 with ρ=2: δ = 1 + 0.05 − 0.1 = 0.95, e = 2·1.5 = 3, z = 1.5,
	// (z−e)·h = −0.15, z·h = 0.15, direction = −0.5.
	p.Rho = 2
	d, err := l.Update(tr, p)
	require.NoError(t, err)
	assert.InDelta(t, 0.95, d, tol)
	e, z := l.Traces()
	assert.InDeltaSlice(t, []float64{3}, e, tol)
	assert.InDeltaSlice(t, []float64{1.5}, z, tol)
	assert.InDeltaSlice(t, []float64{0.1 + 0.1*(0.95*3+0.075)}, l.Weights(), tol)
	assert.InDeltaSlice(t, []float64{0.1 + 0.1*(0.95*3-0.075)}, l.Correction(), tol)
}

func TestResetAndValidation(t *testing.T) {
	stream := randomTransitions(14, 3, 10)
	bad := estimator.Transition{X: []float64{1, 2, 3}, XNext: []float64{1}}
	p := gradient.Params{Alpha: 0.1, Beta: 0.05, Gamma: 0.9, GammaNext: 0.9, Lambda: 0.5, Rho: 1.5}

	g, err := gradient.NewGTD(3)
	require.NoError(t, err)
	freshG := g.State()
	h, err := gradient.NewHTD(3)
	require.NoError(t, err)
	freshH := h.State()

	for _, tr := range stream {
		_, err = g.Update(tr, p)
		require.NoError(t, err)
		_, err = h.Update(tr, p)
		require.NoError(t, err)
	}

	before := g.State()
	_, err = g.Update(bad, p)
	assert.ErrorIs(t, err, estimator.ErrDimensionMismatch)
	assert.Equal(t, before, g.State())

	before = h.State()
	_, err = h.Update(bad, p)
	assert.ErrorIs(t, err, estimator.ErrDimensionMismatch)
	assert.Equal(t, before, h.State())

	_, err = g.Value([]float64{1})
	assert.ErrorIs(t, err, estimator.ErrDimensionMismatch)
	require.NoError(t, g.Diagnose())
	require.NoError(t, h.Diagnose())

	g.Reset()
	h.Reset()
	assert.Equal(t, freshG, g.State())
	assert.Equal(t, freshH, h.State())
}
