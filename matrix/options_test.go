// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tdlearn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithRcond_PanicsOnNonsense verifies the stable panic message for invalid cutoffs.
func TestWithRcond_PanicsOnNonsense(t *testing.T) {
	for _, bad := range []float64{-1e-12, math.NaN(), math.Inf(1)} {
		assert.PanicsWithValue(t, "matrix: WithRcond: rcond must be finite, non-negative", func() {
			matrix.WithRcond(bad)
		}, "rcond=%v", bad)
	}
	assert.NotPanics(t, func() { matrix.WithRcond(0) })
}

// TestOptions_LastWriterWins: repeated setters resolve in call order and nil
// setters are ignored.
func TestOptions_LastWriterWins(t *testing.T) {
	// diag(1, 1e-3): a 1e-2 cutoff drops the small value, the default keeps it.
	m, err := matrix.NewScaledIdentity(2, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 1e-3))

	p, err := matrix.PseudoInverse(m, matrix.WithRcond(1e-2), nil, matrix.WithRcond(matrix.DefaultRcond))
	require.NoError(t, err)
	v, err := p.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1e3, v, 1e-9)

	p, err = matrix.PseudoInverse(m, matrix.WithRcond(matrix.DefaultRcond), matrix.WithRcond(1e-2))
	require.NoError(t, err)
	v, err = p.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-12)
}
