package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tdlearn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddOuter accumulates two rank-1 terms and checks every cell.
func TestAddOuter(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.AddOuter(1, []float64{1, 2}, []float64{1, 0, -1}))
	require.NoError(t, m.AddOuter(0.5, []float64{0, 2}, []float64{2, 2, 2}))

	assert.Equal(t, []float64{1, 0, -1, 4, 2, 0}, m.RawCopy())
}

// TestAddOuter_MismatchNoMutation ensures a failed call leaves A untouched.
func TestAddOuter_MismatchNoMutation(t *testing.T) {
	m, err := matrix.NewScaledIdentity(2, 1)
	require.NoError(t, err)
	before := m.RawCopy()

	assert.ErrorIs(t, m.AddOuter(1, []float64{1}, []float64{1, 1}), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, m.AddOuter(1, []float64{1, 1}, nil), matrix.ErrNilMatrix)
	assert.Equal(t, before, m.RawCopy())

	var nilDense *matrix.Dense
	assert.ErrorIs(t, nilDense.AddOuter(1, []float64{1}, []float64{1}), matrix.ErrNilMatrix)
}

// TestMatVec covers the product and its validation.
func TestMatVec(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(1, 0, 3))
	require.NoError(t, m.Set(1, 1, 4))

	y, err := matrix.MatVec(m, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1}, y)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
