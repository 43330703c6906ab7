// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tdlearn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewScaledIdentity(-1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
}

// TestScaledIdentityAndReset checks the eps·I seed and in-place re-seeding.
func TestScaledIdentityAndReset(t *testing.T) {
	m, err := matrix.NewScaledIdentity(3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0, 0, 0.5, 0, 0, 0, 0.5}, m.RawCopy())

	require.NoError(t, m.Set(0, 2, 7))
	require.NoError(t, m.Reset(0))
	assert.Equal(t, make([]float64, 9), m.RawCopy(), "Reset(0) must zero everything")

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, rect.Reset(1), matrix.ErrNonSquare)
}

// TestCloneIndependence ensures Clone produces a deep copy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 3))

	cp := m.Clone()
	require.NoError(t, cp.Set(1, 1, -1))

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, "[0, 0]\n[0, 3]\n", m.String())
}
