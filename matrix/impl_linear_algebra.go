// SPDX-License-Identifier: MIT
// Package matrix provides the accumulation and product kernels used by the
// least-squares estimators. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - In-place rank-1 accumulation A ← A + α·u·vᵀ (the ELSTD hot path).
//   - Matrix-vector products for reading derived solutions.
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAddOuter = "AddOuter"
	opMatVec   = "MatVec"
	opPinv     = "PseudoInverse"
	opSolve    = "SolveLeastSquares"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AddOuter accumulates A ← A + alpha·u·vᵀ in place.
// MAIN DESCRIPTION:
//   - Rank-1 update of the receiver; no allocation.
//
// Implementation:
//   - Stage 1: validate len(u) == Rows and len(v) == Cols (before any write).
//   - Stage 2: for each row i with u_i ≠ 0, add alpha·u_i·v to row i.
//
// Behavior highlights:
//   - Fails without touching the receiver on any validation error.
//   - Rows with u_i == 0 are skipped (sparse one-hot features are common).
//
// Inputs:
//   - alpha: scalar weight.
//   - u    : column factor, length Rows().
//   - v    : row factor, length Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - ELSTD uses alpha=1, u=z, v=(x − γ'·x'); compute v once per step.
func (m *Dense) AddOuter(alpha float64, u, v []float64) error {
	if m == nil {
		return matrixErrorf(opAddOuter, ErrNilMatrix)
	}
	if err := ValidateVecLen(u, m.r); err != nil {
		return matrixErrorf(opAddOuter, err)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return matrixErrorf(opAddOuter, err)
	}
	if alpha == 0 {
		return nil
	}

	var i, j, base int
	var s float64
	for i = 0; i < m.r; i++ {
		s = alpha * u[i]
		if s == 0 {
			continue
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] += s * v[j]
		}
	}

	return nil
}

// MatVec computes y = m·x for a conformable vector x (len(x) == m.Cols()).
// Implementation:
//   - Stage 1: Validate non-nil matrix and vector length.
//   - Stage 2: *Dense fast-path over the flat buffer; generic path via At otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r) for the result.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	for i := 0; i < rows; i++ {
		acc := ZeroSum
		for j := 0; j < cols; j++ {
			mv, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
