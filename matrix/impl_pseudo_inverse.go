// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Moore–Penrose pseudo-inverse and the least-squares solve built on it.
//   - Stay well-defined for singular and ill-conditioned systems, which is the
//     normal state of an ELSTD accumulator after fewer than n transitions.
//
// Design:
//   - The decomposition is delegated to gonum's SVD; this file only converts
//     storage, applies the rcond cutoff and assembles V·Σ⁺·Uᵀ.
//
// Complexity:
//   - O(min(r,c)·r·c) for the SVD, plus O(r·c·k) assembly (k = kept singular values).

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// toGonum copies any Matrix into a fresh *mat.Dense.
// Complexity: O(r*c).
func toGonum(m Matrix) (*mat.Dense, error) {
	if d, ok := m.(*Dense); ok {
		return mat.NewDense(d.r, d.c, d.RawCopy()), nil
	}
	r, c := m.Rows(), m.Cols()
	g := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			g.Set(i, j, v)
		}
	}

	return g, nil
}

// PseudoInverse returns the Moore–Penrose pseudo-inverse A⁺ (shape c×r).
// MAIN DESCRIPTION:
//   - A⁺ = V·Σ⁺·Uᵀ where σ_k ≤ rcond·σ_max is treated as zero.
//
// Implementation:
//   - Stage 1: validate non-nil, finite input.
//   - Stage 2: thin SVD via gonum (mat.SVD, SVDThin).
//   - Stage 3: cutoff = rcond·σ_max; accumulate (1/σ_k)·v_k·u_kᵀ for kept k.
//
// Behavior highlights:
//   - A zero matrix yields a zero pseudo-inverse (every σ is cut).
//   - Never inverts directly; singular A is a normal input, not an error.
//
// Inputs:
//   - m   : any r×c Matrix.
//   - opts: WithRcond to override DefaultRcond.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite input), ErrSVDFailed.
//
// Complexity:
//   - Time O(n³) for square n×n input, Space O(n²).
//
// AI-Hints:
//   - Callers that only need A⁺·b should use SolveLeastSquares.
func PseudoInverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	o := gatherOptions(opts...)

	a, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, matrixErrorf(opPinv, ErrSVDFailed)
	}
	sigma := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	if len(sigma) == 0 || sigma[0] == 0 {
		return out, nil // zero matrix: pseudo-inverse is zero
	}
	cutoff := o.rcond * sigma[0] // values are sorted descending

	var i, j, k int
	var inv, vik float64
	for k = 0; k < len(sigma); k++ {
		if sigma[k] <= cutoff {
			break
		}
		inv = 1 / sigma[k]
		for i = 0; i < c; i++ {
			vik = v.At(i, k) * inv
			if vik == 0 {
				continue
			}
			base := i * r
			for j = 0; j < r; j++ {
				out.data[base+j] += vik * u.At(j, k)
			}
		}
	}

	return out, nil
}

// SolveLeastSquares returns θ = A⁺·b, the minimum-norm least-squares solution
// of A·θ = b.
// Errors: those of PseudoInverse, plus ErrDimensionMismatch when len(b) != Rows.
// Complexity: O(n³).
func SolveLeastSquares(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	pinv, err := PseudoInverse(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return MatVec(pinv, b)
}
