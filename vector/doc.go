// SPDX-License-Identifier: MIT

// Package vector is the VectorState layer shared by every estimator in tdlearn.
//
// What & Why:
//
//	Weights, eligibility traces and correction vectors are dense float64 slices
//	of a length n that is fixed when an estimator is built. This package owns
//	no algorithmic logic. It offers the handful of flat-slice kernels the update
//	rules are written in (Dot, Axpy, Scale, Zero, Clone) and a single place
//	where lengths are checked against n.
//
// Contract:
//   - Kernels never broadcast. A length mismatch is ErrDimensionMismatch.
//   - Kernels never allocate unless their name says so (Clone, New).
//   - Loops run 0..n-1 in a fixed order so results are bit-for-bit reproducible.
//
// Complexity:
//
//	Every kernel is O(n) time and O(1) extra space (Clone and New: O(n) space).
package vector
