// Package matrix provides the dense linear-algebra layer behind the
// least-squares estimators of tdlearn.
//
// What & Why:
//
//	Emphatic LSTD does not step a weight vector. It accumulates a normal-equations
//	system A·θ = b, one rank-1 update per transition, and solves it on demand.
//	This package owns exactly that: a row-major Dense with a scaled-identity
//	seed, in-place rank-1 accumulation (AddOuter), matrix-vector products, and
//	a pseudo-inverse that stays well-defined when A is singular.
//
// Complexity:
//
//	NewDense/Clone O(r·c); At/Set O(1); AddOuter O(r·c); MatVec O(r·c);
//	PseudoInverse / SolveLeastSquares O(n³) through gonum's SVD.
//
// Errors are package sentinels (errors.go) matched with errors.Is.
package matrix
