// SPDX-License-Identifier: MIT

// Package variance implements direct-variance TD (DVTD): a TD(λ) value
// learner paired with a second linear learner whose reward is the value
// side's squared TD error.
//
// Value side (TD(λ), accumulating trace):
//
//	δ = r + γ'·(w·x') − w·x
//	z ← x + γλ·z
//	w ← w + α·δ·z
//
// Variance side (one-step, no trace):
//
//	ε     = δ² + (γ'λ')²·(w_var·x') − w_var·x
//	w_var ← w_var + α·ε·x
//
// The variance side deliberately runs TD(0). When the value side has
// converged to the true value function its target is an unbiased sample of
// the λ-return variance; under limited function approximation it is only
// approximate.
package variance
