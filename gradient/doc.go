// SPDX-License-Identifier: MIT

// Package gradient implements the off-policy-stable linear estimators
// GTD/TDC(λ) and HTD(λ). Both keep a primary weight vector w and a
// correction vector h trained on a slower time scale.
//
// Two stepsizes are required and kept separate: Alpha drives w and Beta
// drives h. Beta is typically the smaller one.
//
// GTD(λ):
//
//	δ = r + γ'·(w·x') − w·x
//	e ← ρ·(λγ·e + x)
//	w ← w + α·[δ·e + γ'·(1−λ)·(e·h)·x']
//	h ← h + β·[δ·e − (h·x)·x]
//
// HTD(λ) adds an on-policy trace z ← λγ·z + x:
//
//	w ← w + α·[δ·e + (γ'·x' − x)·((z − e)·h)]
//	h ← h + β·[δ·e + (γ'·x' − x)·(z·h)]
//
// With ρ ≡ 1, e and z coincide and HTD(λ) moves w exactly like TD(λ).
//
// All right-hand sides use the pre-update w and h.
package gradient
