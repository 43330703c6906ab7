// Package td implements TD(λ) with accumulating traces and linear function
// approximation, the baseline every other tdlearn estimator extends or corrects.
//
// Update (one transition x → x' with reward r):
//
//	δ = r + γ'·(w·x') − w·x
//	e ← x + γλ·e
//	w ← w + α·δ·e
//
// γ, γ' and λ are supplied per step, so state-dependent discounting (general
// value functions) works without any extra configuration.
//
// With λ=0 the trace is just x and the update is one-step bootstrapping. Large
// α, or λ near 1 with correlated features, can diverge; that is a property of
// on-policy TD with accumulating traces and is not suppressed here. Off-policy
// data needs emphatic or gradient-corrected variants (packages emphatic, gradient).
//
// Per-feature stepsizes (for example exp(β) from package idbd) are consumed
// through UpdateStepsizes.
package td
