// Package emphatic implements emphatic temporal-difference learning: the
// followon/emphasis Tracker shared with emphatic LSTD (package lstd), ETD(λ),
// and true-online emphatic TD(λ).
//
// Emphasis (per step, given γ, λ, interest I and importance ratio ρ):
//
//	F ← γ·F + I                  uses last step's F, already corrected by last step's ρ
//	M ← λ·I + (1−λ)·F
//	... trace and weight update using M ...
//	F ← ρ·F                      this step's ρ only reaches the next step
//
// The post-multiply by ρ is deliberately last. Moving it before the F update
// changes which step's ratio discounts the followon trace.
//
// ETD(λ):
//
//	δ = r + γ'·(w·x') − w·x
//	z ← ρ·(M·x + γλ·z)
//	w ← w + α·δ·z
//
// With interest ≡ 1 and ρ ≡ 1 the emphasis is identically 1 when λ = 1 or
// γ = 0, and ETD(λ) then follows TD(λ) exactly.
package emphatic
