// Package trueonline implements true-online TD(λ) with dutch traces.
//
//	δ  = r + γ'·(w·x') − w·x
//	z ← γλ·z + α·x − α·γλ·(z·x)·x
//	w ← w + δ·z + α·(w_old·x − w·x)·x
//	w_old ← w (as it stood before this step)
//
// The correction term compares the weights of the previous step with the
// weights this step started from, so on the first step after New or Reset
// it is exactly zero.
package trueonline
