package gradient

// Params carries the per-step scalars shared by GTD(λ) and HTD(λ).
type Params struct {
	Alpha     float64 // stepsize of the primary weights w
	Beta      float64 // stepsize of the correction weights h
	Gamma     float64 // discount of the current state, γ
	GammaNext float64 // discount of the next state, γ'
	Lambda    float64 // bootstrapping of the current state, λ
	Rho       float64 // importance ratio π(a|s)/μ(a|s)
}

// State is a value snapshot of a GTD or HTD estimator. Z is nil for GTD.
type State struct {
	W []float64 // primary weights
	H []float64 // correction weights
	E []float64 // importance-weighted trace
	Z []float64 // on-policy trace (HTD only)
}
