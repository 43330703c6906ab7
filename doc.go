// Package tdlearn is a family of online, incremental estimators for the
// value and variance of a return, consumed one transition at a time.
//
// 🚀 What is tdlearn?
//
//	A small, pure-Go library of linear temporal-difference learners:
//		• TD(λ) with accumulating traces, and per-feature stepsizes
//		• Emphatic TD: ETD(λ) and true-online ETD(λ)
//		• Off-policy stable: GTD/TDC(λ) and HTD(λ)
//		• True-online TD(λ) with dutch traces
//		• Direct-variance TD (value and variance of the λ-return)
//		• Emphatic least-squares TD (ELSTD), solved by SVD pseudo-inverse
//		• IDBD meta-learned stepsizes
//
// ✨ Why choose tdlearn?
//
//   - Explicit state – every estimator owns its vectors; Reset restores construction state
//   - Fail fast – feature lengths are checked on every call, and a failed call mutates nothing
//   - Inspectable – State() snapshots and Diagnose() for NaN/Inf after divergence
//   - Deterministic – no globals, no goroutines, no hidden randomness
//
// Everything is organized under flat subpackages:
//
//	vector/    : length validation and O(n) kernels (Dot, Axpy, ScaleAdd)
//	matrix/    : dense accumulator, rank-1 updates, pseudo-inverse (gonum SVD)
//	estimator/ : Transition, Estimator interfaces, shared sentinel errors
//	td/        : TD(λ)
//	emphatic/  : followon/emphasis Tracker, ETD(λ), true-online ETD(λ)
//	gradient/  : GTD(λ), HTD(λ)
//	trueonline/: TOTD
//	variance/  : DVTD
//	lstd/      : ELSTD
//	idbd/      : IDBD stepsize adapter
//	cmd/tdbench: random-walk benchmark CLI with optional HTML charts
//
// Concurrency: an estimator is single-owner. Calls for one trajectory must be
// issued in order; independent instances share nothing and may run in parallel.
//
// Quick start:
//
//	l, _ := td.New(2)
//	delta, err := l.Update(
//		estimator.Transition{X: []float64{1, 0}, Reward: 1, XNext: []float64{0, 1}},
//		td.Params{Alpha: 0.1, Gamma: 0.9, GammaNext: 0.9, Lambda: 0},
//	)
//
// Installation:
//
//	go get github.com/katalvlaran/tdlearn
package tdlearn
