// SPDX-License-Identifier: MIT

// Package estimator defines what every tdlearn estimator has in common: the
// transition it consumes, the capability interfaces it exposes, and the shared
// error taxonomy.
//
// Capability set:
//
//	Every estimator exposes Value(x) and Reset(), and an Update method whose
//	signature is specific to its variant (it carries only the scalars that
//	variant needs: ρ, interest, a second stepsize β, λ'...). Update is therefore
//	not part of the interface; drivers hold the concrete type.
//
// Error taxonomy:
//   - ErrInvalidFeatures    : n <= 0 at construction (configuration error).
//   - ErrDimensionMismatch  : a feature vector whose length differs from n.
//   - ErrNonFinite          : weights/traces diverged to NaN or ±Inf. Reported
//     by Diagnose on request; Update never raises it.
//
// Concurrency:
//
//	Instances are single-owner values with no internal locking. Independent
//	instances share nothing and may run on separate goroutines.
package estimator
