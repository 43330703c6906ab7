// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// pseudo-inverse. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRcond is the relative cutoff for small singular values in
	// PseudoInverse: σ_i ≤ rcond·σ_max is treated as zero. It matches the
	// Matches the common pinv default cutoff.
	DefaultRcond = 1e-15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRcondInvalid = "matrix: WithRcond: rcond must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	rcond float64 // >= 0; DefaultRcond
}

// WithRcond sets the relative singular-value cutoff used by PseudoInverse.
// Implementation:
//   - Stage 1: validate rcond is finite and ≥ 0.
//   - Stage 2: return a setter that writes rcond into Options.
//
// Errors:
//   - Panics with a stable message when rcond is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Raise rcond (e.g. 1e-10) when A is built from few, nearly collinear
//     transitions and the solution is dominated by noise directions.
func WithRcond(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 {
		panic(panicRcondInvalid)
	}

	return func(o *Options) { o.rcond = rcond }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{rcond: DefaultRcond}
}

// gatherOptions applies setters over defaults in call order (last write wins).
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
