// SPDX-License-Identifier: MIT
// Package idbd: sentinel errors.

package idbd

import "errors"

// ErrBadMetaStep is returned by New when η is not a finite positive number.
// η ≤ 0 would make the stepsizes non-adaptive or push them the wrong way.
var ErrBadMetaStep = errors.New("idbd: meta stepsize must be finite and > 0")
