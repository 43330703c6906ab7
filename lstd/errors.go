// SPDX-License-Identifier: MIT
// Package lstd: sentinel errors.

package lstd

import "errors"

// ErrBadEpsilon is returned when a regularization seed ε is negative, NaN or ±Inf.
var ErrBadEpsilon = errors.New("lstd: epsilon must be finite and >= 0")
