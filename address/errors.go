// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import "errors"

// errNoValidAddress is returned when all 256 bumps produce an on-curve
// candidate. Spec section 4.1 treats this as a fatal protocol error, not a
// retryable condition.
var errNoValidAddress = errors.New("address: no off-curve candidate found for any bump")

// ErrNoValidAddress is the exported form for callers that need to match on
// this specific fatal condition with errors.Is.
var ErrNoValidAddress = errNoValidAddress
