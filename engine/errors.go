// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import "errors"

// ErrInsufficientNativeBalance is returned by NativeLedger.Transfer when the
// source account cannot cover the requested amount.
var ErrInsufficientNativeBalance = errors.New("engine: insufficient native-currency balance")
