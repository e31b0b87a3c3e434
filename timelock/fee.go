// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import "github.com/holiman/uint256"

// FeeBaseUnits is the flat protocol fee charged once, on lock creation only
// (spec section 6: "0.03 units on the target chain; literal value embedded
// in the program"). Never charged on top_up, extend, or unlock, and never
// overridden per lock (spec section 1 Non-goals: "no per-lock fee override").
const FeeBaseUnits = 30_000_000

// FeeAmount returns the flat fee as a native-currency amount. Returns a
// fresh *uint256.Int each call since uint256.Int is mutated in place by
// arithmetic, and this value must never be shared across calls.
func FeeAmount() *uint256.Int {
	return uint256.NewInt(FeeBaseUnits)
}
