// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package timelock implements the on-chain token time-lock protocol's five
// state-transition operations over the account layouts in package account,
// running against the execution context in package engine.
package timelock

import (
	"github.com/cockroachdb/errors"
)

// The closed, stable error taxonomy from spec section 7. The exact code
// names are part of the contract: tests and clients pattern-match on them
// with errors.Is.
var (
	ErrAmountZero             = errors.New("AmountZero")
	ErrTimestampInPast        = errors.New("TimestampInPast")
	ErrCannotShortenTimestamp = errors.New("CannotShortenTimestamp")
	ErrAlreadyUnlocked        = errors.New("AlreadyUnlocked")
	ErrTooEarly               = errors.New("TooEarly")
	ErrUnauthorized           = errors.New("Unauthorized")
	ErrInvalidMint            = errors.New("InvalidMint")
)

// codeOf maps a sentinel from the closed taxonomy to its stable string code,
// for metrics labels and CLI output. Returns "Fatal" for anything else.
func codeOf(err error) string {
	switch {
	case errors.Is(err, ErrAmountZero):
		return "AmountZero"
	case errors.Is(err, ErrTimestampInPast):
		return "TimestampInPast"
	case errors.Is(err, ErrCannotShortenTimestamp):
		return "CannotShortenTimestamp"
	case errors.Is(err, ErrAlreadyUnlocked):
		return "AlreadyUnlocked"
	case errors.Is(err, ErrTooEarly):
		return "TooEarly"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrInvalidMint):
		return "InvalidMint"
	default:
		return "Fatal"
	}
}
