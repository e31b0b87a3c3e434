// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package token stands in for the fungible-token subsystem spec.md puts out
// of scope: "the fungible-token subsystem providing mint metadata and
// authority-gated balance transfers between token accounts." The time-lock
// program never implements this itself, only calls through the Ledger
// interface, the same way it would invoke a separate token program's
// instructions on a real chain.
package token

import (
	"errors"

	"github.com/luxfi/timelock/address"
)

// Errors a Ledger implementation is expected to surface. These are
// external-collaborator errors, not part of the protocol's own closed
// taxonomy (spec section 7) — the time-lock program treats any of them as
// an opaque failure of the token transfer step.
var (
	ErrAccountNotFound    = errors.New("token: account not found")
	ErrMintMismatch       = errors.New("token: account mint does not match")
	ErrInsufficientFunds  = errors.New("token: insufficient balance")
	ErrOwnerMismatch      = errors.New("token: account owner mismatch")
)

// Account is a token-holding account: a balance of one Mint, owned by one
// Owner. The protocol's Vault is one of these, owned by the time-lock
// program itself rather than by any externally-held key.
type Account struct {
	Owner  address.Address
	Mint   address.Address
	Amount uint64
}

// Ledger is the balance-transfer contract the time-lock program depends on.
// A real deployment would call the chain's token program through a cross-
// program invocation; this interface is that seam.
type Ledger interface {
	// Account returns the current state of a token account.
	Account(addr address.Address) (Account, bool)

	// CreateAccount opens a new token account for mint, owned by owner, at
	// addr. Used when the program creates a Vault account.
	CreateAccount(addr address.Address, owner, mint address.Address) error

	// Transfer moves amount units of a single mint from the account at
	// from's current balance to the account at to, failing if the mint of
	// either account does not match, or if from holds less than amount.
	Transfer(from, to address.Address, amount uint64) error
}
