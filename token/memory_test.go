// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"testing"

	"github.com/luxfi/timelock/address"
	"github.com/stretchr/testify/require"
)

func addr(s string) address.Address {
	var a address.Address
	copy(a[:], s)
	return a
}

func TestMemoryLedgerTransfer(t *testing.T) {
	ledger := NewMemoryLedger()
	mint := addr("mint")
	owner := addr("owner")
	vault := addr("vault")

	ledger.Seed(owner, Account{Owner: owner, Mint: mint, Amount: 100})
	require.NoError(t, ledger.CreateAccount(vault, addr("program"), mint))

	require.NoError(t, ledger.Transfer(owner, vault, 40))

	ownerAcc, ok := ledger.Account(owner)
	require.True(t, ok)
	require.EqualValues(t, 60, ownerAcc.Amount)

	vaultAcc, ok := ledger.Account(vault)
	require.True(t, ok)
	require.EqualValues(t, 40, vaultAcc.Amount)
}

func TestMemoryLedgerTransferInsufficientFunds(t *testing.T) {
	ledger := NewMemoryLedger()
	mint := addr("mint")
	owner := addr("owner")
	vault := addr("vault")

	ledger.Seed(owner, Account{Owner: owner, Mint: mint, Amount: 10})
	require.NoError(t, ledger.CreateAccount(vault, addr("program"), mint))

	err := ledger.Transfer(owner, vault, 40)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestMemoryLedgerTransferMintMismatch(t *testing.T) {
	ledger := NewMemoryLedger()
	owner := addr("owner")
	vault := addr("vault")

	ledger.Seed(owner, Account{Owner: owner, Mint: addr("mint-a"), Amount: 100})
	require.NoError(t, ledger.CreateAccount(vault, addr("program"), addr("mint-b")))

	err := ledger.Transfer(owner, vault, 10)
	require.ErrorIs(t, err, ErrMintMismatch)
}

func TestMemoryLedgerTransferUnknownAccount(t *testing.T) {
	ledger := NewMemoryLedger()
	err := ledger.Transfer(addr("nope"), addr("also-nope"), 1)
	require.ErrorIs(t, err, ErrAccountNotFound)
}
