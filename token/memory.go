// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"sync"

	"github.com/luxfi/timelock/address"
)

// MemoryLedger is a reference, in-process implementation of Ledger, used by
// the test suite and by cmd/timelockctl's local simulator. A real deployment
// would use the chain's token program instead.
type MemoryLedger struct {
	mu       sync.Mutex
	accounts map[address.Address]Account
}

// NewMemoryLedger returns an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{accounts: make(map[address.Address]Account)}
}

// Seed directly sets an account's state, for test setup (e.g. giving a
// depositor an initial token balance before exercising lock/top_up).
func (m *MemoryLedger) Seed(addr address.Address, acc Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[addr] = acc
}

// Account implements Ledger.
func (m *MemoryLedger) Account(addr address.Address) (Account, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[addr]
	return acc, ok
}

// CreateAccount implements Ledger.
func (m *MemoryLedger) CreateAccount(addr address.Address, owner, mint address.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[addr] = Account{Owner: owner, Mint: mint, Amount: 0}
	return nil
}

// Transfer implements Ledger.
func (m *MemoryLedger) Transfer(from, to address.Address, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	fromAcc, ok := m.accounts[from]
	if !ok {
		return ErrAccountNotFound
	}
	toAcc, ok := m.accounts[to]
	if !ok {
		return ErrAccountNotFound
	}
	if fromAcc.Mint != toAcc.Mint {
		return ErrMintMismatch
	}
	if fromAcc.Amount < amount {
		return ErrInsufficientFunds
	}

	fromAcc.Amount -= amount
	toAcc.Amount += amount
	m.accounts[from] = fromAcc
	m.accounts[to] = toAcc
	return nil
}
