// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"sync"

	"github.com/holiman/uint256"
	"github.com/luxfi/timelock/address"
)

// NativeLedger tracks native-currency balances, which the program touches
// only to charge the flat creation fee; no storage deposit is charged or
// checked for the accounts a lock creates.
// Balances are tracked with uint256.Int, the one quantity in this protocol
// the binding byte layout (spec section 6) does not pin to a fixed-width
// on-chain field, since native balances live outside the three account
// kinds this program owns.
type NativeLedger interface {
	Balance(addr address.Address) *uint256.Int
	Transfer(from, to address.Address, amount *uint256.Int) error
	Credit(addr address.Address, amount *uint256.Int)
}

// MemoryNativeLedger is an in-process reference NativeLedger.
type MemoryNativeLedger struct {
	mu       sync.Mutex
	balances map[address.Address]*uint256.Int
}

// NewMemoryNativeLedger returns an empty ledger.
func NewMemoryNativeLedger() *MemoryNativeLedger {
	return &MemoryNativeLedger{balances: make(map[address.Address]*uint256.Int)}
}

// Credit adds amount to addr's balance, creating the account if needed. Used
// to fund a depositor in tests and in the CLI's local faucet command.
func (m *MemoryNativeLedger) Credit(addr address.Address, amount *uint256.Int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[addr]
	if !ok {
		bal = uint256.NewInt(0)
	}
	m.balances[addr] = new(uint256.Int).Add(bal, amount)
}

// Balance implements NativeLedger.
func (m *MemoryNativeLedger) Balance(addr address.Address) *uint256.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[addr]
	if !ok {
		return uint256.NewInt(0)
	}
	return bal.Clone()
}

// Transfer implements NativeLedger.
func (m *MemoryNativeLedger) Transfer(from, to address.Address, amount *uint256.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	fromBal, ok := m.balances[from]
	if !ok {
		fromBal = uint256.NewInt(0)
	}
	if fromBal.Lt(amount) {
		return ErrInsufficientNativeBalance
	}
	toBal, ok := m.balances[to]
	if !ok {
		toBal = uint256.NewInt(0)
	}
	m.balances[from] = new(uint256.Int).Sub(fromBal, amount)
	m.balances[to] = new(uint256.Int).Add(toBal, amount)
	return nil
}
