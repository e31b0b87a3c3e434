// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"github.com/cockroachdb/errors"
	"github.com/luxfi/timelock/account"
	"github.com/luxfi/timelock/address"
)

// DescribeGlobalState is a read-only decode of the program's GlobalState,
// for client/CLI display. It performs no mutation and is not itself a
// state-transition operation (spec section 1: "everything else is
// read-only indexing").
func (p *Program) DescribeGlobalState() (account.GlobalState, error) {
	addr, _, err := address.GlobalState(p.ID)
	if err != nil {
		return account.GlobalState{}, errors.Wrap(err, "timelock: derive global state address")
	}
	data, ok := p.ctx.Accounts.Get(addr)
	if !ok {
		return account.GlobalState{}, errors.New("timelock: program has not been initialized")
	}
	return account.DecodeGlobalState(data)
}

// DescribeLock is a read-only decode of a Lock account at the given address.
func (p *Program) DescribeLock(lockAddress address.Address) (account.Lock, error) {
	data, ok := p.ctx.Accounts.Get(lockAddress)
	if !ok {
		return account.Lock{}, errors.New("timelock: lock account not found")
	}
	return account.DecodeLock(data)
}

// LockAndVaultAddress derives the Lock and Vault addresses for id under this
// program, for clients that know an id but not yet its addresses.
func (p *Program) LockAndVaultAddress(id uint64) (lock, vault address.Address, err error) {
	lock, _, err = address.Lock(p.ID, id)
	if err != nil {
		return address.Zero, address.Zero, err
	}
	vault, _, err = address.Vault(p.ID, id)
	if err != nil {
		return address.Zero, address.Zero, err
	}
	return lock, vault, nil
}
