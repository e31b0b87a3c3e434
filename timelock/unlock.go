// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"github.com/cockroachdb/errors"
	"github.com/luxfi/timelock/account"
	"github.com/luxfi/timelock/address"
	"go.uber.org/zap"
)

// UnlockRequest carries the arguments for an unlock (spec section 6): the
// lock and vault accounts, the mint, the destination token account, and the
// owner (signer).
type UnlockRequest struct {
	Owner                   address.Address
	LockAddress             address.Address
	VaultAddress            address.Address
	Mint                    address.Address
	DestinationTokenAccount address.Address
}

// Unlock drains the Vault's full balance to the destination token account
// and marks the Lock terminal (spec section 4.6). Idempotent in effect but
// not in status: a second call re-enters the is_unlocked guard and fails
// with ErrAlreadyUnlocked rather than silently succeeding.
func (p *Program) Unlock(req UnlockRequest) error {
	const op = "unlock"
	p.ctx.Metrics.ObserveOperation(op)
	log := p.log(op)

	lockData, ok := p.ctx.Accounts.Get(req.LockAddress)
	if !ok {
		return errors.New("timelock: lock account not found")
	}
	lock, err := account.DecodeLock(lockData)
	if err != nil {
		return errors.Wrap(err, "timelock: decode lock")
	}

	if req.Owner != lock.Owner {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrUnauthorized))
		return ErrUnauthorized
	}
	if lock.IsUnlocked {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrAlreadyUnlocked))
		return ErrAlreadyUnlocked
	}
	if p.ctx.Clock.Now() < lock.UnlockTimestamp {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrTooEarly))
		return ErrTooEarly
	}
	if req.Mint != lock.Mint {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrInvalidMint))
		return ErrInvalidMint
	}
	expectedVault := address.VaultFromBump(p.ID, lock.ID, lock.VaultBump)
	if req.VaultAddress != expectedVault {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrUnauthorized))
		return ErrUnauthorized
	}

	// The program signs for the vault using its bump, the only signing
	// capability it ever had for this account (spec section 4.1): no
	// private key exists for expectedVault, so only this code path can ever
	// move its balance.
	if err := p.ctx.Tokens.Transfer(expectedVault, req.DestinationTokenAccount, lock.Amount); err != nil {
		return errors.Wrap(err, "timelock: drain vault to destination")
	}

	lock.Amount = 0
	lock.IsUnlocked = true
	p.ctx.Accounts.Set(req.LockAddress, lock.Encode())

	log.Info("unlocked", zap.Uint64("id", lock.ID))
	return nil
}
