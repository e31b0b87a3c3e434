// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"github.com/cockroachdb/errors"
	"github.com/luxfi/timelock/account"
	"github.com/luxfi/timelock/address"
	"github.com/luxfi/timelock/token"
	"go.uber.org/zap"
)

// LockRequest carries the arguments and claimed account addresses for a
// lock operation (spec section 6's operation surface table: amount, the
// unlock timestamp, and the accounts global_state/lock/vault/mint/
// owner_token_account/owner/fee_recipient). LockAddress and VaultAddress
// are the addresses the client is claiming for the to-be-created accounts;
// the program re-derives the expected addresses itself and rejects any
// mismatch (spec section 4.1).
type LockRequest struct {
	Owner             address.Address
	Mint              address.Address
	OwnerTokenAccount address.Address
	Amount            uint64
	UnlockTimestamp   int64
	LockAddress       address.Address
	VaultAddress      address.Address
}

// LockResult reports the outcome of a successful lock.
type LockResult struct {
	ID           uint64
	LockAddress  address.Address
	VaultAddress address.Address
}

// Lock creates a new Lock and its paired Vault, moves amount tokens from the
// depositor into custody, charges the flat creation fee, and advances the
// global lock counter (spec section 4.3).
func (p *Program) Lock(req LockRequest) (LockResult, error) {
	const op = "lock"
	p.ctx.Metrics.ObserveOperation(op)
	log := p.log(op)

	if req.Amount == 0 {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrAmountZero))
		return LockResult{}, ErrAmountZero
	}
	now := p.ctx.Clock.Now()
	if req.UnlockTimestamp <= now {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrTimestampInPast))
		return LockResult{}, ErrTimestampInPast
	}

	globalAddr, _, err := address.GlobalState(p.ID)
	if err != nil {
		return LockResult{}, errors.Wrap(err, "timelock: derive global state address")
	}
	globalData, ok := p.ctx.Accounts.Get(globalAddr)
	if !ok {
		return LockResult{}, errors.New("timelock: program has not been initialized")
	}
	global, err := account.DecodeGlobalState(globalData)
	if err != nil {
		return LockResult{}, errors.Wrap(err, "timelock: decode global state")
	}

	id := global.LockCounter
	expectedLockAddr, _, err := address.Lock(p.ID, id)
	if err != nil {
		return LockResult{}, errors.Wrap(err, "timelock: derive lock address")
	}
	expectedVaultAddr, vaultBump, err := address.Vault(p.ID, id)
	if err != nil {
		return LockResult{}, errors.Wrap(err, "timelock: derive vault address")
	}
	if req.LockAddress != expectedLockAddr || req.VaultAddress != expectedVaultAddr {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrUnauthorized))
		log.Warn("rejected: supplied lock/vault address does not match derivation",
			zap.Uint64("id", id))
		return LockResult{}, ErrUnauthorized
	}

	sourceAcc, ok := p.ctx.Tokens.Account(req.OwnerTokenAccount)
	if !ok {
		return LockResult{}, errors.New("timelock: owner token account not found")
	}
	if sourceAcc.Owner != req.Owner {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrUnauthorized))
		return LockResult{}, ErrUnauthorized
	}
	if sourceAcc.Mint != req.Mint {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrInvalidMint))
		return LockResult{}, ErrInvalidMint
	}
	if sourceAcc.Amount < req.Amount {
		p.ctx.Metrics.ObserveFailure(op, "Fatal")
		return LockResult{}, token.ErrInsufficientFunds
	}

	fee := FeeAmount()
	if p.ctx.Native.Balance(req.Owner).Lt(fee) {
		p.ctx.Metrics.ObserveFailure(op, "Fatal")
		return LockResult{}, errors.New("timelock: insufficient native balance for creation fee")
	}

	// Effect: all-or-nothing once preconditions are satisfied (spec 4.3).
	if err := p.ctx.Tokens.CreateAccount(expectedVaultAddr, p.ID, req.Mint); err != nil {
		return LockResult{}, errors.Wrap(err, "timelock: create vault token account")
	}

	lock := account.Lock{
		ID:              id,
		Owner:           req.Owner,
		Mint:            req.Mint,
		Amount:          req.Amount,
		UnlockTimestamp: req.UnlockTimestamp,
		CreatedAt:       now,
		VaultBump:       vaultBump,
		IsUnlocked:      false,
	}
	p.ctx.Accounts.Set(expectedLockAddr, lock.Encode())

	if err := p.ctx.Tokens.Transfer(req.OwnerTokenAccount, expectedVaultAddr, req.Amount); err != nil {
		return LockResult{}, errors.Wrap(err, "timelock: transfer principal into vault")
	}
	if err := p.ctx.Native.Transfer(req.Owner, p.FeeRecipient, fee); err != nil {
		return LockResult{}, errors.Wrap(err, "timelock: transfer creation fee")
	}

	global.LockCounter = id + 1
	p.ctx.Accounts.Set(globalAddr, global.Encode())

	p.ctx.Metrics.ObserveLockCreated(req.Amount)
	log.Info("lock created",
		zap.Uint64("id", id),
		zap.String("owner", req.Owner.String()),
		zap.Uint64("amount", req.Amount),
		zap.Int64("unlock_timestamp", req.UnlockTimestamp),
	)

	return LockResult{ID: id, LockAddress: expectedLockAddr, VaultAddress: expectedVaultAddr}, nil
}
