// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/luxfi/timelock/account"
	"github.com/luxfi/timelock/address"
	"go.uber.org/zap"
)

// ErrAmountOverflow is the fatal arithmetic error spec section 4.4 requires
// in place of silent wraparound: "a saturating or checked add is required;
// if the sum would overflow the 64-bit counter, fail with a fatal arithmetic
// error."
var ErrAmountOverflow = errors.New("AmountOverflow")

// TopUpRequest carries the arguments and account addresses for a top_up
// (spec section 6): the lock and vault accounts, the mint, the depositor's
// source token account, the depositor (signer), and the amount to add.
type TopUpRequest struct {
	Owner             address.Address
	LockAddress       address.Address
	VaultAddress      address.Address
	Mint              address.Address
	OwnerTokenAccount address.Address
	AdditionalAmount  uint64
}

// TopUp increases a Lock's locked amount without touching its deadline or
// charging any fee (spec section 4.4).
func (p *Program) TopUp(req TopUpRequest) error {
	const op = "top_up"
	p.ctx.Metrics.ObserveOperation(op)
	log := p.log(op)

	if req.AdditionalAmount == 0 {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrAmountZero))
		return ErrAmountZero
	}

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
	if req.Mint != lock.Mint {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrInvalidMint))
		return ErrInvalidMint
	}
	if lock.IsUnlocked {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrAlreadyUnlocked))
		return ErrAlreadyUnlocked
	}
	expectedVault := address.VaultFromBump(p.ID, lock.ID, lock.VaultBump)
	if req.VaultAddress != expectedVault {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrUnauthorized))
		return ErrUnauthorized
	}

	if req.AdditionalAmount > math.MaxUint64-lock.Amount {
		p.ctx.Metrics.ObserveFailure(op, "Fatal")
		return ErrAmountOverflow
	}

	if err := p.ctx.Tokens.Transfer(req.OwnerTokenAccount, expectedVault, req.AdditionalAmount); err != nil {
		return errors.Wrap(err, "timelock: transfer top-up into vault")
	}

	lock.Amount += req.AdditionalAmount
	p.ctx.Accounts.Set(req.LockAddress, lock.Encode())

	log.Info("topped up",
		zap.Uint64("id", lock.ID),
		zap.Uint64("additional_amount", req.AdditionalAmount),
		zap.Uint64("new_amount", lock.Amount),
	)
	return nil
}
