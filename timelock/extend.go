// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"github.com/cockroachdb/errors"
	"github.com/luxfi/timelock/account"
	"github.com/luxfi/timelock/address"
	"go.uber.org/zap"
)

// ExtendRequest carries the arguments for an extend (spec section 6): the
// lock account, the owner (signer), and the proposed new deadline.
type ExtendRequest struct {
	Owner              address.Address
	LockAddress        address.Address
	NewUnlockTimestamp int64
}

// Extend postpones a Lock's deadline. The check is strictly against the
// lock's currently stored deadline, not wall-clock time (spec section 4.5):
// a lock whose deadline already sits in the past can still be extended to
// any value strictly greater than that stored deadline, even one that is
// itself still in the past — this is documented, observed behavior (spec
// section 9's second open question), not a bug.
func (p *Program) Extend(req ExtendRequest) error {
	const op = "extend"
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
	if req.NewUnlockTimestamp <= lock.UnlockTimestamp {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrCannotShortenTimestamp))
		return ErrCannotShortenTimestamp
	}

	lock.UnlockTimestamp = req.NewUnlockTimestamp
	p.ctx.Accounts.Set(req.LockAddress, lock.Encode())

	log.Info("extended",
		zap.Uint64("id", lock.ID),
		zap.Int64("new_unlock_timestamp", req.NewUnlockTimestamp),
	)
	return nil
}
