// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"github.com/cockroachdb/errors"
	"github.com/luxfi/timelock/account"
	"github.com/luxfi/timelock/address"
	"go.uber.org/zap"
)

// ErrAlreadyInitialized surfaces the runtime's "account already in use"
// signal spec section 4.2 requires as a distinct, observable error when
// initialize is called against a program that already has a GlobalState.
var ErrAlreadyInitialized = errors.New("GlobalStateAlreadyInitialized")

// Initialize creates the singleton GlobalState account, recording authority
// and starting lock_counter at zero. It may only ever succeed once per
// program id (spec section 4.2): authority is immutable from this point on.
func (p *Program) Initialize(authority address.Address) error {
	const op = "initialize"
	p.ctx.Metrics.ObserveOperation(op)
	log := p.log(op)

	globalAddr, _, err := address.GlobalState(p.ID)
	if err != nil {
		p.ctx.Metrics.ObserveFailure(op, "Fatal")
		return errors.Wrap(err, "timelock: derive global state address")
	}

	if p.ctx.Accounts.Exists(globalAddr) {
		p.ctx.Metrics.ObserveFailure(op, codeOf(ErrAlreadyInitialized))
		log.Warn("rejected: already initialized", zap.String("global_state", globalAddr.String()))
		return ErrAlreadyInitialized
	}

	state := account.GlobalState{Authority: authority, LockCounter: 0}
	p.ctx.Accounts.Set(globalAddr, state.Encode())

	log.Info("initialized", zap.String("authority", authority.String()))
	return nil
}
