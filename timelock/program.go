// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"github.com/luxfi/timelock/address"
	"github.com/luxfi/timelock/engine"
	"go.uber.org/zap"
)

// Program is the time-lock protocol's account-model handler. One Program
// value corresponds to one deployed program id; every address it derives is
// scoped to that id, matching spec section 4.1 ("Given program identifier
// P...").
//
// Program holds no account state itself — every method re-reads whatever
// accounts it needs from ctx.Accounts at the start of the call, per spec
// section 9 ("Implementers must not cache or memoize across operations").
type Program struct {
	ID           address.Address
	FeeRecipient address.Address
	ctx          *engine.Context
}

// New returns a Program for id, charging fees to feeRecipient and running
// against ctx. The recipient is fixed for the life of the Program value; it
// is supplied by the caller (per deployment), not compiled into the package.
func New(id, feeRecipient address.Address, ctx *engine.Context) *Program {
	return &Program{ID: id, FeeRecipient: feeRecipient, ctx: ctx}
}

// log returns the context logger scoped with the operation name.
func (p *Program) log(op string) *zap.Logger {
	return p.ctx.Log.With(zap.String("operation", op))
}
