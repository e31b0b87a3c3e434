// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"github.com/luxfi/timelock/address"
	"github.com/luxfi/timelock/token"
	"go.uber.org/zap"
)

// Context bundles everything an operation in package timelock needs to run:
// account storage, the native-currency ledger, the token ledger, a clock,
// a logger, and metrics. It is the generalization of what the teacher
// precompile package calls contract.AccessibleState — widened from "one
// contract's storage" to "many independently addressed accounts", since
// this protocol's GlobalState, Lock and Vault accounts each have their own
// address rather than sharing one contract's storage slots.
type Context struct {
	Program  address.Address
	Accounts AccountStore
	Native   NativeLedger
	Tokens   token.Ledger
	Clock    Clock
	Log      *zap.Logger
	Metrics  *Metrics
}

// NewContext builds a Context from its components, starting with a no-op
// logger and metrics sink; WithLogger and WithMetrics replace them.
func NewContext(program address.Address, accounts AccountStore, native NativeLedger, tokens token.Ledger, clock Clock) *Context {
	return &Context{
		Program:  program,
		Accounts: accounts,
		Native:   native,
		Tokens:   tokens,
		Clock:    clock,
		Log:      zap.NewNop(),
		Metrics:  NopMetrics(),
	}
}

// WithLogger returns a copy of c using logger for structured logging.
func (c *Context) WithLogger(logger *zap.Logger) *Context {
	cp := *c
	cp.Log = logger
	return &cp
}

// WithMetrics returns a copy of c emitting to metrics.
func (c *Context) WithMetrics(metrics *Metrics) *Context {
	cp := *c
	cp.Metrics = metrics
	return &cp
}
