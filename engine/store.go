// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package engine is the execution context the time-lock program runs
// against: account storage, a clock, a native-currency ledger, logging and
// metrics. It plays the role spec.md assigns to "the hosting chain runtime"
// — out of the protocol's own scope, but something every operation needs to
// be handed in order to run at all.
package engine

import (
	"sync"

	"github.com/luxfi/timelock/address"
)

// AccountStore holds raw account bytes keyed by address, the same way the
// host runtime's account database does. Implementations must not be
// consulted as a cache across operations: spec.md section 9 requires every
// operation to re-read every account it touches, and every operation in
// package timelock does exactly that — it calls Get fresh at the start of
// the call, never reuses a previously loaded value.
type AccountStore interface {
	// Get returns the raw bytes stored at addr, and whether the account
	// exists at all.
	Get(addr address.Address) ([]byte, bool)

	// Set writes data as the full contents of the account at addr, creating
	// it if it does not already exist.
	Set(addr address.Address, data []byte)

	// Exists reports whether an account has been created at addr.
	Exists(addr address.Address) bool
}

// MemoryStore is an in-process AccountStore, used by tests. cmd/timelockctl's
// local simulator uses FileStore instead.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[address.Address][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[address.Address][]byte)}
}

// Get implements AccountStore.
func (s *MemoryStore) Get(addr address.Address) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.accounts[addr]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// Set implements AccountStore.
func (s *MemoryStore) Set(addr address.Address, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.accounts[addr] = cp
}

// Exists implements AccountStore.
func (s *MemoryStore) Exists(addr address.Address) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[addr]
	return ok
}
