// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"fmt"
	"sort"
	"sync"

	"github.com/luxfi/timelock/address"
	"github.com/luxfi/timelock/engine"
)

// Module describes one deployed instance of this program, identified by a
// stable config key. This mirrors the teacher precompile pack's
// Address()/Configure() module pattern, generalized from "one of many
// precompiles sharing an EVM" to "one of possibly many time-lock program
// deployments sharing a client's configuration file" — the same shape
// (name -> program id -> constructor), a different cardinality.
type Module struct {
	ConfigKey    string
	ProgramID    address.Address
	FeeRecipient address.Address
}

// New builds a Program for this module, running against ctx.
func (m Module) New(ctx *engine.Context) *Program {
	return New(m.ProgramID, m.FeeRecipient, ctx)
}

var (
	registryMu sync.Mutex
	registry   = map[string]Module{}
)

// RegisterModule makes m resolvable by its ConfigKey via GetModule. It is an
// error to register two modules with the same key or the same program id.
func RegisterModule(m Module) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[m.ConfigKey]; exists {
		return fmt.Errorf("timelock: config key %q already registered", m.ConfigKey)
	}
	for _, existing := range registry {
		if existing.ProgramID == m.ProgramID {
			return fmt.Errorf("timelock: program id %s already registered under %q", m.ProgramID, existing.ConfigKey)
		}
	}
	registry[m.ConfigKey] = m
	return nil
}

// GetModule looks up a previously registered module by its config key.
func GetModule(key string) (Module, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	m, ok := registry[key]
	return m, ok
}

// RegisteredModules returns all registered modules, sorted by config key for
// deterministic iteration.
func RegisteredModules() []Module {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Module, 0, len(registry))
	for _, m := range registry {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConfigKey < out[j].ConfigKey })
	return out
}
