// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/luxfi/timelock/address"
	"github.com/luxfi/timelock/engine"
	"github.com/luxfi/timelock/timelock"
	"github.com/luxfi/timelock/token"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// session bundles the loaded config and the constructed program for one
// command invocation, plus the raw ledgers the command handler needs to
// seed directly (faucet) rather than through Program.
type session struct {
	cfg     Config
	program *timelock.Program
	tokens  *token.MemoryLedger
	native  *engine.MemoryNativeLedger
}

// registerDeployments makes every deployment named in cfg resolvable through
// timelock.GetModule, keyed by its config key. Re-registering the same key
// with the same settings (as happens every time a new timelockctl process
// loads the same config file) is a no-op; registering the same key with
// different settings is rejected here, and the same program id under two
// keys is rejected by timelock.RegisterModule.
func registerDeployments(cfg Config) error {
	for key, dep := range cfg.Deployments {
		programID, ok := address.FromBase58(dep.ProgramID)
		if !ok {
			return errors.Newf("timelockctl: deployment %q program_id %q is not a valid address", key, dep.ProgramID)
		}
		feeRecipient, ok := address.FromBase58(dep.FeeRecipient)
		if !ok {
			return errors.Newf("timelockctl: deployment %q fee_recipient %q is not a valid address", key, dep.FeeRecipient)
		}
		m := timelock.Module{ConfigKey: key, ProgramID: programID, FeeRecipient: feeRecipient}

		if existing, ok := timelock.GetModule(key); ok {
			if existing == m {
				continue
			}
			return errors.Newf("timelockctl: config key %q already registered with different settings", key)
		}
		if err := timelock.RegisterModule(m); err != nil {
			return errors.Wrap(err, "timelockctl: register deployment")
		}
	}
	return nil
}

// openSession loads the config at configPath, registers its deployments,
// resolves the one named by ConfigKey, and wires up the account store, token
// ledger and native ledger around it into a ready-to-use Program.
func openSession() (*session, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := registerDeployments(cfg); err != nil {
		return nil, err
	}
	m, ok := timelock.GetModule(cfg.ConfigKey)
	if !ok {
		return nil, errors.Newf("timelockctl: config_key %q names no deployment in %q", cfg.ConfigKey, configPath)
	}

	store, err := engine.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	tokens := token.NewMemoryLedger()
	native := engine.NewMemoryNativeLedger()
	if err := loadLedgers(cfg.DataDir, tokens, native); err != nil {
		return nil, err
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, errors.Wrap(err, "timelockctl: build logger")
	}
	metrics := engine.NewMetrics(prometheus.DefaultRegisterer)

	ctx := engine.NewContext(m.ProgramID, store, native, tokens, engine.SystemClock{}).
		WithLogger(logger).
		WithMetrics(metrics)

	return &session{
		cfg:     cfg,
		program: m.New(ctx),
		tokens:  tokens,
		native:  native,
	}, nil
}

// close flushes the token and native ledger snapshot back to disk. Account
// state itself is already durable, every write goes straight through
// engine.FileStore.
func (s *session) close() error {
	return saveLedgers(s.cfg.DataDir, s.tokens, s.native)
}

func parseAddress(flagName, value string) (address.Address, error) {
	a, ok := address.FromBase58(value)
	if !ok {
		return address.Zero, errors.Newf("timelockctl: --%s %q is not a valid base58 address", flagName, value)
	}
	return a, nil
}
