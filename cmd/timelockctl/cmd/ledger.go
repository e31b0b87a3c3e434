// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/holiman/uint256"
	"github.com/luxfi/timelock/address"
	"github.com/luxfi/timelock/engine"
	"github.com/luxfi/timelock/token"
)

// Each timelockctl invocation is a fresh process, so the token and native
// ledgers need to survive between commands the same way engine.FileStore
// already makes accounts survive. There is no ecosystem wire format this
// domain conventionally uses for a throwaway local snapshot, so this reads
// and writes plain JSON next to the account files; a real deployment's
// token and native ledgers live on-chain and need none of this.

type tokenAccountRecord struct {
	Address address.Address `json:"address"`
	Owner   address.Address `json:"owner"`
	Mint    address.Address `json:"mint"`
	Amount  uint64          `json:"amount"`
}

type nativeBalanceRecord struct {
	Address address.Address `json:"address"`
	Balance string          `json:"balance"`
}

type ledgerSnapshot struct {
	TokenAccounts  []tokenAccountRecord  `json:"token_accounts"`
	NativeBalances []nativeBalanceRecord `json:"native_balances"`
}

func ledgerPath(dataDir string) string {
	return filepath.Join(dataDir, "ledger.json")
}

// knownTokenAccounts and knownOwners accumulate every address this process
// has touched, seeded from the prior snapshot and added to as each command
// runs, so saveLedgers knows what to write back out.
var (
	knownTokenAccounts []address.Address
	knownOwners        []address.Address
)

// trackTokenAccount records addr as one to persist when the snapshot is
// saved at the end of this invocation.
func trackTokenAccount(addr address.Address) {
	knownTokenAccounts = append(knownTokenAccounts, addr)
}

// trackOwner records addr's native balance as one to persist.
func trackOwner(addr address.Address) {
	knownOwners = append(knownOwners, addr)
}

// loadLedgers populates tokens and native from the snapshot file in dataDir,
// if one exists, and seeds knownTokenAccounts/knownOwners so that a later
// saveLedgers call does not drop any previously persisted account. A missing
// file is not an error: it means this is the first command ever run against
// this data directory.
func loadLedgers(dataDir string, tokens *token.MemoryLedger, native *engine.MemoryNativeLedger) error {
	data, err := os.ReadFile(ledgerPath(dataDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "timelockctl: read ledger snapshot in %q", dataDir)
	}

	var snap ledgerSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return errors.Wrap(err, "timelockctl: parse ledger snapshot")
	}
	for _, rec := range snap.TokenAccounts {
		tokens.Seed(rec.Address, token.Account{Owner: rec.Owner, Mint: rec.Mint, Amount: rec.Amount})
		trackTokenAccount(rec.Address)
	}
	for _, rec := range snap.NativeBalances {
		bal, err := uint256.FromHex(rec.Balance)
		if err != nil {
			return errors.Wrapf(err, "timelockctl: parse native balance for %s", rec.Address)
		}
		native.Credit(rec.Address, bal)
		trackOwner(rec.Address)
	}
	return nil
}

// saveLedgers writes the full contents of tokens and native for every
// address tracked so far to the snapshot file in dataDir.
func saveLedgers(dataDir string, tokens *token.MemoryLedger, native *engine.MemoryNativeLedger) error {
	snap := ledgerSnapshot{}

	seenTok := make(map[address.Address]bool)
	for _, a := range knownTokenAccounts {
		if seenTok[a] {
			continue
		}
		seenTok[a] = true
		acc, ok := tokens.Account(a)
		if !ok {
			continue
		}
		snap.TokenAccounts = append(snap.TokenAccounts, tokenAccountRecord{
			Address: a, Owner: acc.Owner, Mint: acc.Mint, Amount: acc.Amount,
		})
	}

	seenOwner := make(map[address.Address]bool)
	for _, a := range knownOwners {
		if seenOwner[a] {
			continue
		}
		seenOwner[a] = true
		snap.NativeBalances = append(snap.NativeBalances, nativeBalanceRecord{
			Address: a, Balance: native.Balance(a).Hex(),
		})
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "timelockctl: marshal ledger snapshot")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return errors.Wrapf(err, "timelockctl: create data directory %q", dataDir)
	}
	return errors.Wrapf(os.WriteFile(ledgerPath(dataDir), data, 0o644), "timelockctl: write ledger snapshot in %q", dataDir)
}
