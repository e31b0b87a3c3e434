// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/luxfi/timelock/address"
)

// FileStore is a durable AccountStore backed by one file per account under
// dir, named by the account's hex address. It stands in for a real chain's
// persistent account database in cmd/timelockctl's local simulator, which
// needs state to survive between CLI invocations.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore returns a FileStore rooted at dir, creating dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "engine: create account directory %q", dir)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(addr address.Address) string {
	return filepath.Join(f.dir, hex.EncodeToString(addr[:])+".account")
}

// Get implements AccountStore.
func (f *FileStore) Get(addr address.Address) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path(addr))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set implements AccountStore.
func (f *FileStore) Set(addr address.Address, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Best effort: a real chain's durability guarantees are out of scope
	// (spec.md section 1), this is a local simulator convenience only.
	_ = os.WriteFile(f.path(addr), data, 0o644)
}

// Exists implements AccountStore.
func (f *FileStore) Exists(addr address.Address) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := os.Stat(f.path(addr))
	return err == nil
}
