// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package address implements deterministic program-derived addressing for
// the time-lock protocol: the global-state account, per-lock metadata
// accounts, and per-lock vault accounts are all computed from stable seeds
// rather than stored anywhere, so any client can recompute them offline.
package address

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// Size is the width, in bytes, of every account identifier in this protocol.
const Size = 32

// Address identifies an account: a program, a depositor, a mint, or a
// program-derived account such as a Lock or a Vault.
type Address [Size]byte

// Zero is the all-zero address, used as a sentinel for "not yet set".
var Zero Address

// String renders the address the way this domain conventionally does:
// base58, matching the encoding used for 32-byte account identifiers
// elsewhere in this ecosystem.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// Hex renders the address as a 0x-prefixed hex string, useful for logs that
// need to be greppable against raw account dumps.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == Zero
}

// FromBytes copies b into a new Address. b must be exactly Size bytes.
func FromBytes(b []byte) (Address, bool) {
	var a Address
	if len(b) != Size {
		return a, false
	}
	copy(a[:], b)
	return a, true
}

// FromBase58 decodes a base58-encoded address.
func FromBase58(s string) (Address, bool) {
	b, err := base58.Decode(s)
	if err != nil {
		return Zero, false
	}
	return FromBytes(b)
}

// LEUint64 returns the 8-byte little-endian encoding of v, the seed format
// the protocol uses for numeric ids (spec section 4.1: "id as 8-byte
// little-endian").
func LEUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
