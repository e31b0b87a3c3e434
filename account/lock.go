// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/timelock/address"
)

// LockSize is the total on-chain size of a Lock account, discriminator
// included (spec section 6: 98 bytes + 8-byte discriminator = 106).
const LockSize = DiscriminatorSize + 98

// Lock is the per-position metadata account. Addressed by seeds
// ("lock", id as 8-byte little-endian).
type Lock struct {
	ID              uint64
	Owner           address.Address
	Mint            address.Address
	Amount          uint64
	UnlockTimestamp int64
	CreatedAt       int64
	VaultBump       uint8
	IsUnlocked      bool
}

// Encode writes l in the binding byte layout from spec section 6:
//
//	[0..8)    discriminator
//	[8..16)   id (u64)
//	[16..48)  owner
//	[48..80)  mint
//	[80..88)  amount (u64)
//	[88..96)  unlock_timestamp (i64)
//	[96..104) created_at (i64)
//	[104..105) vault_bump (u8)
//	[105..106) is_unlocked (u8)
func (l Lock) Encode() []byte {
	buf := make([]byte, LockSize)
	copy(buf[0:8], DiscriminatorLock[:])
	binary.LittleEndian.PutUint64(buf[8:16], l.ID)
	copy(buf[16:48], l.Owner[:])
	copy(buf[48:80], l.Mint[:])
	binary.LittleEndian.PutUint64(buf[80:88], l.Amount)
	binary.LittleEndian.PutUint64(buf[88:96], uint64(l.UnlockTimestamp))
	binary.LittleEndian.PutUint64(buf[96:104], uint64(l.CreatedAt))
	buf[104] = l.VaultBump
	if l.IsUnlocked {
		buf[105] = 1
	}
	return buf
}

// DecodeLock parses raw account data into a Lock, validating both length
// and discriminator.
func DecodeLock(data []byte) (Lock, error) {
	var l Lock
	if len(data) != LockSize {
		return l, fmt.Errorf("account: Lock expects %d bytes, got %d", LockSize, len(data))
	}
	var got Discriminator
	copy(got[:], data[0:8])
	if got != DiscriminatorLock {
		return l, fmt.Errorf("account: data is not a Lock account")
	}
	l.ID = binary.LittleEndian.Uint64(data[8:16])
	owner, _ := address.FromBytes(data[16:48])
	l.Owner = owner
	mint, _ := address.FromBytes(data[48:80])
	l.Mint = mint
	l.Amount = binary.LittleEndian.Uint64(data[80:88])
	l.UnlockTimestamp = int64(binary.LittleEndian.Uint64(data[88:96]))
	l.CreatedAt = int64(binary.LittleEndian.Uint64(data[96:104]))
	l.VaultBump = data[104]
	l.IsUnlocked = data[105] != 0
	return l, nil
}
