// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"testing"

	"github.com/luxfi/timelock/address"
	"github.com/stretchr/testify/require"
)

func sampleLock() Lock {
	var owner, mint address.Address
	copy(owner[:], []byte("owner-pubkey-bytes-32-long-ok!!!"))
	copy(mint[:], []byte("mint--pubkey-bytes-32-long-ok!!!"))
	return Lock{
		ID:              7,
		Owner:           owner,
		Mint:            mint,
		Amount:          100_000_000_000,
		UnlockTimestamp: 1_900_000_000,
		CreatedAt:       1_896_400_000,
		VaultBump:       254,
		IsUnlocked:      false,
	}
}

func TestLockEncodeDecodeRoundTrip(t *testing.T) {
	l := sampleLock()
	data := l.Encode()
	require.Len(t, data, LockSize)

	decoded, err := DecodeLock(data)
	require.NoError(t, err)
	require.Equal(t, l, decoded)
}

func TestLockIsUnlockedFlagRoundTrips(t *testing.T) {
	l := sampleLock()
	l.IsUnlocked = true
	l.Amount = 0

	decoded, err := DecodeLock(l.Encode())
	require.NoError(t, err)
	require.True(t, decoded.IsUnlocked)
	require.Zero(t, decoded.Amount)
}

func TestLockLayoutOffsets(t *testing.T) {
	l := sampleLock()
	data := l.Encode()

	require.Equal(t, DiscriminatorLock[:], data[0:8])
	require.Equal(t, l.Owner[:], data[16:48])
	require.Equal(t, l.Mint[:], data[48:80])
	require.Equal(t, l.VaultBump, data[104])
	require.Equal(t, byte(0), data[105])
}

func TestDecodeLockRejectsWrongLength(t *testing.T) {
	_, err := DecodeLock(make([]byte, 10))
	require.Error(t, err)
}

func TestDecodeLockRejectsWrongDiscriminator(t *testing.T) {
	data := GlobalState{}.Encode()
	padded := append(data, make([]byte, LockSize-GlobalStateSize)...)
	_, err := DecodeLock(padded)
	require.Error(t, err)
}
