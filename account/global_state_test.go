// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"testing"

	"github.com/luxfi/timelock/address"
	"github.com/stretchr/testify/require"
)

func TestGlobalStateEncodeDecodeRoundTrip(t *testing.T) {
	var authority address.Address
	copy(authority[:], []byte("authority-pubkey-bytes-32-longg"))

	g := GlobalState{Authority: authority, LockCounter: 42}
	data := g.Encode()
	require.Len(t, data, GlobalStateSize)

	decoded, err := DecodeGlobalState(data)
	require.NoError(t, err)
	require.Equal(t, g, decoded)
}

func TestGlobalStateLayoutOffsets(t *testing.T) {
	var authority address.Address
	for i := range authority {
		authority[i] = byte(i + 1)
	}
	g := GlobalState{Authority: authority, LockCounter: 0x0102030405060708}
	data := g.Encode()

	require.Equal(t, DiscriminatorGlobalState[:], data[0:8])
	require.Equal(t, authority[:], data[8:40])
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, data[40:48])
}

func TestDecodeGlobalStateRejectsWrongKind(t *testing.T) {
	data := Lock{}.Encode()
	_, err := DecodeGlobalState(data[:GlobalStateSize])
	require.Error(t, err)
}

func TestDecodeGlobalStateRejectsWrongLength(t *testing.T) {
	_, err := DecodeGlobalState([]byte{1, 2, 3})
	require.Error(t, err)
}
