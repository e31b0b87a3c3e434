// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/timelock/address"
)

// GlobalStateSize is the total on-chain size of a GlobalState account,
// discriminator included (spec section 6: 48 bytes + 8-byte discriminator).
const GlobalStateSize = DiscriminatorSize + 40 + 8

// GlobalState is the singleton account tracking the protocol-wide lock
// counter. Addressed by the literal seed "global_state".
type GlobalState struct {
	Authority   address.Address
	LockCounter uint64
}

// Encode writes g in the binding byte layout from spec section 6:
//
//	[0..8)   discriminator
//	[8..40)  authority
//	[40..48) lock_counter (u64)
func (g GlobalState) Encode() []byte {
	buf := make([]byte, GlobalStateSize)
	copy(buf[0:8], DiscriminatorGlobalState[:])
	copy(buf[8:40], g.Authority[:])
	binary.LittleEndian.PutUint64(buf[40:48], g.LockCounter)
	return buf
}

// DecodeGlobalState parses raw account data into a GlobalState, validating
// both length and discriminator.
func DecodeGlobalState(data []byte) (GlobalState, error) {
	var g GlobalState
	if len(data) != GlobalStateSize {
		return g, fmt.Errorf("account: GlobalState expects %d bytes, got %d", GlobalStateSize, len(data))
	}
	var got Discriminator
	copy(got[:], data[0:8])
	if got != DiscriminatorGlobalState {
		return g, fmt.Errorf("account: data is not a GlobalState account")
	}
	authority, _ := address.FromBytes(data[8:40])
	g.Authority = authority
	g.LockCounter = binary.LittleEndian.Uint64(data[40:48])
	return g, nil
}
