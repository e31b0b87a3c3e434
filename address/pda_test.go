// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testProgram() Address {
	var p Address
	copy(p[:], []byte("timelock-program-identifier-000"))
	return p
}

func TestFindProgramAddressDeterministic(t *testing.T) {
	program := testProgram()

	a1, bump1, err := Lock(program, 0)
	require.NoError(t, err)
	a2, bump2, err := Lock(program, 0)
	require.NoError(t, err)

	require.Equal(t, a1, a2)
	require.Equal(t, bump1, bump2)
}

func TestFindProgramAddressDistinctPerID(t *testing.T) {
	program := testProgram()

	a0, _, err := Lock(program, 0)
	require.NoError(t, err)
	a1, _, err := Lock(program, 1)
	require.NoError(t, err)

	require.NotEqual(t, a0, a1)
}

func TestFindProgramAddressOffCurve(t *testing.T) {
	program := testProgram()

	addr, bump, err := Vault(program, 42)
	require.NoError(t, err)
	require.False(t, isOnCurve(addr))
	require.LessOrEqual(t, int(bump), MaxBump)
}

func TestVaultFromBumpMatchesSearch(t *testing.T) {
	program := testProgram()

	addr, bump, err := Vault(program, 7)
	require.NoError(t, err)

	reconstructed := VaultFromBump(program, 7, bump)
	require.Equal(t, addr, reconstructed)
}

func TestGlobalStateDiffersPerProgram(t *testing.T) {
	p1 := testProgram()
	var p2 Address
	copy(p2[:], []byte("a-different-program-identifier!"))

	g1, _, err := GlobalState(p1)
	require.NoError(t, err)
	g2, _, err := GlobalState(p2)
	require.NoError(t, err)

	require.NotEqual(t, g1, g2)
}

func TestAddressStringRoundTrip(t *testing.T) {
	program := testProgram()
	decoded, ok := FromBase58(program.String())
	require.True(t, ok)
	require.Equal(t, program, decoded)
}

func TestAddressFromBytesRejectsWrongLength(t *testing.T) {
	_, ok := FromBytes([]byte{1, 2, 3})
	require.False(t, ok)
}
