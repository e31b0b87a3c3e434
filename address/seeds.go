// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

// Seed literals fixed by the protocol (spec section 4.1). Changing any of
// these would change every derived address the protocol has ever produced.
var (
	seedGlobalState = []byte("global_state")
	seedLock        = []byte("lock")
	seedVault       = []byte("vault")
)

// GlobalState derives the singleton global-state address for program.
func GlobalState(program Address) (Address, uint8, error) {
	return FindProgramAddress(program, seedGlobalState)
}

// Lock derives the Lock account address for the given program and lock id.
func Lock(program Address, id uint64) (Address, uint8, error) {
	return FindProgramAddress(program, seedLock, LEUint64(id))
}

// Vault derives the Vault account address for the given program and lock id.
func Vault(program Address, id uint64) (Address, uint8, error) {
	return FindProgramAddress(program, seedVault, LEUint64(id))
}

// VaultFromBump reconstructs the vault address from a previously stored bump,
// avoiding a full search. Used by operations that already hold the Lock
// record (and therefore its vault_bump) and only need to confirm, not
// rediscover, the vault's address.
func VaultFromBump(program Address, id uint64, bump uint8) Address {
	return CreateProgramAddress(program, [][]byte{seedVault, LEUint64(id)}, bump)
}
