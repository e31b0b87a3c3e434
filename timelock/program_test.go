// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/timelock/address"
	"github.com/luxfi/timelock/engine"
	"github.com/luxfi/timelock/token"
	"github.com/stretchr/testify/require"
)

func addr(s string) address.Address {
	var a address.Address
	copy(a[:], s)
	return a
}

type harness struct {
	program *Program
	clock   *engine.FixedClock
	tokens  *token.MemoryLedger
	native  *engine.MemoryNativeLedger
	mint    address.Address
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	programID := addr("timelock-program-under-test-0001")
	feeRecipient := addr("fee-recipient-account-0000000001")
	mint := addr("mint-0000000000000000000000000001")

	store := engine.NewMemoryStore()
	tokens := token.NewMemoryLedger()
	native := engine.NewMemoryNativeLedger()
	clock := engine.NewFixedClock(1_700_000_000)

	ctx := engine.NewContext(programID, store, native, tokens, clock)
	program := New(programID, feeRecipient, ctx)

	require.NoError(t, program.Initialize(addr("authority-account-000000000001")))

	return &harness{program: program, clock: clock, tokens: tokens, native: native, mint: mint}
}

// fundDepositor creates a token account for owner holding amount units of
// h.mint, and credits owner's native balance with at least one fee.
func (h *harness) fundDepositor(t *testing.T, owner, tokenAccount address.Address, amount uint64) {
	t.Helper()
	h.tokens.Seed(tokenAccount, token.Account{Owner: owner, Mint: h.mint, Amount: amount})
	h.native.Credit(owner, uint256.NewInt(10*FeeBaseUnits))
}

func (h *harness) lock(t *testing.T, owner, tokenAccount address.Address, amount uint64, unlockTS int64) LockResult {
	t.Helper()
	global, err := h.program.DescribeGlobalState()
	require.NoError(t, err)
	lockAddr, vaultAddr, err := h.program.LockAndVaultAddress(global.LockCounter)
	require.NoError(t, err)

	result, err := h.program.Lock(LockRequest{
		Owner:             owner,
		Mint:              h.mint,
		OwnerTokenAccount: tokenAccount,
		Amount:            amount,
		UnlockTimestamp:   unlockTS,
		LockAddress:       lockAddr,
		VaultAddress:      vaultAddr,
	})
	require.NoError(t, err)
	return result
}

func TestScenarioHappyPath(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	dest := addr("alice-destination-token-account")
	h.tokens.Seed(dest, token.Account{Owner: alice, Mint: h.mint, Amount: 0})
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	feeRecipient := h.program.FeeRecipient
	before := h.native.Balance(feeRecipient)

	result := h.lock(t, alice, aliceTokens, 100e9, h.clock.Now()+3600)
	require.EqualValues(t, 0, result.ID)

	vaultAcc, ok := h.tokens.Account(result.VaultAddress)
	require.True(t, ok)
	require.EqualValues(t, 100e9, vaultAcc.Amount)

	after := h.native.Balance(feeRecipient)
	require.Equal(t, uint256.NewInt(FeeBaseUnits), new(uint256.Int).Sub(after, before))

	global, err := h.program.DescribeGlobalState()
	require.NoError(t, err)
	require.EqualValues(t, 1, global.LockCounter)

	h.clock.Set(h.clock.Now() + 3600)
	err = h.program.Unlock(UnlockRequest{
		Owner:                   alice,
		LockAddress:             result.LockAddress,
		VaultAddress:            result.VaultAddress,
		Mint:                    h.mint,
		DestinationTokenAccount: dest,
	})
	require.NoError(t, err)

	vaultAcc, _ = h.tokens.Account(result.VaultAddress)
	require.Zero(t, vaultAcc.Amount)

	lock, err := h.program.DescribeLock(result.LockAddress)
	require.NoError(t, err)
	require.Zero(t, lock.Amount)
	require.True(t, lock.IsUnlocked)

	destAcc, _ := h.tokens.Account(dest)
	require.EqualValues(t, 100e9, destAcc.Amount)
}

func TestScenarioZeroAmountRejected(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	global, err := h.program.DescribeGlobalState()
	require.NoError(t, err)
	lockAddr, vaultAddr, err := h.program.LockAndVaultAddress(global.LockCounter)
	require.NoError(t, err)

	_, err = h.program.Lock(LockRequest{
		Owner:             alice,
		Mint:              h.mint,
		OwnerTokenAccount: aliceTokens,
		Amount:            0,
		UnlockTimestamp:   h.clock.Now() + 3600,
		LockAddress:       lockAddr,
		VaultAddress:      vaultAddr,
	})
	require.ErrorIs(t, err, ErrAmountZero)

	global, err = h.program.DescribeGlobalState()
	require.NoError(t, err)
	require.EqualValues(t, 0, global.LockCounter)
}

func TestScenarioPastTimestampRejected(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	global, err := h.program.DescribeGlobalState()
	require.NoError(t, err)
	lockAddr, vaultAddr, err := h.program.LockAndVaultAddress(global.LockCounter)
	require.NoError(t, err)

	_, err = h.program.Lock(LockRequest{
		Owner:             alice,
		Mint:              h.mint,
		OwnerTokenAccount: aliceTokens,
		Amount:            1,
		UnlockTimestamp:   h.clock.Now() - 3600,
		LockAddress:       lockAddr,
		VaultAddress:      vaultAddr,
	})
	require.ErrorIs(t, err, ErrTimestampInPast)
}

func TestScenarioTopUpExtendUnlock(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	dest := addr("alice-destination-token-account")
	h.tokens.Seed(dest, token.Account{Owner: alice, Mint: h.mint, Amount: 0})
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	start := h.clock.Now()
	result := h.lock(t, alice, aliceTokens, 50e9, start+3600)

	require.NoError(t, h.program.TopUp(TopUpRequest{
		Owner:             alice,
		LockAddress:       result.LockAddress,
		VaultAddress:      result.VaultAddress,
		Mint:              h.mint,
		OwnerTokenAccount: aliceTokens,
		AdditionalAmount:  25e9,
	}))
	lock, err := h.program.DescribeLock(result.LockAddress)
	require.NoError(t, err)
	require.EqualValues(t, 75e9, lock.Amount)
	require.EqualValues(t, start+3600, lock.UnlockTimestamp)

	require.NoError(t, h.program.Extend(ExtendRequest{
		Owner:              alice,
		LockAddress:        result.LockAddress,
		NewUnlockTimestamp: start + 7200,
	}))
	lock, err = h.program.DescribeLock(result.LockAddress)
	require.NoError(t, err)
	require.EqualValues(t, 75e9, lock.Amount)
	require.EqualValues(t, start+7200, lock.UnlockTimestamp)

	h.clock.Set(start + 7200)
	require.NoError(t, h.program.Unlock(UnlockRequest{
		Owner:                   alice,
		LockAddress:             result.LockAddress,
		VaultAddress:            result.VaultAddress,
		Mint:                    h.mint,
		DestinationTokenAccount: dest,
	}))

	lock, err = h.program.DescribeLock(result.LockAddress)
	require.NoError(t, err)
	require.True(t, lock.IsUnlocked)
	require.Zero(t, lock.Amount)

	vaultAcc, _ := h.tokens.Account(result.VaultAddress)
	require.Zero(t, vaultAcc.Amount)
}

func TestScenarioCrossOwnerRejected(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	bob := addr("bob-account-00000000000000000002")
	aliceTokens := addr("alice-token-account-000000001")
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	result := h.lock(t, alice, aliceTokens, 50e9, h.clock.Now()+3600)
	h.clock.Set(h.clock.Now() + 3600)

	err := h.program.Unlock(UnlockRequest{
		Owner:                   bob,
		LockAddress:             result.LockAddress,
		VaultAddress:            result.VaultAddress,
		Mint:                    h.mint,
		DestinationTokenAccount: aliceTokens,
	})
	require.ErrorIs(t, err, ErrUnauthorized)

	lock, err := h.program.DescribeLock(result.LockAddress)
	require.NoError(t, err)
	require.EqualValues(t, 50e9, lock.Amount)
	require.False(t, lock.IsUnlocked)
}

func TestScenarioExtendCannotShorten(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	deadline := h.clock.Now() + 3600
	result := h.lock(t, alice, aliceTokens, 50e9, deadline)

	err := h.program.Extend(ExtendRequest{Owner: alice, LockAddress: result.LockAddress, NewUnlockTimestamp: deadline})
	require.ErrorIs(t, err, ErrCannotShortenTimestamp)

	err = h.program.Extend(ExtendRequest{Owner: alice, LockAddress: result.LockAddress, NewUnlockTimestamp: deadline - 1})
	require.ErrorIs(t, err, ErrCannotShortenTimestamp)

	err = h.program.Extend(ExtendRequest{Owner: alice, LockAddress: result.LockAddress, NewUnlockTimestamp: deadline + 1})
	require.NoError(t, err)
}

func TestScenarioNoFeeOnNonCreationOps(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	dest := addr("alice-destination-token-account")
	h.tokens.Seed(dest, token.Account{Owner: alice, Mint: h.mint, Amount: 0})
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	result := h.lock(t, alice, aliceTokens, 50e9, h.clock.Now()+3600)

	before := h.native.Balance(h.program.FeeRecipient)

	require.NoError(t, h.program.TopUp(TopUpRequest{
		Owner: alice, LockAddress: result.LockAddress, VaultAddress: result.VaultAddress,
		Mint: h.mint, OwnerTokenAccount: aliceTokens, AdditionalAmount: 1e9,
	}))
	require.Equal(t, before, h.native.Balance(h.program.FeeRecipient))

	require.NoError(t, h.program.Extend(ExtendRequest{
		Owner: alice, LockAddress: result.LockAddress, NewUnlockTimestamp: h.clock.Now() + 7200,
	}))
	require.Equal(t, before, h.native.Balance(h.program.FeeRecipient))

	h.clock.Set(h.clock.Now() + 7200)
	require.NoError(t, h.program.Unlock(UnlockRequest{
		Owner: alice, LockAddress: result.LockAddress, VaultAddress: result.VaultAddress,
		Mint: h.mint, DestinationTokenAccount: dest,
	}))
	require.Equal(t, before, h.native.Balance(h.program.FeeRecipient))
}

func TestScenarioSequentialIDsAcrossOwners(t *testing.T) {
	h := newHarness(t)
	owners := []address.Address{
		addr("owner-one-account-0000000000001"),
		addr("owner-two-account-0000000000002"),
		addr("owner-three-account-000000000003"),
	}

	var ids []uint64
	for i, owner := range owners {
		tokenAccount := addr("owner-token-account-number-000" + string(rune('0'+i)))
		h.fundDepositor(t, owner, tokenAccount, 10e9)
		result := h.lock(t, owner, tokenAccount, 1e9, h.clock.Now()+3600)
		ids = append(ids, result.ID)
	}

	require.Equal(t, []uint64{0, 1, 2}, ids)
}

func TestScenarioWrongMintRejected(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	result := h.lock(t, alice, aliceTokens, 50e9, h.clock.Now()+3600)

	wrongMint := addr("wrong-mint-account-00000000001")
	err := h.program.TopUp(TopUpRequest{
		Owner: alice, LockAddress: result.LockAddress, VaultAddress: result.VaultAddress,
		Mint: wrongMint, OwnerTokenAccount: aliceTokens, AdditionalAmount: 1,
	})
	require.ErrorIs(t, err, ErrInvalidMint)
}

func TestScenarioUnlockExactlyAtDeadlineAccepted(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	dest := addr("alice-destination-token-account")
	h.tokens.Seed(dest, token.Account{Owner: alice, Mint: h.mint, Amount: 0})
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	deadline := h.clock.Now() + 3600
	result := h.lock(t, alice, aliceTokens, 50e9, deadline)

	h.clock.Set(deadline)
	err := h.program.Unlock(UnlockRequest{
		Owner: alice, LockAddress: result.LockAddress, VaultAddress: result.VaultAddress,
		Mint: h.mint, DestinationTokenAccount: dest,
	})
	require.NoError(t, err)
}

func TestScenarioUnlockTooEarlyRejected(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	dest := addr("alice-destination-token-account")
	h.tokens.Seed(dest, token.Account{Owner: alice, Mint: h.mint, Amount: 0})
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	deadline := h.clock.Now() + 3600
	result := h.lock(t, alice, aliceTokens, 50e9, deadline)

	h.clock.Set(deadline - 1)
	err := h.program.Unlock(UnlockRequest{
		Owner: alice, LockAddress: result.LockAddress, VaultAddress: result.VaultAddress,
		Mint: h.mint, DestinationTokenAccount: dest,
	})
	require.ErrorIs(t, err, ErrTooEarly)
}

func TestScenarioUnlockIsAbsorbing(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	dest := addr("alice-destination-token-account")
	h.tokens.Seed(dest, token.Account{Owner: alice, Mint: h.mint, Amount: 0})
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	deadline := h.clock.Now() + 3600
	result := h.lock(t, alice, aliceTokens, 50e9, deadline)
	h.clock.Set(deadline)

	req := UnlockRequest{
		Owner: alice, LockAddress: result.LockAddress, VaultAddress: result.VaultAddress,
		Mint: h.mint, DestinationTokenAccount: dest,
	}
	require.NoError(t, h.program.Unlock(req))
	err := h.program.Unlock(req)
	require.ErrorIs(t, err, ErrAlreadyUnlocked)

	err = h.program.TopUp(TopUpRequest{
		Owner: alice, LockAddress: result.LockAddress, VaultAddress: result.VaultAddress,
		Mint: h.mint, OwnerTokenAccount: aliceTokens, AdditionalAmount: 1,
	})
	require.ErrorIs(t, err, ErrAlreadyUnlocked)

	err = h.program.Extend(ExtendRequest{Owner: alice, LockAddress: result.LockAddress, NewUnlockTimestamp: deadline + 100})
	require.ErrorIs(t, err, ErrAlreadyUnlocked)
}

func TestInitializeRejectsDoubleInitialization(t *testing.T) {
	h := newHarness(t)
	err := h.program.Initialize(addr("authority-account-000000000001"))
	require.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestLockRejectsAddressMismatch(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	h.fundDepositor(t, alice, aliceTokens, 100e9)

	_, err := h.program.Lock(LockRequest{
		Owner:             alice,
		Mint:              h.mint,
		OwnerTokenAccount: aliceTokens,
		Amount:            1,
		UnlockTimestamp:   h.clock.Now() + 3600,
		LockAddress:       addr("not-the-derived-lock-address!!!"),
		VaultAddress:      addr("not-the-derived-vault-address!!"),
	})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestTopUpOverflowIsFatal(t *testing.T) {
	h := newHarness(t)
	alice := addr("alice-account-0000000000000001")
	aliceTokens := addr("alice-token-account-000000001")
	h.fundDepositor(t, alice, aliceTokens, 1)

	result := h.lock(t, alice, aliceTokens, 1, h.clock.Now()+3600)

	h.tokens.Seed(aliceTokens, token.Account{Owner: alice, Mint: h.mint, Amount: ^uint64(0)})
	err := h.program.TopUp(TopUpRequest{
		Owner: alice, LockAddress: result.LockAddress, VaultAddress: result.VaultAddress,
		Mint: h.mint, OwnerTokenAccount: aliceTokens, AdditionalAmount: ^uint64(0),
	})
	require.ErrorIs(t, err, ErrAmountOverflow)
}
