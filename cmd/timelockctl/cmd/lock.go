// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/luxfi/timelock/timelock"
	"github.com/spf13/cobra"
)

var (
	lockOwner        string
	lockMint         string
	lockOwnerAccount string
	lockAmount       uint64
	lockUnlockAt     int64
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "lock tokens into a new position",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		owner, err := parseAddress("owner", lockOwner)
		if err != nil {
			return err
		}
		mint, err := parseAddress("mint", lockMint)
		if err != nil {
			return err
		}
		ownerAccount, err := parseAddress("owner-token-account", lockOwnerAccount)
		if err != nil {
			return err
		}

		global, err := s.program.DescribeGlobalState()
		if err != nil {
			return err
		}
		lockAddr, vaultAddr, err := s.program.LockAndVaultAddress(global.LockCounter)
		if err != nil {
			return err
		}

		result, err := s.program.Lock(timelock.LockRequest{
			Owner:             owner,
			Mint:              mint,
			OwnerTokenAccount: ownerAccount,
			Amount:            lockAmount,
			UnlockTimestamp:   lockUnlockAt,
			LockAddress:       lockAddr,
			VaultAddress:      vaultAddr,
		})
		if err != nil {
			return err
		}

		trackTokenAccount(ownerAccount)
		trackTokenAccount(result.VaultAddress)
		trackOwner(owner)
		trackOwner(s.program.FeeRecipient)
		if err := s.close(); err != nil {
			return err
		}

		fmt.Printf("created lock %d\n  lock account:  %s\n  vault account: %s\n", result.ID, result.LockAddress, result.VaultAddress)
		return nil
	},
}

func init() {
	lockCmd.Flags().StringVar(&lockOwner, "owner", "", "the depositor's address")
	lockCmd.Flags().StringVar(&lockMint, "mint", "", "the token mint address")
	lockCmd.Flags().StringVar(&lockOwnerAccount, "owner-token-account", "", "the depositor's source token account")
	lockCmd.Flags().Uint64Var(&lockAmount, "amount", 0, "amount of tokens to lock")
	lockCmd.Flags().Int64Var(&lockUnlockAt, "unlock-at", 0, "unix timestamp at which the lock may be unlocked")
	for _, name := range []string{"owner", "mint", "owner-token-account", "amount", "unlock-at"} {
		_ = lockCmd.MarkFlagRequired(name)
	}
}
