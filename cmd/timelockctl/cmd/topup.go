// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/luxfi/timelock/timelock"
	"github.com/spf13/cobra"
)

var (
	topUpOwner        string
	topUpLock         string
	topUpVault        string
	topUpMint         string
	topUpOwnerAccount string
	topUpAmount       uint64
)

var topUpCmd = &cobra.Command{
	Use:   "top-up",
	Short: "add more tokens to an existing lock",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		owner, err := parseAddress("owner", topUpOwner)
		if err != nil {
			return err
		}
		lockAddr, err := parseAddress("lock", topUpLock)
		if err != nil {
			return err
		}
		vaultAddr, err := parseAddress("vault", topUpVault)
		if err != nil {
			return err
		}
		mint, err := parseAddress("mint", topUpMint)
		if err != nil {
			return err
		}
		ownerAccount, err := parseAddress("owner-token-account", topUpOwnerAccount)
		if err != nil {
			return err
		}

		if err := s.program.TopUp(timelock.TopUpRequest{
			Owner:             owner,
			LockAddress:       lockAddr,
			VaultAddress:      vaultAddr,
			Mint:              mint,
			OwnerTokenAccount: ownerAccount,
			AdditionalAmount:  topUpAmount,
		}); err != nil {
			return err
		}

		trackTokenAccount(ownerAccount)
		trackTokenAccount(vaultAddr)
		if err := s.close(); err != nil {
			return err
		}

		fmt.Printf("topped up lock %s by %d\n", lockAddr, topUpAmount)
		return nil
	},
}

func init() {
	topUpCmd.Flags().StringVar(&topUpOwner, "owner", "", "the lock owner's address")
	topUpCmd.Flags().StringVar(&topUpLock, "lock", "", "the lock account address")
	topUpCmd.Flags().StringVar(&topUpVault, "vault", "", "the vault account address")
	topUpCmd.Flags().StringVar(&topUpMint, "mint", "", "the token mint address")
	topUpCmd.Flags().StringVar(&topUpOwnerAccount, "owner-token-account", "", "the depositor's source token account")
	topUpCmd.Flags().Uint64Var(&topUpAmount, "amount", 0, "additional amount of tokens to lock")
	for _, name := range []string{"owner", "lock", "vault", "mint", "owner-token-account", "amount"} {
		_ = topUpCmd.MarkFlagRequired(name)
	}
}
