// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/luxfi/timelock/timelock"
	"github.com/spf13/cobra"
)

var (
	unlockOwner       string
	unlockLock        string
	unlockVault       string
	unlockMint        string
	unlockDestination string
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "drain a matured lock to its owner",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		owner, err := parseAddress("owner", unlockOwner)
		if err != nil {
			return err
		}
		lockAddr, err := parseAddress("lock", unlockLock)
		if err != nil {
			return err
		}
		vaultAddr, err := parseAddress("vault", unlockVault)
		if err != nil {
			return err
		}
		mint, err := parseAddress("mint", unlockMint)
		if err != nil {
			return err
		}
		destination, err := parseAddress("destination", unlockDestination)
		if err != nil {
			return err
		}

		if err := s.program.Unlock(timelock.UnlockRequest{
			Owner:                   owner,
			LockAddress:             lockAddr,
			VaultAddress:            vaultAddr,
			Mint:                    mint,
			DestinationTokenAccount: destination,
		}); err != nil {
			return err
		}

		trackTokenAccount(vaultAddr)
		trackTokenAccount(destination)
		if err := s.close(); err != nil {
			return err
		}

		fmt.Printf("unlocked lock %s to %s\n", lockAddr, destination)
		return nil
	},
}

func init() {
	unlockCmd.Flags().StringVar(&unlockOwner, "owner", "", "the lock owner's address")
	unlockCmd.Flags().StringVar(&unlockLock, "lock", "", "the lock account address")
	unlockCmd.Flags().StringVar(&unlockVault, "vault", "", "the vault account address")
	unlockCmd.Flags().StringVar(&unlockMint, "mint", "", "the token mint address")
	unlockCmd.Flags().StringVar(&unlockDestination, "destination", "", "the destination token account")
	for _, name := range []string{"owner", "lock", "vault", "mint", "destination"} {
		_ = unlockCmd.MarkFlagRequired(name)
	}
}
