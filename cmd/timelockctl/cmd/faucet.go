// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/timelock/token"
	"github.com/spf13/cobra"
)

var (
	faucetTokenAccount string
	faucetOwner        string
	faucetMint         string
	faucetTokenAmount  uint64
	faucetNativeAmount uint64
)

// faucetCmd has no on-chain analogue: a real mint and a real native-currency
// faucet are out of this protocol's scope entirely. It exists only so the
// other commands have something to operate on in a from-scratch data
// directory.
var faucetCmd = &cobra.Command{
	Use:   "faucet",
	Short: "seed a token account and/or a native balance for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		if faucetTokenAccount != "" {
			tokenAccount, err := parseAddress("token-account", faucetTokenAccount)
			if err != nil {
				return err
			}
			owner, err := parseAddress("owner", faucetOwner)
			if err != nil {
				return err
			}
			mint, err := parseAddress("mint", faucetMint)
			if err != nil {
				return err
			}
			s.tokens.Seed(tokenAccount, token.Account{Owner: owner, Mint: mint, Amount: faucetTokenAmount})
			trackTokenAccount(tokenAccount)
			fmt.Printf("seeded token account %s with %d units of mint %s\n", tokenAccount, faucetTokenAmount, mint)
		}

		if faucetNativeAmount != 0 {
			owner, err := parseAddress("owner", faucetOwner)
			if err != nil {
				return err
			}
			s.native.Credit(owner, uint256.NewInt(faucetNativeAmount))
			trackOwner(owner)
			fmt.Printf("credited %s with %d native units\n", owner, faucetNativeAmount)
		}

		return s.close()
	},
}

func init() {
	faucetCmd.Flags().StringVar(&faucetTokenAccount, "token-account", "", "token account to seed, leave empty to skip")
	faucetCmd.Flags().StringVar(&faucetOwner, "owner", "", "owner address for the seeded token account and/or native credit")
	faucetCmd.Flags().StringVar(&faucetMint, "mint", "", "mint address for the seeded token account")
	faucetCmd.Flags().Uint64Var(&faucetTokenAmount, "token-amount", 0, "token balance to set on --token-account")
	faucetCmd.Flags().Uint64Var(&faucetNativeAmount, "native-amount", 0, "native balance to credit to --owner, 0 to skip")
}
