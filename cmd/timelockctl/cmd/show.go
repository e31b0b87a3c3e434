// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [global|lock <address>]",
	Short: "display the decoded contents of an account",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		switch args[0] {
		case "global":
			global, err := s.program.DescribeGlobalState()
			if err != nil {
				return err
			}
			fmt.Printf("authority:    %s\nlock_counter: %d\n", global.Authority, global.LockCounter)
			return nil

		case "lock":
			if len(args) != 2 {
				return errors.New("timelockctl: show lock requires a lock address")
			}
			lockAddr, err := parseAddress("lock", args[1])
			if err != nil {
				return err
			}
			lock, err := s.program.DescribeLock(lockAddr)
			if err != nil {
				return err
			}
			fmt.Printf("id:               %d\nowner:            %s\nmint:             %s\namount:           %d\nunlock_timestamp: %d\ncreated_at:       %d\nvault_bump:       %d\nis_unlocked:      %t\n",
				lock.ID, lock.Owner, lock.Mint, lock.Amount, lock.UnlockTimestamp, lock.CreatedAt, lock.VaultBump, lock.IsUnlocked)
			return nil

		default:
			return errors.Newf("timelockctl: unknown show target %q", args[0])
		}
	},
}
