// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/luxfi/timelock/timelock"
	"github.com/spf13/cobra"
)

var (
	extendOwner   string
	extendLock    string
	extendNewTime int64
)

var extendCmd = &cobra.Command{
	Use:   "extend",
	Short: "push a lock's unlock timestamp further into the future",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		owner, err := parseAddress("owner", extendOwner)
		if err != nil {
			return err
		}
		lockAddr, err := parseAddress("lock", extendLock)
		if err != nil {
			return err
		}

		if err := s.program.Extend(timelock.ExtendRequest{
			Owner:              owner,
			LockAddress:        lockAddr,
			NewUnlockTimestamp: extendNewTime,
		}); err != nil {
			return err
		}
		if err := s.close(); err != nil {
			return err
		}

		fmt.Printf("extended lock %s to unlock at %d\n", lockAddr, extendNewTime)
		return nil
	},
}

func init() {
	extendCmd.Flags().StringVar(&extendOwner, "owner", "", "the lock owner's address")
	extendCmd.Flags().StringVar(&extendLock, "lock", "", "the lock account address")
	extendCmd.Flags().Int64Var(&extendNewTime, "new-unlock-at", 0, "new unix timestamp, strictly later than the current one")
	for _, name := range []string{"owner", "lock", "new-unlock-at"} {
		_ = extendCmd.MarkFlagRequired(name)
	}
}
