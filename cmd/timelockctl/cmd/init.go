// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initAuthority string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "create the program's GlobalState account",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		authority, err := parseAddress("authority", initAuthority)
		if err != nil {
			return err
		}

		if err := s.program.Initialize(authority); err != nil {
			return err
		}
		if err := s.close(); err != nil {
			return err
		}
		fmt.Printf("initialized program %s with authority %s\n", s.program.ID, authority)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initAuthority, "authority", "", "address to record as the program authority")
	_ = initCmd.MarkFlagRequired("authority")
}
