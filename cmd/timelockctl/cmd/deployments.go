// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/luxfi/timelock/timelock"
	"github.com/spf13/cobra"
)

var deploymentsCmd = &cobra.Command{
	Use:   "deployments",
	Short: "list the program deployments known to the current config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := registerDeployments(cfg); err != nil {
			return err
		}

		for _, m := range timelock.RegisteredModules() {
			active := " "
			if m.ConfigKey == cfg.ConfigKey {
				active = "*"
			}
			fmt.Printf("%s %-16s program=%s fee_recipient=%s\n", active, m.ConfigKey, m.ProgramID, m.FeeRecipient)
		}
		return nil
	},
}
