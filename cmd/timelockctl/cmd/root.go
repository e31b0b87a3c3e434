// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "timelockctl",
	Short: "a local simulator for the token time-lock protocol",
}

// Execute runs the command line logic as specified in this package, driven
// by the arguments and flags passed by the user.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", DefaultConfigPath(), "path to timelockctl's config file")
	rootCmd.AddCommand(
		initCmd,
		lockCmd,
		topUpCmd,
		extendCmd,
		unlockCmd,
		showCmd,
		faucetCmd,
		deploymentsCmd,
	)
}
