// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command timelockctl is a local, file-backed simulator for the time-lock
// protocol: it lets an operator run initialize/lock/top_up/extend/unlock
// against a single-process account store without a real chain behind it.
package main

import "github.com/luxfi/timelock/cmd/timelockctl/cmd"

func main() {
	cmd.Execute()
}
