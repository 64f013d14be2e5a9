// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for tunectl. It wires flags,
// actions, and config-file value sources for subcommands.
package command
