// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewUserFlag constructs the --user flag shared by the cache and auth
// commands. The value falls back from the explicit flag to TUNECTL_USER,
// then to the command-namespaced and top-level "user" keys in tunectl.yaml.
func NewUserFlag(cmdName, cfgSource string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "username whose files to operate on",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TUNECTL_USER"),
			yaml.YAML(cmdName+"."+"user", altsrc.StringSourcer(cfgSource)),
			yaml.YAML("user", altsrc.StringSourcer(cfgSource)),
		),
	}
}
