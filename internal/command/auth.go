// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tunectlgo/internal/auth"
	"github.com/staranto/tunectlgo/internal/meta"
)

func AuthClearAction(_ context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	user, err := requireUser(cmd)
	if err != nil {
		return err
	}

	auth.Clear(user)
	return nil
}

func AuthCommandBuilder(_ *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "manage persisted credentials",
		Commands: []*cli.Command{
			{
				Name:      "clear",
				Usage:     "remove the user's persisted credentials",
				UsageText: `tunectl auth clear [options]`,
				Metadata:  map[string]any{"meta": m},
				Flags: []cli.Flag{
					NewUserFlag("auth", m.Config.Source),
				},
				Action: AuthClearAction,
			},
		},
	}
}
