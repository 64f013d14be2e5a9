// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tunectlgo/internal/meta"
	"github.com/staranto/tunectlgo/internal/version"
)

func VersionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	fmt.Println(version.Version)

	if !cmd.Bool("check") {
		return nil
	}

	current, err := version.Current()
	if err != nil {
		return err
	}

	latest, err := version.Latest(ctx)
	if err != nil {
		return fmt.Errorf("could not check for a newer release: %w", err)
	}

	if latest.Newer(current) {
		fmt.Printf("a newer release is available: %s\n", latest)
	} else {
		fmt.Println("up to date")
	}

	return nil
}

func VersionCommandBuilder(_ *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "show the tunectl version",
		UsageText: `tunectl version [options]`,
		Metadata:  map[string]any{"meta": m},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "check",
				Aliases:     []string{"c"},
				Usage:       "check for a newer release",
				HideDefault: true,
			},
		},
		Action: VersionCommandAction,
	}
}
