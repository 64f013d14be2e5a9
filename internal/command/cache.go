// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/tunectlgo/internal/appdir"
	"github.com/staranto/tunectlgo/internal/cache"
	"github.com/staranto/tunectlgo/internal/meta"
)

func CacheLsAction(_ context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	user, err := requireUser(cmd)
	if err != nil {
		return err
	}

	dir, err := appdir.CacheDir(user)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	// Humanized columns for people, tab-separated raw values for pipes.
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if tty {
			fmt.Printf("%-48s %10s  %s\n", entry.Name(),
				humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))
		} else {
			fmt.Printf("%s\t%d\t%d\n", entry.Name(), info.Size(),
				info.ModTime().Unix())
		}
	}

	return nil
}

func CacheGetAction(_ context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	user, err := requireUser(cmd)
	if err != nil {
		return err
	}

	key := cmd.Args().First()
	if key == "" {
		return fmt.Errorf("a cache key is required")
	}

	c := cache.New(user)
	defer c.Close()

	if path := cmd.String("path"); path != "" {
		result, ok := c.Lookup(key, path)
		if !ok {
			return fmt.Errorf("no value at %s in cache entry %s", path, key)
		}
		fmt.Println(result.String())
		return nil
	}

	value, ok := c.Get(key)
	if !ok {
		return fmt.Errorf("cache miss: %s", key)
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render cache entry: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

func CacheClearAction(_ context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	user, err := requireUser(cmd)
	if err != nil {
		return err
	}

	// With a key, clear just that entry. With no key, drop the whole cache.
	if key := cmd.Args().First(); key != "" {
		c := cache.New(user)
		defer c.Close()
		c.Clear(key)
		c.Flush()
		return nil
	}

	appdir.ClearCache(user)
	return nil
}

func CacheCommandBuilder(_ *cli.Command, m meta.Meta) *cli.Command {
	md := map[string]any{"meta": m}

	return &cli.Command{
		Name:  "cache",
		Usage: "inspect and maintain the per-user API cache",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "list cache entries",
				UsageText: `tunectl cache ls [options]`,
				Metadata:  md,
				Flags: []cli.Flag{
					NewUserFlag("cache", m.Config.Source),
				},
				Action: CacheLsAction,
			},
			{
				Name:      "get",
				Usage:     "print a cache entry",
				UsageText: `tunectl cache get <key> [options]`,
				Metadata:  md,
				Flags: []cli.Flag{
					NewUserFlag("cache", m.Config.Source),
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "print only this dotted path of the entry",
					},
				},
				Action: CacheGetAction,
			},
			{
				Name:      "clear",
				Usage:     "remove one entry, or the entire cache",
				UsageText: `tunectl cache clear [<key>] [options]`,
				Metadata:  md,
				Flags: []cli.Flag{
					NewUserFlag("cache", m.Config.Source),
				},
				Action: CacheClearAction,
			},
		},
	}
}

// requireUser resolves the --user flag, which may also arrive via env or
// config file.
func requireUser(cmd *cli.Command) (string, error) {
	user := cmd.String("user")
	if user == "" {
		return "", fmt.Errorf("no user specified: use --user, TUNECTL_USER, or tunectl.yaml")
	}
	return user, nil
}
