// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package auth persists the opaque credential blob the authentication flow
// hands us. The blob format belongs to the remote API client; this package
// only moves bytes between it and <app-dir>/<username>/auth.
package auth

import (
	"fmt"
	"os"

	"github.com/staranto/tunectlgo/internal/appdir"
)

// Save writes the credential blob for username, replacing any previous one.
func Save(username string, blob []byte) error {
	path, err := appdir.AuthFilename(username)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, blob, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write auth file: %w", err)
	}
	return nil
}

// Load reads the credential blob for username. A missing file is an error;
// the caller falls back to the interactive auth flow.
func Load(username string) ([]byte, error) {
	path, err := appdir.AuthFilename(username)
	if err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth file: %w", err)
	}
	return blob, nil
}

// Clear removes the persisted credentials. Best-effort, never fails the
// caller.
func Clear(username string) {
	appdir.ClearAuth(username)
}
