// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package appdir resolves the on-disk layout used by tunectl: a base
// directory under the platform temp dir, one subdirectory per user, and a
// .cache directory per user holding the serialized API documents. Every
// directory-returning helper creates the directory before returning it, so
// callers never have to pre-create anything.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// appDirName is the fixed subdirectory of the temp dir everything lives in.
const appDirName = "tunectl"

// AppDir resolves the application's base directory.
// Precedence:
//  1. TUNECTL_APP_DIR, if set and non-empty
//  2. os.TempDir()/tunectl
//
// The directory is created if missing. A creation failure is returned as-is;
// nothing else in the application can work without its directory.
func AppDir() (string, error) {
	base := os.Getenv("TUNECTL_APP_DIR")
	if base == "" {
		base = filepath.Join(os.TempDir(), appDirName)
	}
	return ensure(base)
}

// UserDir returns (and creates) the directory holding everything persisted
// for username.
func UserDir(username string) (string, error) {
	app, err := AppDir()
	if err != nil {
		return "", err
	}
	return ensure(filepath.Join(app, username))
}

// CacheDir returns (and creates) the user's .cache directory.
func CacheDir(username string) (string, error) {
	user, err := UserDir(username)
	if err != nil {
		return "", err
	}
	return ensure(filepath.Join(user, ".cache"))
}

// FileFromCache returns the path of name inside the user's cache directory.
func FileFromCache(username, name string) (string, error) {
	dir, err := CacheDir(username)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// AuthFilename returns the path of the user's persisted credential blob.
func AuthFilename(username string) (string, error) {
	dir, err := UserDir(username)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth"), nil
}

// ClearCache removes the user's entire cache directory. Best-effort: a
// failure is logged and swallowed, the caller always succeeds.
func ClearCache(username string) {
	dir, err := CacheDir(username)
	if err != nil {
		log.WithError(err).Debug("could not resolve cache dir to clear")
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		log.WithError(err).Debugf("could not clear %s", dir)
	}
}

// ClearAuth removes the user's credential blob. Best-effort, like ClearCache.
func ClearAuth(username string) {
	path, err := AuthFilename(username)
	if err != nil {
		log.WithError(err).Debug("could not resolve auth file to clear")
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Debugf("could not clear %s", path)
	}
}

// ensure creates path (recursively) if needed and hands it back.
func ensure(path string) (string, error) {
	if err := os.MkdirAll(path, 0o755); err != nil { //nolint:mnd
		return "", fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return path, nil
}
