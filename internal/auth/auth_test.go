// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveLoadClear(t *testing.T) {
	t.Setenv("TUNECTL_APP_DIR", t.TempDir())

	blob := []byte(`{"access_token":"abc","refresh_token":"def"}`)
	assert.NoError(t, Save("alice", blob))

	got, err := Load("alice")
	assert.NoError(t, err)
	assert.Equal(t, blob, got)

	Clear("alice")

	_, err = Load("alice")
	assert.Error(t, err)

	// Second clear is a no-op.
	Clear("alice")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("TUNECTL_APP_DIR", t.TempDir())

	_, err := Load("nobody")
	assert.Error(t, err)
}

func TestSaveOverwrites(t *testing.T) {
	t.Setenv("TUNECTL_APP_DIR", t.TempDir())

	assert.NoError(t, Save("alice", []byte("old")))
	assert.NoError(t, Save("alice", []byte("new")))

	got, err := Load("alice")
	assert.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}
