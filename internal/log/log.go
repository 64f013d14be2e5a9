// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	"golang.org/x/term"

	"github.com/staranto/tunectlgo/internal/appdir"
)

// InitLogger sets up Apex with the file-backed handler and a log level from
// the TUNECTL_LOG env variable.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("TUNECTL_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(NewHandler())
	log.SetLevelFromString(level)
}

// Handler formats log messages and writes them to the app-dir log file.
// Diagnostics must never end up in the middle of the player UI, so stderr is
// used only as a fallback, and only when stderr is actually a terminal.
type Handler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHandler opens (truncating) the log file under the app dir. If the file
// cannot be opened the handler falls back to stderr or, failing that,
// discards everything.
func NewHandler() *Handler {
	var w io.Writer = io.Discard
	if dir, err := appdir.AppDir(); err == nil {
		f, err := os.OpenFile(filepath.Join(dir, "log"),
			os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) //nolint:mnd
		if err == nil {
			w = f
		}
	}
	if w == io.Discard && term.IsTerminal(int(os.Stderr.Fd())) {
		w = os.Stderr
	}
	return &Handler{w: w}
}

// HandleLog implements the log.Handler interface.
func (h *Handler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.w, "[%s][%.1s] %s\n", timestamp, level, e.Message)
	return nil
}
