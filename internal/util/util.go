// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package util holds the small shared helpers that don't deserve a package
// of their own.
package util

import (
	"cmp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Clamp limits value to the inclusive range [low, high].
func Clamp[T cmp.Ordered](value, low, high T) T {
	return max(low, min(value, high))
}

// InRange reports whether n is a valid index for a collection of the given
// length.
func InRange(n, length int) bool {
	return n >= 0 && n < length
}

// IsInt reports whether s parses as a base-10 integer.
func IsInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// ASCIIFold decomposes s (NFKD) and strips everything outside ASCII, so
// accented track and artist names render on terminals that can't.
func ASCIIFold(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Stopwatch measures elapsed wall time from its creation.
type Stopwatch struct {
	start time.Time
}

func NewStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}
