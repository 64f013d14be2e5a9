// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version knows the running tunectl release and how to find out
// whether a newer one has been published.
package version

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Version is the current tunectl release.
const Version = "0.16.2"

// latestURL serves the single-line .version file of the latest release.
// A var so tests can point it at a local server.
var latestURL = "https://raw.githubusercontent.com/staranto/tunectlgo/master/.version"

// Semver is a parsed major.minor.patch version.
type Semver struct {
	Major int
	Minor int
	Patch int
}

func (v Semver) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Newer reports whether v is a strictly newer release than other.
func (v Semver) Newer(other Semver) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	return v.Patch > other.Patch
}

// Parse reads a version from r: the first line containing a "." is taken as
// the dotted version string. Anything else is an error.
func Parse(r io.Reader) (Semver, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, ".") {
			return parseLine(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Semver{}, fmt.Errorf("failed to read version: %w", err)
	}
	return Semver{}, errors.New("no version line found")
}

// Current returns the running release as a Semver.
func Current() (Semver, error) {
	return Parse(strings.NewReader(Version))
}

// Latest fetches the most recently published release. Fetch-or-fail: any
// transport, status, or parse problem is returned; callers log and move on.
func Latest(ctx context.Context) (Semver, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestURL, nil)
	if err != nil {
		return Semver{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Semver{}, fmt.Errorf("failed to fetch latest version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Semver{}, fmt.Errorf("failed to fetch latest version: %s", resp.Status)
	}

	return Parse(resp.Body)
}

func parseLine(line string) (Semver, error) {
	parts := strings.Split(line, ".")
	if len(parts) != 3 { //nolint:mnd
		return Semver{}, fmt.Errorf("malformed version %q", line)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Semver{}, fmt.Errorf("malformed version %q: %w", line, err)
		}
		nums[i] = n
	}

	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}
