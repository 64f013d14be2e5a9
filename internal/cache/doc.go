// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache provides the two-tier (memory + disk) per-user cache tunectl
// uses to avoid refetching remote API documents. The memory tier answers
// repeat lookups without disk I/O; the disk tier survives restarts.
package cache
