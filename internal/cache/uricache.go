// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/tunectlgo/internal/appdir"
)

// writeQueueDepth bounds the number of disk operations waiting on the
// background writer before Set/Clear start applying back-pressure.
const writeQueueDepth = 64

type diskOp struct {
	path   string
	data   []byte // nil means remove
	remove bool
}

// UriCache caches remote API documents for one user. Values go to the memory
// tier immediately and to a per-key file on disk via a background writer, so
// callers are never stalled by disk I/O. Values must round-trip through JSON;
// a value read back from disk decodes to the generic JSON shapes
// (map[string]any, []any, float64, string, bool, nil).
//
// One UriCache per active user session. Set and Clear funnel through a single
// writer goroutine, so the disk tier applies operations on the same key in
// call order.
type UriCache struct {
	username string

	mu  sync.RWMutex
	mem map[string]any

	ops  chan diskOp
	wg   sync.WaitGroup
	once sync.Once
}

// New returns a cache for username and starts its background writer.
func New(username string) *UriCache {
	c := &UriCache{
		username: username,
		mem:      map[string]any{},
		ops:      make(chan diskOp, writeQueueDepth),
	}
	go c.writer()
	return c
}

// Get returns the cached value for key. A miss is not an error: the second
// return value is false and the caller refetches from the API. A disk hit is
// copied into the memory tier before being returned.
func (c *UriCache) Get(key string) (any, bool) {
	c.mu.RLock()
	v, ok := c.mem[key]
	c.mu.RUnlock()
	if ok {
		log.Debugf("memory cache hit: %s", key)
		return v, true
	}

	path, err := c.Filename(key)
	if err != nil {
		log.WithError(err).Warnf("cannot resolve cache file for %s", key)
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("cache miss: %s", key)
		return nil, false
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		// A corrupted or partially-written entry is treated as a miss. The
		// next Set overwrites it.
		log.WithError(err).Warnf("discarding unreadable cache entry %s", path)
		return nil, false
	}
	log.Debugf("disk cache hit: %s", key)

	c.mu.Lock()
	c.mem[key] = value
	c.mu.Unlock()

	return value, true
}

// Set stores value for key. The memory tier is updated immediately; the disk
// write happens on the background writer. A failed disk write is logged and
// never surfaced, leaving the disk tier stale while the memory tier stays
// correct.
func (c *UriCache) Set(key string, value any) {
	c.mu.Lock()
	c.mem[key] = value
	c.mu.Unlock()

	path, err := c.Filename(key)
	if err != nil {
		log.WithError(err).Warnf("cannot resolve cache file for %s", key)
		return
	}

	// Encode here rather than on the writer so a caller mutating value after
	// Set doesn't race the disk write.
	data, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).Warnf("cannot serialize cache entry %s", key)
		return
	}

	c.wg.Add(1)
	c.ops <- diskOp{path: path, data: data}
}

// Clear removes key from both tiers. Best-effort: absence of the key or the
// file is not an error. The file removal rides the writer queue, keeping it
// ordered after any in-flight write for the same key.
func (c *UriCache) Clear(key string) {
	c.mu.Lock()
	delete(c.mem, key)
	c.mu.Unlock()

	path, err := c.Filename(key)
	if err != nil {
		log.WithError(err).Debugf("cannot resolve cache file for %s", key)
		return
	}

	c.wg.Add(1)
	c.ops <- diskOp{path: path, remove: true}
}

// Lookup drills a gjson path into the raw JSON of a cached entry, letting
// callers pull single fields out of large cached documents. The second
// return value is false on a miss or when the path does not exist.
func (c *UriCache) Lookup(key, path string) (gjson.Result, bool) {
	c.mu.RLock()
	v, ok := c.mem[key]
	c.mu.RUnlock()

	var data []byte
	if ok {
		b, err := json.Marshal(v)
		if err != nil {
			log.WithError(err).Warnf("cannot serialize cache entry %s", key)
			return gjson.Result{}, false
		}
		data = b
	} else {
		p, err := c.Filename(key)
		if err != nil {
			return gjson.Result{}, false
		}
		b, err := os.ReadFile(p)
		if err != nil {
			log.Debugf("cache miss: %s", key)
			return gjson.Result{}, false
		}
		data = b
	}

	result := gjson.GetBytes(data, path)
	return result, result.Exists()
}

// Flush blocks until every disk operation enqueued so far has completed.
// Mostly useful in tests and on shutdown; the player itself never waits.
func (c *UriCache) Flush() {
	c.wg.Wait()
}

// Close flushes pending writes and stops the background writer. The cache
// must not be used after Close.
func (c *UriCache) Close() {
	c.wg.Wait()
	c.once.Do(func() { close(c.ops) })
}

// Filename returns the on-disk path for key. Any ":" in the key is replaced
// with "_" before it is used as a filename component, so "a:b" and "a_b"
// collide; acceptable for the URI-shaped keys the player stores.
func (c *UriCache) Filename(key string) (string, error) {
	return appdir.FileFromCache(c.username, sanitizeKey(key))
}

// writer applies disk operations one at a time, in the order they were
// enqueued. Failures are logged and dropped.
func (c *UriCache) writer() {
	for op := range c.ops {
		if op.remove {
			if err := os.Remove(op.path); err == nil {
				log.Debugf("removed %s from disk cache", op.path)
			} else if !os.IsNotExist(err) {
				log.WithError(err).Debugf("could not remove cache entry %s", op.path)
			}
		} else {
			if err := os.WriteFile(op.path, op.data, 0o600); err != nil { //nolint:mnd
				log.WithError(err).Warnf("failed to write cache entry %s", op.path)
			} else {
				log.Debugf("saved %s to disk", op.path)
			}
		}
		c.wg.Done()
	}
}

func sanitizeKey(key string) string {
	return strings.ReplaceAll(key, ":", "_")
}
