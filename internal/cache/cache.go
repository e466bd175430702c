// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cache provides a content-keyed result cache for the detection
// pipeline. Keys pair the normalized text with the active configuration
// fingerprint, so a configuration change never serves stale results.
// Access uses a read/check/insert discipline safe for hosts that process
// fields in parallel: two fields can normalize to identical text and race
// on the same key.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
)

// Key derives a cache key from normalized text content and a
// configuration fingerprint.
func Key(text, configFingerprint string) string {
	sum := sha256.Sum256([]byte(configFingerprint + "\x00" + text))
	return fmt.Sprintf("%x", sum)
}

// Cache is a concurrency-safe map of content keys to arbitrary pipeline
// results. Eviction is explicit: the owner resets it when configuration
// changes or a document completes.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]V)}
}

// Get returns the cached value for key, if present.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// GetOrCompute returns the cached value for key, computing and storing it
// on a miss. When two goroutines race on the same key the first stored
// value wins and both callers observe it.
func (c *Cache[V]) GetOrCompute(key string, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}

	v := compute()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = v
	return v
}

// Put stores a value unconditionally.
func (c *Cache[V]) Put(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset discards all entries.
func (c *Cache[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]V)
}
