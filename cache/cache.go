// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides an identity-keyed cache for finished bind groups.
//
// A [renderres.BindGroup] already carries a content-derived 64-bit
// identity, so the cache uses the identity directly as both the map key
// and the shard selector: no extra hashing is needed, and structurally
// identical bind groups intern to a single shared instance.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/renderres"
)

// Default configuration constants.
const (
	// ShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	// shardMask is used for fast shard selection (ShardCount - 1).
	shardMask = ShardCount - 1
)

// Cache is a thread-safe, sharded LRU cache of finished bind groups,
// keyed by bind group identity.
//
// Interning through the cache guarantees one canonical *BindGroup per
// identity, so downstream consumers (pipeline binding, backend
// realization) can compare and deduplicate by pointer or by ID alone.
// Bind groups are immutable, so a cached instance is safe to return to
// any number of concurrent readers.
type Cache struct {
	shards   [ShardCount]*shard
	capacity int // Per-shard capacity

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// shard is a single shard of the cache with its own lock.
type shard struct {
	mu      sync.RWMutex
	entries map[renderres.BindGroupID]*entry
	lru     *lruList
}

// entry holds a cached bind group with its LRU node.
type entry struct {
	group *renderres.BindGroup
	node  *lruNode
}

// New creates a cache with the specified capacity per shard.
// Total capacity is approximately capacity * ShardCount.
// If capacity <= 0, DefaultCapacity is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &Cache{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard{
			entries: make(map[renderres.BindGroupID]*entry),
			lru:     newLRUList(),
		}
	}
	return c
}

// getShard returns the shard for an identity. The identity is already a
// hash, so the low bits select the shard directly.
func (c *Cache) getShard(id renderres.BindGroupID) *shard {
	return c.shards[uint64(id)&shardMask]
}

// Get retrieves a cached bind group by identity.
// Returns (group, true) if present, (nil, false) otherwise.
// On a hit the entry is moved to the front of its shard's LRU list.
func (c *Cache) Get(id renderres.BindGroupID) (*renderres.BindGroup, bool) {
	s := c.getShard(id)

	// Fast path: read lock to check existence.
	s.mu.RLock()
	_, exists := s.entries[id]
	s.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		return nil, false
	}

	// Slow path: write lock for the LRU update.
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		// Evicted between the two locks.
		s.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	s.lru.MoveToFront(e.node)
	group := e.group
	s.mu.Unlock()

	c.hits.Add(1)
	return group, true
}

// Intern stores a bind group under its identity and returns the
// canonical instance: the existing cached instance when one is already
// present, or the argument itself otherwise.
//
// This is the preferred write path: after Intern, every holder of the
// identity shares one *BindGroup.
func (c *Cache) Intern(bg *renderres.BindGroup) *renderres.BindGroup {
	s := c.getShard(bg.ID())

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[bg.ID()]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.group
	}

	c.misses.Add(1)

	// Evict if at capacity.
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}

	node := s.lru.PushFront(bg.ID())
	s.entries[bg.ID()] = &entry{group: bg, node: node}
	return bg
}

// Delete removes a bind group from the cache.
// Returns true if the entry was found and removed.
func (c *Cache) Delete(id renderres.BindGroupID) bool {
	s := c.getShard(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return false
	}

	s.lru.Remove(e.node)
	delete(s.entries, id)
	return true
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[renderres.BindGroupID]*entry)
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *Cache) Capacity() int {
	return c.capacity
}

// TotalCapacity returns the total capacity across all shards.
func (c *Cache) TotalCapacity() int {
	return c.capacity * ShardCount
}

// Stats describes cache effectiveness at a point in time.
type Stats struct {
	// Len is the current number of cached bind groups.
	Len int

	// Capacity is the per-shard capacity.
	Capacity int

	// TotalCapacity is the capacity across all shards.
	TotalCapacity int

	// Hits is the number of lookups that found an entry.
	Hits uint64

	// Misses is the number of lookups that did not.
	Misses uint64

	// HitRate is Hits / (Hits + Misses), or 0 with no lookups.
	HitRate float64

	// Evictions is the number of entries evicted by the LRU policy.
	Evictions uint64
}

// Stats returns current cache statistics.
// The counters are read atomically and may be slightly out of sync with
// each other under concurrent load.
func (c *Cache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.TotalCapacity(),
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
