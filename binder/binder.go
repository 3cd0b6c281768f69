// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package binder realizes canonical bind groups on a backend, creating
// each distinct bind group at most once.
package binder

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gogpu/renderres"
	"github.com/gogpu/renderres/backend"
	"github.com/gogpu/renderres/cache"
)

// Binder errors.
var (
	// ErrNilBackend is returned when creating a binder without a backend.
	ErrNilBackend = errors.New("binder: backend is nil")

	// ErrNilBindGroup is returned when realizing a nil bind group.
	ErrNilBindGroup = errors.New("binder: bind group is nil")
)

// Option configures a Binder.
type Option func(*Binder)

// WithCacheCapacity sets the per-shard capacity of the descriptor cache.
func WithCacheCapacity(capacity int) Option {
	return func(b *Binder) {
		b.cache = cache.New(capacity)
	}
}

// WithLabelPrefix sets a prefix for the debug labels of realized bind
// groups. The bind group id is appended to the prefix.
func WithLabelPrefix(prefix string) Option {
	return func(b *Binder) {
		b.labelPrefix = prefix
	}
}

// realizeKey identifies one realization. The same bind group realized
// against two different layouts yields two device objects.
type realizeKey struct {
	layout backend.LayoutID
	group  renderres.BindGroupID
}

// Binder creates device bind groups on demand and reuses them by
// identity.
//
// Bind group creation involves device validation and allocation. The
// binder stores realized groups indexed by (layout, bind group id) so
// equivalent descriptions, however they were built, resolve to one
// device object.
//
// Thread Safety:
// Binder is safe for concurrent use. It uses RWMutex with double-check
// locking for efficient reads and safe writes.
type Binder struct {
	// mu protects realized.
	mu sync.RWMutex

	backend backend.Backend

	// realized maps realization keys to device group ids.
	realized map[realizeKey]backend.GroupID

	// cache canonicalizes bind group descriptions by identity.
	cache *cache.Cache

	labelPrefix string

	// hits counts realizations served from the map (atomic).
	hits uint64

	// misses counts realizations that hit the device (atomic).
	misses uint64
}

// New creates a Binder on the given backend.
func New(be backend.Backend, opts ...Option) (*Binder, error) {
	if be == nil {
		return nil, ErrNilBackend
	}

	b := &Binder{
		backend:  be,
		realized: make(map[realizeKey]backend.GroupID),
		cache:    cache.New(cache.DefaultCapacity),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Realize returns the device bind group for the given description,
// creating it on the backend the first time the identity is seen.
//
// The description is interned first, so callers may build throwaway
// bind groups and still converge on one canonical instance per
// identity.
func (b *Binder) Realize(layout backend.LayoutID, group *renderres.BindGroup) (backend.GroupID, error) {
	if group == nil {
		return backend.InvalidID, ErrNilBindGroup
	}

	group = b.cache.Intern(group)
	key := realizeKey{layout: layout, group: group.ID()}

	// Fast path: read lock
	b.mu.RLock()
	if id, ok := b.realized[key]; ok {
		b.mu.RUnlock()
		atomic.AddUint64(&b.hits, 1)
		return id, nil
	}
	b.mu.RUnlock()

	// Slow path: write lock with double-check
	b.mu.Lock()
	defer b.mu.Unlock()

	if id, ok := b.realized[key]; ok {
		atomic.AddUint64(&b.hits, 1)
		return id, nil
	}

	id, err := b.backend.CreateBindGroup(layout, group, b.labelPrefix+group.ID().String())
	if err != nil {
		return backend.InvalidID, err
	}

	b.realized[key] = id
	atomic.AddUint64(&b.misses, 1)

	renderres.Logger().Debug("realized bind group",
		"id", group.ID().String(),
		"layout", uint64(layout),
		"entries", len(group.Entries()),
		"dynamic", group.HasDynamicOffsets())

	return id, nil
}

// Release destroys the realized device group for one identity under
// one layout. Releasing an unrealized pair is a no-op. The canonical
// description stays cached; the next Realize creates a fresh device
// group.
func (b *Binder) Release(layout backend.LayoutID, id renderres.BindGroupID) {
	key := realizeKey{layout: layout, group: id}

	b.mu.Lock()
	gid, ok := b.realized[key]
	if ok {
		delete(b.realized, key)
	}
	b.mu.Unlock()

	if ok {
		b.backend.DestroyBindGroup(gid)
	}
}

// Clear destroys every realized device group and drops the descriptor
// cache.
func (b *Binder) Clear() {
	b.mu.Lock()
	realized := b.realized
	b.realized = make(map[realizeKey]backend.GroupID)
	b.mu.Unlock()

	for _, gid := range realized {
		b.backend.DestroyBindGroup(gid)
	}
	b.cache.Clear()
}

// Cache returns the descriptor cache backing this binder.
func (b *Binder) Cache() *cache.Cache {
	return b.cache
}

// Stats reports realization counters.
type Stats struct {
	// Realized is the number of live device bind groups.
	Realized int

	// Hits is the number of realizations served without device work.
	Hits uint64

	// Misses is the number of realizations that created a device group.
	Misses uint64

	// HitRate is Hits / (Hits + Misses), or 0 when empty.
	HitRate float64
}

// Stats returns a snapshot of the binder's counters.
func (b *Binder) Stats() Stats {
	b.mu.RLock()
	realized := len(b.realized)
	b.mu.RUnlock()

	hits := atomic.LoadUint64(&b.hits)
	misses := atomic.LoadUint64(&b.misses)

	s := Stats{
		Realized: realized,
		Hits:     hits,
		Misses:   misses,
	}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total)
	}
	return s
}
