// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/renderres"
	"github.com/gogpu/renderres/backend"
	"github.com/gogpu/renderres/layout"
)

// Name is the backend identifier.
const Name = "wgpu"

// Backend realizes bind groups on a hal.Device.
//
// Thread Safety: Backend is safe for concurrent use from multiple
// goroutines. All resource operations are protected by a mutex.
type Backend struct {
	mu     sync.RWMutex
	device hal.Device
	closed bool

	// ID generation
	nextID atomic.Uint64

	// Registered native handles
	buffers  map[renderres.BufferID]uintptr
	textures map[renderres.TextureID]uintptr
	samplers map[renderres.SamplerID]uintptr

	// Device objects owned by this backend
	layouts map[backend.LayoutID]hal.BindGroupLayout
	groups  map[backend.GroupID]hal.BindGroup
}

var _ backend.Backend = (*Backend)(nil)

// New creates a Backend wrapping the given device.
// The device must outlive the backend.
func New(device hal.Device) *Backend {
	b := &Backend{
		device:   device,
		buffers:  make(map[renderres.BufferID]uintptr),
		textures: make(map[renderres.TextureID]uintptr),
		samplers: make(map[renderres.SamplerID]uintptr),
		layouts:  make(map[backend.LayoutID]hal.BindGroupLayout),
		groups:   make(map[backend.GroupID]hal.BindGroup),
	}

	// Start ID generation at 1 (0 is invalid)
	b.nextID.Store(1)

	return b
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return Name }

// newID generates a unique resource ID.
func (b *Backend) newID() uint64 {
	return b.nextID.Add(1) - 1
}

// === Resource Registration ===

// RegisterBuffer registers a native buffer handle.
func (b *Backend) RegisterBuffer(native uintptr) renderres.BufferID {
	id := renderres.BufferID(b.newID())
	b.mu.Lock()
	b.buffers[id] = native
	b.mu.Unlock()
	return id
}

// RegisterTexture registers a native texture view handle.
func (b *Backend) RegisterTexture(native uintptr) renderres.TextureID {
	id := renderres.TextureID(b.newID())
	b.mu.Lock()
	b.textures[id] = native
	b.mu.Unlock()
	return id
}

// RegisterSampler registers a native sampler handle.
func (b *Backend) RegisterSampler(native uintptr) renderres.SamplerID {
	id := renderres.SamplerID(b.newID())
	b.mu.Lock()
	b.samplers[id] = native
	b.mu.Unlock()
	return id
}

// UnregisterBuffer forgets a registered buffer.
func (b *Backend) UnregisterBuffer(id renderres.BufferID) {
	b.mu.Lock()
	delete(b.buffers, id)
	b.mu.Unlock()
}

// UnregisterTexture forgets a registered texture view.
func (b *Backend) UnregisterTexture(id renderres.TextureID) {
	b.mu.Lock()
	delete(b.textures, id)
	b.mu.Unlock()
}

// UnregisterSampler forgets a registered sampler.
func (b *Backend) UnregisterSampler(id renderres.SamplerID) {
	b.mu.Lock()
	delete(b.samplers, id)
	b.mu.Unlock()
}

// === Layouts ===

// CreateBindGroupLayout creates a bind group layout on the device.
func (b *Backend) CreateBindGroupLayout(desc *layout.Desc) (backend.LayoutID, error) {
	if desc == nil {
		return backend.InvalidID, fmt.Errorf("wgpu: nil layout descriptor")
	}
	if b.isClosed() {
		return backend.InvalidID, backend.ErrClosed
	}

	halLayout, err := b.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   desc.Label,
		Entries: desc.GPUEntries(),
	})
	if err != nil {
		return backend.InvalidID, fmt.Errorf("wgpu: create bind group layout %q: %w", desc.Label, err)
	}

	id := backend.LayoutID(b.newID())

	b.mu.Lock()
	b.layouts[id] = halLayout
	b.mu.Unlock()

	return id, nil
}

// DestroyBindGroupLayout releases a bind group layout.
// Destroying an unknown id is a no-op, logged at warn level.
func (b *Backend) DestroyBindGroupLayout(id backend.LayoutID) {
	b.mu.Lock()
	halLayout, ok := b.layouts[id]
	if ok {
		delete(b.layouts, id)
	}
	b.mu.Unlock()

	if !ok {
		renderres.Logger().Warn("destroy of unknown bind group layout",
			"backend", Name,
			"layout", uint64(id),
		)
		return
	}
	b.device.DestroyBindGroupLayout(halLayout)
}

// === Bind Groups ===

// CreateBindGroup realizes a bind group against a layout.
func (b *Backend) CreateBindGroup(layoutID backend.LayoutID, group *renderres.BindGroup, label string) (backend.GroupID, error) {
	if group == nil {
		return backend.InvalidID, fmt.Errorf("wgpu: nil bind group")
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return backend.InvalidID, backend.ErrClosed
	}
	halLayout, ok := b.layouts[layoutID]
	if !ok {
		b.mu.RUnlock()
		return backend.InvalidID, fmt.Errorf("wgpu: layout %d: %w", layoutID, backend.ErrLayoutNotFound)
	}

	entries := make([]gputypes.BindGroupEntry, len(group.Entries()))
	for i, e := range group.Entries() {
		entry, err := b.convertEntry(e)
		if err != nil {
			b.mu.RUnlock()
			return backend.InvalidID, err
		}
		entries[i] = entry
	}
	b.mu.RUnlock()

	halGroup, err := b.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   label,
		Layout:  halLayout,
		Entries: entries,
	})
	if err != nil {
		return backend.InvalidID, fmt.Errorf("wgpu: create bind group %q: %w", label, err)
	}

	id := backend.GroupID(b.newID())

	b.mu.Lock()
	b.groups[id] = halGroup
	b.mu.Unlock()

	return id, nil
}

// convertEntry resolves an entry's resource to its native handle.
// Must be called with mu held.
func (b *Backend) convertEntry(e renderres.IndexedBindingEntry) (gputypes.BindGroupEntry, error) {
	out := gputypes.BindGroupEntry{Binding: e.Index}

	switch r := e.Binding.(type) {
	case renderres.BufferBinding:
		native, ok := b.buffers[r.Buffer]
		if !ok {
			return out, fmt.Errorf("wgpu: binding %d: buffer %d: %w", e.Index, r.Buffer, backend.ErrResourceNotFound)
		}
		out.Resource = gputypes.BufferBinding{
			Buffer: native,
			Offset: r.Range.Start,
			Size:   r.Range.Len(),
		}
	case renderres.TextureBinding:
		native, ok := b.textures[r.Texture]
		if !ok {
			return out, fmt.Errorf("wgpu: binding %d: texture %d: %w", e.Index, r.Texture, backend.ErrResourceNotFound)
		}
		out.Resource = gputypes.TextureViewBinding{TextureView: native}
	case renderres.SamplerBinding:
		native, ok := b.samplers[r.Sampler]
		if !ok {
			return out, fmt.Errorf("wgpu: binding %d: sampler %d: %w", e.Index, r.Sampler, backend.ErrResourceNotFound)
		}
		out.Resource = gputypes.SamplerBinding{Sampler: native}
	default:
		return out, fmt.Errorf("wgpu: binding %d: unsupported resource kind %v", e.Index, e.Binding.Kind())
	}

	return out, nil
}

// DestroyBindGroup releases a realized bind group.
// Destroying an unknown id is a no-op, logged at warn level.
func (b *Backend) DestroyBindGroup(id backend.GroupID) {
	b.mu.Lock()
	halGroup, ok := b.groups[id]
	if ok {
		delete(b.groups, id)
	}
	b.mu.Unlock()

	if !ok {
		renderres.Logger().Warn("destroy of unknown bind group",
			"backend", Name,
			"group", uint64(id),
		)
		return
	}
	b.device.DestroyBindGroup(halGroup)
}

// Close releases every layout and bind group the backend created.
func (b *Backend) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	groups := b.groups
	layouts := b.layouts
	b.groups = make(map[backend.GroupID]hal.BindGroup)
	b.layouts = make(map[backend.LayoutID]hal.BindGroupLayout)
	b.mu.Unlock()

	for _, g := range groups {
		b.device.DestroyBindGroup(g)
	}
	for _, l := range layouts {
		b.device.DestroyBindGroupLayout(l)
	}
}

func (b *Backend) isClosed() bool {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	return closed
}
