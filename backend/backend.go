// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/gogpu/renderres"
	"github.com/gogpu/renderres/layout"
)

// Common backend errors.
var (
	// ErrLayoutNotFound is returned when a bind group references a
	// layout id that was never created or has been destroyed.
	ErrLayoutNotFound = errors.New("backend: bind group layout not found")

	// ErrResourceNotFound is returned when a binding references a
	// buffer, texture or sampler id that is not registered.
	ErrResourceNotFound = errors.New("backend: resource not found")

	// ErrClosed is returned when operations are called after Close.
	ErrClosed = errors.New("backend: closed")
)

// LayoutID identifies a bind group layout created on a backend.
type LayoutID uint64

// GroupID identifies a bind group realized on a backend.
type GroupID uint64

// InvalidID is the zero value for backend ids. No valid layout or
// group ever carries it.
const InvalidID = 0

// Backend realizes canonical bind group descriptions on a GPU device.
//
// Resources are registered by their native handle and referenced from
// bindings by the opaque id the registration returned. The backend
// never owns registered resources; the caller remains responsible for
// destroying the underlying GPU objects after unregistering them.
//
// Backends must be safe for concurrent use from multiple goroutines.
type Backend interface {
	// Name returns the backend identifier (e.g., "wgpu").
	Name() string

	// RegisterBuffer registers a native buffer handle and returns the
	// id that buffer bindings use to reference it.
	RegisterBuffer(native uintptr) renderres.BufferID

	// RegisterTexture registers a native texture view handle.
	RegisterTexture(native uintptr) renderres.TextureID

	// RegisterSampler registers a native sampler handle.
	RegisterSampler(native uintptr) renderres.SamplerID

	// UnregisterBuffer forgets a registered buffer. Bind groups created
	// from it remain valid until destroyed.
	UnregisterBuffer(id renderres.BufferID)

	// UnregisterTexture forgets a registered texture view.
	UnregisterTexture(id renderres.TextureID)

	// UnregisterSampler forgets a registered sampler.
	UnregisterSampler(id renderres.SamplerID)

	// CreateBindGroupLayout creates a layout on the device.
	CreateBindGroupLayout(desc *layout.Desc) (LayoutID, error)

	// DestroyBindGroupLayout releases a layout. Destroying an unknown
	// id is a no-op.
	DestroyBindGroupLayout(id LayoutID)

	// CreateBindGroup realizes a bind group against a layout. Every
	// resource the group references must be registered.
	CreateBindGroup(layout LayoutID, group *renderres.BindGroup, label string) (GroupID, error)

	// DestroyBindGroup releases a realized bind group. Destroying an
	// unknown id is a no-op.
	DestroyBindGroup(id GroupID)

	// Close releases every layout and bind group the backend created.
	// The backend must not be used after Close.
	Close()
}
