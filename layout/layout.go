// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"slices"
)

// BindingType specifies the type of resource a layout slot accepts.
type BindingType uint32

// Binding types.
const (
	// BindingTypeUniformBuffer is a uniform buffer binding.
	BindingTypeUniformBuffer BindingType = iota + 1

	// BindingTypeStorageBuffer is a storage buffer binding (read-write).
	BindingTypeStorageBuffer

	// BindingTypeReadOnlyStorageBuffer is a read-only storage buffer binding.
	BindingTypeReadOnlyStorageBuffer

	// BindingTypeSampler is a filtering sampler binding.
	BindingTypeSampler

	// BindingTypeComparisonSampler is a comparison (shadow) sampler binding.
	BindingTypeComparisonSampler

	// BindingTypeSampledTexture is a sampled texture binding.
	BindingTypeSampledTexture

	// BindingTypeStorageTexture is a storage texture binding.
	BindingTypeStorageTexture
)

// String returns a human-readable name for the binding type.
func (t BindingType) String() string {
	switch t {
	case BindingTypeUniformBuffer:
		return "UniformBuffer"
	case BindingTypeStorageBuffer:
		return "StorageBuffer"
	case BindingTypeReadOnlyStorageBuffer:
		return "ReadOnlyStorageBuffer"
	case BindingTypeSampler:
		return "Sampler"
	case BindingTypeComparisonSampler:
		return "ComparisonSampler"
	case BindingTypeSampledTexture:
		return "SampledTexture"
	case BindingTypeStorageTexture:
		return "StorageTexture"
	default:
		return "Unknown"
	}
}

// ShaderStage is a bitmask of pipeline stages that can see a binding.
type ShaderStage uint32

// Shader stages. These can be combined with bitwise OR.
const (
	// StageVertex makes a binding visible to vertex shaders.
	StageVertex ShaderStage = 1 << iota

	// StageFragment makes a binding visible to fragment shaders.
	StageFragment

	// StageCompute makes a binding visible to compute shaders.
	StageCompute
)

// StageAll makes a binding visible to every stage.
const StageAll = StageVertex | StageFragment | StageCompute

// Entry describes a single binding slot in a bind group layout.
type Entry struct {
	// Binding is the slot index within the group.
	Binding uint32

	// Visibility is the set of stages that can access the binding.
	Visibility ShaderStage

	// Type is the resource type accepted at this slot.
	Type BindingType

	// MinBindingSize is the minimum buffer size in bytes for buffer
	// bindings. Zero for non-buffer bindings or when unconstrained.
	MinBindingSize uint64

	// HasDynamicOffset marks a buffer binding whose offset is supplied
	// per draw rather than baked into the bind group.
	HasDynamicOffset bool
}

// Desc describes a bind group layout: the shape a [renderres.BindGroup]
// must have to be bound at a given group slot.
type Desc struct {
	// Label is an optional debug label.
	Label string

	// Entries are the slots of the layout.
	Entries []Entry
}

// Sort orders the entries ascending by binding index, in place.
// Hash assumes sorted entries; call Sort first when the construction
// order is not already canonical.
func (d *Desc) Sort() {
	slices.SortStableFunc(d.Entries, func(a, b Entry) int {
		switch {
		case a.Binding < b.Binding:
			return -1
		case a.Binding > b.Binding:
			return 1
		default:
			return 0
		}
	})
}

// Hash computes the layout's 64-bit identity over its entries.
// The label is excluded: two layouts that differ only in debug labels
// are interchangeable on the GPU.
func (d *Desc) Hash() uint64 {
	h := fnv.New64a()

	hashWriteUint32(h, uint32(len(d.Entries)))
	for i := range d.Entries {
		e := &d.Entries[i]
		hashWriteUint32(h, e.Binding)
		hashWriteUint32(h, uint32(e.Visibility))
		hashWriteUint32(h, uint32(e.Type))
		hashWriteUint64(h, e.MinBindingSize)
		hashWriteBool(h, e.HasDynamicOffset)
	}

	return h.Sum64()
}

func hashWriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:])
}

func hashWriteUint64(h hash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}

func hashWriteBool(h hash.Hash64, v bool) {
	if v {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
}
