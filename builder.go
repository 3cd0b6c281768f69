package renderres

import (
	"hash"
	"hash/fnv"
	"slices"
)

// BindGroupBuilder accumulates indexed resource bindings and finalizes
// them into a canonical [BindGroup].
//
// The builder is chainable and single-owner: accumulate on one goroutine,
// call Finish once, then share the resulting BindGroup freely. A builder
// must not be reused after Finish.
//
// The identity hash is fed in ADD order, not slot order. Callers that
// want structurally equal binding sets to collapse to the same ID must
// add bindings in a consistent order (by convention, ascending slot
// index). The sorted entry sequence produced by Finish is independent of
// add order either way.
//
// Example:
//
//	bg := renderres.NewBindGroupBuilder().
//	    AddBuffer(0, viewBuf, renderres.BufferRange{End: 64}).
//	    AddTexture(1, albedo).
//	    AddSampler(2, linear).
//	    Finish()
type BindGroupBuilder struct {
	entries        []IndexedBindingEntry
	dynamicOffsets []uint32
	hasher         hash.Hash64
}

// NewBindGroupBuilder creates an empty builder.
func NewBindGroupBuilder() *BindGroupBuilder {
	return &BindGroupBuilder{
		hasher: fnv.New64a(),
	}
}

// AddBinding appends a binding at the given slot index.
//
// Any index and any handle are accepted as opaque data; slot indices are
// assumed unique within one build and are not checked. If the binding is
// a dynamic buffer, its dynamic index is appended to the group's
// dynamic-offset sequence in add order.
func (b *BindGroupBuilder) AddBinding(index uint32, binding ResourceBinding) *BindGroupBuilder {
	if buf, ok := binding.(BufferBinding); ok && buf.HasDynamicIndex {
		b.dynamicOffsets = append(b.dynamicOffsets, buf.DynamicIndex)
	}

	b.hashBinding(binding)
	b.entries = append(b.entries, IndexedBindingEntry{
		Index:   index,
		Binding: binding,
	})
	return b
}

// AddTexture appends a texture binding at the given slot index.
func (b *BindGroupBuilder) AddTexture(index uint32, texture TextureID) *BindGroupBuilder {
	return b.AddBinding(index, TextureBinding{Texture: texture})
}

// AddSampler appends a sampler binding at the given slot index.
func (b *BindGroupBuilder) AddSampler(index uint32, sampler SamplerID) *BindGroupBuilder {
	return b.AddBinding(index, SamplerBinding{Sampler: sampler})
}

// AddBuffer appends a buffer binding covering the given byte range.
func (b *BindGroupBuilder) AddBuffer(index uint32, buffer BufferID, rng BufferRange) *BindGroupBuilder {
	return b.AddBinding(index, BufferBinding{
		Buffer: buffer,
		Range:  rng,
	})
}

// AddDynamicBuffer appends a buffer binding whose offset is supplied per
// draw via the dynamic-offset sequence slot dynamicIndex.
func (b *BindGroupBuilder) AddDynamicBuffer(index uint32, buffer BufferID, rng BufferRange, dynamicIndex uint32) *BindGroupBuilder {
	return b.AddBinding(index, BufferBinding{
		Buffer:          buffer,
		Range:           rng,
		DynamicIndex:    dynamicIndex,
		HasDynamicIndex: true,
	})
}

// Finish seals the builder and returns the canonical BindGroup.
//
// Entries are sorted ascending by slot index (stable), so the entry
// sequence does not depend on the order bindings were added. The
// dynamic-offset sequence keeps add order and is absent (nil) when no
// dynamic buffer was added.
func (b *BindGroupBuilder) Finish() *BindGroup {
	slices.SortStableFunc(b.entries, func(x, y IndexedBindingEntry) int {
		switch {
		case x.Index < y.Index:
			return -1
		case x.Index > y.Index:
			return 1
		default:
			return 0
		}
	})

	return &BindGroup{
		id:             BindGroupID(b.hasher.Sum64()),
		entries:        b.entries,
		dynamicOffsets: b.dynamicOffsets,
	}
}

// hashBinding feeds the identity-relevant fields of a binding into the
// running hash: the kind discriminant, the resource handle, and for
// buffers the byte range. The slot index and the dynamic-offset index
// are deliberately excluded.
func (b *BindGroupBuilder) hashBinding(binding ResourceBinding) {
	switch v := binding.(type) {
	case BufferBinding:
		hashWriteByte(b.hasher, byte(BindingKindBuffer))
		hashWriteUint64(b.hasher, uint64(v.Buffer))
		hashWriteUint64(b.hasher, v.Range.Start)
		hashWriteUint64(b.hasher, v.Range.End)
	case TextureBinding:
		hashWriteByte(b.hasher, byte(BindingKindTexture))
		hashWriteUint64(b.hasher, uint64(v.Texture))
	case SamplerBinding:
		hashWriteByte(b.hasher, byte(BindingKindSampler))
		hashWriteUint64(b.hasher, uint64(v.Sampler))
	}
}
