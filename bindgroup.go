package renderres

// IndexedBindingEntry pairs a binding-slot index with a resource binding.
type IndexedBindingEntry struct {
	// Index is the binding-point number within the group's layout.
	Index uint32

	// Binding is the resource bound at that index.
	Binding ResourceBinding
}

// BindGroup is an ordered set of resource bindings attached at once to a
// pipeline invocation.
//
// A BindGroup is produced by [BindGroupBuilder.Finish], is immutable from
// then on, and is safe to share by pointer across any number of goroutines.
// Its ID is derived from the bindings fed to the builder, so structurally
// identical groups collapse to the same identity and can be deduplicated
// by ID alone (see the cache package).
type BindGroup struct {
	id             BindGroupID
	entries        []IndexedBindingEntry
	dynamicOffsets []uint32
}

// ID returns the content-derived identity of the group.
func (g *BindGroup) ID() BindGroupID {
	return g.id
}

// Entries returns the bindings sorted ascending by slot index.
// The returned slice is owned by the BindGroup; callers must not modify it.
func (g *BindGroup) Entries() []IndexedBindingEntry {
	return g.entries
}

// DynamicOffsetIndices returns the dynamic-offset indices of the group's
// dynamic buffer bindings, in the order those buffers were added.
//
// The result is nil when the group has no dynamic buffers. Callers that
// need to distinguish "no dynamic buffers" from "dynamic buffers present"
// must test for nil, not for length alone.
func (g *BindGroup) DynamicOffsetIndices() []uint32 {
	return g.dynamicOffsets
}

// HasDynamicOffsets reports whether any dynamic buffer binding was added.
func (g *BindGroup) HasDynamicOffsets() bool {
	return g.dynamicOffsets != nil
}
