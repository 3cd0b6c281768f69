package renderres

import "fmt"

// Resource IDs
//
// These opaque IDs represent externally-owned GPU resources. The engine
// that allocates buffers, textures and samplers assigns the IDs; this
// package treats them as pure identity and never dereferences them.
// IDs are uint64 to accommodate various backend handle sizes.

// BufferID is an opaque handle to a GPU buffer.
type BufferID uint64

// TextureID is an opaque handle to a GPU texture.
type TextureID uint64

// SamplerID is an opaque handle to a GPU sampler.
type SamplerID uint64

// BindGroupID is the content-derived identity of a BindGroup.
// Two bind groups built from the same binding feed sequence share an ID.
type BindGroupID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// String returns the ID in hexadecimal, matching GPU debugger conventions.
func (id BindGroupID) String() string {
	return fmt.Sprintf("BindGroupID(%#016x)", uint64(id))
}

// BufferRange is a half-open byte range [Start, End) within a buffer.
type BufferRange struct {
	Start uint64
	End   uint64
}

// Len returns the number of bytes covered by the range.
func (r BufferRange) Len() uint64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}
