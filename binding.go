package renderres

// BindingKind discriminates the variants of a ResourceBinding.
type BindingKind uint8

// Binding kinds. The values double as hash discriminant bytes, so two
// bindings of different kinds can never serialize to overlapping byte
// patterns.
const (
	// BindingKindBuffer is a buffer binding covering a byte range.
	BindingKindBuffer BindingKind = iota + 1

	// BindingKindTexture is a sampled texture binding.
	BindingKindTexture

	// BindingKindSampler is a sampler binding.
	BindingKindSampler
)

// String returns a human-readable name for the kind.
func (k BindingKind) String() string {
	switch k {
	case BindingKindBuffer:
		return "Buffer"
	case BindingKindTexture:
		return "Texture"
	case BindingKindSampler:
		return "Sampler"
	default:
		return "Unknown"
	}
}

// ResourceBinding is one resource attached to a bind group slot.
// It is a closed union: the only implementations are [BufferBinding],
// [TextureBinding] and [SamplerBinding].
type ResourceBinding interface {
	// Kind reports which variant this binding is.
	Kind() BindingKind

	// resourceBinding seals the interface against outside implementations.
	resourceBinding()
}

// BufferBinding binds a byte range of a buffer.
//
// DynamicIndex is the optional dynamic-offset slot for this buffer.
// It participates in the bind group's dynamic-offset sequence but is
// NOT part of the binding's identity: changing only the dynamic index
// leaves the bind group ID unchanged.
type BufferBinding struct {
	Buffer BufferID
	Range  BufferRange

	// DynamicIndex is valid only when HasDynamicIndex is true.
	DynamicIndex    uint32
	HasDynamicIndex bool
}

// Kind implements ResourceBinding.
func (BufferBinding) Kind() BindingKind { return BindingKindBuffer }

func (BufferBinding) resourceBinding() {}

// TextureBinding binds a texture.
type TextureBinding struct {
	Texture TextureID
}

// Kind implements ResourceBinding.
func (TextureBinding) Kind() BindingKind { return BindingKindTexture }

func (TextureBinding) resourceBinding() {}

// SamplerBinding binds a sampler.
type SamplerBinding struct {
	Sampler SamplerID
}

// Kind implements ResourceBinding.
func (SamplerBinding) Kind() BindingKind { return BindingKindSampler }

func (SamplerBinding) resourceBinding() {}
