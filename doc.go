// Package renderres provides canonical, identity-hashed GPU bind groups
// for the GoGPU ecosystem.
//
// # Overview
//
// renderres sits between a renderer's resource layer and its GPU backend.
// The renderer describes which buffers, textures and samplers a draw needs
// via [BindGroupBuilder]; the result is an immutable [BindGroup] whose
// 64-bit identity is derived from its contents, so structurally identical
// binding sets collapse to one identity and one backend object.
//
// # Quick Start
//
//	import "github.com/gogpu/renderres"
//
//	bg := renderres.NewBindGroupBuilder().
//	    AddBuffer(0, viewBuf, renderres.BufferRange{End: 256}).
//	    AddTexture(1, albedo).
//	    AddSampler(2, linear).
//	    Finish()
//
//	// bg.ID() is stable for this binding set; bg is immutable and
//	// safe to share across goroutines.
//
// # Architecture
//
// The module is organized into:
//   - Root package: handles, the binding union, BindGroup and its builder
//   - layout: bind group layout descriptors, hashing, WGSL reflection
//   - cache: identity-keyed sharded cache for finished bind groups
//   - backend: backend abstraction plus a gogpu/wgpu HAL implementation
//   - binder: identity-deduplicated realization of bind groups on a backend
//
// # Resource Management
//
// Resources are referenced by opaque IDs ([BufferID], [TextureID],
// [SamplerID]). The surrounding engine owns allocation and lifetime;
// renderres never validates or dereferences a handle.
package renderres
