// Package backend provides a pluggable GPU backend abstraction for
// realizing bind groups.
//
// The backend package decouples the canonical bind group model from any
// particular graphics API. A Backend turns layout descriptions and bind
// groups into device objects and hands back opaque ids; everything above
// it (the builder, the cache, the binder) works purely on canonical
// types and never touches device handles.
//
// # Resource Registration
//
// Backends do not create buffers, textures or samplers. The application
// creates those through its own device code, registers their native
// handles, and references them from bindings by the returned ids:
//
//	buf := b.RegisterBuffer(halBuffer.NativeHandle())
//	tex := b.RegisterTexture(halView.NativeHandle())
//
// Registration is by handle on purpose: the backend never owns the
// underlying resources and never destroys them.
//
// # Realizing Bind Groups
//
// Layouts and bind groups created through a Backend are owned by it and
// released via the Destroy methods or Close:
//
//	lid, err := b.CreateBindGroupLayout(&desc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	gid, err := b.CreateBindGroup(lid, group, "scene")
//
// # Available Backends
//
// - "wgpu": gogpu/wgpu HAL devices (see backend/wgpu)
package backend
