// Package wgpu implements backend.Backend on top of a gogpu/wgpu HAL
// device.
//
// The package uses the gogpu/wgpu Pure Go WebGPU implementation, which
// supports Vulkan, Metal, and DX12 backends depending on the platform.
// The application owns device acquisition and resource creation; this
// backend only translates canonical layouts and bind groups into
// hal.BindGroupLayout and hal.BindGroup objects:
//
//	b := wgpu.New(device)
//	defer b.Close()
//
//	buf := b.RegisterBuffer(uniformBuf.NativeHandle())
//	lid, err := b.CreateBindGroupLayout(&desc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	gid, err := b.CreateBindGroup(lid, group, "uniforms")
package wgpu
