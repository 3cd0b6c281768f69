// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"testing"
)

const computeShader = `
struct Config {
    width: u32,
    height: u32,
    pad0: u32,
    pad1: u32,
}

@group(0) @binding(0) var<uniform> config: Config;
@group(0) @binding(1) var<storage, read_write> output: array<u32>;

@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    output[gid.x] = config.width;
}
`

const quadShader = `
struct Uniforms {
    scale: vec4<f32>,
}

@group(0) @binding(0) var u_texture: texture_2d<f32>;
@group(0) @binding(1) var u_sampler: sampler;
@group(1) @binding(0) var<uniform> u: Uniforms;

struct VertexOutput {
    @location(0) uv: vec2<f32>,
    @builtin(position) position: vec4<f32>,
}

@vertex
fn vs_main(@location(0) pos: vec2<f32>, @location(1) uv: vec2<f32>) -> VertexOutput {
    return VertexOutput(uv, vec4<f32>(pos * u.scale.xy, 0.0, 1.0));
}

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return textureSample(u_texture, u_sampler, uv);
}
`

func TestFromWGSLCompute(t *testing.T) {
	groups, err := FromWGSL(computeShader)
	if err != nil {
		t.Fatalf("FromWGSL failed: %v", err)
	}

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.Group != 0 {
		t.Errorf("expected group 0, got %d", g.Group)
	}
	if len(g.Desc.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(g.Desc.Entries))
	}

	uniform := g.Desc.Entries[0]
	if uniform.Binding != 0 || uniform.Type != BindingTypeUniformBuffer {
		t.Errorf("entry 0: expected uniform buffer at binding 0, got %+v", uniform)
	}
	if uniform.MinBindingSize == 0 {
		t.Error("entry 0: struct-typed uniform should report a min binding size")
	}
	if uniform.Visibility != StageCompute {
		t.Errorf("entry 0: expected compute visibility, got %v", uniform.Visibility)
	}

	storage := g.Desc.Entries[1]
	if storage.Binding != 1 || storage.Type != BindingTypeStorageBuffer {
		t.Errorf("entry 1: expected storage buffer at binding 1, got %+v", storage)
	}
}

func TestFromWGSLRenderPipeline(t *testing.T) {
	groups, err := FromWGSL(quadShader)
	if err != nil {
		t.Fatalf("FromWGSL failed: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	g0 := groups[0]
	if g0.Group != 0 || len(g0.Desc.Entries) != 2 {
		t.Fatalf("group 0: unexpected shape: %+v", g0)
	}
	if g0.Desc.Entries[0].Type != BindingTypeSampledTexture {
		t.Errorf("group 0 binding 0: expected sampled texture, got %v", g0.Desc.Entries[0].Type)
	}
	if g0.Desc.Entries[1].Type != BindingTypeSampler {
		t.Errorf("group 0 binding 1: expected sampler, got %v", g0.Desc.Entries[1].Type)
	}

	g1 := groups[1]
	if g1.Group != 1 || len(g1.Desc.Entries) != 1 {
		t.Fatalf("group 1: unexpected shape: %+v", g1)
	}
	if g1.Desc.Entries[0].Type != BindingTypeUniformBuffer {
		t.Errorf("group 1 binding 0: expected uniform buffer, got %v", g1.Desc.Entries[0].Type)
	}

	// Both a vertex and a fragment entry point exist; reflection reports
	// the union on every entry.
	want := StageVertex | StageFragment
	if g0.Desc.Entries[0].Visibility != want {
		t.Errorf("expected visibility %v, got %v", want, g0.Desc.Entries[0].Visibility)
	}
}

func TestFromWGSLNoBindings(t *testing.T) {
	const src = `
@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`
	groups, err := FromWGSL(src)
	if err != nil {
		t.Fatalf("FromWGSL failed: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestFromWGSLParseError(t *testing.T) {
	if _, err := FromWGSL("@group( nonsense"); err == nil {
		t.Error("expected an error for malformed WGSL")
	}
}

func TestFromWGSLLayoutHashStable(t *testing.T) {
	a, err := FromWGSL(computeShader)
	if err != nil {
		t.Fatalf("FromWGSL failed: %v", err)
	}
	b, err := FromWGSL(computeShader)
	if err != nil {
		t.Fatalf("FromWGSL failed: %v", err)
	}

	if a[0].Desc.Hash() != b[0].Desc.Hash() {
		t.Error("reflecting the same shader twice produced different layout hashes")
	}
}
