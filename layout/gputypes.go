// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"github.com/gogpu/gputypes"
)

// GPUEntries converts the layout to gputypes entries, ready to be placed
// in a HAL or WebGPU bind group layout descriptor.
func (d *Desc) GPUEntries() []gputypes.BindGroupLayoutEntry {
	entries := make([]gputypes.BindGroupLayoutEntry, len(d.Entries))
	for i := range d.Entries {
		entries[i] = d.Entries[i].GPUEntry()
	}
	return entries
}

// GPUEntry converts a single layout entry to its gputypes form.
func (e Entry) GPUEntry() gputypes.BindGroupLayoutEntry {
	out := gputypes.BindGroupLayoutEntry{
		Binding:    e.Binding,
		Visibility: e.Visibility.gpuStages(),
	}

	switch e.Type {
	case BindingTypeUniformBuffer:
		out.Buffer = &gputypes.BufferBindingLayout{
			Type:             gputypes.BufferBindingTypeUniform,
			HasDynamicOffset: e.HasDynamicOffset,
			MinBindingSize:   e.MinBindingSize,
		}
	case BindingTypeStorageBuffer:
		out.Buffer = &gputypes.BufferBindingLayout{
			Type:             gputypes.BufferBindingTypeStorage,
			HasDynamicOffset: e.HasDynamicOffset,
			MinBindingSize:   e.MinBindingSize,
		}
	case BindingTypeReadOnlyStorageBuffer:
		out.Buffer = &gputypes.BufferBindingLayout{
			Type:             gputypes.BufferBindingTypeReadOnlyStorage,
			HasDynamicOffset: e.HasDynamicOffset,
			MinBindingSize:   e.MinBindingSize,
		}
	case BindingTypeSampler:
		out.Sampler = &gputypes.SamplerBindingLayout{
			Type: gputypes.SamplerBindingTypeFiltering,
		}
	case BindingTypeComparisonSampler:
		out.Sampler = &gputypes.SamplerBindingLayout{
			Type: gputypes.SamplerBindingTypeComparison,
		}
	case BindingTypeSampledTexture:
		out.Texture = &gputypes.TextureBindingLayout{
			SampleType:    gputypes.TextureSampleTypeFloat,
			ViewDimension: gputypes.TextureViewDimension2D,
		}
	case BindingTypeStorageTexture:
		out.StorageTexture = &gputypes.StorageTextureBindingLayout{
			Access:        gputypes.StorageTextureAccessReadWrite,
			Format:        gputypes.TextureFormatRGBA8Unorm,
			ViewDimension: gputypes.TextureViewDimension2D,
		}
	}

	return out
}

// gpuStages maps the local stage bitmask to gputypes shader stages.
func (s ShaderStage) gpuStages() gputypes.ShaderStage {
	var out gputypes.ShaderStage
	if s&StageVertex != 0 {
		out |= gputypes.ShaderStageVertex
	}
	if s&StageFragment != 0 {
		out |= gputypes.ShaderStageFragment
	}
	if s&StageCompute != 0 {
		out |= gputypes.ShaderStageCompute
	}
	return out
}
