// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"fmt"
	"slices"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// GroupLayout pairs a reflected layout with the @group slot it describes.
type GroupLayout struct {
	// Group is the @group index the layout was declared under.
	Group uint32

	// Desc is the reflected layout, entries sorted by binding index.
	Desc Desc
}

// FromWGSL reflects bind group layouts from WGSL shader source.
//
// The shader is parsed and lowered with gogpu/naga; every module-scope
// variable carrying @group/@binding attributes contributes one layout
// entry. Groups are returned ascending by group index, entries ascending
// by binding index.
//
// Visibility is the union of the entry-point stages present in the
// module: naga's IR does not record which stages reference which
// globals, so reflection is conservative. Storage buffers are reported
// read-write for the same reason (the IR drops the WGSL access mode).
func FromWGSL(source string) ([]GroupLayout, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("layout: parse shader: %w", err)
	}

	module, err := naga.Lower(ast)
	if err != nil {
		return nil, fmt.Errorf("layout: lower shader: %w", err)
	}

	visibility := moduleVisibility(module)

	groups := make(map[uint32]*Desc)
	for i := range module.GlobalVariables {
		gv := &module.GlobalVariables[i]
		if gv.Binding == nil {
			continue
		}

		entry, ok := classifyGlobal(module, gv)
		if !ok {
			continue
		}
		entry.Visibility = visibility

		d := groups[gv.Binding.Group]
		if d == nil {
			d = &Desc{}
			groups[gv.Binding.Group] = d
		}
		d.Entries = append(d.Entries, entry)
	}

	out := make([]GroupLayout, 0, len(groups))
	for group, d := range groups {
		d.Sort()
		d.Label = fmt.Sprintf("group%d", group)
		out = append(out, GroupLayout{Group: group, Desc: *d})
	}
	slices.SortFunc(out, func(a, b GroupLayout) int {
		switch {
		case a.Group < b.Group:
			return -1
		case a.Group > b.Group:
			return 1
		default:
			return 0
		}
	})

	return out, nil
}

// classifyGlobal maps a bound global variable to a layout entry.
// Returns false for address spaces that cannot appear in a bind group.
func classifyGlobal(module *ir.Module, gv *ir.GlobalVariable) (Entry, bool) {
	entry := Entry{Binding: gv.Binding.Binding}
	inner := module.Types[gv.Type].Inner

	switch gv.Space {
	case ir.SpaceUniform:
		entry.Type = BindingTypeUniformBuffer
		entry.MinBindingSize = structSpan(inner)
		return entry, true

	case ir.SpaceStorage:
		entry.Type = BindingTypeStorageBuffer
		entry.MinBindingSize = structSpan(inner)
		return entry, true

	case ir.SpaceHandle:
		switch t := inner.(type) {
		case ir.SamplerType:
			if t.Comparison {
				entry.Type = BindingTypeComparisonSampler
			} else {
				entry.Type = BindingTypeSampler
			}
			return entry, true
		case ir.ImageType:
			if t.Class == ir.ImageClassStorage {
				entry.Type = BindingTypeStorageTexture
			} else {
				entry.Type = BindingTypeSampledTexture
			}
			return entry, true
		}
	}

	return Entry{}, false
}

// structSpan returns the byte size of a struct-typed binding, or zero
// when the type carries no size information.
func structSpan(inner ir.TypeInner) uint64 {
	if st, ok := inner.(ir.StructType); ok {
		return uint64(st.Span)
	}
	return 0
}

// moduleVisibility returns the union of the module's entry-point stages,
// or StageAll for a module with no entry points.
func moduleVisibility(module *ir.Module) ShaderStage {
	var vis ShaderStage
	for i := range module.EntryPoints {
		switch module.EntryPoints[i].Stage {
		case ir.StageVertex:
			vis |= StageVertex
		case ir.StageFragment:
			vis |= StageFragment
		case ir.StageCompute:
			vis |= StageCompute
		}
	}
	if vis == 0 {
		vis = StageAll
	}
	return vis
}
