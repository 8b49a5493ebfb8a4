package shader

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// wgslVertexFormatMap maps WGSL attribute types to vertex formats.
var wgslVertexFormatMap = map[string]vertexFormatInfo{
	"f32":       {wgpu.VertexFormatFloat32, 4},
	"vec2f":     {wgpu.VertexFormatFloat32x2, 8},
	"vec2<f32>": {wgpu.VertexFormatFloat32x2, 8},
	"vec3f":     {wgpu.VertexFormatFloat32x3, 12},
	"vec3<f32>": {wgpu.VertexFormatFloat32x3, 12},
	"vec4f":     {wgpu.VertexFormatFloat32x4, 16},
	"vec4<f32>": {wgpu.VertexFormatFloat32x4, 16},
	"u32":       {wgpu.VertexFormatUint32, 4},
	"vec4<u32>": {wgpu.VertexFormatUint32x4, 16},
	"vec4u":     {wgpu.VertexFormatUint32x4, 16},
}

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)
	structRe       = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]*)\}`)
	fieldRe        = regexp.MustCompile(`^((?:@\w+(?:\([^)]*\))?\s*)*)(\w+)\s*:\s*(.+)$`)
	locationRe     = regexp.MustCompile(`@location\(\s*(\d+)\s*\)`)
	bindingRe      = regexp.MustCompile(`@group\(\s*(\d+)\s*\)\s*@binding\(\s*(\d+)\s*\)\s*var(?:<([^>]*)>)?\s+(\w+)\s*:\s*([^;]+);`)
	entryRe        = regexp.MustCompile(`@(vertex|fragment)\s+fn\s+(\w+)\s*\(`)
)

// parseWGSL reflects the entry points, vertex inputs and buffer bindings of
// a pre-processed WGSL module.
//
// Parameters:
//   - source: plain WGSL
//
// Returns:
//   - reflection: the reflected layouts
//   - error: error if an entry point is missing or a binding is not a buffer
func parseWGSL(source string) (reflection, error) {
	src := stripComments(source)
	structs := parseStructBlocks(src)
	byName := make(map[string]parsedStruct, len(structs))
	for _, s := range structs {
		byName[s.name] = s
	}

	var r reflection
	var vertexParams string
	for _, m := range entryRe.FindAllStringSubmatchIndex(src, -1) {
		stage, name := src[m[2]:m[3]], src[m[4]:m[5]]
		switch stage {
		case "vertex":
			if r.vertexEntry != "" {
				return r, fmt.Errorf("multiple @vertex entry points: %s, %s", r.vertexEntry, name)
			}
			r.vertexEntry = name
			vertexParams = balanced(src, m[1]-1)
		case "fragment":
			if r.fragmentEntry != "" {
				return r, fmt.Errorf("multiple @fragment entry points: %s, %s", r.fragmentEntry, name)
			}
			r.fragmentEntry = name
		}
	}
	if r.vertexEntry == "" || r.fragmentEntry == "" {
		return r, fmt.Errorf("module needs a @vertex and a @fragment entry point")
	}

	layouts, err := parseVertexLayouts(vertexParams, byName)
	if err != nil {
		return r, err
	}
	r.vertexLayouts = layouts

	groups, err := parseBindGroupLayouts(src, computeStructLayouts(structs))
	if err != nil {
		return r, err
	}
	r.bindGroups = groups
	return r, nil
}

// parseVertexLayouts turns each vertex entry parameter into one vertex
// buffer. A struct parameter packs its located members in declaration
// order; builtins are skipped.
func parseVertexLayouts(params string, structs map[string]parsedStruct) ([]wgpu.VertexBufferLayout, error) {
	var layouts []wgpu.VertexBufferLayout
	for _, param := range parseFields(params) {
		if param.isBuiltin {
			continue
		}

		fields := []parsedField{param}
		if s, ok := structs[param.typeName]; ok {
			fields = s.fields
		}

		var layout wgpu.VertexBufferLayout
		layout.StepMode = wgpu.VertexStepModeVertex
		for _, f := range fields {
			if f.isBuiltin {
				continue
			}
			if f.location < 0 {
				return nil, fmt.Errorf("vertex input %s has no @location", f.name)
			}
			info, ok := wgslVertexFormatMap[f.typeName]
			if !ok {
				return nil, fmt.Errorf("vertex input %s: unsupported type %s", f.name, f.typeName)
			}
			layout.Attributes = append(layout.Attributes, wgpu.VertexAttribute{
				Format:         info.format,
				Offset:         layout.ArrayStride,
				ShaderLocation: uint32(f.location),
			})
			layout.ArrayStride += info.size
		}
		if len(layout.Attributes) > 0 {
			layouts = append(layouts, layout)
		}
	}
	return layouts, nil
}

// parseBindGroupLayouts builds one layout descriptor per group. Every
// binding must be a uniform or storage buffer; MinBindingSize is the size of
// the bound type, or 0 when it ends in a runtime-sized array.
func parseBindGroupLayouts(src string, layouts map[string]wgslTypeLayout) (map[uint32]wgpu.BindGroupLayoutDescriptor, error) {
	var bindings []parsedBinding
	for _, m := range bindingRe.FindAllStringSubmatch(src, -1) {
		group, _ := strconv.ParseUint(m[1], 10, 32)
		binding, _ := strconv.ParseUint(m[2], 10, 32)
		bindings = append(bindings, parsedBinding{
			group:    uint32(group),
			binding:  uint32(binding),
			space:    strings.Join(strings.Fields(strings.ReplaceAll(m[3], ",", " , ")), ""),
			name:     m[4],
			typeName: strings.TrimSpace(m[5]),
		})
	}
	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].group != bindings[j].group {
			return bindings[i].group < bindings[j].group
		}
		return bindings[i].binding < bindings[j].binding
	})

	groups := make(map[uint32]wgpu.BindGroupLayoutDescriptor)
	for _, b := range bindings {
		var kind wgpu.BufferBindingType
		switch b.space {
		case "uniform":
			kind = wgpu.BufferBindingTypeUniform
		case "storage", "storage,read":
			kind = wgpu.BufferBindingTypeReadOnlyStorage
		case "storage,read_write":
			kind = wgpu.BufferBindingTypeStorage
		default:
			return nil, fmt.Errorf("binding %s: only buffer bindings are supported", b.name)
		}

		var minSize uint64
		if layout, ok := resolveTypeLayout(b.typeName, layouts); ok {
			minSize = layout.size
		}

		desc := groups[b.group]
		if desc.Label == "" {
			desc.Label = fmt.Sprintf("group %d", b.group)
		}
		desc.Entries = append(desc.Entries, wgpu.BindGroupLayoutEntry{
			Binding:    b.binding,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           kind,
				MinBindingSize: minSize,
			},
		})
		groups[b.group] = desc
	}
	return groups, nil
}

// parseStructBlocks extracts every struct block of src.
func parseStructBlocks(src string) []parsedStruct {
	var structs []parsedStruct
	for _, m := range structRe.FindAllStringSubmatch(src, -1) {
		structs = append(structs, parsedStruct{name: m[1], fields: parseFields(m[2])})
	}
	return structs
}

// parseFields parses a comma-separated member or parameter list.
func parseFields(list string) []parsedField {
	var fields []parsedField
	for _, part := range splitTopLevel(list) {
		m := fieldRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		f := parsedField{
			name:      m[2],
			typeName:  strings.Join(strings.Fields(m[3]), ""),
			location:  -1,
			isBuiltin: strings.Contains(m[1], "@builtin"),
		}
		if loc := locationRe.FindStringSubmatch(m[1]); loc != nil {
			f.location, _ = strconv.Atoi(loc[1])
		}
		fields = append(fields, f)
	}
	return fields
}

// splitTopLevel splits s at commas outside <> and (), dropping empty parts.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	flush := func(end int) {
		if p := strings.TrimSpace(s[start:end]); p != "" {
			parts = append(parts, p)
		}
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	return parts
}

// balanced returns the text between the parenthesis at open and its match.
func balanced(s string, open int) string {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[open+1 : i]
			}
		}
	}
	return s[open+1:]
}

func stripComments(src string) string {
	return lineCommentRe.ReplaceAllString(blockCommentRe.ReplaceAllString(src, ""), "")
}
