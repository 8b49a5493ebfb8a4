package shader

import (
	"strconv"
	"strings"
)

// wgslPrimitiveLayoutMap holds size and alignment of scalar, vector and
// matrix types. Reference: https://www.w3.org/TR/WGSL/#alignment-and-size
var wgslPrimitiveLayoutMap = map[string]wgslTypeLayout{
	"f32":  {4, 4},
	"i32":  {4, 4},
	"u32":  {4, 4},
	"f16":  {2, 2},
	"bool": {4, 4},

	"vec2<f32>": {8, 8},
	"vec2f":     {8, 8},
	"vec3<f32>": {12, 16},
	"vec3f":     {12, 16},
	"vec4<f32>": {16, 16},
	"vec4f":     {16, 16},
	"vec2<i32>": {8, 8},
	"vec2i":     {8, 8},
	"vec3<i32>": {12, 16},
	"vec3i":     {12, 16},
	"vec4<i32>": {16, 16},
	"vec4i":     {16, 16},
	"vec2<u32>": {8, 8},
	"vec2u":     {8, 8},
	"vec3<u32>": {12, 16},
	"vec3u":     {12, 16},
	"vec4<u32>": {16, 16},
	"vec4u":     {16, 16},

	"mat3x3<f32>": {48, 16},
	"mat3x3f":     {48, 16},
	"mat4x4<f32>": {64, 16},
	"mat4x4f":     {64, 16},
}

// roundUpAlign rounds value up to a multiple of alignment, a power of two.
func roundUpAlign(alignment, value uint64) uint64 {
	if alignment == 0 {
		return value
	}
	return (value + alignment - 1) &^ (alignment - 1)
}

// resolveTypeLayout returns the layout of typeName from the primitives and
// the structs resolved so far. Runtime-sized arrays and unknown types report
// false.
//
// Parameters:
//   - typeName: a WGSL type such as "f32", "CameraUniform" or "array<vec4f, 6>"
//   - known: struct layouts resolved so far
//
// Returns:
//   - wgslTypeLayout: the layout
//   - bool: true if the type has a fixed, known layout
func resolveTypeLayout(typeName string, known map[string]wgslTypeLayout) (wgslTypeLayout, bool) {
	if layout, ok := wgslPrimitiveLayoutMap[typeName]; ok {
		return layout, true
	}
	if layout, ok := known[typeName]; ok {
		return layout, true
	}

	if !strings.HasPrefix(typeName, "array<") || !strings.HasSuffix(typeName, ">") {
		return wgslTypeLayout{}, false
	}
	parts := splitTopLevel(typeName[len("array<") : len(typeName)-1])
	if len(parts) != 2 {
		return wgslTypeLayout{}, false
	}
	elem, ok := resolveTypeLayout(parts[0], known)
	if !ok {
		return wgslTypeLayout{}, false
	}
	count, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil || count == 0 {
		return wgslTypeLayout{}, false
	}
	stride := roundUpAlign(elem.align, elem.size)
	return wgslTypeLayout{size: stride * count, align: elem.align}, true
}

// structLayout lays out s's members in order. Members that cannot be
// resolved yet report false.
func structLayout(s parsedStruct, known map[string]wgslTypeLayout) (wgslTypeLayout, bool) {
	var offset, align uint64
	for _, f := range s.fields {
		layout, ok := resolveTypeLayout(f.typeName, known)
		if !ok {
			return wgslTypeLayout{}, false
		}
		offset = roundUpAlign(layout.align, offset) + layout.size
		align = max(align, layout.align)
	}
	return wgslTypeLayout{size: roundUpAlign(align, offset), align: align}, true
}

// computeStructLayouts resolves every struct whose members have fixed
// layouts, in dependency order regardless of declaration order.
func computeStructLayouts(structs []parsedStruct) map[string]wgslTypeLayout {
	known := make(map[string]wgslTypeLayout, len(structs))
	for progress := true; progress; {
		progress = false
		for _, s := range structs {
			if _, done := known[s.name]; done {
				continue
			}
			if layout, ok := structLayout(s, known); ok {
				known[s.name] = layout
				progress = true
			}
		}
	}
	return known
}
