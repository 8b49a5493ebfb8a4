package shader

import "github.com/cogentcore/webgpu/wgpu"

// vertexFormatInfo holds the wgpu vertex format and its byte size for offset calculation
type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

// wgslTypeLayout holds the byte size and alignment of a host-shareable WGSL type.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// parsedField is one member of a WGSL struct or one entry point parameter.
type parsedField struct {
	name      string
	typeName  string
	location  int
	isBuiltin bool
}

// parsedStruct is a WGSL struct block.
type parsedStruct struct {
	name   string
	fields []parsedField
}

// parsedBinding is a @group/@binding module-scope variable.
type parsedBinding struct {
	group    uint32
	binding  uint32
	space    string
	name     string
	typeName string
}

// reflection is everything the backend needs from a WGSL module.
type reflection struct {
	vertexEntry   string
	fragmentEntry string
	vertexLayouts []wgpu.VertexBufferLayout
	bindGroups    map[uint32]wgpu.BindGroupLayoutDescriptor
}
