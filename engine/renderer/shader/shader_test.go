package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lightSource = `struct Light {
    position: vec3<f32>,
    intensity: f32,
    color: vec4<f32>,
};`
	vertexSource = `struct Vertex {
    @location(0) position: vec3<f32>,
    @builtin(vertex_index) index: u32,
    @location(2) uv: vec2<f32>,
};`
)

func newTestPreProcessor() PreProcessor {
	return NewPreProcessor(
		WithStruct("light", "Light", lightSource),
		WithStruct("vertex", "Vertex", vertexSource),
	)
}

func TestParseAnnotation(t *testing.T) {
	a, ok, err := parseAnnotation("  //  @vrm:group 1 2 storage_read lights light", 4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Annotation{
		Type:    AnnotationTypeGroup,
		Line:    4,
		Struct:  "light",
		Group:   1,
		Binding: 2,
		Space:   AddressSpaceStorageRead,
		Name:    "lights",
	}, a)

	_, ok, err = parseAnnotation("// an ordinary comment", 1)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = parseAnnotation("let x = 1; //@vrm:include light", 1)
	assert.NoError(t, err)
	assert.False(t, ok, "directives must start the line")
}

func TestParseAnnotationErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", "//@vrm:"},
		{"unknown", "//@vrm:provider 0 0 camera"},
		{"include arity", "//@vrm:include"},
		{"group arity", "//@vrm:group 0 0 uniform camera"},
		{"group index", "//@vrm:group x 0 uniform camera camera"},
		{"binding index", "//@vrm:group 0 -1 uniform camera camera"},
		{"address space", "//@vrm:group 0 0 private camera camera"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := parseAnnotation(tt.line, 7)
			assert.True(t, ok)
			assert.ErrorContains(t, err, "line 7")
		})
	}
}

func TestProcess(t *testing.T) {
	src := "//@vrm:include light\n//@vrm:include light\n//@vrm:group 1 0 storage lights light\n//@vrm:group 0 3 uniform sun light\nfn f() {}"
	out, decls, err := newTestPreProcessor().Process(src)
	require.NoError(t, err)

	assert.Equal(t, lightSource+"\n\n@group(1) @binding(0) var<storage, read_write> lights: Light;\n@group(0) @binding(3) var<uniform> sun: Light;\nfn f() {}", out)
	assert.Equal(t, []Declaration{
		{Group: 0, Binding: 3, Space: AddressSpaceUniform, Name: "sun", TypeName: "Light"},
		{Group: 1, Binding: 0, Space: AddressSpaceStorage, Name: "lights", TypeName: "Light"},
	}, decls)
}

func TestProcessErrors(t *testing.T) {
	pp := newTestPreProcessor()

	_, _, err := pp.Process("//@vrm:include bone")
	assert.ErrorContains(t, err, `unregistered struct "bone"`)

	_, _, err = pp.Process("//@vrm:group 0 0 uniform a light\n//@vrm:group 0 0 uniform b light")
	assert.ErrorContains(t, err, "line 2")
}

func TestStructs(t *testing.T) {
	assert.Equal(t, []string{"light", "vertex"}, newTestPreProcessor().Structs())
	assert.Empty(t, NewPreProcessor().Structs())
}

func TestNewShader(t *testing.T) {
	src := `//@vrm:include light
//@vrm:include vertex
//@vrm:group 0 0 uniform sun light
//@vrm:group 0 1 storage_read lights light
@group(1) @binding(0) var<storage, read> joints: array<mat4x4<f32>>;

/* the vertex stage
   takes one buffer */
@vertex
fn main_vs(v: Vertex, @location(5) weight: f32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(v.position, weight);
}

@fragment
fn main_fs() -> @location(0) vec4<f32> {
    return sun.color;
}`
	s, err := NewShader("lit", src, newTestPreProcessor())
	require.NoError(t, err)

	assert.Equal(t, "lit", s.Key())
	assert.Equal(t, "main_vs", s.VertexEntryPoint())
	assert.Equal(t, "main_fs", s.FragmentEntryPoint())
	assert.Len(t, s.Declarations(), 2)
	assert.Equal(t, []uint32{0, 1}, s.BindGroups())

	assert.Equal(t, []wgpu.VertexBufferLayout{
		{
			ArrayStride: 20,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 2},
			},
		},
		{
			ArrayStride: 4,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32, Offset: 0, ShaderLocation: 5},
			},
		},
	}, s.VertexLayouts())

	group0, ok := s.BindGroupLayoutDescriptor(0)
	require.True(t, ok)
	require.Len(t, group0.Entries, 2)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, group0.Entries[0].Buffer.Type)
	assert.Equal(t, uint64(32), group0.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, group0.Entries[1].Buffer.Type)

	group1, ok := s.BindGroupLayoutDescriptor(1)
	require.True(t, ok)
	assert.Equal(t, uint64(0), group1.Entries[0].Buffer.MinBindingSize, "runtime-sized arrays have no minimum")

	_, ok = s.BindGroupLayoutDescriptor(2)
	assert.False(t, ok)
}

func TestNewShaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"missing fragment", "@vertex fn vs() -> @builtin(position) vec4f { return vec4f(); }", "entry point"},
		{"texture binding", "@group(0) @binding(0) var tex: texture_2d<f32>;\n@vertex fn vs() -> @builtin(position) vec4f { return vec4f(); }\n@fragment fn fs() {}", "buffer bindings"},
		{"unlocated input", "@vertex fn vs(p: vec3f) -> @builtin(position) vec4f { return vec4f(); }\n@fragment fn fs() {}", "@location"},
		{"directive", "//@vrm:include nothing", "unregistered"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShader(tt.name, tt.source, newTestPreProcessor())
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestResolveTypeLayout(t *testing.T) {
	known := computeStructLayouts(parseStructBlocks(`
struct Outer { inner: Inner, tail: f32, };
struct Inner { a: vec3<f32>, b: f32, };
`))
	assert.Equal(t, wgslTypeLayout{size: 16, align: 16}, known["Inner"])
	assert.Equal(t, wgslTypeLayout{size: 32, align: 16}, known["Outer"])

	layout, ok := resolveTypeLayout("array<vec3<f32>, 4>", known)
	require.True(t, ok)
	assert.Equal(t, wgslTypeLayout{size: 64, align: 16}, layout)

	_, ok = resolveTypeLayout("array<f32>", known)
	assert.False(t, ok)
	_, ok = resolveTypeLayout("Missing", known)
	assert.False(t, ok)
}
