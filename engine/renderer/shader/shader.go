package shader

import (
	"fmt"
	"sort"

	"github.com/cogentcore/webgpu/wgpu"
)

// shader is the implementation of the Shader interface.
type shader struct {
	key           string
	source        string
	declarations  []Declaration
	vertexEntry   string
	fragmentEntry string
	vertexLayouts []wgpu.VertexBufferLayout
	bindGroups    map[uint32]wgpu.BindGroupLayoutDescriptor
}

// Shader is a pre-processed and reflected WGSL render module holding one
// vertex and one fragment entry point.
type Shader interface {
	// Key returns the identifier the shader was created with.
	Key() string

	// Source returns the plain WGSL after directive expansion.
	//
	// Returns:
	//   - string: the WGSL source
	Source() string

	// VertexEntryPoint returns the name of the @vertex function.
	VertexEntryPoint() string

	// FragmentEntryPoint returns the name of the @fragment function.
	FragmentEntryPoint() string

	// VertexLayouts returns one buffer layout per vertex entry parameter.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the layouts in parameter order
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayoutDescriptor returns the reflected layout of group.
	//
	// Parameters:
	//   - group: the @group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the layout, entries ordered by binding
	//   - bool: false if the module declares nothing in group
	BindGroupLayoutDescriptor(group uint32) (wgpu.BindGroupLayoutDescriptor, bool)

	// BindGroups returns the declared group indices in ascending order.
	BindGroups() []uint32

	// Declarations returns the bindings generated by group directives.
	Declarations() []Declaration
}

var _ Shader = &shader{}

// NewShader expands source with pp and reflects the result. A nil pp leaves
// source untouched.
//
// Parameters:
//   - key: the shader identifier
//   - source: WGSL, optionally with @vrm: directives
//   - pp: the pre-processor, may be nil
//
// Returns:
//   - Shader: the shader
//   - error: error if a directive or the module cannot be processed
func NewShader(key, source string, pp PreProcessor) (Shader, error) {
	s := &shader{key: key, source: source}
	if pp != nil {
		processed, declarations, err := pp.Process(source)
		if err != nil {
			return nil, fmt.Errorf("shader %s: %w", key, err)
		}
		s.source = processed
		s.declarations = declarations
	}

	r, err := parseWGSL(s.source)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", key, err)
	}
	s.vertexEntry = r.vertexEntry
	s.fragmentEntry = r.fragmentEntry
	s.vertexLayouts = r.vertexLayouts
	s.bindGroups = r.bindGroups
	return s, nil
}

func (s *shader) Key() string                              { return s.key }
func (s *shader) Source() string                           { return s.source }
func (s *shader) VertexEntryPoint() string                 { return s.vertexEntry }
func (s *shader) FragmentEntryPoint() string               { return s.fragmentEntry }
func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout { return s.vertexLayouts }
func (s *shader) Declarations() []Declaration              { return s.declarations }

func (s *shader) BindGroupLayoutDescriptor(group uint32) (wgpu.BindGroupLayoutDescriptor, bool) {
	desc, ok := s.bindGroups[group]
	return desc, ok
}

func (s *shader) BindGroups() []uint32 {
	groups := make([]uint32, 0, len(s.bindGroups))
	for g := range s.bindGroups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}
