package bind_group_provider

import (
	"sort"

	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is a debug label added for convenience.
	label string

	// GPU objects below are created by the renderer backend and released by Release.
	bindGroup       *wgpu.BindGroup
	bindGroupLayout *wgpu.BindGroupLayout
	buffers         map[uint32]*wgpu.Buffer
	sizes           map[uint32]uint64
}

// BindGroupProvider owns the GPU objects of one bind group: its layout, the
// bind group itself and one buffer per binding.
//
// Usage pattern:
//  1. The backend creates the layout from a reflected shader descriptor
//  2. The backend creates one buffer per binding and stores it with SetBuffer
//  3. The backend creates the bind group and stores it with SetBindGroup
//  4. Uploads go through BufferWrite values checked against the stored sizes
type BindGroupProvider interface {
	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the bind group, or nil before it is created.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the layout, or nil before it is created.
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the buffer at binding, or nil.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer
	Buffer(binding uint32) *wgpu.Buffer

	// BufferSize returns the byte size the buffer at binding was created with.
	BufferSize(binding uint32) uint64

	// Bindings returns the binding indices holding a buffer, ascending.
	Bindings() []uint32

	// SetBindGroup stores the created bind group.
	SetBindGroup(bg *wgpu.BindGroup)

	// SetBindGroupLayout stores the created layout.
	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)

	// SetBuffer stores the buffer created for binding. A buffer already at
	// binding is released.
	//
	// Parameters:
	//   - binding: the binding index
	//   - buf: the buffer
	//   - size: its size in bytes
	SetBuffer(binding uint32, buf *wgpu.Buffer, size uint64)

	// Ready reports whether the layout, the bind group and at least one buffer exist.
	Ready() bool

	// Release frees every GPU object held by the provider.
	Release()
}

var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates an empty BindGroupProvider.
//
// Parameters:
//   - label: the debug label
//   - options: functional options
//
// Returns:
//   - BindGroupProvider: the provider
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:   label,
		buffers: make(map[uint32]*wgpu.Buffer),
		sizes:   make(map[uint32]uint64),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string                          { return p.label }
func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup             { return p.bindGroup }
func (p *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout { return p.bindGroupLayout }
func (p *bindGroupProvider) Buffer(binding uint32) *wgpu.Buffer     { return p.buffers[binding] }
func (p *bindGroupProvider) BufferSize(binding uint32) uint64       { return p.sizes[binding] }

func (p *bindGroupProvider) Bindings() []uint32 {
	bindings := make([]uint32, 0, len(p.buffers))
	for b := range p.buffers {
		bindings = append(bindings, b)
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i] < bindings[j] })
	return bindings
}

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	p.bindGroup = bg
}

func (p *bindGroupProvider) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayout = bgl
}

func (p *bindGroupProvider) SetBuffer(binding uint32, buf *wgpu.Buffer, size uint64) {
	if old := p.buffers[binding]; old != nil && old != buf {
		old.Release()
	}
	p.buffers[binding] = buf
	p.sizes[binding] = size
}

func (p *bindGroupProvider) Ready() bool {
	return p.bindGroupLayout != nil && p.bindGroup != nil && len(p.buffers) > 0
}

func (p *bindGroupProvider) Release() {
	for i, buf := range p.buffers {
		if buf != nil {
			buf.Release()
		}
		delete(p.buffers, i)
		delete(p.sizes, i)
	}
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.bindGroupLayout != nil {
		p.bindGroupLayout.Release()
		p.bindGroupLayout = nil
	}
}
