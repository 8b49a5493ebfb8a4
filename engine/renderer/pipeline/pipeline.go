package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used for caching and lookups
	pipelineKey string

	// source is the WGSL module holding both entry points.
	source         string
	vertexEntry    string
	fragmentEntry  string
	renderPipeline *wgpu.RenderPipeline

	depthTestEnabled  bool
	depthWriteEnabled bool
	blendEnabled      bool
	topology          wgpu.PrimitiveTopology
	writeMask         wgpu.ColorWriteMask
	blendState        *wgpu.BlendState
}

// Pipeline describes a render pipeline: one WGSL module with a vertex and a
// fragment entry point plus the fixed-function state the backend needs to
// create it. The created GPU object is stored back on the Pipeline.
type Pipeline interface {
	// PipelineKey returns the unique identifier of the pipeline.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Source returns the WGSL module source.
	//
	// Returns:
	//   - string: the shader source
	Source() string

	// VertexEntryPoint returns the vertex stage entry point.
	VertexEntryPoint() string

	// FragmentEntryPoint returns the fragment stage entry point.
	FragmentEntryPoint() string

	// Pipeline returns the created GPU pipeline, or nil before registration.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the GPU pipeline
	Pipeline() *wgpu.RenderPipeline

	// SetRenderPipeline stores the GPU pipeline created by the backend.
	//
	// Parameters:
	//   - rp: the created pipeline
	SetRenderPipeline(rp *wgpu.RenderPipeline)

	// DepthTestEnabled reports whether fragments are tested against the depth buffer.
	DepthTestEnabled() bool

	// DepthWriteEnabled reports whether fragments write the depth buffer.
	DepthWriteEnabled() bool

	// BlendEnabled reports whether BlendState is applied.
	BlendEnabled() bool

	// Topology returns the primitive topology.
	Topology() wgpu.PrimitiveTopology

	// WriteMask returns the color write mask.
	WriteMask() wgpu.ColorWriteMask

	// BlendState returns the blend state used when blending is enabled.
	//
	// Returns:
	//   - *wgpu.BlendState: the blend state
	BlendState() *wgpu.BlendState
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a render pipeline description. Defaults are a line
// list with depth test and write on, blending off and entry points
// "vs_main" and "fs_main".
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - source: the WGSL module source
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance
func NewPipeline(pipelineKey, source string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		source:            source,
		vertexEntry:       "vs_main",
		fragmentEntry:     "fs_main",
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		topology:          wgpu.PrimitiveTopologyLineList,
		writeMask:         wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string                       { return p.pipelineKey }
func (p *pipeline) Source() string                            { return p.source }
func (p *pipeline) VertexEntryPoint() string                  { return p.vertexEntry }
func (p *pipeline) FragmentEntryPoint() string                { return p.fragmentEntry }
func (p *pipeline) Pipeline() *wgpu.RenderPipeline            { return p.renderPipeline }
func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) { p.renderPipeline = rp }
func (p *pipeline) DepthTestEnabled() bool                    { return p.depthTestEnabled }
func (p *pipeline) DepthWriteEnabled() bool                   { return p.depthWriteEnabled }
func (p *pipeline) BlendEnabled() bool                        { return p.blendEnabled }
func (p *pipeline) Topology() wgpu.PrimitiveTopology          { return p.topology }
func (p *pipeline) WriteMask() wgpu.ColorWriteMask            { return p.writeMask }
func (p *pipeline) BlendState() *wgpu.BlendState              { return p.blendState }
