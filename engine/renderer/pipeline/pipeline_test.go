package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("lines", "// wgsl")

	assert.Equal(t, "lines", p.PipelineKey())
	assert.Equal(t, "// wgsl", p.Source())
	assert.Equal(t, "vs_main", p.VertexEntryPoint())
	assert.Equal(t, "fs_main", p.FragmentEntryPoint())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.NotNil(t, p.BlendState())
	assert.Nil(t, p.Pipeline())
}

func TestPipelineOptions(t *testing.T) {
	blend := &wgpu.BlendState{}
	p := NewPipeline("overlay", "",
		WithEntryPoints("vert", "frag"),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithBlendEnabled(true),
		WithBlendState(blend),
		WithBlendState(nil),
		WithTopology(wgpu.PrimitiveTopologyLineStrip),
		WithWriteMask(wgpu.ColorWriteMaskRed),
	)

	assert.Equal(t, "vert", p.VertexEntryPoint())
	assert.Equal(t, "frag", p.FragmentEntryPoint())
	assert.False(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.True(t, p.BlendEnabled())
	assert.Same(t, blend, p.BlendState())
	assert.Equal(t, wgpu.PrimitiveTopologyLineStrip, p.Topology())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
}
