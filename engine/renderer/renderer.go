package renderer

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/vrm-viewer/engine/renderer/shader"
	"github.com/Carmen-Shannon/vrm-viewer/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/lines.wgsl
var linesSource string

//go:embed assets/line_vertex.wgsl
var lineVertexSource string

const (
	// PipelineLines draws depth-tested scene lines.
	PipelineLines = "lines"

	// PipelineOverlay draws lines on top of the scene.
	PipelineOverlay = "overlay"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           common.Color
	culling              bool
}

// Renderer draws LineBatches to a window surface.
//
// The Renderer owns two pipelines sharing one shader: PipelineLines for the scene layer and
// PipelineOverlay, which ignores depth, for the overlay layer.
type Renderer interface {
	// Pipeline retrieves the cached Pipeline associated with the given key.
	// If the Pipeline does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	//   - width: the current surface width in pixels
	//   - height: the current surface height in pixels
	SetPresentMode(mode PresentMode, width, height int)

	// SetClearColor sets the background color of subsequent frames.
	SetClearColor(c common.Color)

	// Render uploads the camera and batch and draws one frame. When culling is enabled the
	// batch is expected to have been filled with the camera's frustum set.
	//
	// Parameters:
	//   - cam: the camera to draw from
	//   - batch: the frame's lines
	//
	// Returns:
	//   - error: error if the frame could not be acquired or drawn
	Render(cam camera.Camera, batch *LineBatch) error

	// Frustum returns the culling frustum for cam, or nil when culling is disabled.
	Frustum(cam camera.Camera) *common.Frustum

	// Release frees the GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates the backend for win, configures its surface and registers the line pipelines.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - win: the window to present to
//   - options: functional options
//
// Returns:
//   - Renderer: the renderer
//   - error: error if the device or pipelines cannot be created
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
		clearColor:    common.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
		culling:       true,
	}
	for _, option := range options {
		option(r)
	}

	lines, err := newLinesShader()
	if err != nil {
		return nil, err
	}
	cameraGroup, _ := lines.BindGroupLayoutDescriptor(0)

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		backend, err := newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
		if err != nil {
			return nil, err
		}
		r.backend = backend
	default:
		return nil, fmt.Errorf("unsupported backend type %d", backendType)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.SetClearColor(wgpuColor(r.clearColor))
	r.backend.ConfigureSurface(win.Width(), win.Height())

	if err := r.backend.CreateCameraBinding(cameraGroup); err != nil {
		r.backend.Release()
		return nil, err
	}

	entries := pipeline.WithEntryPoints(lines.VertexEntryPoint(), lines.FragmentEntryPoint())
	pipelines := []pipeline.Pipeline{
		pipeline.NewPipeline(PipelineLines, lines.Source(), entries),
		pipeline.NewPipeline(PipelineOverlay, lines.Source(), entries,
			pipeline.WithDepthTestEnabled(false),
			pipeline.WithDepthWriteEnabled(false),
		),
	}
	for _, p := range pipelines {
		if err := r.backend.RegisterRenderPipeline(p, lines.VertexLayouts()); err != nil {
			r.backend.Release()
			return nil, fmt.Errorf("failed to register pipeline %s: %w", p.PipelineKey(), err)
		}
		r.pipelineCache[p.PipelineKey()] = p
	}

	return r, nil
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode, width, height int) {
	r.backend.SetPresentMode(mode)
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetClearColor(c common.Color) {
	r.mu.Lock()
	r.clearColor = c
	r.mu.Unlock()
	r.backend.SetClearColor(wgpuColor(c))
}

func (r *renderer) Frustum(cam camera.Camera) *common.Frustum {
	if !r.culling {
		return nil
	}
	f := common.ExtractFrustumFromMatrix(cam.ViewProjectionMatrix())
	return &f
}

func (r *renderer) Render(cam camera.Camera, batch *LineBatch) error {
	r.mu.Lock()
	scene := r.pipelineCache[PipelineLines]
	overlay := r.pipelineCache[PipelineOverlay]
	r.mu.Unlock()

	uniform := camera.NewGPUCameraUniform(cam)
	if err := r.backend.WriteCamera(uniform.Marshal()); err != nil {
		return err
	}
	if err := r.backend.WriteVertices(batch.Marshal()); err != nil {
		return err
	}

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	draws := []struct {
		layer Layer
		p     pipeline.Pipeline
	}{
		{LayerScene, scene},
		{LayerOverlay, overlay},
	}
	for _, d := range draws {
		if err := r.backend.Draw(d.p, uint32(batch.First(d.layer)), uint32(batch.Count(d.layer))); err != nil {
			r.backend.EndFrame()
			r.backend.Present()
			return err
		}
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}

// newLinesShader expands and reflects the line shader, checking its layouts
// against the CPU-side camera uniform and LineVertex encoding.
//
// Returns:
//   - shader.Shader: the line shader
//   - error: error if the shader is malformed or disagrees with the CPU layouts
func newLinesShader() (shader.Shader, error) {
	pp := shader.NewPreProcessor(
		shader.WithStruct("camera", "CameraUniform", camera.GPUCameraUniformSource),
		shader.WithStruct("line_vertex", "LineVertex", lineVertexSource),
	)
	s, err := shader.NewShader(PipelineLines, linesSource, pp)
	if err != nil {
		return nil, err
	}

	var uniform camera.GPUCameraUniform
	group, ok := s.BindGroupLayoutDescriptor(0)
	if !ok || len(group.Entries) != 1 || group.Entries[0].Buffer.MinBindingSize != uint64(uniform.Size()) {
		return nil, fmt.Errorf("shader %s: group 0 does not match the %d byte camera uniform", s.Key(), uniform.Size())
	}
	layouts := s.VertexLayouts()
	if len(layouts) != 1 || layouts[0].ArrayStride != lineVertexSize {
		return nil, fmt.Errorf("shader %s: vertex input does not match the %d byte line vertex", s.Key(), lineVertexSize)
	}
	return s, nil
}

func wgpuColor(c common.Color) wgpu.Color {
	return wgpu.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
