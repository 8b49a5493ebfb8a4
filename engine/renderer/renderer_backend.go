package renderer

import "fmt"

// RendererBackendType selects the GPU API behind the viewer's renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU draws the grid, skeleton and gizmo lines through WebGPU.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls when a finished viewport frame reaches the window.
type PresentMode int

const (
	// PresentModeVSync waits for vertical blank. Orbit damping then advances once per refresh.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents as soon as the frame is drawn and may tear.
	PresentModeUncapped
)

// MSAASampleCount is the number of samples per pixel for the line pass. WebGPU only
// guarantees 1 and 4 on every adapter, so those are the only counts offered.
type MSAASampleCount uint32

const (
	// MSAAOff draws lines aliased.
	MSAAOff MSAASampleCount = 1

	// MSAA4x smooths the thin grid and gizmo lines. This is the default.
	MSAA4x MSAASampleCount = 4
)

// MSAASampleCountFromSamples maps the renderer.msaa config value onto a sample count.
//
// Parameters:
//   - samples: 1 (or 0) for off, 4 for 4x
//
// Returns:
//   - MSAASampleCount: the matching sample count
//   - error: error if samples is not a count every adapter supports
func MSAASampleCountFromSamples(samples int) (MSAASampleCount, error) {
	switch samples {
	case 0, 1:
		return MSAAOff, nil
	case 4:
		return MSAA4x, nil
	}
	return 0, fmt.Errorf("unsupported msaa sample count %d", samples)
}

// Enabled reports whether the line pass renders into a multisampled target that
// is resolved onto the swapchain.
func (c MSAASampleCount) Enabled() bool { return c > MSAAOff }

// RendererBackend is implemented by each GPU API the renderer can drive.
type RendererBackend interface {
	wgpuRendererBackend
}
