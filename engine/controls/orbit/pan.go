package orbit

import (
	"log"
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
)

// Viewport supplies the pixel size used to convert pointer deltas to world units.
type Viewport interface {
	ClientWidth() float64
	ClientHeight() float64
}

// PanOffset is the pending target translation built up by pan input.
type PanOffset interface {
	// Pan converts a pixel delta (right and down positive) into a world offset.
	Pan(deltaX, deltaY float64)

	// Update folds the pending offset into target and decays it.
	Update(target common.Vec3) common.Vec3
}

// Pan converts screen-space drags into a world-space offset of the orbit target.
type Pan struct {
	EnablePan bool
	PanSpeed  float64

	// ScreenSpacePanning pans in the view plane when true, and in the plane
	// orthogonal to the camera's up vector when false.
	ScreenSpacePanning bool

	camera   camera.Camera
	target   *common.Vec3
	viewport Viewport
	damping  *Damping
	logger   *log.Logger

	offset common.Vec3
	start  common.Vec2
}

var _ PanOffset = &Pan{}

// NewPan creates a Pan for cam.
//
// Parameters:
//   - cam: the camera providing orientation and projection
//   - target: the orbit target the perspective pan distance is measured to
//   - damping: the shared inertia setting
//   - logger: destination for unsupported-camera warnings
//
// Returns:
//   - *Pan: an enabled pan with screen-space panning
func NewPan(cam camera.Camera, target *common.Vec3, damping *Damping, logger *log.Logger) *Pan {
	return &Pan{
		EnablePan:          true,
		PanSpeed:           1,
		ScreenSpacePanning: true,
		camera:             cam,
		target:             target,
		damping:            damping,
		logger:             logger,
	}
}

// SetViewport sets the element whose size scales pixel deltas.
func (p *Pan) SetViewport(v Viewport) { p.viewport = v }

// Offset returns the pending pan offset.
func (p *Pan) Offset() common.Vec3 { return p.offset }

func (p *Pan) Pan(deltaX, deltaY float64) {
	if p.viewport == nil {
		return
	}
	matrix := p.camera.MatrixWorld()

	switch p.camera.Kind() {
	case camera.KindPerspective:
		targetDistance := p.camera.Position().Sub(*p.target).Len()
		// half of the fov is center to top of screen
		targetDistance *= math.Tan(mgl64.DegToRad(p.camera.Fov() / 2))

		// clientHeight for both axes keeps the aspect ratio from distorting speed
		h := p.viewport.ClientHeight()
		p.panLeft(2*deltaX*targetDistance/h, matrix)
		p.panUp(2*deltaY*targetDistance/h, matrix)

	case camera.KindOrthographic:
		left, right, top, bottom := p.camera.Frustum()
		zoom := p.camera.Zoom()
		p.panLeft(deltaX*(right-left)/zoom/p.viewport.ClientWidth(), matrix)
		p.panUp(deltaY*(top-bottom)/zoom/p.viewport.ClientHeight(), matrix)

	default:
		p.logger.Println("WARNING: OrbitControls encountered an unknown camera type - pan disabled.")
		p.EnablePan = false
	}
}

func (p *Pan) panLeft(distance float64, m common.Mat4) {
	p.offset = p.offset.Add(common.Column(m, 0).Mul(-distance))
}

func (p *Pan) panUp(distance float64, m common.Mat4) {
	var v common.Vec3
	if p.ScreenSpacePanning {
		v = common.Column(m, 1)
	} else {
		v = p.camera.Up().Cross(common.Column(m, 0))
	}
	p.offset = p.offset.Add(v.Mul(distance))
}

func (p *Pan) Update(target common.Vec3) common.Vec3 {
	var applied common.Vec3
	applied, p.offset = p.damping.StepVec(p.offset)
	return target.Add(applied)
}

// SetStart records the pointer position at the start of a pan drag.
func (p *Pan) SetStart(x, y float64) {
	p.start = common.V2(x, y)
}

// HandleMove pans by the pointer motion since the last call, scaled by PanSpeed.
func (p *Pan) HandleMove(x, y float64) {
	end := common.V2(x, y)
	delta := end.Sub(p.start).Mul(p.PanSpeed)
	p.Pan(delta.Elem())
	p.start = end
}
