package orbit

import (
	"log"
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
	"github.com/go-gl/mathgl/mgl64"
)

// changeEpsilon is the squared displacement / small-angle threshold used by
// CheckZoomed.
const changeEpsilon = 0.000001

// Dolly handles zoom input. Perspective cameras accumulate a radius scale that
// SphericalState consumes on the next update; orthographic cameras have their
// zoom changed directly.
type Dolly struct {
	// MinZoom and MaxZoom bound the orthographic zoom.
	MinZoom float64
	MaxZoom float64

	// EnableZoom turns dolly input on or off. It is cleared permanently when
	// the camera type is unsupported.
	EnableZoom bool
	ZoomSpeed  float64

	camera camera.Camera
	logger *log.Logger

	scale       float64
	zoomChanged bool

	start common.Vec2

	lastPosition   common.Vec3
	lastQuaternion common.Quat
}

// NewDolly creates a Dolly for cam.
//
// Parameters:
//   - cam: the camera whose radius or zoom is changed
//   - logger: destination for unsupported-camera warnings
//
// Returns:
//   - *Dolly: the dolly with zoom enabled and unbounded orthographic zoom
func NewDolly(cam camera.Camera, logger *log.Logger) *Dolly {
	return &Dolly{
		MinZoom:        0,
		MaxZoom:        math.Inf(1),
		EnableZoom:     true,
		ZoomSpeed:      1,
		camera:         cam,
		logger:         logger,
		scale:          1,
		lastQuaternion: mgl64.QuatIdent(),
	}
}

// ZoomScale returns the per-wheel-tick multiplier, 0.95^ZoomSpeed.
func (d *Dolly) ZoomScale() float64 {
	return math.Pow(0.95, d.ZoomSpeed)
}

// DollyOut moves away from the target by dollyScale.
func (d *Dolly) DollyOut(dollyScale float64) {
	switch d.camera.Kind() {
	case camera.KindPerspective:
		d.scale /= dollyScale
	case camera.KindOrthographic:
		d.setZoom(d.camera.Zoom() * dollyScale)
	default:
		d.disable()
	}
}

// DollyIn moves toward the target by dollyScale. DollyIn(s) undoes DollyOut(s).
func (d *Dolly) DollyIn(dollyScale float64) {
	switch d.camera.Kind() {
	case camera.KindPerspective:
		d.scale *= dollyScale
	case camera.KindOrthographic:
		d.setZoom(d.camera.Zoom() / dollyScale)
	default:
		d.disable()
	}
}

func (d *Dolly) setZoom(zoom float64) {
	d.camera.SetZoom(mgl64.Clamp(zoom, d.MinZoom, d.MaxZoom))
	d.camera.UpdateProjectionMatrix()
	d.zoomChanged = true
}

func (d *Dolly) disable() {
	d.logger.Println("WARNING: OrbitControls encountered an unknown camera type - dolly/zoom disabled.")
	d.EnableZoom = false
}

// HandleMouseWheel dollies in for negative DeltaY and out for positive.
func (d *Dolly) HandleMouseWheel(e *input.WheelEvent) {
	if e.DeltaY < 0 {
		d.DollyIn(d.ZoomScale())
	} else if e.DeltaY > 0 {
		d.DollyOut(d.ZoomScale())
	}
}

// StartDollyBy2Points records the distance between two pointers as the start
// of a pinch.
func (d *Dolly) StartDollyBy2Points(p0, p1 common.Vec2) {
	d.start = common.V2(0, p0.Sub(p1).Len())
}

// MoveDollyBy2Points dollies out by (distance/previous)^ZoomSpeed.
func (d *Dolly) MoveDollyBy2Points(p0, p1 common.Vec2) {
	end := common.V2(0, p0.Sub(p1).Len())
	if d.start.Y() > 0 {
		d.DollyOut(math.Pow(end.Y()/d.start.Y(), d.ZoomSpeed))
	}
	d.start = end
}

// SetStart records the pointer position at the start of a mouse dolly drag.
func (d *Dolly) SetStart(x, y float64) {
	d.start = common.V2(x, y)
}

// HandleMove dollies by one wheel tick in the direction of vertical motion.
func (d *Dolly) HandleMove(x, y float64) {
	end := common.V2(x, y)
	delta := end.Sub(d.start)
	if delta.Y() > 0 {
		d.DollyOut(d.ZoomScale())
	} else if delta.Y() < 0 {
		d.DollyIn(d.ZoomScale())
	}
	d.start = end
}

// NextFrameScale returns the accumulated radius scale and resets it to 1.
func (d *Dolly) NextFrameScale() float64 {
	s := d.scale
	d.scale = 1
	return s
}

// CheckZoomed reports whether the camera changed observably since the last
// positive check, and records the new pose when it has. Rotation uses the
// small-angle approximation cos(x/2) = 1 - x²/8.
func (d *Dolly) CheckZoomed(cam camera.Camera) bool {
	pos := cam.Position()
	q := cam.Quaternion()
	if d.zoomChanged ||
		d.lastPosition.Sub(pos).LenSqr() > changeEpsilon ||
		8*(1-d.lastQuaternion.Dot(q)) > changeEpsilon {
		d.lastPosition = pos
		d.lastQuaternion = q
		d.zoomChanged = false
		return true
	}
	return false
}
