package orbit

import (
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
)

// VectorMapper maps a raw input position to (left, up) angles. Rotation takes
// the difference of successive mapped positions, so the mapper must be linear
// in its inputs.
type VectorMapper func(x, y float64) (left, up float64)

// IdentityMapper passes positions through unchanged. It suits inputs that are
// already angles, such as normalized gamepad axes.
func IdentityMapper(x, y float64) (float64, float64) { return x, y }

// ElementHeightMapper maps pixels to radians so that a drag across the full
// height of v is one full turn, on both axes.
func ElementHeightMapper(v Viewport) VectorMapper {
	return func(x, y float64) (float64, float64) {
		h := v.ClientHeight()
		if h <= 0 {
			return x, y
		}
		return 2 * math.Pi * x / h, 2 * math.Pi * y / h
	}
}

// Rotate converts pointer motion and auto-rotation into orbit-angle deltas.
type Rotate struct {
	EnableRotate bool
	RotateSpeed  float64

	// AutoRotate adds AutoRotationAngle to the azimuth on every idle update.
	AutoRotate      bool
	AutoRotateSpeed float64

	VectorMapper VectorMapper

	delta RotationDelta
	start common.Vec2
}

// NewRotate creates a Rotate writing into delta.
//
// Parameters:
//   - delta: the pending angle accumulator
//   - mapper: position-to-angle mapping, IdentityMapper when nil
//
// Returns:
//   - *Rotate: an enabled rotate with speed 1 and auto-rotate off
func NewRotate(delta RotationDelta, mapper VectorMapper) *Rotate {
	if mapper == nil {
		mapper = IdentityMapper
	}
	return &Rotate{
		EnableRotate:    true,
		RotateSpeed:     1,
		AutoRotateSpeed: 2,
		VectorMapper:    mapper,
		delta:           delta,
	}
}

// AutoRotationAngle returns the azimuth step per frame: with speed 2 a full
// orbit takes 30 seconds at 60 fps.
func (r *Rotate) AutoRotationAngle() float64 {
	return 2 * math.Pi / 60 / 60 * r.AutoRotateSpeed
}

// UpdateAutoRotate stages one auto-rotation step when AutoRotate is on.
func (r *Rotate) UpdateAutoRotate() {
	if !r.AutoRotate {
		return
	}
	r.delta.RotateLeft(r.AutoRotationAngle())
}

// SetStart records the mapped start of a rotate drag.
func (r *Rotate) SetStart(x, y float64) {
	left, up := r.VectorMapper(x, y)
	r.start = common.V2(left, up)
}

// HandleMove rotates by the mapped motion since the last call.
func (r *Rotate) HandleMove(x, y float64) {
	left, up := r.VectorMapper(x, y)
	end := common.V2(left, up)
	delta := end.Sub(r.start).Mul(r.RotateSpeed)

	r.delta.RotateLeft(delta.X())
	r.delta.RotateUp(delta.Y())

	r.start = end
}
