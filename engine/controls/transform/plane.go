package transform

import (
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/go-gl/mathgl/mgl64"
)

// planeHalfSize bounds the drag plane; hits farther from its centre miss.
const planeHalfSize = 50000

// Plane is the invisible quad pointer rays are intersected with during a
// drag. Its orientation follows the mode and axis so the hit point moves
// along the constraint being dragged.
type Plane struct {
	Position   common.Vec3
	Quaternion common.Quat
}

// NewPlane returns a plane at the origin facing +Z.
func NewPlane() *Plane {
	return &Plane{Quaternion: mgl64.QuatIdent()}
}

// Update re-centres the plane on the object and orients it for v.
//
// Single-axis translate and scale planes contain the axis and turn toward the
// camera. Two-axis planes are the coordinate plane itself. Everything else
// faces the camera.
func (p *Plane) Update(v View) {
	p.Position = v.WorldPosition

	frame := v.frame()
	unitX := frame.Rotate(common.UnitX)
	unitY := frame.Rotate(common.UnitY)
	unitZ := frame.Rotate(common.UnitZ)

	align := unitY
	var dir common.Vec3

	if v.Mode == ModeTranslate || v.Mode == ModeScale {
		switch v.Axis {
		case AxisX:
			align = v.Eye.Cross(unitX)
			dir = unitX.Cross(align)
		case AxisY:
			align = v.Eye.Cross(unitY)
			dir = unitY.Cross(align)
		case AxisZ:
			align = v.Eye.Cross(unitZ)
			dir = unitZ.Cross(align)
		case AxisXY:
			dir = unitZ
		case AxisYZ:
			dir = unitX
		case AxisXZ:
			align = unitZ
			dir = unitY
		}
	}

	if dir.Len() == 0 {
		p.Quaternion = v.CameraQuaternion
		return
	}
	p.Quaternion = mgl64.Mat4ToQuat(common.LookAtRotation(common.Vec3{}, dir, align))
}

// Normal returns the plane's facing direction.
func (p *Plane) Normal() common.Vec3 {
	return p.Quaternion.Rotate(common.UnitZ)
}

// Intersect returns the point where r crosses the plane. Both sides hit.
func (p *Plane) Intersect(r common.Ray) (common.Vec3, bool) {
	t, ok := r.IntersectPlane(common.PlaneFromNormalAndPoint(p.Normal(), p.Position))
	if !ok {
		return common.Vec3{}, false
	}
	point := r.At(t)

	local := p.Quaternion.Conjugate().Rotate(point.Sub(p.Position))
	if math.Abs(local.X()) > planeHalfSize || math.Abs(local.Y()) > planeHalfSize {
		return common.Vec3{}, false
	}
	return point, true
}
