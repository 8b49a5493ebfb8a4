package transform

import (
	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
)

// View is the per-frame state TransformControls hands to its Plane and Gizmo.
type View struct {
	Mode     Mode
	Space    Space
	Axis     Axis
	Size     float64
	Enabled  bool
	Dragging bool
	ShowX    bool
	ShowY    bool
	ShowZ    bool

	Camera           camera.Camera
	CameraPosition   common.Vec3
	CameraQuaternion common.Quat

	WorldPosition        common.Vec3
	WorldQuaternion      common.Quat
	WorldPositionStart   common.Vec3
	WorldQuaternionStart common.Quat

	// Eye is the unit vector from the object to the camera.
	Eye          common.Vec3
	RotationAxis common.Vec3
}

// frame returns the orientation handles align to: the object's rotation in
// local space, identity in world space. Scale always uses local.
func (v View) frame() common.Quat {
	if v.Mode == ModeScale || v.Space == SpaceLocal {
		return v.WorldQuaternion
	}
	return mgl64.QuatIdent()
}
