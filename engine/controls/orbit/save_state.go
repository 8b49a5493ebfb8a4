package orbit

import (
	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
)

// SaveState is a snapshot of the pose Reset returns to.
type SaveState struct {
	Target0   common.Vec3
	Position0 common.Vec3
	Zoom0     float64
}

// Capture records the current camera pose and target. Zoom is only recorded
// for perspective cameras.
func (s *SaveState) Capture(cam camera.Camera, target common.Vec3) {
	s.Target0 = target
	s.Position0 = cam.Position()
	s.Zoom0 = 1
	if cam.Kind() == camera.KindPerspective {
		s.Zoom0 = cam.Zoom()
	}
}

// Restore writes the snapshot back to cam and returns the saved target.
func (s *SaveState) Restore(cam camera.Camera) common.Vec3 {
	cam.SetPosition(s.Position0)
	if cam.Kind() == camera.KindPerspective {
		cam.SetZoom(s.Zoom0)
		cam.UpdateProjectionMatrix()
	}
	return s.Target0
}
