package orbit

import "github.com/Carmen-Shannon/vrm-viewer/engine/camera"

// NewMapControls creates OrbitControls preset for top-down map navigation:
// left button and one finger pan, right button and two fingers rotate, and
// panning stays in the ground plane. options are applied after the preset.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options applied on top of the preset
//
// Returns:
//   - OrbitControls: the controls
func NewMapControls(cam camera.Camera, options ...OrbitControlsBuilderOption) OrbitControls {
	preset := []OrbitControlsBuilderOption{
		WithScreenSpacePanning(false),
		WithMouseButtons(MouseButtons{Left: MousePan, Middle: MouseDolly, Right: MouseRotate}),
		WithTouches(Touches{One: TouchPan, Two: TouchDollyRotate}),
	}
	return NewOrbitControls(cam, append(preset, options...)...)
}
