package camera

import "github.com/Carmen-Shannon/vrm-viewer/common"

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial position.
//
// Parameters:
//   - p: the world-space position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(p common.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = p
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(up common.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = up
	}
}

// WithFov sets the camera's vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithClip sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets both clipping planes
func WithClip(near, far float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithZoom sets the initial zoom factor.
//
// Parameters:
//   - zoom: the zoom factor
//
// Returns:
//   - CameraBuilderOption: a function that sets the zoom
func WithZoom(zoom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}

// WithOrthographic switches the camera to an orthographic projection with the
// given view bounds.
//
// Parameters:
//   - left, right, top, bottom: view bounds at zoom 1
//
// Returns:
//   - CameraBuilderOption: a function that makes the camera orthographic
func WithOrthographic(left, right, top, bottom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.kind = KindOrthographic
		c.left, c.right, c.top, c.bottom = left, right, top, bottom
	}
}

// WithKind overrides the projection discriminator. KindUnknown stands in for
// camera types the controls do not support.
//
// Parameters:
//   - kind: the camera kind
//
// Returns:
//   - CameraBuilderOption: a function that sets the kind
func WithKind(kind Kind) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.kind = kind
	}
}
