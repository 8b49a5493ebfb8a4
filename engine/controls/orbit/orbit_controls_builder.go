package orbit

import (
	"log"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
)

// OrbitControlsBuilderOption is a functional option for configuring OrbitControls.
type OrbitControlsBuilderOption func(*orbitControlsImpl)

// WithTarget sets the initial orbit pivot.
//
// Parameters:
//   - target: the point the camera orbits
//
// Returns:
//   - OrbitControlsBuilderOption: a function that applies the target option
func WithTarget(target common.Vec3) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.target = target
	}
}

// WithElement connects the controls to host on construction.
//
// Parameters:
//   - host: the element receiving pointer and wheel input
//
// Returns:
//   - OrbitControlsBuilderOption: a function that applies the element option
func WithElement(host input.Host) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.pendingHost = host
	}
}

// WithLogger sets the logger used for warnings about unsupported cameras and
// misuse.
//
// Parameters:
//   - logger: the destination logger
//
// Returns:
//   - OrbitControlsBuilderOption: a function that applies the logger option
func WithLogger(logger *log.Logger) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		if logger == nil {
			return
		}
		c.logger = logger
		c.dolly.logger = logger
		c.pan.logger = logger
	}
}

// WithDamping enables inertia with the given factor.
//
// Parameters:
//   - factor: the fraction of the pending delta applied per update, in (0, 1]
//
// Returns:
//   - OrbitControlsBuilderOption: a function that applies the damping option
func WithDamping(factor float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.damping.Enabled = true
		c.damping.Factor = factor
	}
}

// WithDistanceLimits bounds the perspective orbit radius.
func WithDistanceLimits(minDistance, maxDistance float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.spherical.MinDistance = minDistance
		c.spherical.MaxDistance = maxDistance
	}
}

// WithPolarLimits bounds the polar angle, in radians.
func WithPolarLimits(minPolar, maxPolar float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.spherical.MinPolarAngle = minPolar
		c.spherical.MaxPolarAngle = maxPolar
	}
}

// WithAzimuthLimits bounds the azimuth, in radians. The window may cross ±π.
func WithAzimuthLimits(minAzimuth, maxAzimuth float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.spherical.MinAzimuthAngle = minAzimuth
		c.spherical.MaxAzimuthAngle = maxAzimuth
	}
}

// WithZoomLimits bounds the orthographic zoom.
func WithZoomLimits(minZoom, maxZoom float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.dolly.MinZoom = minZoom
		c.dolly.MaxZoom = maxZoom
	}
}

func WithRotateSpeed(speed float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.rotate.RotateSpeed = speed
	}
}

func WithPanSpeed(speed float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.pan.PanSpeed = speed
	}
}

func WithZoomSpeed(speed float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.dolly.ZoomSpeed = speed
	}
}

func WithKeyPanSpeed(speed float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.keyboard.KeyPanSpeed = speed
	}
}

// WithScreenSpacePanning selects between panning in the view plane (true) and
// in the plane orthogonal to the camera's up vector (false).
func WithScreenSpacePanning(enabled bool) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.pan.ScreenSpacePanning = enabled
	}
}

// WithAutoRotate turns on idle rotation around the target.
//
// Parameters:
//   - speed: 2 is one orbit per 30 seconds at 60 fps; negative reverses
//
// Returns:
//   - OrbitControlsBuilderOption: a function that applies the auto-rotate option
func WithAutoRotate(speed float64) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.rotate.AutoRotate = true
		c.rotate.AutoRotateSpeed = speed
	}
}

func WithEnableRotate(enabled bool) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.rotate.EnableRotate = enabled
	}
}

func WithEnablePan(enabled bool) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.pan.EnablePan = enabled
	}
}

func WithEnableZoom(enabled bool) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.dolly.EnableZoom = enabled
	}
}

// WithMouseButtons remaps the mouse buttons.
func WithMouseButtons(buttons MouseButtons) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.mouse.Buttons = buttons
	}
}

// WithTouches remaps the one- and two-finger gestures.
func WithTouches(touches Touches) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		c.touch.Touches = touches
	}
}

// WithVectorMapper replaces the pointer-to-angle mapping. The default maps a
// drag across the element height to one full turn.
func WithVectorMapper(mapper VectorMapper) OrbitControlsBuilderOption {
	return func(c *orbitControlsImpl) {
		if mapper != nil {
			c.rotate.VectorMapper = mapper
		}
	}
}
