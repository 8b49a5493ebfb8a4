package transform

import (
	"log"

	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
)

// TransformControlsBuilderOption is a functional option for configuring
// TransformControls. Options set initial values without emitting events.
type TransformControlsBuilderOption func(*transformControlsImpl)

// WithMode sets the initial mode. Unknown modes are ignored.
//
// Parameters:
//   - mode: translate, rotate or scale
//
// Returns:
//   - TransformControlsBuilderOption: a function that applies the mode option
func WithMode(mode Mode) TransformControlsBuilderOption {
	return func(c *transformControlsImpl) {
		if mode.Valid() {
			c.mode = mode
		}
	}
}

// WithSpace sets the initial space. Unknown spaces are ignored.
//
// Parameters:
//   - space: world or local
//
// Returns:
//   - TransformControlsBuilderOption: a function that applies the space option
func WithSpace(space Space) TransformControlsBuilderOption {
	return func(c *transformControlsImpl) {
		if space.Valid() {
			c.space = space
		}
	}
}

// WithSize scales the on-screen gizmo.
func WithSize(size float64) TransformControlsBuilderOption {
	return func(c *transformControlsImpl) {
		c.size = size
	}
}

// WithSnaps sets the translation step, the rotation step in radians and the
// scale step. Zero disables snapping for that mode.
func WithSnaps(translation, rotation, scale float64) TransformControlsBuilderOption {
	return func(c *transformControlsImpl) {
		c.translationSnap = translation
		c.rotationSnap = rotation
		c.scaleSnap = scale
	}
}

// WithShowAxes selects which axes have handles.
func WithShowAxes(x, y, z bool) TransformControlsBuilderOption {
	return func(c *transformControlsImpl) {
		c.showX = x
		c.showY = y
		c.showZ = z
	}
}

func WithEnabled(enabled bool) TransformControlsBuilderOption {
	return func(c *transformControlsImpl) {
		c.enabled = enabled
	}
}

// WithLogger sets the logger used for scene-graph misuse errors.
//
// Parameters:
//   - logger: the destination logger; nil is ignored
//
// Returns:
//   - TransformControlsBuilderOption: a function that applies the logger option
func WithLogger(logger *log.Logger) TransformControlsBuilderOption {
	return func(c *transformControlsImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithElement connects the controls to host on construction.
func WithElement(host input.Host) TransformControlsBuilderOption {
	return func(c *transformControlsImpl) {
		c.pendingHost = host
	}
}
