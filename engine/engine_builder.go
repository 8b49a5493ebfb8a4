package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/vrm-viewer/engine/config"
	"github.com/Carmen-Shannon/vrm-viewer/engine/window"
)

// ViewerBuilderOption is a functional option for configuring a Viewer.
// Use the With* functions to create options that are applied directly to the viewer instance.
type ViewerBuilderOption func(*viewer)

// WithConfig sets the configuration the viewer is built from.
//
// Parameters:
//   - cfg: the configuration; nil keeps the defaults
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithConfig(cfg *config.Config) ViewerBuilderOption {
	return func(v *viewer) {
		if cfg != nil {
			v.cfg = cfg
		}
	}
}

// WithLogger sets the logger shared by the viewer's components.
func WithLogger(logger *log.Logger) ViewerBuilderOption {
	return func(v *viewer) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithProfiling(enabled bool) ViewerBuilderOption {
	return func(v *viewer) {
		v.profilingEnabled = enabled
	}
}

// WithWindow sets a custom configured window for the viewer to use rather than allowing the viewer
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithWindow(w window.Window) ViewerBuilderOption {
	return func(v *viewer) {
		v.window = w
	}
}

// WithWatch reloads the model whenever its file changes.
func WithWatch(enabled bool) ViewerBuilderOption {
	return func(v *viewer) {
		v.watch = enabled
	}
}

// WithMapControls uses the map preset: left button pans, right button rotates.
func WithMapControls(enabled bool) ViewerBuilderOption {
	return func(v *viewer) {
		v.mapControls = enabled
	}
}

// WithRedrawRate makes the viewer redraw at least fps times per second even
// when nothing changed. Pass 0 to draw only on change (default).
//
// Parameters:
//   - fps: minimum frames per second (0 = on demand)
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithRedrawRate(fps float64) ViewerBuilderOption {
	return func(v *viewer) {
		if fps <= 0 {
			v.redrawInterval = 0
			return
		}
		v.redrawInterval = time.Duration(float64(time.Second) / fps)
	}
}
