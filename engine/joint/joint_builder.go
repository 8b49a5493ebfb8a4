package joint

import (
	"log"

	"github.com/Carmen-Shannon/vrm-viewer/engine/controls/transform"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
)

// JointBuilderOption is a functional option for configuring a Joint.
type JointBuilderOption func(*jointImpl)

// WithSelection shares sel between joints. Joints created without one get a
// private selection.
//
// Parameters:
//   - sel: the shared selection
//
// Returns:
//   - JointBuilderOption: a function that applies the selection option
func WithSelection(sel *Selection) JointBuilderOption {
	return func(j *jointImpl) {
		if sel != nil {
			j.selection = sel
		}
	}
}

// WithHost connects the gizmo of a selected joint to host.
//
// Parameters:
//   - host: the renderer's element
//
// Returns:
//   - JointBuilderOption: a function that applies the host option
func WithHost(host input.Host) JointBuilderOption {
	return func(j *jointImpl) {
		j.host = host
	}
}

// WithLogger sets the logger handed to the gizmo.
func WithLogger(logger *log.Logger) JointBuilderOption {
	return func(j *jointImpl) {
		if logger != nil {
			j.logger = logger
		}
	}
}

// WithGizmoOptions appends options applied to the gizmo created on selection,
// after the rotate/local/0.5 defaults.
func WithGizmoOptions(options ...transform.TransformControlsBuilderOption) JointBuilderOption {
	return func(j *jointImpl) {
		j.gizmoOptions = append(j.gizmoOptions, options...)
	}
}
