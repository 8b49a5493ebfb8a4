package game_object

import "github.com/Carmen-Shannon/vrm-viewer/common"

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithName sets the name of the GameObject.
//
// Parameters:
//   - name: the node name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithVisible sets whether the GameObject is drawn and pickable.
//
// Parameters:
//   - visible: true to show the object
//
// Returns:
//   - GameObjectBuilderOption: functional option to set visibility
func WithVisible(visible bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.visible.Store(visible)
	}
}

// WithPosition sets the initial local position.
//
// Parameters:
//   - p: the position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(p common.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = p
	}
}

// WithQuaternion sets the initial local orientation.
//
// Parameters:
//   - q: the orientation
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the orientation
func WithQuaternion(q common.Quat) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.quaternion = q
	}
}

// WithScale sets the initial local scale.
//
// Parameters:
//   - s: the scale factors
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(s common.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = s
	}
}

// WithLines attaches line geometry.
//
// Parameters:
//   - l: the line geometry
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the geometry
func WithLines(l *Lines) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.lines = l
	}
}
