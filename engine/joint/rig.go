package joint

import (
	"math"
	"sort"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
)

// Rig owns one Joint per bone and routes pointer rays to them. All joints
// share a single Selection, so at most one bone is selected at a time.
type Rig struct {
	joints    []Joint
	selection *Selection
}

// NewRig creates a joint for every bone. Bones are visited in name order so
// the joint order is stable.
//
// Parameters:
//   - bones: the bones keyed by humanoid bone name
//   - cam: the camera gizmo rays are cast from
//   - options: options applied to every joint
//
// Returns:
//   - *Rig: the rig
func NewRig(bones map[string]game_object.GameObject, cam camera.Camera, options ...JointBuilderOption) *Rig {
	r := &Rig{selection: NewSelection()}

	names := make([]string, 0, len(bones))
	for name := range bones {
		names = append(names, name)
	}
	sort.Strings(names)

	options = append([]JointBuilderOption{WithSelection(r.selection)}, options...)
	for _, name := range names {
		r.joints = append(r.joints, NewJoint(bones[name], cam, options...))
	}
	return r
}

// Joints returns the rig's joints.
func (r *Rig) Joints() []Joint { return r.joints }

// Selection returns the shared selection.
func (r *Rig) Selection() *Selection { return r.selection }

// Selected returns the selected joint, or nil.
func (r *Rig) Selected() Joint {
	for _, j := range r.joints {
		if j.Selected() {
			return j
		}
	}
	return nil
}

// pick returns the joint whose marker ray hits first, or nil.
func (r *Rig) pick(ray common.Ray) Joint {
	var nearest Joint
	best := math.Inf(1)
	for _, j := range r.joints {
		if t, ok := j.Hit(ray); ok && t < best {
			best = t
			nearest = j
		}
	}
	return nearest
}

// Hover marks the marker under ray as hovered and clears the rest.
//
// Parameters:
//   - ray: the pointer ray in world space
func (r *Rig) Hover(ray common.Ray) {
	hit := r.pick(ray)
	for _, j := range r.joints {
		j.SetHovered(j == hit)
	}
}

// Click selects the marker under ray and deselects every other joint. A click
// on a handle of the selected joint's gizmo is left to the gizmo.
//
// Parameters:
//   - ray: the pointer ray in world space
func (r *Rig) Click(ray common.Ray) {
	if sel := r.Selected(); sel != nil {
		if _, onHandle := sel.Controls().Gizmo().Pick(ray); onHandle || sel.Controls().Dragging() {
			return
		}
	}

	hit := r.pick(ray)
	for _, j := range r.joints {
		if j != hit {
			j.PointerMissed()
		}
	}
	if hit != nil {
		hit.Click()
	}
}

// Dragging reports whether the selected joint's gizmo is being dragged.
func (r *Rig) Dragging() bool {
	sel := r.Selected()
	return sel != nil && sel.Controls().Dragging()
}

// Update refreshes every joint. Call once per frame.
func (r *Rig) Update() {
	for _, j := range r.joints {
		j.Update()
	}
}

// Lines returns the gizmo lines of the selected joint.
func (r *Rig) Lines() []game_object.Lines {
	if sel := r.Selected(); sel != nil {
		return sel.Lines()
	}
	return nil
}

// Dispose disposes every joint.
func (r *Rig) Dispose() {
	for _, j := range r.joints {
		j.Dispose()
	}
	r.joints = nil
}
