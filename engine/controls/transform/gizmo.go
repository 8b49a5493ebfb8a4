package transform

import (
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	axisHideThreshold   = 0.99
	planeHideThreshold  = 0.2
	axisFlipThreshold   = 0.0
	helperHideThreshold = 0.9

	// hiddenScale collapses a handle that is hidden for facing the camera.
	hiddenScale = 1e-10
)

// Handle is one built gizmo part: its baked geometry plus the transform,
// visibility and material computed on the last Update.
type Handle struct {
	Name     Axis
	Kind     HandleKind
	Tag      HandleTag
	Geometry Geometry

	Visible    bool
	Position   common.Vec3
	Quaternion common.Quat
	Scale      common.Vec3
	Material   Material

	base Material
}

func newHandle(spec HandleSpec) *Handle {
	return &Handle{
		Name:       spec.Name,
		Kind:       spec.Kind,
		Tag:        spec.Tag,
		Geometry:   spec.Bake(),
		Visible:    true,
		Quaternion: mgl64.QuatIdent(),
		Scale:      common.Splat(1),
		Material:   spec.Material,
		base:       spec.Material,
	}
}

// Matrix returns the handle's world transform.
func (h *Handle) Matrix() common.Mat4 {
	return common.ComposeMat4(h.Position, h.Quaternion, h.Scale)
}

// WorldEdges returns the handle's drawable segments in world space.
func (h *Handle) WorldEdges() []common.Vec3 {
	m := h.Matrix()
	edges := h.Geometry.Edges()
	for i, v := range edges {
		edges[i] = mgl64.TransformCoordinate(v, m)
	}
	return edges
}

// intersect returns the world ray parameter of the nearest hit on h.
func (h *Handle) intersect(r common.Ray) (float64, bool) {
	inv, ok := common.Invert(h.Matrix())
	if !ok {
		return 0, false
	}
	return h.Geometry.Intersect(r.Transform(inv))
}

// Gizmo holds the visible handles, the hit proxies and the drag guides for
// every mode, and updates whichever set the current mode uses.
type Gizmo struct {
	gizmo  map[Mode][]*Handle
	picker map[Mode][]*Handle
	helper map[Mode][]*Handle

	view View
}

// NewGizmo builds every handle from the static tables.
func NewGizmo() *Gizmo {
	g := &Gizmo{
		gizmo:  make(map[Mode][]*Handle),
		picker: make(map[Mode][]*Handle),
		helper: make(map[Mode][]*Handle),
	}
	build := func(tables map[Mode][]HandleSpec, into map[Mode][]*Handle) {
		for mode, specs := range tables {
			for _, spec := range specs {
				into[mode] = append(into[mode], newHandle(spec))
			}
		}
	}
	build(gizmoTables, g.gizmo)
	build(pickerTables, g.picker)
	build(helperTables, g.helper)
	return g
}

// Handles returns the drawn handles and guides for mode.
func (g *Gizmo) Handles(mode Mode) []*Handle {
	out := make([]*Handle, 0, len(g.gizmo[mode])+len(g.helper[mode]))
	out = append(out, g.gizmo[mode]...)
	return append(out, g.helper[mode]...)
}

// Pickers returns the hit proxies for mode.
func (g *Gizmo) Pickers(mode Mode) []*Handle {
	return g.picker[mode]
}

// Pick returns the name of the nearest visible hit proxy of the current mode
// under r.
func (g *Gizmo) Pick(r common.Ray) (Axis, bool) {
	best := math.Inf(1)
	axis := AxisNone
	for _, h := range g.picker[g.view.Mode] {
		if !h.Visible {
			continue
		}
		if t, ok := h.intersect(r); ok && t < best {
			best = t
			axis = h.Name
		}
	}
	return axis, axis != AxisNone
}

// Lines returns the visible handles of the current mode as colored line
// batches in world space.
func (g *Gizmo) Lines() []game_object.Lines {
	var out []game_object.Lines
	for _, h := range g.Handles(g.view.Mode) {
		if !h.Visible {
			continue
		}
		out = append(out, game_object.Lines{Segments: h.WorldEdges(), Color: h.Material.RGBA()})
	}
	return out
}

// scaleFactor keeps the gizmo a constant size on screen.
func scaleFactor(v View) float64 {
	cam := v.Camera
	if cam.Kind() == camera.KindOrthographic {
		_, _, top, bottom := cam.Frustum()
		return (top - bottom) / cam.Zoom()
	}
	return v.WorldPosition.Sub(v.CameraPosition).Len() *
		math.Min(1.9*math.Tan(math.Pi*cam.Fov()/360)/cam.Zoom(), 7)
}

// Update positions, orients, hides and highlights every handle of v.Mode.
func (g *Gizmo) Update(v View) {
	g.view = v
	frame := v.frame()

	handles := make([]*Handle, 0, len(g.picker[v.Mode])+len(g.gizmo[v.Mode])+len(g.helper[v.Mode]))
	handles = append(handles, g.picker[v.Mode]...)
	handles = append(handles, g.gizmo[v.Mode]...)
	handles = append(handles, g.helper[v.Mode]...)

	factor := scaleFactor(v)

	for _, h := range handles {
		h.Visible = true
		h.Quaternion = mgl64.QuatIdent()
		h.Position = v.WorldPosition
		h.Scale = common.Splat(factor * v.Size / 7)

		if h.Tag == TagHelper {
			g.updateHelper(h, v, frame)
			continue
		}

		h.Quaternion = frame

		switch v.Mode {
		case ModeTranslate, ModeScale:
			hideFacingCamera(h, v.Eye, frame)
			flipOccluded(h, v.Eye, frame)
		case ModeRotate:
			orientRing(h, v.Eye, frame)
		}

		h.Visible = h.Visible && (!h.Name.Has("X") || v.ShowX)
		h.Visible = h.Visible && (!h.Name.Has("Y") || v.ShowY)
		h.Visible = h.Visible && (!h.Name.Has("Z") || v.ShowZ)
		h.Visible = h.Visible && (!h.Name.Has("E") || (v.ShowX && v.ShowY && v.ShowZ))

		h.Material = highlight(h, v)
	}
}

func (g *Gizmo) updateHelper(h *Handle, v View, frame common.Quat) {
	h.Visible = false

	switch h.Name {
	case axisAxis:
		h.Position = v.WorldPositionStart
		h.Visible = v.Axis != AxisNone

		hideAligned := func(axis common.Vec3) {
			if math.Abs(frame.Rotate(axis).Dot(v.Eye)) > helperHideThreshold {
				h.Visible = false
			}
		}
		switch v.Axis {
		case AxisX:
			h.Quaternion = frame
			hideAligned(common.UnitX)
		case AxisY:
			h.Quaternion = frame.Mul(common.QuatFromEuler(common.Euler{Z: halfPi}))
			hideAligned(common.UnitY)
		case AxisZ:
			h.Quaternion = frame.Mul(common.QuatFromEuler(common.Euler{Y: halfPi}))
			hideAligned(common.UnitZ)
		case AxisXYZE:
			look := mgl64.Mat4ToQuat(common.LookAtRotation(common.Vec3{}, v.RotationAxis, common.UnitY))
			h.Quaternion = look.Mul(common.QuatFromEuler(common.Euler{Y: halfPi}))
			h.Visible = v.Dragging
		case AxisE:
			h.Visible = false
		}

	case axisStart:
		h.Position = v.WorldPositionStart
		h.Visible = v.Dragging

	case axisEnd:
		h.Position = v.WorldPosition
		h.Visible = v.Dragging

	case axisDelta:
		h.Position = v.WorldPositionStart
		h.Quaternion = v.WorldQuaternionStart
		delta := common.Splat(hiddenScale).Add(v.WorldPositionStart).Sub(v.WorldPosition).Mul(-1)
		h.Scale = v.WorldQuaternionStart.Conjugate().Rotate(delta)
		h.Visible = v.Dragging

	default:
		h.Quaternion = frame
		if v.Dragging {
			h.Position = v.WorldPositionStart
		} else {
			h.Position = v.WorldPosition
		}
		if v.Axis != AxisNone {
			h.Visible = v.Axis.Has(string(h.Name))
		}
	}
}

func hide(h *Handle) {
	h.Scale = common.Splat(hiddenScale)
	h.Visible = false
}

// hideFacingCamera hides axis handles pointing at the camera and plane
// handles seen edge-on.
func hideFacingCamera(h *Handle, eye common.Vec3, frame common.Quat) {
	facing := func(axis common.Vec3) float64 {
		return math.Abs(frame.Rotate(axis).Dot(eye))
	}

	switch h.Name {
	case AxisX, AxisXYZX:
		if facing(common.UnitX) > axisHideThreshold {
			hide(h)
		}
	case AxisY, AxisXYZY:
		if facing(common.UnitY) > axisHideThreshold {
			hide(h)
		}
	case AxisZ, AxisXYZZ:
		if facing(common.UnitZ) > axisHideThreshold {
			hide(h)
		}
	case AxisXY:
		if facing(common.UnitZ) < planeHideThreshold {
			hide(h)
		}
	case AxisYZ:
		if facing(common.UnitX) < planeHideThreshold {
			hide(h)
		}
	case AxisXZ:
		if facing(common.UnitY) < planeHideThreshold {
			hide(h)
		}
	}
}

// flipOccluded mirrors handles of an axis pointing away from the camera and
// keeps exactly one arrowhead per axis visible.
func flipOccluded(h *Handle, eye common.Vec3, frame common.Quat) {
	axes := []struct {
		name string
		unit common.Vec3
		idx  int
	}{
		{"X", common.UnitX, 0},
		{"Y", common.UnitY, 1},
		{"Z", common.UnitZ, 2},
	}
	for _, a := range axes {
		if !h.Name.Has(a.name) {
			continue
		}
		if frame.Rotate(a.unit).Dot(eye) < axisFlipThreshold {
			if h.Tag == TagForward {
				h.Visible = false
			} else {
				h.Scale[a.idx] = -h.Scale[a.idx]
			}
		} else if h.Tag == TagBackward {
			h.Visible = false
		}
	}
}

// orientRing turns each rotation ring so its visible half faces the camera.
// View-aligned handles look at the eye.
func orientRing(h *Handle, eye common.Vec3, frame common.Quat) {
	align := frame.Conjugate().Rotate(eye)

	if h.Name.Has("E") {
		h.Quaternion = mgl64.Mat4ToQuat(common.LookAtRotation(eye, common.Vec3{}, common.UnitY))
	}

	switch h.Name {
	case AxisX:
		h.Quaternion = frame.Mul(mgl64.QuatRotate(math.Atan2(-align.Y(), align.Z()), common.UnitX))
	case AxisY:
		h.Quaternion = frame.Mul(mgl64.QuatRotate(math.Atan2(align.X(), align.Z()), common.UnitY))
	case AxisZ:
		h.Quaternion = frame.Mul(mgl64.QuatRotate(math.Atan2(align.Y(), align.X()), common.UnitZ))
	}
}

// highlight returns the material for h given the active axis.
func highlight(h *Handle, v View) Material {
	switch {
	case !v.Enabled:
		return h.base.dimmed()
	case v.Axis == AxisNone:
		return h.base
	case h.Name == v.Axis:
		return h.base.highlighted()
	}
	for _, c := range v.Axis {
		if string(h.Name) == string(c) {
			return h.base.highlighted()
		}
	}
	return h.base.faded()
}
