package joint

import (
	"log"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/controls/transform"
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
)

const (
	// MarkerRadius is the radius of the clickable sphere drawn on a bone.
	MarkerRadius = 0.08

	markerSegments = 16
	markerName     = "joint-marker"
	gizmoSize      = 0.5
)

var (
	markerColor      = common.Gray
	markerHoverColor = common.HotPink
)

type jointImpl struct {
	object    game_object.GameObject
	marker    game_object.GameObject
	camera    camera.Camera
	selection *Selection
	host      input.Host
	logger    *log.Logger

	hovered      bool
	selected     bool
	controls     transform.TransformControls
	gizmoOptions []transform.TransformControlsBuilderOption
}

// Joint is the click-to-rotate affordance for one bone.
//
// An unselected joint shows a small wire sphere on the bone. Clicking it
// selects the bone and replaces the sphere with a local-space rotate gizmo;
// a click that misses deselects it again.
type Joint interface {
	// Object returns the bone the joint manipulates.
	//
	// Returns:
	//   - game_object.GameObject: the bone
	Object() game_object.GameObject

	// Marker returns the sphere node parented to the bone.
	//
	// Returns:
	//   - game_object.GameObject: the marker
	Marker() game_object.GameObject

	// Hovered reports whether the pointer is over the marker.
	//
	// Returns:
	//   - bool: true while hovered
	Hovered() bool

	// SetHovered records pointer-over and pointer-out on the marker.
	//
	// Parameters:
	//   - hovered: true on pointer-over
	SetHovered(hovered bool)

	// Selected reports whether this joint owns the selection.
	//
	// Returns:
	//   - bool: true if selected
	Selected() bool

	// Click selects the joint and attaches a rotate gizmo to the bone.
	Click()

	// PointerMissed deselects the joint and drops its gizmo.
	PointerMissed()

	// Controls returns the gizmo of a selected joint, or nil.
	//
	// Returns:
	//   - transform.TransformControls: the gizmo or nil
	Controls() transform.TransformControls

	// Hit tests r against the marker sphere. Selected joints are never hit.
	//
	// Parameters:
	//   - r: a world-space ray
	//
	// Returns:
	//   - float64: the ray parameter of the hit
	//   - bool: true on a hit
	Hit(r common.Ray) (float64, bool)

	// Update refreshes the marker color and lays out the gizmo. Call once per
	// frame.
	Update()

	// Lines returns the gizmo's line batches while selected.
	//
	// Returns:
	//   - []game_object.Lines: the gizmo lines, or nil
	Lines() []game_object.Lines

	// Dispose deselects the joint and removes the marker from the bone.
	Dispose()
}

var _ Joint = &jointImpl{}

// NewJoint creates a joint for object and parents its marker to it.
//
// Parameters:
//   - object: the bone
//   - cam: the camera gizmo rays are cast from
//   - options: functional options
//
// Returns:
//   - Joint: the joint
func NewJoint(object game_object.GameObject, cam camera.Camera, options ...JointBuilderOption) Joint {
	j := &jointImpl{
		object: object,
		camera: cam,
		logger: log.Default(),
	}
	for _, option := range options {
		option(j)
	}
	if j.selection == nil {
		j.selection = NewSelection()
	}

	j.marker = game_object.NewGameObject(
		game_object.WithName(markerName),
		game_object.WithScale(common.Splat(MarkerRadius)),
		game_object.WithLines(&game_object.Lines{
			Segments: game_object.WireSphere(1, markerSegments),
			Color:    markerColor,
		}),
	)
	object.Add(j.marker)
	return j
}

func (j *jointImpl) Object() game_object.GameObject        { return j.object }
func (j *jointImpl) Marker() game_object.GameObject        { return j.marker }
func (j *jointImpl) Hovered() bool                         { return j.hovered }
func (j *jointImpl) SetHovered(hovered bool)               { j.hovered = hovered }
func (j *jointImpl) Selected() bool                        { return j.selected }
func (j *jointImpl) Controls() transform.TransformControls { return j.controls }

func (j *jointImpl) Click() {
	if j.selected {
		return
	}
	j.selected = true
	j.hovered = false
	j.selection.Select(j.object.UUID())
	j.marker.SetVisible(false)

	options := []transform.TransformControlsBuilderOption{
		transform.WithMode(transform.ModeRotate),
		transform.WithSpace(transform.SpaceLocal),
		transform.WithSize(gizmoSize),
		transform.WithLogger(j.logger),
	}
	if j.host != nil {
		options = append(options, transform.WithElement(j.host))
	}
	j.controls = transform.NewTransformControls(j.camera, append(options, j.gizmoOptions...)...)
	j.controls.Attach(j.object)
}

func (j *jointImpl) PointerMissed() {
	if !j.selected {
		return
	}
	j.selected = false
	if j.selection.Is(j.object.UUID()) {
		j.selection.Clear()
	}
	j.marker.SetVisible(true)

	j.controls.Dispose()
	j.controls.Detach()
	j.controls = nil
}

func (j *jointImpl) Hit(r common.Ray) (float64, bool) {
	if j.selected || !j.marker.Visible() {
		return 0, false
	}
	center, _, scale := common.Decompose(j.marker.MatrixWorld())
	return r.IntersectSphere(center, scale.X())
}

func (j *jointImpl) Update() {
	if lines := j.marker.Lines(); lines != nil {
		lines.Color = markerColor
		if j.hovered {
			lines.Color = markerHoverColor
		}
	}
	if j.controls != nil {
		j.controls.UpdateMatrixWorld()
	}
}

func (j *jointImpl) Lines() []game_object.Lines {
	if j.controls == nil {
		return nil
	}
	return j.controls.Lines()
}

func (j *jointImpl) Dispose() {
	j.PointerMissed()
	j.object.Remove(j.marker)
}
