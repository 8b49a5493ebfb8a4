package transform

import (
	"log"
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
	"github.com/go-gl/mathgl/mgl64"
)

// Event names emitted by TransformControls. Property setters additionally
// emit PropertyChanged(name).
const (
	EventChange       = "change"
	EventObjectChange = "objectChange"
	EventMouseDown    = "mouseDown"
	EventMouseUp      = "mouseUp"
)

// Property names used with PropertyChanged.
const (
	PropObject          = "object"
	PropEnabled         = "enabled"
	PropAxis            = "axis"
	PropMode            = "mode"
	PropTranslationSnap = "translationSnap"
	PropRotationSnap    = "rotationSnap"
	PropScaleSnap       = "scaleSnap"
	PropSpace           = "space"
	PropSize            = "size"
	PropDragging        = "dragging"
	PropShowX           = "showX"
	PropShowY           = "showY"
	PropShowZ           = "showZ"
)

// PropertyChanged returns the event name emitted when the named property
// changes.
func PropertyChanged(name string) string {
	return name + "-changed"
}

// Event is delivered to TransformControls subscribers. Mode is set for
// mouseDown and mouseUp; Value carries the new value of a changed property.
type Event struct {
	Type  string
	Mode  Mode
	Value any
}

// Pointer is a pointer position in normalized device coordinates with the
// DOM button index; -1 means no button changed.
type Pointer struct {
	X, Y   float64
	Button int
}

type transformControlsImpl struct {
	camera camera.Camera
	logger *log.Logger

	gizmo *Gizmo
	plane *Plane

	object          game_object.GameObject
	enabled         bool
	axis            Axis
	mode            Mode
	translationSnap float64
	rotationSnap    float64
	scaleSnap       float64
	space           Space
	size            float64
	dragging        bool
	showX           bool
	showY           bool
	showZ           bool

	pointStart    common.Vec3
	pointEnd      common.Vec3
	rotationAxis  common.Vec3
	rotationAngle float64

	cameraPosition   common.Vec3
	cameraQuaternion common.Quat

	parentPosition      common.Vec3
	parentQuaternion    common.Quat
	parentQuaternionInv common.Quat
	parentScale         common.Vec3

	worldPositionStart   common.Vec3
	worldQuaternionStart common.Quat
	worldScaleStart      common.Vec3

	worldPosition      common.Vec3
	worldQuaternion    common.Quat
	worldQuaternionInv common.Quat
	worldScale         common.Vec3

	eye common.Vec3

	positionStart   common.Vec3
	quaternionStart common.Quat
	scaleStart      common.Vec3

	observers common.Observers[Event]

	pendingHost input.Host
	host        input.Host
	doc         *input.Document
	hostIDs     map[input.EventType]input.ListenerID
	documentIDs map[input.EventType]input.ListenerID
}

// TransformControls is a translate/rotate/scale gizmo for one attached
// scene-graph object.
//
// While nothing is attached the gizmo is hidden and pointer input is ignored.
// Pointer methods take normalized device coordinates; Connect wires them to a
// host element instead.
type TransformControls interface {
	// Camera returns the camera pointer rays are cast from.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Attach binds the gizmo to object and shows it.
	//
	// Parameters:
	//   - object: the object to manipulate; it should have a parent
	Attach(object game_object.GameObject)

	// Detach unbinds the current object, hides the gizmo and clears the axis.
	Detach()

	// Object returns the attached object, or nil.
	//
	// Returns:
	//   - game_object.GameObject: the attached object
	Object() game_object.GameObject

	// Visible reports whether the gizmo is drawn, which is whenever an object
	// is attached.
	//
	// Returns:
	//   - bool: true if visible
	Visible() bool

	Enabled() bool
	SetEnabled(enabled bool)
	Axis() Axis
	SetAxis(axis Axis)
	Mode() Mode
	SetMode(mode Mode)
	Space() Space
	SetSpace(space Space)
	Size() float64
	SetSize(size float64)
	TranslationSnap() float64
	SetTranslationSnap(snap float64)
	RotationSnap() float64
	SetRotationSnap(snap float64)
	ScaleSnap() float64
	SetScaleSnap(snap float64)
	ShowX() bool
	SetShowX(show bool)
	ShowY() bool
	SetShowY(show bool)
	ShowZ() bool
	SetShowZ(show bool)

	// Dragging reports whether a handle drag is in progress.
	//
	// Returns:
	//   - bool: true while dragging
	Dragging() bool

	// UpdateMatrixWorld refreshes the cached object and camera poses and
	// re-lays out the plane and gizmo. Call once per frame before drawing.
	UpdateMatrixWorld()

	// PointerHover picks the handle under p and makes it the active axis.
	//
	// Parameters:
	//   - p: the pointer in normalized device coordinates
	PointerHover(p Pointer)

	// PointerDown starts a drag on the active axis. Only the primary button
	// starts a drag.
	//
	// Parameters:
	//   - p: the pointer in normalized device coordinates
	PointerDown(p Pointer)

	// PointerMove applies the drag to the attached object. Only moves without
	// a button change (Button -1) are applied.
	//
	// Parameters:
	//   - p: the pointer in normalized device coordinates
	PointerMove(p Pointer)

	// PointerUp ends the drag and clears the active axis.
	//
	// Parameters:
	//   - p: the pointer in normalized device coordinates
	PointerUp(p Pointer)

	// Connect listens for pointer input on host and its document. A previous
	// host is disconnected first.
	//
	// Parameters:
	//   - host: the renderer's element
	Connect(host input.Host)

	// Dispose removes every listener Connect added. Safe to call repeatedly.
	Dispose()

	// View returns the state the plane and gizmo were last laid out with.
	//
	// Returns:
	//   - View: the per-frame view
	View() View

	// Gizmo returns the handle set.
	//
	// Returns:
	//   - *Gizmo: the gizmo
	Gizmo() *Gizmo

	// Plane returns the drag plane.
	//
	// Returns:
	//   - *Plane: the plane
	Plane() *Plane

	// Lines returns the visible handles as world-space line batches, or nil
	// when nothing is attached.
	//
	// Returns:
	//   - []game_object.Lines: the handle lines
	Lines() []game_object.Lines

	// On subscribes fn to the named event.
	//
	// Parameters:
	//   - event: an event name or PropertyChanged(name)
	//   - fn: the callback
	//
	// Returns:
	//   - common.ListenerID: handle for Off
	On(event string, fn func(Event)) common.ListenerID

	// Off removes a subscription made with On.
	//
	// Parameters:
	//   - event: the event name
	//   - id: the handle returned by On
	Off(event string, id common.ListenerID)
}

var _ TransformControls = &transformControlsImpl{}

// NewTransformControls creates a world-space translate gizmo of size 1 with
// every axis shown and no snapping.
//
// Parameters:
//   - cam: the camera pointer rays are cast from
//   - options: functional options
//
// Returns:
//   - TransformControls: the controls
func NewTransformControls(cam camera.Camera, options ...TransformControlsBuilderOption) TransformControls {
	c := &transformControlsImpl{
		camera:               cam,
		logger:               log.Default(),
		gizmo:                NewGizmo(),
		plane:                NewPlane(),
		enabled:              true,
		mode:                 ModeTranslate,
		space:                SpaceWorld,
		size:                 1,
		showX:                true,
		showY:                true,
		showZ:                true,
		cameraQuaternion:     mgl64.QuatIdent(),
		parentQuaternion:     mgl64.QuatIdent(),
		parentQuaternionInv:  mgl64.QuatIdent(),
		parentScale:          common.Splat(1),
		worldQuaternionStart: mgl64.QuatIdent(),
		worldScaleStart:      common.Splat(1),
		worldQuaternion:      mgl64.QuatIdent(),
		worldQuaternionInv:   mgl64.QuatIdent(),
		worldScale:           common.Splat(1),
		quaternionStart:      mgl64.QuatIdent(),
		scaleStart:           common.Splat(1),
		hostIDs:              make(map[input.EventType]input.ListenerID),
		documentIDs:          make(map[input.EventType]input.ListenerID),
	}

	for _, option := range options {
		option(c)
	}

	if c.pendingHost != nil {
		c.Connect(c.pendingHost)
		c.pendingHost = nil
	}
	c.UpdateMatrixWorld()
	return c
}

func (c *transformControlsImpl) Camera() camera.Camera          { return c.camera }
func (c *transformControlsImpl) Object() game_object.GameObject { return c.object }
func (c *transformControlsImpl) Visible() bool                  { return c.object != nil }
func (c *transformControlsImpl) Enabled() bool                  { return c.enabled }
func (c *transformControlsImpl) Axis() Axis                     { return c.axis }
func (c *transformControlsImpl) Mode() Mode                     { return c.mode }
func (c *transformControlsImpl) Space() Space                   { return c.space }
func (c *transformControlsImpl) Size() float64                  { return c.size }
func (c *transformControlsImpl) TranslationSnap() float64       { return c.translationSnap }
func (c *transformControlsImpl) RotationSnap() float64          { return c.rotationSnap }
func (c *transformControlsImpl) ScaleSnap() float64             { return c.scaleSnap }
func (c *transformControlsImpl) ShowX() bool                    { return c.showX }
func (c *transformControlsImpl) ShowY() bool                    { return c.showY }
func (c *transformControlsImpl) ShowZ() bool                    { return c.showZ }
func (c *transformControlsImpl) Dragging() bool                 { return c.dragging }
func (c *transformControlsImpl) Gizmo() *Gizmo                  { return c.gizmo }
func (c *transformControlsImpl) Plane() *Plane                  { return c.plane }

// setProperty stores v in *field and, when it differs, emits the property's
// changed event followed by change.
func setProperty[T comparable](c *transformControlsImpl, name string, field *T, v T) {
	if *field == v {
		return
	}
	*field = v
	c.observers.Emit(PropertyChanged(name), Event{Type: PropertyChanged(name), Value: v})
	c.emit(EventChange)
}

func (c *transformControlsImpl) SetEnabled(enabled bool) {
	setProperty(c, PropEnabled, &c.enabled, enabled)
}

func (c *transformControlsImpl) SetAxis(axis Axis) {
	setProperty(c, PropAxis, &c.axis, axis)
}

func (c *transformControlsImpl) SetMode(mode Mode) {
	if !mode.Valid() {
		c.logger.Printf("WARNING: TransformControls: unknown mode %q ignored", mode)
		return
	}
	setProperty(c, PropMode, &c.mode, mode)
}

func (c *transformControlsImpl) SetSpace(space Space) {
	if !space.Valid() {
		c.logger.Printf("WARNING: TransformControls: unknown space %q ignored", space)
		return
	}
	setProperty(c, PropSpace, &c.space, space)
}

func (c *transformControlsImpl) SetSize(size float64) {
	setProperty(c, PropSize, &c.size, size)
}

func (c *transformControlsImpl) SetTranslationSnap(snap float64) {
	setProperty(c, PropTranslationSnap, &c.translationSnap, snap)
}

func (c *transformControlsImpl) SetRotationSnap(snap float64) {
	setProperty(c, PropRotationSnap, &c.rotationSnap, snap)
}

func (c *transformControlsImpl) SetScaleSnap(snap float64) {
	setProperty(c, PropScaleSnap, &c.scaleSnap, snap)
}

func (c *transformControlsImpl) SetShowX(show bool) { setProperty(c, PropShowX, &c.showX, show) }
func (c *transformControlsImpl) SetShowY(show bool) { setProperty(c, PropShowY, &c.showY, show) }
func (c *transformControlsImpl) SetShowZ(show bool) { setProperty(c, PropShowZ, &c.showZ, show) }

func (c *transformControlsImpl) setDragging(dragging bool) {
	setProperty(c, PropDragging, &c.dragging, dragging)
}

func (c *transformControlsImpl) setObject(object game_object.GameObject) {
	setProperty(c, PropObject, &c.object, object)
}

func (c *transformControlsImpl) On(event string, fn func(Event)) common.ListenerID {
	return c.observers.On(event, fn)
}

func (c *transformControlsImpl) Off(event string, id common.ListenerID) {
	c.observers.Off(event, id)
}

func (c *transformControlsImpl) emit(event string) {
	c.observers.Emit(event, Event{Type: event})
}

func (c *transformControlsImpl) Attach(object game_object.GameObject) {
	c.setObject(object)
	c.UpdateMatrixWorld()
}

func (c *transformControlsImpl) Detach() {
	c.setObject(nil)
	c.SetAxis(AxisNone)
}

func (c *transformControlsImpl) View() View {
	return View{
		Mode:                 c.mode,
		Space:                c.space,
		Axis:                 c.axis,
		Size:                 c.size,
		Enabled:              c.enabled,
		Dragging:             c.dragging,
		ShowX:                c.showX,
		ShowY:                c.showY,
		ShowZ:                c.showZ,
		Camera:               c.camera,
		CameraPosition:       c.cameraPosition,
		CameraQuaternion:     c.cameraQuaternion,
		WorldPosition:        c.worldPosition,
		WorldQuaternion:      c.worldQuaternion,
		WorldPositionStart:   c.worldPositionStart,
		WorldQuaternionStart: c.worldQuaternionStart,
		Eye:                  c.eye,
		RotationAxis:         c.rotationAxis,
	}
}

func (c *transformControlsImpl) UpdateMatrixWorld() {
	if c.object != nil {
		if parent := c.object.Parent(); parent != nil {
			c.parentPosition, c.parentQuaternion, c.parentScale = common.Decompose(parent.MatrixWorld())
		} else {
			c.logger.Println("ERROR: TransformControls: The attached 3D object must be a part of the scene graph.")
			c.parentPosition, c.parentQuaternion, c.parentScale = common.Vec3{}, mgl64.QuatIdent(), common.Splat(1)
		}

		c.worldPosition, c.worldQuaternion, c.worldScale = common.Decompose(c.object.MatrixWorld())

		c.parentQuaternionInv = c.parentQuaternion.Conjugate()
		c.worldQuaternionInv = c.worldQuaternion.Conjugate()
	}

	c.cameraPosition, c.cameraQuaternion, _ = common.Decompose(c.camera.MatrixWorld())
	c.eye = c.cameraPosition.Sub(c.worldPosition).Normalize()

	v := c.View()
	c.plane.Update(v)
	c.gizmo.Update(v)
}

func (c *transformControlsImpl) Lines() []game_object.Lines {
	if c.object == nil {
		return nil
	}
	return c.gizmo.Lines()
}

func (c *transformControlsImpl) PointerHover(p Pointer) {
	if c.object == nil || c.dragging {
		return
	}

	c.UpdateMatrixWorld()
	axis, _ := c.gizmo.Pick(c.camera.Ray(p.X, p.Y))
	c.SetAxis(axis)
}

func (c *transformControlsImpl) PointerDown(p Pointer) {
	if c.object == nil || c.dragging || p.Button != input.ButtonLeft {
		return
	}
	if c.axis == AxisNone {
		return
	}

	c.UpdateMatrixWorld()
	if point, ok := c.plane.Intersect(c.camera.Ray(p.X, p.Y)); ok {
		space := effectiveSpace(c.mode, c.axis, c.space)

		if space == SpaceLocal && c.mode == ModeRotate && c.rotationSnap != 0 {
			rotation := c.object.Rotation()
			switch c.axis {
			case AxisX:
				rotation.X = snapTo(rotation.X, c.rotationSnap)
			case AxisY:
				rotation.Y = snapTo(rotation.Y, c.rotationSnap)
			case AxisZ:
				rotation.Z = snapTo(rotation.Z, c.rotationSnap)
			}
			c.object.SetRotation(rotation)
		}

		c.positionStart = c.object.Position()
		c.quaternionStart = c.object.Quaternion()
		c.scaleStart = c.object.Scale()

		c.worldPositionStart, c.worldQuaternionStart, c.worldScaleStart = common.Decompose(c.object.MatrixWorld())
		c.pointStart = point.Sub(c.worldPositionStart)
	}

	c.setDragging(true)
	c.observers.Emit(EventMouseDown, Event{Type: EventMouseDown, Mode: c.mode})
}

func (c *transformControlsImpl) PointerMove(p Pointer) {
	axis := c.axis
	object := c.object
	space := effectiveSpace(c.mode, axis, c.space)

	if object == nil || axis == AxisNone || !c.dragging || p.Button != input.ButtonNone {
		return
	}

	c.UpdateMatrixWorld()
	point, ok := c.plane.Intersect(c.camera.Ray(p.X, p.Y))
	if !ok {
		return
	}
	c.pointEnd = point.Sub(c.worldPositionStart)

	switch c.mode {
	case ModeTranslate:
		c.translate(object, axis, space)
	case ModeScale:
		c.scale(object, axis)
	case ModeRotate:
		c.rotate(object, axis, space)
	}

	c.emit(EventChange)
	c.emit(EventObjectChange)
}

// translate moves object by the axis-masked drag offset.
func (c *transformControlsImpl) translate(object game_object.GameObject, axis Axis, space Space) {
	offset := c.pointEnd.Sub(c.pointStart)
	local := space == SpaceLocal && axis != AxisXYZ

	if local {
		offset = c.worldQuaternionInv.Rotate(offset)
	}
	offset = maskAxes(offset, axis, 0)
	if local {
		offset = common.DivComponents(c.quaternionStart.Rotate(offset), c.parentScale)
	} else {
		offset = common.DivComponents(c.parentQuaternionInv.Rotate(offset), c.parentScale)
	}

	position := offset.Add(c.positionStart)

	if c.translationSnap != 0 {
		switch space {
		case SpaceLocal:
			position = c.quaternionStart.Conjugate().Rotate(position)
			position = snapAxes(position, axis, c.translationSnap)
			position = c.quaternionStart.Rotate(position)
		case SpaceWorld:
			var parentOrigin common.Vec3
			if parent := object.Parent(); parent != nil {
				parentOrigin = common.Position(parent.MatrixWorld())
			}
			position = snapAxes(position.Add(parentOrigin), axis, c.translationSnap).Sub(parentOrigin)
		}
	}

	object.SetPosition(position)
}

// scale multiplies the start scale by the drag ratio. The uniform handles
// use the ratio of lengths, negative when the pointer crossed the origin.
func (c *transformControlsImpl) scale(object game_object.GameObject, axis Axis) {
	var factor common.Vec3
	if axis.Has("XYZ") {
		d := c.pointEnd.Len() / c.pointStart.Len()
		if c.pointEnd.Dot(c.pointStart) < 0 {
			d = -d
		}
		factor = common.Splat(d)
	} else {
		start := c.worldQuaternionInv.Rotate(c.pointStart)
		end := c.worldQuaternionInv.Rotate(c.pointEnd)
		factor = maskAxes(common.DivComponents(end, start), axis, 1)
	}

	scale := common.MulComponents(c.scaleStart, factor)

	if c.scaleSnap != 0 {
		for i, name := range [3]string{"X", "Y", "Z"} {
			if !axis.Has(name) {
				continue
			}
			s := snapTo(scale[i], c.scaleSnap)
			if s == 0 {
				s = c.scaleSnap
			}
			scale[i] = s
		}
	}

	object.SetScale(scale)
}

// rotate turns object about the handle's axis by an angle derived from the
// drag. Local single-axis rotations compose after the start orientation;
// everything else composes before it in parent space.
func (c *transformControlsImpl) rotate(object game_object.GameObject, axis Axis, space Space) {
	offset := c.pointEnd.Sub(c.pointStart)
	speed := 20 / c.worldPosition.Sub(c.cameraPosition).Len()

	switch axis {
	case AxisE:
		c.rotationAxis = c.eye
		c.rotationAngle = common.AngleBetween(c.pointEnd, c.pointStart)

		startNorm := c.pointStart.Normalize()
		endNorm := c.pointEnd.Normalize()
		if endNorm.Cross(startNorm).Dot(c.eye) >= 0 {
			c.rotationAngle = -c.rotationAngle
		}
	case AxisXYZE:
		c.rotationAxis = offset.Cross(c.eye).Normalize()
		c.rotationAngle = offset.Dot(c.rotationAxis.Cross(c.eye)) * speed
	case AxisX, AxisY, AxisZ:
		unit := axisUnit(axis)
		c.rotationAxis = unit
		if space == SpaceLocal {
			unit = c.worldQuaternion.Rotate(unit)
		}
		c.rotationAngle = offset.Dot(unit.Cross(c.eye).Normalize()) * speed
	}

	if c.rotationSnap != 0 {
		c.rotationAngle = snapTo(c.rotationAngle, c.rotationSnap)
	}

	if space == SpaceLocal && axis != AxisE && axis != AxisXYZE {
		q := c.quaternionStart.Mul(mgl64.QuatRotate(c.rotationAngle, c.rotationAxis))
		object.SetQuaternion(q.Normalize())
		return
	}

	c.rotationAxis = c.parentQuaternionInv.Rotate(c.rotationAxis)
	q := mgl64.QuatRotate(c.rotationAngle, c.rotationAxis).Mul(c.quaternionStart)
	object.SetQuaternion(q.Normalize())
}

func (c *transformControlsImpl) PointerUp(p Pointer) {
	if p.Button != input.ButtonLeft {
		return
	}

	if c.dragging && c.axis != AxisNone {
		c.observers.Emit(EventMouseUp, Event{Type: EventMouseUp, Mode: c.mode})
	}

	c.setDragging(false)
	c.SetAxis(AxisNone)
}

func (c *transformControlsImpl) Connect(host input.Host) {
	c.Dispose()

	c.host = host
	c.doc = host.OwnerDocument()

	c.hostIDs[input.EventPointerDown] = host.AddEventListener(input.EventPointerDown, c.onPointerDown)
	c.hostIDs[input.EventPointerMove] = host.AddEventListener(input.EventPointerMove, c.onPointerHover)
	c.documentIDs[input.EventPointerUp] = c.doc.AddEventListener(input.EventPointerUp, c.onPointerUp)
}

func (c *transformControlsImpl) Dispose() {
	if c.host != nil {
		for t, id := range c.hostIDs {
			c.host.RemoveEventListener(t, id)
			delete(c.hostIDs, t)
		}
	}
	if c.doc != nil {
		for t, id := range c.documentIDs {
			c.doc.RemoveEventListener(t, id)
			delete(c.documentIDs, t)
		}
	}
	c.host = nil
	c.doc = nil
}

// pointer converts a host event to normalized device coordinates.
func (c *transformControlsImpl) pointer(e *input.PointerEvent) Pointer {
	rect := c.host.BoundingClientRect()
	return Pointer{
		X:      (e.ClientX-rect.Left)/rect.Width*2 - 1,
		Y:      -(e.ClientY-rect.Top)/rect.Height*2 + 1,
		Button: e.Button,
	}
}

func (c *transformControlsImpl) onPointerHover(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok || !c.enabled || c.host == nil {
		return
	}

	switch e.PointerType {
	case input.PointerMouse, input.PointerPen:
		c.PointerHover(c.pointer(e))
	}
}

func (c *transformControlsImpl) onPointerDown(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok || !c.enabled || c.host == nil {
		return
	}

	// touch-action none keeps touch drags from scrolling the page
	c.host.SetTouchAction("none")
	if _, ok := c.documentIDs[input.EventPointerMove]; !ok {
		c.documentIDs[input.EventPointerMove] = c.doc.AddEventListener(input.EventPointerMove, c.onPointerMove)
	}

	p := c.pointer(e)
	c.PointerHover(p)
	c.PointerDown(p)
}

func (c *transformControlsImpl) onPointerMove(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok || !c.enabled || c.host == nil {
		return
	}
	c.PointerMove(c.pointer(e))
}

func (c *transformControlsImpl) onPointerUp(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok || !c.enabled || c.host == nil {
		return
	}

	c.host.SetTouchAction("")
	if id, ok := c.documentIDs[input.EventPointerMove]; ok {
		c.doc.RemoveEventListener(input.EventPointerMove, id)
		delete(c.documentIDs, input.EventPointerMove)
	}

	c.PointerUp(c.pointer(e))
}

func axisUnit(axis Axis) common.Vec3 {
	switch axis {
	case AxisX:
		return common.UnitX
	case AxisY:
		return common.UnitY
	default:
		return common.UnitZ
	}
}

// maskAxes replaces the components of v whose axis is not in axis with fill.
func maskAxes(v common.Vec3, axis Axis, fill float64) common.Vec3 {
	for i, name := range [3]string{"X", "Y", "Z"} {
		if !axis.Has(name) {
			v[i] = fill
		}
	}
	return v
}

// snapAxes rounds the components of v on the axes in axis to multiples of
// step.
func snapAxes(v common.Vec3, axis Axis, step float64) common.Vec3 {
	for i, name := range [3]string{"X", "Y", "Z"} {
		if axis.Has(name) {
			v[i] = snapTo(v[i], step)
		}
	}
	return v
}

func snapTo(value, step float64) float64 {
	return math.Round(value/step) * step
}
