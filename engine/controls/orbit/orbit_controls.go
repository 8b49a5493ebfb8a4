package orbit

import (
	"log"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
)

type orbitControlsImpl struct {
	camera camera.Camera
	logger *log.Logger

	enabled bool
	state   State
	target  common.Vec3

	damping   *Damping
	spherical *SphericalState
	dolly     *Dolly
	pan       *Pan
	rotate    *Rotate
	pointers  *PointerState
	mouse     *MouseHandle
	touch     *TouchHandle
	keyboard  *KeyboardHandle
	saved     SaveState

	observers common.Observers[Event]

	pendingHost input.Host
	host        input.Host
	doc         *input.Document
	keyTarget   input.EventTarget
	elementIDs  map[input.EventType]input.ListenerID
	documentIDs map[input.EventType]input.ListenerID
	keyID       input.ListenerID
}

// OrbitControls orbits, dollies and pans a camera around a target point.
//
// Input events mutate pending deltas synchronously; Update drains them into
// the camera pose once per frame. All methods must be called from the thread
// that delivers input events and runs the frame loop.
type OrbitControls interface {
	// Camera returns the controlled camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Target returns the orbit pivot.
	//
	// Returns:
	//   - common.Vec3: the target point
	Target() common.Vec3

	// SetTarget moves the orbit pivot. Takes effect on the next Update.
	//
	// Parameters:
	//   - t: the new target
	SetTarget(t common.Vec3)

	// Enabled reports whether input is processed.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled turns input processing on or off.
	//
	// Parameters:
	//   - enabled: false to ignore input
	SetEnabled(enabled bool)

	// State returns the active gesture.
	//
	// Returns:
	//   - State: the gesture state
	State() State

	// Damping returns the shared inertia setting.
	//
	// Returns:
	//   - *Damping: the damping configuration
	Damping() *Damping

	// Spherical returns the spherical state holding distance and angle limits.
	//
	// Returns:
	//   - *SphericalState: the spherical state
	Spherical() *SphericalState

	// Dolly returns the zoom sub-controller.
	//
	// Returns:
	//   - *Dolly: the dolly
	Dolly() *Dolly

	// Pan returns the pan sub-controller.
	//
	// Returns:
	//   - *Pan: the pan
	Pan() *Pan

	// Rotate returns the rotation sub-controller.
	//
	// Returns:
	//   - *Rotate: the rotate
	Rotate() *Rotate

	// Mouse returns the mouse button mapping handle.
	//
	// Returns:
	//   - *MouseHandle: the mouse handle
	Mouse() *MouseHandle

	// Touch returns the finger mapping handle.
	//
	// Returns:
	//   - *TouchHandle: the touch handle
	Touch() *TouchHandle

	// Keyboard returns the arrow key handle.
	//
	// Returns:
	//   - *KeyboardHandle: the keyboard handle
	Keyboard() *KeyboardHandle

	// PolarAngle returns the current polar angle in radians.
	//
	// Returns:
	//   - float64: the polar angle
	PolarAngle() float64

	// AzimuthalAngle returns the current azimuth in radians.
	//
	// Returns:
	//   - float64: the azimuth
	AzimuthalAngle() float64

	// SetPolarAngle rotates to the given polar angle the short way and updates.
	//
	// Parameters:
	//   - value: the target angle in radians
	SetPolarAngle(value float64)

	// SetAzimuthalAngle rotates to the given azimuth the short way and updates.
	//
	// Parameters:
	//   - value: the target angle in radians
	SetAzimuthalAngle(value float64)

	// Distance returns the camera-to-target distance.
	//
	// Returns:
	//   - float64: the distance
	Distance() float64

	// Connect attaches pointer, wheel and context menu listeners to host.
	// Connecting again first disposes the previous host.
	//
	// Parameters:
	//   - host: the element receiving input
	Connect(host input.Host)

	// Dispose removes every listener registered by Connect and
	// ListenToKeyEvents, including document listeners of an active drag.
	// Dispose is idempotent.
	Dispose()

	// ListenToKeyEvents registers the arrow key listener on target.
	//
	// Parameters:
	//   - target: the event target receiving keydown events
	ListenToKeyEvents(target input.EventTarget)

	// Update drains pending deltas into the camera pose.
	//
	// Returns:
	//   - bool: true if the camera changed observably; a change event was emitted
	Update() bool

	// SaveState records the current pose as the Reset point.
	SaveState()

	// Reset restores the saved pose, emits change, updates and clears the gesture.
	Reset()

	// On subscribes to "change", "start" or "end".
	//
	// Parameters:
	//   - event: the event name
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

var _ OrbitControls = &orbitControlsImpl{}

// NewOrbitControls creates controls for cam orbiting the origin. The initial
// pose is saved for Reset and an update is forced so the camera looks at the
// target.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controls
//
// Returns:
//   - OrbitControls: the controls
func NewOrbitControls(cam camera.Camera, options ...OrbitControlsBuilderOption) OrbitControls {
	c := &orbitControlsImpl{
		camera:      cam,
		logger:      log.Default(),
		enabled:     true,
		state:       StateNone,
		damping:     &Damping{Enabled: false, Factor: 0.05},
		pointers:    NewPointerState(),
		elementIDs:  make(map[input.EventType]input.ListenerID),
		documentIDs: make(map[input.EventType]input.ListenerID),
	}
	c.spherical = NewSphericalState(cam.Up(), c.damping)
	c.dolly = NewDolly(cam, c.logger)
	c.pan = NewPan(cam, &c.target, c.damping, c.logger)
	c.rotate = NewRotate(c.spherical, c.elementHeightMapper)
	c.mouse = NewMouseHandle(c.dolly, c.rotate, c.pan)
	c.touch = NewTouchHandle(c.dolly, c.rotate, c.pan)
	c.keyboard = NewKeyboardHandle(c.pan)

	for _, option := range options {
		option(c)
	}

	c.saved.Capture(cam, c.target)
	if c.pendingHost != nil {
		c.Connect(c.pendingHost)
		c.pendingHost = nil
	}
	c.Update()
	return c
}

// elementHeightMapper maps pixels to radians using the connected host.
func (c *orbitControlsImpl) elementHeightMapper(x, y float64) (float64, float64) {
	if c.host == nil {
		return x, y
	}
	return ElementHeightMapper(c.host)(x, y)
}

func (c *orbitControlsImpl) Camera() camera.Camera      { return c.camera }
func (c *orbitControlsImpl) Target() common.Vec3        { return c.target }
func (c *orbitControlsImpl) SetTarget(t common.Vec3)    { c.target = t }
func (c *orbitControlsImpl) Enabled() bool              { return c.enabled }
func (c *orbitControlsImpl) SetEnabled(enabled bool)    { c.enabled = enabled }
func (c *orbitControlsImpl) State() State               { return c.state }
func (c *orbitControlsImpl) Damping() *Damping          { return c.damping }
func (c *orbitControlsImpl) Spherical() *SphericalState { return c.spherical }
func (c *orbitControlsImpl) Dolly() *Dolly              { return c.dolly }
func (c *orbitControlsImpl) Pan() *Pan                  { return c.pan }
func (c *orbitControlsImpl) Rotate() *Rotate            { return c.rotate }
func (c *orbitControlsImpl) Mouse() *MouseHandle        { return c.mouse }
func (c *orbitControlsImpl) Touch() *TouchHandle        { return c.touch }
func (c *orbitControlsImpl) Keyboard() *KeyboardHandle  { return c.keyboard }
func (c *orbitControlsImpl) PolarAngle() float64        { return c.spherical.PolarAngle() }
func (c *orbitControlsImpl) AzimuthalAngle() float64    { return c.spherical.AzimuthalAngle() }
func (c *orbitControlsImpl) Distance() float64          { return c.camera.Position().Sub(c.target).Len() }

func (c *orbitControlsImpl) SetPolarAngle(value float64) {
	c.spherical.SetPolarAngle(value)
	c.Update()
}

func (c *orbitControlsImpl) SetAzimuthalAngle(value float64) {
	c.spherical.SetAzimuthalAngle(value)
	c.Update()
}

func (c *orbitControlsImpl) On(event string, fn func(Event)) common.ListenerID {
	return c.observers.On(event, fn)
}

func (c *orbitControlsImpl) Off(event string, id common.ListenerID) {
	c.observers.Off(event, id)
}

func (c *orbitControlsImpl) emit(event string) {
	c.observers.Emit(event, Event{Type: event})
}

func (c *orbitControlsImpl) Update() bool {
	c.spherical.AlignSpherical(c.camera.Position().Sub(c.target))

	if c.state == StateNone {
		c.rotate.UpdateAutoRotate()
	}

	c.target = c.pan.Update(c.target)
	c.spherical.UpdateObjectTransform(c.camera, c.target, c.dolly.NextFrameScale())

	if c.dolly.CheckZoomed(c.camera) {
		c.emit(EventChange)
		return true
	}
	return false
}

func (c *orbitControlsImpl) SaveState() {
	c.saved.Capture(c.camera, c.target)
}

func (c *orbitControlsImpl) Reset() {
	c.target = c.saved.Restore(c.camera)
	c.emit(EventChange)
	c.Update()
	c.state = StateNone
}

func (c *orbitControlsImpl) Connect(host input.Host) {
	c.disconnect()
	if input.IsDocument(host) {
		c.logger.Println(`ERROR: OrbitControls: "document" should not be used as the target element. Please use the renderer's element instead.`)
	}

	c.host = host
	c.doc = host.OwnerDocument()
	c.pan.SetViewport(host)

	// touch-action none is required for pointer events to reach the controls on touch screens
	host.SetTouchAction("none")

	c.elementIDs[input.EventContextMenu] = host.AddEventListener(input.EventContextMenu, c.onContextMenu)
	c.elementIDs[input.EventPointerDown] = host.AddEventListener(input.EventPointerDown, c.onPointerDown)
	c.elementIDs[input.EventPointerCancel] = host.AddEventListener(input.EventPointerCancel, c.onPointerCancel)
	c.elementIDs[input.EventWheel] = host.AddEventListener(input.EventWheel, c.onMouseWheel)
}

func (c *orbitControlsImpl) Dispose() {
	c.disconnect()
	if c.keyTarget != nil {
		c.keyTarget.RemoveEventListener(input.EventKeyDown, c.keyID)
		c.keyTarget = nil
		c.keyID = 0
	}
}

// disconnect removes the element and document listeners and drops any
// gesture in progress.
func (c *orbitControlsImpl) disconnect() {
	if c.host != nil {
		for t, id := range c.elementIDs {
			c.host.RemoveEventListener(t, id)
			delete(c.elementIDs, t)
		}
	}
	c.removeDocumentListeners()
	c.pointers.Reset()
	c.state = StateNone
	c.host = nil
	c.doc = nil
}

func (c *orbitControlsImpl) ListenToKeyEvents(target input.EventTarget) {
	if c.keyTarget != nil {
		c.keyTarget.RemoveEventListener(input.EventKeyDown, c.keyID)
	}
	c.keyTarget = target
	c.keyID = target.AddEventListener(input.EventKeyDown, c.onKeyDown)
}

func (c *orbitControlsImpl) addDocumentListeners() {
	if c.doc == nil {
		return
	}
	c.documentIDs[input.EventPointerMove] = c.doc.AddEventListener(input.EventPointerMove, c.onPointerMove)
	c.documentIDs[input.EventPointerUp] = c.doc.AddEventListener(input.EventPointerUp, c.onPointerUp)
}

func (c *orbitControlsImpl) removeDocumentListeners() {
	if c.doc == nil {
		return
	}
	for t, id := range c.documentIDs {
		c.doc.RemoveEventListener(t, id)
		delete(c.documentIDs, t)
	}
}

func (c *orbitControlsImpl) onPointerDown(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok || !c.enabled {
		return
	}

	if c.pointers.Len() == 0 {
		c.addDocumentListeners()
	}
	c.pointers.AddPointer(e)

	if e.PointerType == input.PointerTouch {
		c.onTouchStart(e)
	} else {
		c.onMouseDown(e)
	}
}

func (c *orbitControlsImpl) onPointerMove(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok || !c.enabled {
		return
	}

	if e.PointerType == input.PointerTouch {
		c.onTouchMove(e)
	} else {
		c.onMouseMove(e)
	}
}

func (c *orbitControlsImpl) onPointerUp(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok {
		return
	}
	c.release(e)
}

// onPointerCancel releases the pointer the same way pointer-up does so the
// gesture never outlives its pointers.
func (c *orbitControlsImpl) onPointerCancel(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok {
		return
	}
	c.release(e)
}

func (c *orbitControlsImpl) release(e *input.PointerEvent) {
	c.pointers.RemovePointer(e.PointerID)
	if c.pointers.Len() == 0 {
		c.removeDocumentListeners()
	}
	c.emit(EventEnd)
	c.state = StateNone
}

func (c *orbitControlsImpl) onMouseDown(e *input.PointerEvent) {
	c.state = c.mouse.OnMouseDown(e)
	if c.state != StateNone {
		c.emit(EventStart)
	}
}

func (c *orbitControlsImpl) onMouseMove(e *input.PointerEvent) {
	if c.mouse.OnMouseMove(e, c.state) {
		c.Update()
	}
}

func (c *orbitControlsImpl) onTouchStart(e *input.PointerEvent) {
	c.pointers.TrackPointer(e)
	c.state = c.touch.OnTouchStart(c.pointers)
	if c.state != StateNone {
		c.emit(EventStart)
	}
}

func (c *orbitControlsImpl) onTouchMove(e *input.PointerEvent) {
	c.pointers.TrackPointer(e)
	if !c.state.isTouch() {
		c.state = StateNone
		return
	}
	if c.touch.OnTouchMove(e, c.pointers, c.state) {
		c.Update()
	}
}

func (c *orbitControlsImpl) onMouseWheel(ev input.Event) {
	e, ok := ev.(*input.WheelEvent)
	if !ok || !c.enabled || !c.dolly.EnableZoom {
		return
	}
	if c.state != StateNone && c.state != StateRotate {
		return
	}

	e.PreventDefault()

	c.emit(EventStart)
	c.dolly.HandleMouseWheel(e)
	c.Update()
	c.emit(EventEnd)
}

func (c *orbitControlsImpl) onKeyDown(ev input.Event) {
	e, ok := ev.(*input.KeyboardEvent)
	if !ok || !c.enabled || !c.pan.EnablePan {
		return
	}
	if c.keyboard.HandleKeyDown(e) {
		// keeps the host from scrolling on arrow keys
		e.PreventDefault()
		c.Update()
	}
}

func (c *orbitControlsImpl) onContextMenu(ev input.Event) {
	if !c.enabled {
		return
	}
	ev.PreventDefault()
}
