package orbit

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var elementEvents = []input.EventType{
	input.EventContextMenu,
	input.EventPointerDown,
	input.EventPointerCancel,
	input.EventWheel,
}

func newTestControls(t *testing.T, options ...OrbitControlsBuilderOption) (OrbitControls, *input.Element) {
	t.Helper()
	el := input.NewElement(nil, 500, 500)
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 5)))
	options = append([]OrbitControlsBuilderOption{WithElement(el)}, options...)
	return NewOrbitControls(cam, options...), el
}

func down(el *input.Element, id int, kind input.PointerType, button int, x, y float64) *input.PointerEvent {
	e := &input.PointerEvent{
		Kind: input.EventPointerDown, PointerID: id, PointerType: kind, Button: button,
		ClientX: x, ClientY: y, PageX: x, PageY: y,
	}
	el.DispatchEvent(e)
	return e
}

func move(el *input.Element, id int, kind input.PointerType, x, y float64) {
	el.OwnerDocument().DispatchEvent(&input.PointerEvent{
		Kind: input.EventPointerMove, PointerID: id, PointerType: kind,
		ClientX: x, ClientY: y, PageX: x, PageY: y,
	})
}

func up(el *input.Element, id int, kind input.PointerType) {
	el.OwnerDocument().DispatchEvent(&input.PointerEvent{Kind: input.EventPointerUp, PointerID: id, PointerType: kind})
}

func TestNewOrbitControlsLooksAtTarget(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(3, 0, 0)))
	c := NewOrbitControls(cam, WithTarget(common.V3(0, 0, 0)))

	forward := cam.Quaternion().Rotate(common.V3(0, 0, -1))
	assert.InDelta(t, 0, forward.Sub(common.V3(-1, 0, 0)).Len(), 1e-9)
	assert.Equal(t, StateNone, c.State())
	assert.InDelta(t, 3.0, c.Distance(), 1e-9)
	assert.InDelta(t, math.Pi/2, c.AzimuthalAngle(), 1e-9)
	assert.InDelta(t, math.Pi/2, c.PolarAngle(), 1e-9)
}

func TestConnectDisposeRestoresListenerBaseline(t *testing.T) {
	c, el := newTestControls(t)
	doc := el.OwnerDocument()

	assert.Equal(t, "none", el.TouchAction())
	for _, ev := range elementEvents {
		assert.Equal(t, 1, el.ListenerCount(ev), ev)
	}

	keys := input.NewDispatcher()
	c.ListenToKeyEvents(keys)
	assert.Equal(t, 1, keys.ListenerCount(input.EventKeyDown))

	down(el, 1, input.PointerMouse, input.ButtonLeft, 10, 10)
	assert.Equal(t, 1, doc.ListenerCount(input.EventPointerMove))
	assert.Equal(t, 1, doc.ListenerCount(input.EventPointerUp))

	c.Dispose()

	for _, ev := range elementEvents {
		assert.Equal(t, 0, el.ListenerCount(ev), ev)
	}
	assert.Equal(t, 0, doc.ListenerCount(input.EventPointerMove))
	assert.Equal(t, 0, doc.ListenerCount(input.EventPointerUp))
	assert.Equal(t, 0, keys.ListenerCount(input.EventKeyDown))
	assert.Equal(t, StateNone, c.State())

	c.Dispose()
	assert.Equal(t, 0, el.ListenerCount(input.EventPointerDown))
}

func TestReconnectMovesListeners(t *testing.T) {
	c, first := newTestControls(t)
	second := input.NewElement(nil, 200, 200)

	c.Connect(second)

	for _, ev := range elementEvents {
		assert.Equal(t, 0, first.ListenerCount(ev), ev)
		assert.Equal(t, 1, second.ListenerCount(ev), ev)
	}
}

func TestConnectToDocumentLogsError(t *testing.T) {
	var buf bytes.Buffer
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 5)))
	doc := input.NewDocument(100, 100)

	c := NewOrbitControls(cam, WithLogger(log.New(&buf, "", 0)), WithElement(doc))

	assert.Contains(t, buf.String(), "should not be used as the target element")
	assert.Equal(t, 1, doc.ListenerCount(input.EventPointerDown))
	c.Dispose()
	assert.Equal(t, 0, doc.ListenerCount(input.EventPointerDown))
}

func TestOneFingerRotate(t *testing.T) {
	c, el := newTestControls(t)

	down(el, 1, input.PointerTouch, input.ButtonLeft, 100, 100)
	require.Equal(t, StateTouchRotate, c.State())

	move(el, 1, input.PointerTouch, 200, 100)

	assert.InDelta(t, -2*math.Pi*100/500, c.AzimuthalAngle(), 1e-9)
	assert.InDelta(t, 5.0, c.Distance(), 1e-9)

	up(el, 1, input.PointerTouch)
	assert.Equal(t, StateNone, c.State())
	assert.Equal(t, 0, el.OwnerDocument().ListenerCount(input.EventPointerMove))
}

func TestTwoFingerPinch(t *testing.T) {
	c, el := newTestControls(t)

	down(el, 1, input.PointerTouch, input.ButtonLeft, 0, 0)
	down(el, 2, input.PointerTouch, input.ButtonLeft, 100, 0)
	require.Equal(t, StateTouchDollyPan, c.State())

	move(el, 2, input.PointerTouch, 200, 0)

	assert.InDelta(t, 2.5, c.Distance(), 1e-9)
	assert.Less(t, c.Target().X(), 0.0)
}

func TestLiftingAFingerEndsGesture(t *testing.T) {
	c, el := newTestControls(t)
	doc := el.OwnerDocument()

	down(el, 1, input.PointerTouch, input.ButtonLeft, 0, 0)
	down(el, 2, input.PointerTouch, input.ButtonLeft, 100, 0)

	up(el, 1, input.PointerTouch)
	assert.Equal(t, StateNone, c.State())
	assert.Equal(t, 1, doc.ListenerCount(input.EventPointerUp))

	move(el, 2, input.PointerTouch, 150, 0)
	assert.Equal(t, StateNone, c.State())

	up(el, 2, input.PointerTouch)
	assert.Equal(t, 0, doc.ListenerCount(input.EventPointerUp))
}

func TestPointerCancelReleases(t *testing.T) {
	c, el := newTestControls(t)

	down(el, 1, input.PointerMouse, input.ButtonLeft, 10, 10)
	require.Equal(t, StateRotate, c.State())

	el.DispatchEvent(&input.PointerEvent{Kind: input.EventPointerCancel, PointerID: 1})

	assert.Equal(t, StateNone, c.State())
	assert.Equal(t, 0, el.OwnerDocument().ListenerCount(input.EventPointerMove))
}

func TestMouseDragEmitsStartChangeEnd(t *testing.T) {
	c, el := newTestControls(t)
	var events []string
	for _, name := range []string{EventStart, EventChange, EventEnd} {
		c.On(name, func(e Event) { events = append(events, e.Type) })
	}

	down(el, 1, input.PointerMouse, input.ButtonLeft, 10, 10)
	move(el, 1, input.PointerMouse, 60, 10)
	up(el, 1, input.PointerMouse)

	assert.Equal(t, []string{EventStart, EventChange, EventEnd}, events)
}

func TestWheelDolly(t *testing.T) {
	c, el := newTestControls(t)

	e := &input.WheelEvent{DeltaY: -100}
	el.DispatchEvent(e)

	assert.True(t, e.DefaultPrevented())
	assert.InDelta(t, 4.75, c.Distance(), 1e-9)
}

func TestWheelIgnoredDuringPan(t *testing.T) {
	c, el := newTestControls(t)

	down(el, 1, input.PointerMouse, input.ButtonRight, 10, 10)
	require.Equal(t, StatePan, c.State())

	e := &input.WheelEvent{DeltaY: -100}
	el.DispatchEvent(e)

	assert.False(t, e.DefaultPrevented())
	assert.InDelta(t, 5.0, c.Distance(), 1e-9)
}

func TestWheelAllowedDuringRotate(t *testing.T) {
	c, el := newTestControls(t)

	down(el, 1, input.PointerMouse, input.ButtonLeft, 10, 10)
	el.DispatchEvent(&input.WheelEvent{DeltaY: 100})

	assert.InDelta(t, 5/0.95, c.Distance(), 1e-9)
}

func TestDistanceLimits(t *testing.T) {
	c, el := newTestControls(t, WithDistanceLimits(4, 6))

	for i := 0; i < 20; i++ {
		el.DispatchEvent(&input.WheelEvent{DeltaY: -1})
	}
	assert.InDelta(t, 4.0, c.Distance(), 1e-9)

	for i := 0; i < 40; i++ {
		el.DispatchEvent(&input.WheelEvent{DeltaY: 1})
	}
	assert.InDelta(t, 6.0, c.Distance(), 1e-9)
}

func TestOrthographicWheelZoom(t *testing.T) {
	el := input.NewElement(nil, 500, 500)
	cam := camera.NewCamera(camera.WithOrthographic(-1, 1, 1, -1), camera.WithPosition(common.V3(0, 0, 5)))
	c := NewOrbitControls(cam, WithElement(el), WithZoomLimits(0.5, 1.5))
	changes := 0
	c.On(EventChange, func(Event) { changes++ })

	el.DispatchEvent(&input.WheelEvent{DeltaY: -1})

	assert.InDelta(t, 1/0.95, cam.Zoom(), 1e-12)
	assert.InDelta(t, 5.0, c.Distance(), 1e-9)
	assert.Equal(t, 1, changes)
}

func TestUnknownCameraDisablesZoomAndPan(t *testing.T) {
	var buf bytes.Buffer
	el := input.NewElement(nil, 500, 500)
	cam := camera.NewCamera(camera.WithKind(camera.KindUnknown), camera.WithPosition(common.V3(0, 0, 5)))
	c := NewOrbitControls(cam, WithElement(el), WithLogger(log.New(&buf, "", 0)))

	el.DispatchEvent(&input.WheelEvent{DeltaY: -1})
	assert.False(t, c.Dolly().EnableZoom)
	assert.Contains(t, buf.String(), "WARNING: OrbitControls encountered an unknown camera type - dolly/zoom disabled.")

	down(el, 1, input.PointerMouse, input.ButtonRight, 10, 10)
	move(el, 1, input.PointerMouse, 20, 10)
	assert.False(t, c.Pan().EnablePan)
	assert.Contains(t, buf.String(), "WARNING: OrbitControls encountered an unknown camera type - pan disabled.")
}

func TestDisabledControlsIgnoreInput(t *testing.T) {
	c, el := newTestControls(t)
	c.SetEnabled(false)

	down(el, 1, input.PointerMouse, input.ButtonLeft, 10, 10)
	assert.Equal(t, StateNone, c.State())

	menu := &input.ContextMenuEvent{}
	el.DispatchEvent(menu)
	assert.False(t, menu.DefaultPrevented())

	c.SetEnabled(true)
	el.DispatchEvent(menu)
	assert.True(t, menu.DefaultPrevented())
}

func TestKeyboardPan(t *testing.T) {
	c, _ := newTestControls(t)
	keys := input.NewDispatcher()
	c.ListenToKeyEvents(keys)

	e := &input.KeyboardEvent{Code: common.CodeArrowUp}
	keys.DispatchEvent(e)

	assert.True(t, e.DefaultPrevented())
	assert.Greater(t, c.Target().Y(), 0.0)

	other := &input.KeyboardEvent{Code: "KeyQ"}
	keys.DispatchEvent(other)
	assert.False(t, other.DefaultPrevented())
}

func TestSetAzimuthalAngleWrapsShortWay(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.Spherical{Radius: 5, Phi: math.Pi / 2, Theta: deg(170)}.Vec3()))
	c := NewOrbitControls(cam)

	c.SetAzimuthalAngle(deg(-170))

	want := common.Spherical{Radius: 5, Phi: math.Pi / 2, Theta: deg(-170)}.Vec3()
	assert.InDelta(t, 0, cam.Position().Sub(want).Len(), 1e-9, "position %v", cam.Position())
	assert.InDelta(t, deg(190), c.AzimuthalAngle(), 1e-9)
}

func TestSetPolarAngleClampsToLimits(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 5)))
	c := NewOrbitControls(cam, WithPolarLimits(deg(45), deg(100)))

	c.SetPolarAngle(deg(10))
	assert.InDelta(t, deg(45), c.PolarAngle(), 1e-9)
}

func TestAutoRotateOnlyWhenIdle(t *testing.T) {
	c, el := newTestControls(t, WithAutoRotate(2))
	before := c.AzimuthalAngle()

	c.Update()
	step := c.AzimuthalAngle() - before
	assert.InDelta(t, -2*math.Pi/1800, step, 1e-9)

	down(el, 1, input.PointerMouse, input.ButtonLeft, 10, 10)
	before = c.AzimuthalAngle()
	c.Update()
	assert.InDelta(t, before, c.AzimuthalAngle(), 1e-12)
}

func TestDampingKeepsMovingAfterRelease(t *testing.T) {
	c, el := newTestControls(t, WithDamping(0.1))

	down(el, 1, input.PointerMouse, input.ButtonLeft, 0, 0)
	move(el, 1, input.PointerMouse, 50, 0)
	up(el, 1, input.PointerMouse)
	after := c.AzimuthalAngle()

	assert.True(t, c.Update())
	assert.Less(t, c.AzimuthalAngle(), after)

	for i := 0; i < 500; i++ {
		c.Update()
	}
	assert.False(t, c.Update())
	assert.InDelta(t, -2*math.Pi*50/500, c.AzimuthalAngle(), 1e-9)
}

func TestSaveStateAndReset(t *testing.T) {
	c, el := newTestControls(t)
	changes := 0
	c.On(EventChange, func(Event) { changes++ })

	el.DispatchEvent(&input.WheelEvent{DeltaY: -1})
	c.SetTarget(common.V3(1, 0, 0))
	c.Update()
	require.NotEqual(t, common.V3(0, 0, 5), c.Camera().Position())

	changes = 0
	c.Reset()

	assert.InDelta(t, 0, c.Camera().Position().Sub(common.V3(0, 0, 5)).Len(), 1e-9)
	assert.Equal(t, common.Vec3{}, c.Target())
	assert.GreaterOrEqual(t, changes, 1)
	assert.Equal(t, StateNone, c.State())

	c.SetTarget(common.V3(0, 1, 0))
	c.SaveState()
	c.SetTarget(common.Vec3{})
	c.Reset()
	assert.Equal(t, common.V3(0, 1, 0), c.Target())
}

func TestOffStopsNotifications(t *testing.T) {
	c, el := newTestControls(t)
	calls := 0
	id := c.On(EventChange, func(Event) { calls++ })

	el.DispatchEvent(&input.WheelEvent{DeltaY: -1})
	assert.Equal(t, 1, calls)

	c.Off(EventChange, id)
	el.DispatchEvent(&input.WheelEvent{DeltaY: -1})
	assert.Equal(t, 1, calls)
}

func TestMapControlsPreset(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 10, 10)))
	c := NewMapControls(cam)

	assert.False(t, c.Pan().ScreenSpacePanning)
	assert.Equal(t, MouseButtons{Left: MousePan, Middle: MouseDolly, Right: MouseRotate}, c.Mouse().Buttons)
	assert.Equal(t, Touches{One: TouchPan, Two: TouchDollyRotate}, c.Touch().Touches)

	overridden := NewMapControls(cam, WithScreenSpacePanning(true))
	assert.True(t, overridden.Pan().ScreenSpacePanning)
}

func TestMapControlsPanStaysOnGround(t *testing.T) {
	el := input.NewElement(nil, 500, 500)
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 10, 10)))
	c := NewMapControls(cam, WithElement(el))

	down(el, 1, input.PointerMouse, input.ButtonLeft, 100, 100)
	require.Equal(t, StatePan, c.State())
	move(el, 1, input.PointerMouse, 100, 200)

	assert.InDelta(t, 0.0, c.Target().Y(), 1e-9)
	assert.Less(t, c.Target().Z(), 0.0)
}
