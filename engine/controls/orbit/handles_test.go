package orbit

import (
	"log"
	"testing"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
	"github.com/stretchr/testify/assert"
)

type recordedRotation struct {
	left, up float64
}

func (r *recordedRotation) RotateLeft(angle float64) { r.left += angle }
func (r *recordedRotation) RotateUp(angle float64)   { r.up += angle }

type recordedPan struct {
	calls []common.Vec2
}

func (r *recordedPan) Pan(deltaX, deltaY float64) {
	r.calls = append(r.calls, common.V2(deltaX, deltaY))
}

func (r *recordedPan) Update(target common.Vec3) common.Vec3 { return target }

func TestRotateHandleMove(t *testing.T) {
	rec := &recordedRotation{}
	r := NewRotate(rec, nil)
	r.RotateSpeed = 2

	r.SetStart(1, 1)
	r.HandleMove(1.25, 0.5)

	assert.InDelta(t, 0.5, rec.left, 1e-12)
	assert.InDelta(t, -1.0, rec.up, 1e-12)
}

func TestRotateElementHeightMapper(t *testing.T) {
	rec := &recordedRotation{}
	r := NewRotate(rec, ElementHeightMapper(input.NewElement(nil, 1000, 500)))

	r.SetStart(0, 0)
	r.HandleMove(500, 250)

	assert.InDelta(t, 2*3.141592653589793, rec.left, 1e-12)
	assert.InDelta(t, 3.141592653589793, rec.up, 1e-12)
}

func TestElementHeightMapperZeroHeight(t *testing.T) {
	m := ElementHeightMapper(input.NewElement(nil, 0, 0))
	left, up := m(3, 4)
	assert.Equal(t, 3.0, left)
	assert.Equal(t, 4.0, up)
}

func TestAutoRotate(t *testing.T) {
	rec := &recordedRotation{}
	r := NewRotate(rec, nil)

	r.UpdateAutoRotate()
	assert.Equal(t, 0.0, rec.left)

	r.AutoRotate = true
	r.UpdateAutoRotate()
	assert.InDelta(t, 2*3.141592653589793/1800, rec.left, 1e-12)
}

func TestKeyboardHandle(t *testing.T) {
	rec := &recordedPan{}
	k := NewKeyboardHandle(rec)

	assert.True(t, k.HandleKeyDown(&input.KeyboardEvent{Code: common.CodeArrowUp}))
	assert.True(t, k.HandleKeyDown(&input.KeyboardEvent{Code: common.CodeArrowDown}))
	assert.True(t, k.HandleKeyDown(&input.KeyboardEvent{Code: common.CodeArrowLeft}))
	assert.True(t, k.HandleKeyDown(&input.KeyboardEvent{Code: common.CodeArrowRight}))
	assert.False(t, k.HandleKeyDown(&input.KeyboardEvent{Code: "KeyA"}))

	assert.Equal(t, []common.Vec2{
		common.V2(0, 7),
		common.V2(0, -7),
		common.V2(7, 0),
		common.V2(-7, 0),
	}, rec.calls)
}

func newTestHandles() (*MouseHandle, *TouchHandle) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 5)))
	target := common.Vec3{}
	dolly := NewDolly(cam, log.Default())
	pan := NewPan(cam, &target, &Damping{}, log.Default())
	rotate := NewRotate(&recordedRotation{}, nil)
	return NewMouseHandle(dolly, rotate, pan), NewTouchHandle(dolly, rotate, pan)
}

func TestMouseDownStates(t *testing.T) {
	m, _ := newTestHandles()

	cases := []struct {
		name string
		e    *input.PointerEvent
		want State
	}{
		{"left rotates", &input.PointerEvent{Button: input.ButtonLeft}, StateRotate},
		{"middle dollies", &input.PointerEvent{Button: input.ButtonMiddle}, StateDolly},
		{"right pans", &input.PointerEvent{Button: input.ButtonRight}, StatePan},
		{"shift left pans", &input.PointerEvent{Button: input.ButtonLeft, ShiftKey: true}, StatePan},
		{"ctrl left pans", &input.PointerEvent{Button: input.ButtonLeft, CtrlKey: true}, StatePan},
		{"meta right rotates", &input.PointerEvent{Button: input.ButtonRight, MetaKey: true}, StateRotate},
		{"alt is not a modifier", &input.PointerEvent{Button: input.ButtonLeft, AltKey: true}, StateRotate},
		{"unknown button", &input.PointerEvent{Button: 4}, StateNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.OnMouseDown(tc.e))
		})
	}
}

func TestMouseDownDisabledCapability(t *testing.T) {
	m, _ := newTestHandles()
	m.rotate.EnableRotate = false
	m.pan.EnablePan = false
	m.dolly.EnableZoom = false

	assert.Equal(t, StateNone, m.OnMouseDown(&input.PointerEvent{Button: input.ButtonLeft}))
	assert.Equal(t, StateNone, m.OnMouseDown(&input.PointerEvent{Button: input.ButtonMiddle}))
	assert.Equal(t, StateNone, m.OnMouseDown(&input.PointerEvent{Button: input.ButtonRight}))
}

func TestMouseUnmappedButton(t *testing.T) {
	m, _ := newTestHandles()
	m.Buttons.Middle = MouseNone
	assert.Equal(t, StateNone, m.OnMouseDown(&input.PointerEvent{Button: input.ButtonMiddle}))
}

func TestMouseMoveIgnoresOtherStates(t *testing.T) {
	m, _ := newTestHandles()
	assert.False(t, m.OnMouseMove(&input.PointerEvent{}, StateNone))
	assert.False(t, m.OnMouseMove(&input.PointerEvent{}, StateTouchRotate))
	assert.True(t, m.OnMouseMove(&input.PointerEvent{}, StateRotate))
}

func TestTouchStartByFingerCount(t *testing.T) {
	_, h := newTestHandles()
	pointers := NewPointerState()

	pointers.AddPointer(&input.PointerEvent{PointerID: 1})
	assert.Equal(t, StateTouchRotate, h.OnTouchStart(pointers))

	pointers.AddPointer(&input.PointerEvent{PointerID: 2, PageX: 10})
	assert.Equal(t, StateTouchDollyPan, h.OnTouchStart(pointers))

	pointers.AddPointer(&input.PointerEvent{PointerID: 3})
	assert.Equal(t, StateNone, h.OnTouchStart(pointers))
}

func TestTouchStartMapPreset(t *testing.T) {
	_, h := newTestHandles()
	h.Touches = Touches{One: TouchPan, Two: TouchDollyRotate}
	pointers := NewPointerState()

	pointers.AddPointer(&input.PointerEvent{PointerID: 1})
	assert.Equal(t, StateTouchPan, h.OnTouchStart(pointers))

	pointers.AddPointer(&input.PointerEvent{PointerID: 2})
	assert.Equal(t, StateTouchDollyRotate, h.OnTouchStart(pointers))
}

func TestPointerState(t *testing.T) {
	p := NewPointerState()
	p.AddPointer(&input.PointerEvent{PointerID: 4, PageX: 0, PageY: 0})
	p.AddPointer(&input.PointerEvent{PointerID: 9, PageX: 10, PageY: 20})
	p.AddPointer(&input.PointerEvent{PointerID: 4, PageX: 99, PageY: 99})

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, common.V2(5, 10), p.Centroid())

	other, ok := p.SecondPointerPosition(&input.PointerEvent{PointerID: 9})
	assert.True(t, ok)
	assert.Equal(t, common.V2(0, 0), other)

	p.TrackPointer(&input.PointerEvent{PointerID: 4, PageX: 2, PageY: 2})
	other, ok = p.SecondPointerPosition(&input.PointerEvent{PointerID: 9})
	assert.True(t, ok)
	assert.Equal(t, common.V2(2, 2), other)

	p.RemovePointer(4)
	assert.Equal(t, 1, p.Len())
	_, ok = p.SecondPointerPosition(&input.PointerEvent{PointerID: 9})
	assert.False(t, ok)

	p.Reset()
	assert.Equal(t, 0, p.Len())
}
