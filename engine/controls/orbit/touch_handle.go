package orbit

import (
	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
)

// TouchHandle turns finger counts into gesture states. Two-finger gestures
// act on the centroid and spread of the first two pointers.
type TouchHandle struct {
	Touches Touches

	dolly  *Dolly
	rotate *Rotate
	pan    *Pan
}

// NewTouchHandle creates a handle with the default mapping: one finger
// rotates, two fingers dolly and pan.
func NewTouchHandle(dolly *Dolly, rotate *Rotate, pan *Pan) *TouchHandle {
	return &TouchHandle{
		Touches: Touches{One: TouchRotate, Two: TouchDollyPan},
		dolly:   dolly,
		rotate:  rotate,
		pan:     pan,
	}
}

// OnTouchStart picks the gesture for the current pointer count. Only one and
// two fingers start a gesture.
//
// Parameters:
//   - pointers: the active pointers, already including the new one
//
// Returns:
//   - State: the proposed gesture state
func (h *TouchHandle) OnTouchStart(pointers *PointerState) State {
	switch pointers.Len() {
	case 1:
		switch h.Touches.One {
		case TouchRotate:
			if !h.rotate.EnableRotate {
				return StateNone
			}
			h.startRotate(pointers)
			return StateTouchRotate

		case TouchPan:
			if !h.pan.EnablePan {
				return StateNone
			}
			h.startPan(pointers)
			return StateTouchPan
		}

	case 2:
		switch h.Touches.Two {
		case TouchDollyPan:
			if !h.dolly.EnableZoom && !h.pan.EnablePan {
				return StateNone
			}
			h.startDolly(pointers)
			h.startPan(pointers)
			return StateTouchDollyPan

		case TouchDollyRotate:
			if !h.dolly.EnableZoom && !h.rotate.EnableRotate {
				return StateNone
			}
			h.startDolly(pointers)
			h.startRotate(pointers)
			return StateTouchDollyRotate
		}
	}
	return StateNone
}

// OnTouchMove applies a touch drag for the active state.
//
// Returns:
//   - bool: true when input was applied and the controls need an update
func (h *TouchHandle) OnTouchMove(e *input.PointerEvent, pointers *PointerState, state State) bool {
	switch state {
	case StateTouchRotate:
		if !h.rotate.EnableRotate {
			return false
		}
		h.moveRotate(e, pointers)
		return true

	case StateTouchPan:
		if !h.pan.EnablePan {
			return false
		}
		h.movePan(e, pointers)
		return true

	case StateTouchDollyPan:
		if !h.dolly.EnableZoom && !h.pan.EnablePan {
			return false
		}
		h.moveDolly(e, pointers)
		h.movePan(e, pointers)
		return true

	case StateTouchDollyRotate:
		if !h.dolly.EnableZoom && !h.rotate.EnableRotate {
			return false
		}
		h.moveDolly(e, pointers)
		h.moveRotate(e, pointers)
		return true
	}
	return false
}

func startPoint(pointers *PointerState) common.Vec2 {
	if pointers.Len() == 1 {
		return pointers.Position(0)
	}
	return pointers.Centroid()
}

// movePoint is the event position, or its midpoint with the other finger.
func movePoint(e *input.PointerEvent, pointers *PointerState) common.Vec2 {
	p := common.V2(e.PageX, e.PageY)
	if pointers.Len() == 1 {
		return p
	}
	other, ok := pointers.SecondPointerPosition(e)
	if !ok {
		return p
	}
	return p.Add(other).Mul(0.5)
}

func (h *TouchHandle) startRotate(pointers *PointerState) {
	s := startPoint(pointers)
	h.rotate.SetStart(s.Elem())
}

func (h *TouchHandle) startPan(pointers *PointerState) {
	s := startPoint(pointers)
	h.pan.SetStart(s.Elem())
}

func (h *TouchHandle) startDolly(pointers *PointerState) {
	h.dolly.StartDollyBy2Points(pointers.Position(0), pointers.Position(1))
}

func (h *TouchHandle) moveRotate(e *input.PointerEvent, pointers *PointerState) {
	p := movePoint(e, pointers)
	h.rotate.HandleMove(p.Elem())
}

func (h *TouchHandle) movePan(e *input.PointerEvent, pointers *PointerState) {
	p := movePoint(e, pointers)
	h.pan.HandleMove(p.Elem())
}

func (h *TouchHandle) moveDolly(e *input.PointerEvent, pointers *PointerState) {
	other, ok := pointers.SecondPointerPosition(e)
	if !ok {
		return
	}
	h.dolly.MoveDollyBy2Points(common.V2(e.PageX, e.PageY), other)
}
