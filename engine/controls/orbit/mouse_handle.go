package orbit

import "github.com/Carmen-Shannon/vrm-viewer/engine/input"

// MouseHandle turns mouse button presses into gesture states and routes drags
// to the matching sub-controller.
type MouseHandle struct {
	Buttons MouseButtons

	dolly  *Dolly
	rotate *Rotate
	pan    *Pan
}

// NewMouseHandle creates a handle with the default mapping: left rotates,
// middle dollies, right pans.
func NewMouseHandle(dolly *Dolly, rotate *Rotate, pan *Pan) *MouseHandle {
	return &MouseHandle{
		Buttons: MouseButtons{Left: MouseRotate, Middle: MouseDolly, Right: MousePan},
		dolly:   dolly,
		rotate:  rotate,
		pan:     pan,
	}
}

func (h *MouseHandle) action(button int) MouseAction {
	switch button {
	case input.ButtonLeft:
		return h.Buttons.Left
	case input.ButtonMiddle:
		return h.Buttons.Middle
	case input.ButtonRight:
		return h.Buttons.Right
	}
	return MouseNone
}

// OnMouseDown picks the gesture for a button press and records its start
// position. A rotate-mapped button with ctrl, meta or shift held pans, and a
// pan-mapped button with a modifier rotates. Disabled capabilities yield
// StateNone.
//
// Parameters:
//   - e: the pointer-down event
//
// Returns:
//   - State: the proposed gesture state
func (h *MouseHandle) OnMouseDown(e *input.PointerEvent) State {
	modifier := e.CtrlKey || e.MetaKey || e.ShiftKey

	switch h.action(e.Button) {
	case MouseDolly:
		if !h.dolly.EnableZoom {
			return StateNone
		}
		h.dolly.SetStart(e.ClientX, e.ClientY)
		return StateDolly

	case MouseRotate:
		if modifier {
			return h.startPan(e)
		}
		return h.startRotate(e)

	case MousePan:
		if modifier {
			return h.startRotate(e)
		}
		return h.startPan(e)
	}
	return StateNone
}

func (h *MouseHandle) startRotate(e *input.PointerEvent) State {
	if !h.rotate.EnableRotate {
		return StateNone
	}
	h.rotate.SetStart(e.ClientX, e.ClientY)
	return StateRotate
}

func (h *MouseHandle) startPan(e *input.PointerEvent) State {
	if !h.pan.EnablePan {
		return StateNone
	}
	h.pan.SetStart(e.ClientX, e.ClientY)
	return StatePan
}

// OnMouseMove applies a drag for the active state.
//
// Returns:
//   - bool: true when input was applied and the controls need an update
func (h *MouseHandle) OnMouseMove(e *input.PointerEvent, state State) bool {
	switch state {
	case StateRotate:
		if !h.rotate.EnableRotate {
			return false
		}
		h.rotate.HandleMove(e.ClientX, e.ClientY)
		return true

	case StateDolly:
		if !h.dolly.EnableZoom {
			return false
		}
		h.dolly.HandleMove(e.ClientX, e.ClientY)
		return true

	case StatePan:
		if !h.pan.EnablePan {
			return false
		}
		h.pan.HandleMove(e.ClientX, e.ClientY)
		return true
	}
	return false
}
