package window

import (
	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
)

const (
	// mousePointerID is the pointer id reported for the system mouse.
	mousePointerID = 1

	// wheelLineHeight converts one scroll notch to a DOM pixel delta.
	wheelLineHeight = 100
)

// modifiers is the modifier key state carried on pointer events.
type modifiers struct {
	ctrl, shift, alt, meta bool
}

// inputBridge translates native window callbacks into DOM-style events on an
// element and its document. Pointer events go to the element first and then
// bubble to the document; key events go to the document only.
type inputBridge struct {
	element *input.Element

	x, y float64
	held int
	mods modifiers
}

// newInputBridge creates a bridge whose element covers a viewport of the
// given size in screen coordinates.
func newInputBridge(width, height float64) *inputBridge {
	doc := input.NewDocument(width, height)
	return &inputBridge{element: input.NewElement(doc, width, height)}
}

func (b *inputBridge) dispatch(e input.Event) {
	b.element.DispatchEvent(e)
	b.element.OwnerDocument().DispatchEvent(e)
}

func (b *inputBridge) pointer(kind input.EventType, button int) *input.PointerEvent {
	return &input.PointerEvent{
		Kind:        kind,
		PointerID:   mousePointerID,
		PointerType: input.PointerMouse,
		Button:      button,
		ClientX:     b.x,
		ClientY:     b.y,
		PageX:       b.x,
		PageY:       b.y,
		CtrlKey:     b.mods.ctrl,
		MetaKey:     b.mods.meta,
		ShiftKey:    b.mods.shift,
		AltKey:      b.mods.alt,
	}
}

// cursorMoved records the cursor position and dispatches pointermove.
func (b *inputBridge) cursorMoved(x, y float64) {
	b.x, b.y = x, y
	b.dispatch(b.pointer(input.EventPointerMove, input.ButtonNone))
}

// buttonChanged dispatches pointerdown for the first pressed button and
// pointerup once the last one is released. Chorded presses in between only
// update the held set.
//
// Parameters:
//   - button: the DOM button index
//   - pressed: true on press
//   - mods: the modifier keys held at the time
func (b *inputBridge) buttonChanged(button int, pressed bool, mods modifiers) {
	if button < 0 {
		return
	}
	b.mods = mods
	bit := 1 << button

	if pressed {
		first := b.held == 0
		b.held |= bit
		if !first {
			return
		}
		b.dispatch(b.pointer(input.EventPointerDown, button))
		if button == input.ButtonRight {
			b.element.DispatchEvent(&input.ContextMenuEvent{})
		}
		return
	}

	if b.held&bit == 0 {
		return
	}
	b.held &^= bit
	if b.held != 0 {
		return
	}
	b.dispatch(b.pointer(input.EventPointerUp, button))
}

// scrolled dispatches a wheel event. Native offsets are positive for scroll
// up, DOM deltas are positive for scroll down.
func (b *inputBridge) scrolled(xoff, yoff float64) {
	b.dispatch(&input.WheelEvent{
		DeltaX:  -xoff * wheelLineHeight,
		DeltaY:  -yoff * wheelLineHeight,
		ClientX: b.x,
		ClientY: b.y,
	})
}

// keyPressed dispatches keydown for keys that have a DOM code name.
func (b *inputBridge) keyPressed(key uint32) {
	code := common.KeyCodeName(key)
	if code == "" {
		return
	}
	b.element.OwnerDocument().DispatchEvent(&input.KeyboardEvent{Code: code})
}

// focusLost cancels a press the window will never see released.
func (b *inputBridge) focusLost() {
	if b.held == 0 {
		return
	}
	b.held = 0
	b.dispatch(b.pointer(input.EventPointerCancel, input.ButtonNone))
}

// resized keeps the element and document in step with the window size.
func (b *inputBridge) resized(width, height float64) {
	b.element.SetSize(width, height)
	b.element.OwnerDocument().SetSize(width, height)
}
