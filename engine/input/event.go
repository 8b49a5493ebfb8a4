package input

// EventType names a kind of input event, using the DOM event names.
type EventType string

const (
	EventPointerDown   EventType = "pointerdown"
	EventPointerMove   EventType = "pointermove"
	EventPointerUp     EventType = "pointerup"
	EventPointerCancel EventType = "pointercancel"
	EventWheel         EventType = "wheel"
	EventKeyDown       EventType = "keydown"
	EventContextMenu   EventType = "contextmenu"
)

// PointerType identifies the device that produced a pointer event.
type PointerType string

const (
	PointerMouse PointerType = "mouse"
	PointerTouch PointerType = "touch"
	PointerPen   PointerType = "pen"
)

// Mouse button indices carried on PointerEvent.Button. ButtonNone is reported
// by move events, which do not change button state.
const (
	ButtonNone   = -1
	ButtonLeft   = 0
	ButtonMiddle = 1
	ButtonRight  = 2
)

// Event is implemented by every event delivered through an EventTarget.
type Event interface {
	// Type returns the event name used for listener lookup.
	Type() EventType

	// PreventDefault marks the event so hosts skip their default action.
	PreventDefault()

	// DefaultPrevented reports whether PreventDefault was called.
	DefaultPrevented() bool
}

type defaultPreventer struct {
	prevented bool
}

func (d *defaultPreventer) PreventDefault()        { d.prevented = true }
func (d *defaultPreventer) DefaultPrevented() bool { return d.prevented }

// PointerEvent is a unified mouse/touch/pen event.
type PointerEvent struct {
	defaultPreventer

	Kind        EventType
	PointerID   int
	PointerType PointerType
	Button      int

	// ClientX/ClientY are relative to the viewport; PageX/PageY to the page.
	ClientX, ClientY float64
	PageX, PageY     float64

	CtrlKey, MetaKey, ShiftKey, AltKey bool
}

// Type implements Event.
func (e *PointerEvent) Type() EventType { return e.Kind }

// WheelEvent is a mouse wheel or trackpad scroll.
type WheelEvent struct {
	defaultPreventer

	DeltaX, DeltaY   float64
	ClientX, ClientY float64
}

// Type implements Event.
func (e *WheelEvent) Type() EventType { return EventWheel }

// KeyboardEvent carries a DOM-style physical key code such as "ArrowUp".
type KeyboardEvent struct {
	defaultPreventer

	Code string
}

// Type implements Event.
func (e *KeyboardEvent) Type() EventType { return EventKeyDown }

// ContextMenuEvent is raised when the host would open a context menu.
type ContextMenuEvent struct {
	defaultPreventer
}

// Type implements Event.
func (e *ContextMenuEvent) Type() EventType { return EventContextMenu }
