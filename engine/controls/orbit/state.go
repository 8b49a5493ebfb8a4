package orbit

// State is the active gesture.
type State int

const (
	StateNone             State = -1
	StateRotate           State = 0
	StateDolly            State = 1
	StatePan              State = 2
	StateTouchRotate      State = 3
	StateTouchPan         State = 4
	StateTouchDollyPan    State = 5
	StateTouchDollyRotate State = 6
)

var stateNames = map[State]string{
	StateNone:             "none",
	StateRotate:           "rotate",
	StateDolly:            "dolly",
	StatePan:              "pan",
	StateTouchRotate:      "touch_rotate",
	StateTouchPan:         "touch_pan",
	StateTouchDollyPan:    "touch_dolly_pan",
	StateTouchDollyRotate: "touch_dolly_rotate",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// isTouch reports whether s is one of the touch gestures.
func (s State) isTouch() bool {
	return s >= StateTouchRotate && s <= StateTouchDollyRotate
}

// MouseAction is what a mouse button drag does.
type MouseAction int

const (
	MouseRotate MouseAction = iota
	MouseDolly
	MousePan
	// MouseNone leaves a button unmapped.
	MouseNone MouseAction = -1
)

// MouseButtons maps the three mouse buttons to actions.
type MouseButtons struct {
	Left, Middle, Right MouseAction
}

// TouchAction is what a one- or two-finger gesture does.
type TouchAction int

const (
	TouchRotate TouchAction = iota
	TouchPan
	TouchDollyPan
	TouchDollyRotate
)

// Touches maps finger counts to actions.
type Touches struct {
	One, Two TouchAction
}

// Keys names the key codes that pan the view.
type Keys struct {
	Left, Up, Right, Bottom string
}

// Event names emitted by OrbitControls.
const (
	EventChange = "change"
	EventStart  = "start"
	EventEnd    = "end"
)

// Event is delivered to OrbitControls subscribers.
type Event struct {
	Type string
}
