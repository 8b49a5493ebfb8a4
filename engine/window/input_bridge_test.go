package window

import (
	"testing"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	target string
	event  input.Event
}

func recordAll(b *inputBridge) *[]recorded {
	var log []recorded
	types := []input.EventType{
		input.EventPointerDown, input.EventPointerMove, input.EventPointerUp,
		input.EventPointerCancel, input.EventWheel, input.EventKeyDown, input.EventContextMenu,
	}
	for _, t := range types {
		b.element.AddEventListener(t, func(e input.Event) { log = append(log, recorded{"element", e}) })
		b.element.OwnerDocument().AddEventListener(t, func(e input.Event) { log = append(log, recorded{"document", e}) })
	}
	return &log
}

func TestBridgePointerBubbles(t *testing.T) {
	b := newInputBridge(800, 600)
	log := recordAll(b)

	b.cursorMoved(10, 20)
	b.buttonChanged(input.ButtonLeft, true, modifiers{shift: true})

	require.Len(t, *log, 4)
	assert.Equal(t, "element", (*log)[2].target)
	assert.Equal(t, "document", (*log)[3].target)

	down, ok := (*log)[2].event.(*input.PointerEvent)
	require.True(t, ok)
	assert.Equal(t, input.EventPointerDown, down.Type())
	assert.Equal(t, input.ButtonLeft, down.Button)
	assert.Equal(t, input.PointerMouse, down.PointerType)
	assert.Equal(t, 10.0, down.ClientX)
	assert.Equal(t, 20.0, down.ClientY)
	assert.True(t, down.ShiftKey)

	move := (*log)[0].event.(*input.PointerEvent)
	assert.Equal(t, input.ButtonNone, move.Button)
}

func TestBridgeChordedButtons(t *testing.T) {
	b := newInputBridge(800, 600)
	var kinds []input.EventType
	b.element.OwnerDocument().AddEventListener(input.EventPointerDown, func(e input.Event) { kinds = append(kinds, e.Type()) })
	b.element.OwnerDocument().AddEventListener(input.EventPointerUp, func(e input.Event) { kinds = append(kinds, e.Type()) })

	b.buttonChanged(input.ButtonLeft, true, modifiers{})
	b.buttonChanged(input.ButtonMiddle, true, modifiers{})
	b.buttonChanged(input.ButtonLeft, false, modifiers{})
	assert.Equal(t, []input.EventType{input.EventPointerDown}, kinds)

	b.buttonChanged(input.ButtonMiddle, false, modifiers{})
	assert.Equal(t, []input.EventType{input.EventPointerDown, input.EventPointerUp}, kinds)

	b.buttonChanged(input.ButtonMiddle, false, modifiers{})
	b.buttonChanged(-1, true, modifiers{})
	assert.Len(t, kinds, 2)
}

func TestBridgeRightButtonRaisesContextMenu(t *testing.T) {
	b := newInputBridge(800, 600)
	menus := 0
	b.element.AddEventListener(input.EventContextMenu, func(input.Event) { menus++ })

	b.buttonChanged(input.ButtonRight, true, modifiers{})
	assert.Equal(t, 1, menus)
}

func TestBridgeWheelDirection(t *testing.T) {
	b := newInputBridge(800, 600)
	var got *input.WheelEvent
	b.element.AddEventListener(input.EventWheel, func(e input.Event) { got = e.(*input.WheelEvent) })

	b.scrolled(0, 1)
	require.NotNil(t, got)
	assert.Less(t, got.DeltaY, 0.0, "scrolling up dollies in")

	b.scrolled(0, -2)
	assert.Equal(t, 2.0*wheelLineHeight, got.DeltaY)
}

func TestBridgeKeysGoToDocument(t *testing.T) {
	b := newInputBridge(800, 600)
	log := recordAll(b)

	b.keyPressed(common.KeyUp)
	b.keyPressed(65)

	require.Len(t, *log, 1)
	assert.Equal(t, "document", (*log)[0].target)
	assert.Equal(t, common.CodeArrowUp, (*log)[0].event.(*input.KeyboardEvent).Code)
}

func TestBridgeFocusLostCancelsPress(t *testing.T) {
	b := newInputBridge(800, 600)
	cancels := 0
	b.element.AddEventListener(input.EventPointerCancel, func(input.Event) { cancels++ })

	b.focusLost()
	assert.Zero(t, cancels)

	b.buttonChanged(input.ButtonLeft, true, modifiers{})
	b.focusLost()
	assert.Equal(t, 1, cancels)
	assert.Zero(t, b.held)
}

func TestBridgeResize(t *testing.T) {
	b := newInputBridge(800, 600)
	b.resized(1024, 768)

	assert.Equal(t, 1024.0, b.element.ClientWidth())
	assert.Equal(t, 768.0, b.element.OwnerDocument().ClientHeight())
}
