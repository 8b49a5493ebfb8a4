package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherAddRemove(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	id := d.AddEventListener(EventWheel, func(Event) { calls++ })
	assert.NotZero(t, id)
	assert.Equal(t, 1, d.ListenerCount(EventWheel))

	d.DispatchEvent(&WheelEvent{DeltaY: 1})
	assert.Equal(t, 1, calls)

	d.RemoveEventListener(EventWheel, id)
	d.RemoveEventListener(EventWheel, id)
	d.RemoveEventListener(EventWheel, 0)
	assert.Equal(t, 0, d.ListenerCount(EventWheel))

	d.DispatchEvent(&WheelEvent{DeltaY: 1})
	assert.Equal(t, 1, calls)
}

func TestDispatcherListenerMayRegisterDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	inner := 0
	d.AddEventListener(EventPointerDown, func(Event) {
		d.AddEventListener(EventPointerDown, func(Event) { inner++ })
	})

	d.DispatchEvent(&PointerEvent{Kind: EventPointerDown})
	assert.Equal(t, 0, inner, "listeners added during dispatch run on the next event")
	assert.Equal(t, 2, d.ListenerCount(EventPointerDown))
}

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	d.AddEventListener(EventKeyDown, func(e Event) { got = append(got, e.Type()) })
	d.AddEventListener(EventContextMenu, func(e Event) {
		e.PreventDefault()
		got = append(got, e.Type())
	})

	ev := &ContextMenuEvent{}
	d.DispatchEvent(&KeyboardEvent{Code: "ArrowUp"})
	d.DispatchEvent(ev)

	assert.Equal(t, []EventType{EventKeyDown, EventContextMenu}, got)
	assert.True(t, ev.DefaultPrevented())
}

func TestElementHost(t *testing.T) {
	el := NewElement(nil, 800, 600)
	assert.NotNil(t, el.OwnerDocument())
	assert.False(t, IsDocument(el))
	assert.True(t, IsDocument(el.OwnerDocument()))
	assert.Equal(t, 800.0, el.ClientWidth())
	assert.Equal(t, 600.0, el.ClientHeight())

	el.SetBoundingClientRect(Rect{Left: 10, Top: 20, Width: 100, Height: 50})
	assert.Equal(t, 100.0, el.ClientWidth())
	assert.Equal(t, Rect{Left: 10, Top: 20, Width: 100, Height: 50}, el.BoundingClientRect())

	el.SetTouchAction("none")
	assert.Equal(t, "none", el.TouchAction())
}
