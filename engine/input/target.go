package input

import "sync"

// Listener is a callback registered for one event type.
type Listener func(Event)

// ListenerID identifies a registered listener. The zero ID is never issued, so
// it can stand for "not registered".
type ListenerID uint64

// EventTarget is anything listeners can be attached to.
type EventTarget interface {
	// AddEventListener registers l for events of type t.
	//
	// Parameters:
	//   - t: the event type to listen for
	//   - l: the callback
	//
	// Returns:
	//   - ListenerID: handle used to remove the listener
	AddEventListener(t EventType, l Listener) ListenerID

	// RemoveEventListener unregisters the listener with the given id. Unknown
	// ids are ignored.
	RemoveEventListener(t EventType, id ListenerID)

	// DispatchEvent delivers e to every listener registered for e.Type().
	DispatchEvent(e Event)

	// ListenerCount returns how many listeners are registered for t.
	ListenerCount(t EventType) int
}

type registeredListener struct {
	id ListenerID
	fn Listener
}

// Dispatcher is the EventTarget implementation shared by Element and Document.
type Dispatcher struct {
	mu        sync.Mutex
	nextID    ListenerID
	listeners map[EventType][]registeredListener
}

var _ EventTarget = &Dispatcher{}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]registeredListener)}
}

func (d *Dispatcher) AddEventListener(t EventType, l Listener) ListenerID {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listeners == nil {
		d.listeners = make(map[EventType][]registeredListener)
	}
	d.nextID++
	d.listeners[t] = append(d.listeners[t], registeredListener{id: d.nextID, fn: l})
	return d.nextID
}

func (d *Dispatcher) RemoveEventListener(t EventType, id ListenerID) {
	if id == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	list := d.listeners[t]
	for i, rl := range list {
		if rl.id == id {
			d.listeners[t] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// DispatchEvent calls the listeners registered at the time of dispatch. The
// lock is released before any listener runs so listeners may add or remove
// registrations.
func (d *Dispatcher) DispatchEvent(e Event) {
	d.mu.Lock()
	snapshot := append([]registeredListener(nil), d.listeners[e.Type()]...)
	d.mu.Unlock()

	for _, rl := range snapshot {
		rl.fn(e)
	}
}

func (d *Dispatcher) ListenerCount(t EventType) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[t])
}
