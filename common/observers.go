package common

// ListenerID identifies a subscription made through Observers.On. The zero ID
// is never issued.
type ListenerID uint64

type observer[P any] struct {
	id ListenerID
	fn func(P)
}

// Observers is a set of callback lists keyed by event name. Callbacks run
// synchronously in subscription order. The zero value is ready to use.
type Observers[P any] struct {
	nextID ListenerID
	lists  map[string][]observer[P]
}

// On subscribes fn to the named event.
//
// Parameters:
//   - event: the event name
//   - fn: the callback
//
// Returns:
//   - ListenerID: handle for Off
func (o *Observers[P]) On(event string, fn func(P)) ListenerID {
	if o.lists == nil {
		o.lists = make(map[string][]observer[P])
	}
	o.nextID++
	o.lists[event] = append(o.lists[event], observer[P]{id: o.nextID, fn: fn})
	return o.nextID
}

// Off removes a subscription. Unknown ids are ignored.
//
// Parameters:
//   - event: the event name the subscription was made for
//   - id: the handle returned by On
func (o *Observers[P]) Off(event string, id ListenerID) {
	list := o.lists[event]
	for i, ob := range list {
		if ob.id == id {
			o.lists[event] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Emit calls every subscriber of event with payload.
//
// Parameters:
//   - event: the event name
//   - payload: the value passed to each callback
func (o *Observers[P]) Emit(event string, payload P) {
	list := o.lists[event]
	if len(list) == 0 {
		return
	}
	snapshot := append([]observer[P](nil), list...)
	for _, ob := range snapshot {
		ob.fn(payload)
	}
}

// Count returns the number of subscribers of event.
func (o *Observers[P]) Count(event string) int {
	return len(o.lists[event])
}
