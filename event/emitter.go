package event

import "strconv"

// Handler is a function invoked when an event fires.
type Handler func(args ...any)

// Listener represents a single active binding on an Emitter.
// It is the unbind token: cancelling a Listener removes exactly the
// binding that created it, never a coincidentally-equal one.
type Listener struct {
	id        string
	event     string
	fn        Handler
	once      bool
	cancelled bool
	owner     *Emitter
}

// ID returns the unique listener identifier.
func (l *Listener) ID() string { return l.id }

// Event returns the event name this listener is bound to.
func (l *Listener) Event() string { return l.event }

// Active reports whether the listener can still receive events.
func (l *Listener) Active() bool { return l != nil && !l.cancelled }

// Cancel permanently removes the binding. Cancelling twice is a no-op.
func (l *Listener) Cancel() {
	if l == nil || l.cancelled {
		return
	}
	l.cancelled = true
	if l.owner != nil {
		l.owner.remove(l)
	}
}

// Emitter is a named-event pub/sub object. The zero value is ready to use.
type Emitter struct {
	listeners map[string][]*Listener
	seq       int
}

// On binds fn to the named event and returns the unbind token.
func (e *Emitter) On(event string, fn Handler) *Listener {
	return e.bind(event, fn, false)
}

// Once binds fn to the named event for a single delivery.
func (e *Emitter) Once(event string, fn Handler) *Listener {
	return e.bind(event, fn, true)
}

func (e *Emitter) bind(event string, fn Handler, once bool) *Listener {
	if fn == nil {
		return nil
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*Listener)
	}
	e.seq++
	l := &Listener{
		id:    "lst-" + strconv.Itoa(e.seq),
		event: event,
		fn:    fn,
		once:  once,
		owner: e,
	}
	e.listeners[event] = append(e.listeners[event], l)
	return l
}

// Off removes every binding for the named event.
func (e *Emitter) Off(event string) {
	for _, l := range e.listeners[event] {
		l.cancelled = true
	}
	delete(e.listeners, event)
}

// OffAll removes every binding on the emitter.
func (e *Emitter) OffAll() {
	for event, ls := range e.listeners {
		for _, l := range ls {
			l.cancelled = true
		}
		delete(e.listeners, event)
	}
}

// Trigger fires the named event, delivering args to every bound listener.
// The listener list is snapshotted before delivery, so handlers may bind or
// cancel listeners (including themselves) without affecting this dispatch.
func (e *Emitter) Trigger(event string, args ...any) {
	ls := e.listeners[event]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]*Listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		if l.cancelled {
			continue
		}
		if l.once {
			l.Cancel()
		}
		l.fn(args...)
	}
}

// ListenerCount returns the number of active bindings for the named event.
func (e *Emitter) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// remove drops a cancelled listener from the bookkeeping.
func (e *Emitter) remove(l *Listener) {
	ls := e.listeners[l.event]
	for i, cur := range ls {
		if cur == l {
			e.listeners[l.event] = append(ls[:i], ls[i+1:]...)
			break
		}
	}
	if len(e.listeners[l.event]) == 0 {
		delete(e.listeners, l.event)
	}
}

// ListenerSet tracks bindings made by one object against other emitters,
// so they can all be released at once when the object is torn down.
type ListenerSet struct {
	items []*Listener
}

// ListenTo binds fn to event on src and records the binding in the set.
func (s *ListenerSet) ListenTo(src *Emitter, event string, fn Handler) *Listener {
	if src == nil {
		return nil
	}
	l := src.On(event, fn)
	if l != nil {
		s.items = append(s.items, l)
	}
	return l
}

// ListenToOnce binds fn for a single delivery and records the binding.
func (s *ListenerSet) ListenToOnce(src *Emitter, event string, fn Handler) *Listener {
	if src == nil {
		return nil
	}
	l := src.Once(event, fn)
	if l != nil {
		s.items = append(s.items, l)
	}
	return l
}

// StopListening cancels every binding recorded in the set.
func (s *ListenerSet) StopListening() {
	for _, l := range s.items {
		l.Cancel()
	}
	s.items = nil
}

// Count returns the number of still-active recorded bindings.
func (s *ListenerSet) Count() int {
	n := 0
	for _, l := range s.items {
		if l.Active() {
			n++
		}
	}
	return n
}
