package dom

// Event is a DOM event traveling through the element tree. Dispatch is
// bubble-phase only: the event visits the target first, then each ancestor
// in turn until the root or until propagation is stopped.
type Event struct {
	typ           string
	target        *Element
	currentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// NewEvent creates an event of the given type. The target is assigned by
// Dispatch.
func NewEvent(typ string) *Event {
	return &Event{typ: typ}
}

// Type returns the event type, e.g. "click".
func (e *Event) Type() string { return e.typ }

// Target returns the element the event was dispatched on.
func (e *Event) Target() *Element { return e.target }

// CurrentTarget returns the element whose handler is currently running:
// the matched descendant for a selector delegation, or the delegation root
// for a selectorless one.
func (e *Event) CurrentTarget() *Element { return e.currentTarget }

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops the event from bubbling past the element currently
// being visited. Handlers already scheduled on that element still run.
func (e *Event) StopPropagation() { e.stopped = true }

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool { return e.stopped }

// Dispatch fires an event of the given type on the element and bubbles it
// toward the root, invoking matching delegated handlers along the way.
// It returns the event so callers can inspect its final state.
func (el *Element) Dispatch(typ string) *Event {
	return el.DispatchEvent(NewEvent(typ))
}

// DispatchEvent bubbles a prepared event from el toward the root.
func (el *Element) DispatchEvent(e *Event) *Event {
	e.target = el
	for cur := el; cur != nil; cur = cur.parent {
		cur.deliver(e)
		if e.stopped {
			break
		}
	}
	return e
}

// deliver runs the delegated handlers installed on root that match the
// bubbling event. The entry list is snapshotted so handlers may redelegate
// or undelegate without affecting this delivery.
func (root *Element) deliver(e *Event) {
	if len(root.delegation) == 0 {
		return
	}
	entries := make([]delegatedEntry, len(root.delegation))
	copy(entries, root.delegation)
	for _, entry := range entries {
		if entry.typ != e.typ {
			continue
		}
		if entry.hasSelector {
			match := root.matchOnPath(entry.selector, e.target)
			if match == nil {
				continue
			}
			e.currentTarget = match
		} else {
			e.currentTarget = root
		}
		entry.handler(e)
	}
}

// matchOnPath returns the first element from target up to (but excluding)
// root that matches the selector, or nil.
func (root *Element) matchOnPath(sel Selector, target *Element) *Element {
	for cur := target; cur != nil && cur != root; cur = cur.parent {
		if sel.Matches(cur) {
			return cur
		}
	}
	return nil
}
