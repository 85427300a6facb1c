package view

// TriggerMethod dispatches a method-event. In strict order, for a single
// call:
//
//  1. The view's own registered handler for the event (by event name or
//     derived handler-method name) runs first; its return value becomes
//     the call's return value.
//  2. Plain listeners bound via On receive the event.
//  3. Every attached behavior, in attachment order, gets the same
//     unprefixed event; behaviors never suppress delivery to each other
//     or to the parent.
//  4. The nearest ancestor view, if any, receives the event one hop up
//     under its own child-view prefix.
//
// Propagation is a pure broadcast: no handler can cancel the remainder of
// the cascade. An error raised (panic) inside a handler is not caught
// here; it aborts the remaining cascade steps and surfaces to the caller.
func (v *View) TriggerMethod(eventName string, args ...any) any {
	var result any
	if h, ok := v.handler(eventName); ok {
		result = h(args...)
	}
	v.Trigger(eventName, args...)
	for _, ab := range v.snapshotBehaviors() {
		if h, ok := ab.b.Handler(eventName); ok && h != nil {
			h(args...)
		}
	}
	if anc := v.AncestorView(); anc != nil {
		anc.ReceiveChildEvent(eventName, args...)
	}
	return result
}

// AncestorView walks the container back-reference chain upward and returns
// the nearest node that is a first-class view, skipping intermediate
// containers such as regions. It returns nil when the chain ends or is
// already partially torn down.
func (v *View) AncestorView() Ancestor {
	for node := v.parent; node != nil; node = node.ParentNode() {
		if a, ok := node.(Ancestor); ok {
			return a
		}
	}
	return nil
}

// ReceiveChildEvent delivers a descendant's method-event to this view:
// the childViewEvents handler for the event runs, a childViewTriggers
// entry re-triggers under its mapped name, and the event is re-dispatched
// under this view's own child-view prefix. The prefixed dispatch recurses
// through this view's own cascade, so each tree level applies exactly one
// prefix of its own.
func (v *View) ReceiveChildEvent(eventName string, args ...any) {
	if h, ok := v.childViewEvents[eventName]; ok && h != nil {
		h(args...)
	}
	if trig, ok := v.childViewTriggers[eventName]; ok && trig != "" {
		v.TriggerMethod(trig, args...)
	}
	if v.childViewEventPrefix != "" {
		v.TriggerMethod(v.childViewEventPrefix+":"+eventName, args...)
	}
}
