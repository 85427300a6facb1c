package view

import (
	"github.com/cornice-ui/cornice/dom"
	"github.com/cornice-ui/cornice/event"
)

// DelegateEvents composes the view's four event sources and hands the
// merged map to the DOM-binding primitive, replacing any prior delegation
// for the root element. It is called after each render and whenever an
// explicit descriptor source is supplied to rebind a custom set.
//
// Merge precedence, later sources winning per key: behavior events, view
// events, behavior triggers, view triggers.
//
// On a destroyed view, or one without a root element, delegation is a
// silent no-op.
func (v *View) DelegateEvents(explicit ...any) *View {
	if v.destroyed || v.el == nil {
		return v
	}

	// The root may have changed since the previous render; re-resolve the
	// UI proxies for the view and its behaviors before normalizing.
	v.BindUIElements()

	var viewEvents event.DescriptorMap
	if len(explicit) > 0 && explicit[0] != nil {
		viewEvents = event.Normalize(explicit[0], v.ui.selectors())
	} else {
		viewEvents = event.Normalize(v.events, v.ui.selectors())
		// Persist the normalized form so re-delegation is consistent.
		v.events = viewEvents
	}

	merged := make(dom.DescriptorMap)
	for _, ab := range v.snapshotBehaviors() {
		b := ab.b
		for key, raw := range event.Normalize(b.Events(), ab.ui.selectors()) {
			if h := v.toDOMHandler(raw, b.Handler); h != nil {
				merged[key] = h
			}
		}
	}
	for key, raw := range viewEvents {
		if h := v.toDOMHandler(raw, v.handler); h != nil {
			merged[key] = h
		}
	}
	for _, ab := range v.snapshotBehaviors() {
		for key, raw := range event.Normalize(ab.b.Triggers(), ab.ui.selectors()) {
			if spec, ok := toTriggerSpec(raw); ok {
				merged[key] = v.expandTrigger(spec)
			}
		}
	}
	for key, raw := range event.Normalize(v.triggers, v.ui.selectors()) {
		if spec, ok := toTriggerSpec(raw); ok {
			merged[key] = v.expandTrigger(spec)
		}
	}

	_ = v.binder.Delegate(v.el, merged)
	return v
}

// UndelegateEvents removes every delegated DOM binding for the root.
func (v *View) UndelegateEvents() *View {
	if v.el != nil {
		_ = v.binder.Undelegate(v.el)
	}
	return v
}

// GetEvents returns the view's own normalized event descriptor map.
func (v *View) GetEvents() event.DescriptorMap {
	return event.Normalize(v.events, v.ui.selectors())
}

// GetTriggers returns the view's own normalized trigger descriptor map.
func (v *View) GetTriggers() event.DescriptorMap {
	return event.Normalize(v.triggers, v.ui.selectors())
}

// toDOMHandler converts an event descriptor value into a delegated DOM
// handler. Handler-method names resolve late, at dispatch time, through
// the supplied resolver; an unresolvable name is a silent no-op, matching
// the tolerance for absent configuration. Unsupported value shapes are
// treated as absent.
func (v *View) toDOMHandler(raw any, resolve func(string) (Handler, bool)) dom.EventHandler {
	switch h := raw.(type) {
	case string:
		if h == "" {
			return nil
		}
		return func(e *dom.Event) {
			if fn, ok := resolve(h); ok {
				fn(v, e)
			}
		}
	case Handler:
		return func(e *dom.Event) { h(v, e) }
	case func(args ...any) any:
		return func(e *dom.Event) { h(v, e) }
	case func(...any):
		return func(e *dom.Event) { h(v, e) }
	case dom.EventHandler:
		return h
	case func(*dom.Event):
		return h
	default:
		return nil
	}
}
