package view

import "github.com/cornice-ui/cornice/dom"

// TriggerSpec declares a DOM-event-to-method-event mapping. By default the
// expanded handler cancels the DOM event's default action and stops its
// propagation before dispatching; either can be disabled per mapping.
type TriggerSpec struct {
	// Event is the method-event name dispatched when the trigger fires.
	Event string

	// PreventDefault cancels the DOM event's default action.
	PreventDefault bool

	// StopPropagation stops the DOM event from bubbling further.
	StopPropagation bool
}

// NewTriggerSpec returns a TriggerSpec for the event with both default
// actions enabled.
func NewTriggerSpec(eventName string) TriggerSpec {
	return TriggerSpec{Event: eventName, PreventDefault: true, StopPropagation: true}
}

// toTriggerSpec interprets a trigger descriptor value: a bare event name
// gets the defaults, a TriggerSpec is used as-is. Anything else is absent.
func toTriggerSpec(raw any) (TriggerSpec, bool) {
	switch t := raw.(type) {
	case string:
		if t == "" {
			return TriggerSpec{}, false
		}
		return NewTriggerSpec(t), true
	case TriggerSpec:
		if t.Event == "" {
			return TriggerSpec{}, false
		}
		return t, true
	default:
		return TriggerSpec{}, false
	}
}

// expandTrigger produces the delegated handler for a trigger spec: apply
// the spec's default-action control, then dispatch the method-event with
// the view and the DOM event as arguments.
func (v *View) expandTrigger(spec TriggerSpec) dom.EventHandler {
	return func(e *dom.Event) {
		if spec.PreventDefault {
			e.PreventDefault()
		}
		if spec.StopPropagation {
			e.StopPropagation()
		}
		v.TriggerMethod(spec.Event, v, e)
	}
}
