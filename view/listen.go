package view

import "github.com/cornice-ui/cornice/event"

// ListenTo binds fn to an event on another emitter and records the binding
// so Destroy (or StopListening) releases it.
func (v *View) ListenTo(src *event.Emitter, eventName string, fn event.Handler) *event.Listener {
	return v.listening.ListenTo(src, eventName, fn)
}

// ListenToOnce binds fn for a single delivery, recorded like ListenTo.
func (v *View) ListenToOnce(src *event.Emitter, eventName string, fn event.Handler) *event.Listener {
	return v.listening.ListenToOnce(src, eventName, fn)
}

// StopListening releases every outbound binding made via ListenTo.
func (v *View) StopListening() *View {
	v.listening.StopListening()
	return v
}
