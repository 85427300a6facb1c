package view

import "github.com/cornice-ui/cornice/event"

// DelegateEntityEvents binds the declarative modelEvents and
// collectionEvents maps of the view and of every attached behavior against
// the view's model and collection. Any bindings from a previous call are
// released first, so repeated delegation never stacks handlers.
func (v *View) DelegateEntityEvents() *View {
	v.UndelegateEntityEvents()

	v.bindEntityEvents(v.modelEvents, v.ui.selectors(), v.handler, true)
	v.bindEntityEvents(v.collectionEvents, v.ui.selectors(), v.handler, false)
	for _, ab := range v.snapshotBehaviors() {
		b := ab.b
		v.bindEntityEvents(b.ModelEvents(), ab.ui.selectors(), b.Handler, true)
		v.bindEntityEvents(b.CollectionEvents(), ab.ui.selectors(), b.Handler, false)
	}
	return v
}

// UndelegateEntityEvents releases every entity binding made by
// DelegateEntityEvents, by exact listener identity. Safe to call
// repeatedly.
func (v *View) UndelegateEntityEvents() *View {
	for _, l := range v.entityBindings {
		l.Cancel()
	}
	v.entityBindings = nil
	return v
}

// bindEntityEvents binds one normalized descriptor source against the
// model (onModel true) or collection. Absent entities and absent sources
// contribute nothing.
func (v *View) bindEntityEvents(src any, ui map[string]string, resolve func(string) (Handler, bool), onModel bool) {
	var em *event.Emitter
	if onModel {
		if v.model == nil {
			return
		}
		em = &v.model.Emitter
	} else {
		if v.collection == nil {
			return
		}
		em = &v.collection.Emitter
	}

	for key, raw := range event.Normalize(src, ui) {
		h := toEntityHandler(raw, resolve)
		if h == nil {
			continue
		}
		if l := em.On(key, h); l != nil {
			v.entityBindings = append(v.entityBindings, l)
		}
	}
}

// toEntityHandler converts a descriptor value into an entity event
// handler. Handler-method names resolve late through the resolver; an
// unresolvable name is a silent no-op.
func toEntityHandler(raw any, resolve func(string) (Handler, bool)) event.Handler {
	switch h := raw.(type) {
	case string:
		if h == "" {
			return nil
		}
		return func(args ...any) {
			if fn, ok := resolve(h); ok {
				fn(args...)
			}
		}
	case Handler:
		return func(args ...any) { h(args...) }
	case func(args ...any) any:
		return func(args ...any) { h(args...) }
	case event.Handler:
		return h
	case func(...any):
		return h
	default:
		return nil
	}
}
