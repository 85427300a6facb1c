package entity

import (
	"reflect"

	"github.com/cornice-ui/cornice/event"
)

// Model is a flat attribute bag with change events.
type Model struct {
	event.Emitter

	attrs map[string]any
}

// NewModel creates a model seeded with the given attributes. The map is
// copied; attrs may be nil.
func NewModel(attrs map[string]any) *Model {
	m := &Model{attrs: make(map[string]any, len(attrs))}
	for k, v := range attrs {
		m.attrs[k] = v
	}
	return m
}

// Get returns an attribute value, or nil if unset.
func (m *Model) Get(key string) any { return m.attrs[key] }

// Has reports whether the attribute is set.
func (m *Model) Has(key string) bool {
	_, ok := m.attrs[key]
	return ok
}

// Set stores an attribute. If the value actually changed it fires
// "change:<key>" with (model, value) and then "change" with (model).
// Values of uncomparable types (slices, maps, funcs) are treated as
// always-changed.
func (m *Model) Set(key string, value any) {
	old, had := m.attrs[key]
	if had && sameValue(old, value) {
		return
	}
	m.attrs[key] = value
	m.Trigger("change:"+key, m, value)
	m.Trigger("change", m)
}

// sameValue reports whether two attribute values are equal without
// panicking on uncomparable dynamic types.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Unset removes an attribute, firing the same change events as Set.
func (m *Model) Unset(key string) {
	if _, ok := m.attrs[key]; !ok {
		return
	}
	delete(m.attrs, key)
	m.Trigger("change:"+key, m, nil)
	m.Trigger("change", m)
}

// Attributes returns a copy of the attribute map.
func (m *Model) Attributes() map[string]any {
	out := make(map[string]any, len(m.attrs))
	for k, v := range m.attrs {
		out[k] = v
	}
	return out
}
