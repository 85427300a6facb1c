package entity

import "github.com/cornice-ui/cornice/event"

// Collection is an ordered list of models with membership events.
type Collection struct {
	event.Emitter

	models []*Model
}

// NewCollection creates a collection holding the given models, in order.
func NewCollection(models ...*Model) *Collection {
	c := &Collection{}
	c.models = append(c.models, models...)
	return c
}

// Len returns the number of models.
func (c *Collection) Len() int { return len(c.models) }

// At returns the model at index i, or nil if out of range.
func (c *Collection) At(i int) *Model {
	if i < 0 || i >= len(c.models) {
		return nil
	}
	return c.models[i]
}

// Models returns a copy of the model list.
func (c *Collection) Models() []*Model {
	out := make([]*Model, len(c.models))
	copy(out, c.models)
	return out
}

// Add appends a model and fires "add" with (model, collection).
func (c *Collection) Add(m *Model) {
	if m == nil {
		return
	}
	c.models = append(c.models, m)
	c.Trigger("add", m, c)
}

// Remove removes the first occurrence of m and fires "remove" with
// (model, collection). Removing an absent model is a no-op.
func (c *Collection) Remove(m *Model) {
	for i, cur := range c.models {
		if cur == m {
			c.models = append(c.models[:i], c.models[i+1:]...)
			c.Trigger("remove", m, c)
			return
		}
	}
}

// Reset replaces the entire contents and fires "reset" with (collection).
func (c *Collection) Reset(models ...*Model) {
	c.models = append(c.models[:0:0], models...)
	c.Trigger("reset", c)
}

// Each calls fn for every model, on a snapshot of the list.
func (c *Collection) Each(fn func(*Model)) {
	for _, m := range c.Models() {
		fn(m)
	}
}
