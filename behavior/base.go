package behavior

import (
	"github.com/cornice-ui/cornice/event"
	"github.com/cornice-ui/cornice/view"
)

// Base is a declarative view.Behavior implementation: its descriptor maps
// and handlers are supplied at construction. It also serves as the common
// core for programmatic behaviors that only need a subset of the surface.
type Base struct {
	name string

	events           any
	triggers         any
	modelEvents      any
	collectionEvents any
	ui               map[string]string

	handlers map[string]view.Handler

	attach func(*view.View)
	detach func()

	owner *view.View
}

// Option configures a Base behavior.
type Option func(*Base)

// WithEvents sets the DOM event descriptor source.
func WithEvents(src any) Option {
	return func(b *Base) { b.events = src }
}

// WithTriggers sets the trigger descriptor source.
func WithTriggers(src any) Option {
	return func(b *Base) { b.triggers = src }
}

// WithModelEvents sets the model event source.
func WithModelEvents(src any) Option {
	return func(b *Base) { b.modelEvents = src }
}

// WithCollectionEvents sets the collection event source.
func WithCollectionEvents(src any) Option {
	return func(b *Base) { b.collectionEvents = src }
}

// WithUI sets the behavior's own symbolic-name -> selector table.
func WithUI(names map[string]string) Option {
	return func(b *Base) { b.ui = names }
}

// WithHandler registers a method-event handler under an event name or a
// handler-method name.
func WithHandler(name string, h view.Handler) Option {
	return func(b *Base) {
		if name != "" && h != nil {
			b.handlers[name] = h
		}
	}
}

// WithAttachHook sets a hook run when the behavior is attached to a view.
func WithAttachHook(fn func(*view.View)) Option {
	return func(b *Base) { b.attach = fn }
}

// WithDetachHook sets a hook run during the owning view's destroy cascade.
func WithDetachHook(fn func()) Option {
	return func(b *Base) { b.detach = fn }
}

// New creates a Base behavior.
func New(name string, opts ...Option) *Base {
	b := &Base{
		name:     name,
		handlers: make(map[string]view.Handler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name implements view.Behavior.
func (b *Base) Name() string { return b.name }

// Events implements view.Behavior.
func (b *Base) Events() any { return b.events }

// Triggers implements view.Behavior.
func (b *Base) Triggers() any { return b.triggers }

// ModelEvents implements view.Behavior.
func (b *Base) ModelEvents() any { return b.modelEvents }

// CollectionEvents implements view.Behavior.
func (b *Base) CollectionEvents() any { return b.collectionEvents }

// UINames implements view.Behavior.
func (b *Base) UINames() map[string]string { return b.ui }

// Handler resolves a handler by event name or derived handler-method name.
func (b *Base) Handler(name string) (view.Handler, bool) {
	if h, ok := b.handlers[name]; ok {
		return h, true
	}
	if h, ok := b.handlers[event.MethodName(name)]; ok {
		return h, true
	}
	return nil, false
}

// Handle registers a handler after construction.
func (b *Base) Handle(name string, h view.Handler) *Base {
	if name != "" && h != nil {
		b.handlers[name] = h
	}
	return b
}

// View returns the owning view, or nil before attachment.
func (b *Base) View() *view.View { return b.owner }

// Attach implements view.Behavior.
func (b *Base) Attach(owner *view.View) {
	b.owner = owner
	if b.attach != nil {
		b.attach(owner)
	}
}

// Detach implements view.Behavior.
func (b *Base) Detach() {
	if b.detach != nil {
		b.detach()
	}
	b.owner = nil
}
