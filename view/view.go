package view

import (
	"github.com/google/uuid"

	"github.com/cornice-ui/cornice/dom"
	"github.com/cornice-ui/cornice/entity"
	"github.com/cornice-ui/cornice/event"
)

// DefaultChildViewEventPrefix is the prefix an ancestor view applies when a
// descendant's method-event reaches it.
const DefaultChildViewEventPrefix = "childview"

// Handler is a method-event handler. Its return value becomes the return
// value of the TriggerMethod call that invoked it.
type Handler func(args ...any) any

// Node is a back-reference-only link in the ownership chain. Regions and
// views both implement it; the parent-chain locator follows it upward.
type Node interface {
	// ParentNode returns the owning container, or nil at the chain's end.
	ParentNode() Node
}

// Ancestor is the first-class-view capability the parent-chain locator
// looks for. Containers that merely hold a view (regions) implement Node
// but not Ancestor and are skipped transparently.
type Ancestor interface {
	Node

	// TriggerMethod dispatches a method-event on the ancestor.
	TriggerMethod(eventName string, args ...any) any

	// ReceiveChildEvent delivers a descendant's method-event one hop up:
	// the ancestor's childViewEvents and childViewTriggers maps are
	// consulted and the event is re-triggered under the ancestor's own
	// child-view prefix.
	ReceiveChildEvent(eventName string, args ...any)
}

// Behavior is a reusable capability module attached to exactly one view.
// It contributes event, trigger, and entity-event maps to composition and
// observes every method-event the view dispatches. A behavior has no
// lifecycle of its own; it is torn down with its owning view.
type Behavior interface {
	// Name identifies the behavior, for diagnostics.
	Name() string

	// Events returns the behavior's DOM event descriptor source, in any
	// form accepted by event.Normalize, or nil.
	Events() any

	// Triggers returns the behavior's trigger descriptor source, or nil.
	Triggers() any

	// ModelEvents returns the behavior's model event map, or nil.
	ModelEvents() any

	// CollectionEvents returns the behavior's collection event map, or nil.
	CollectionEvents() any

	// UINames returns the behavior's own symbolic-name -> selector table,
	// used to resolve placeholders in its descriptor maps, or nil.
	UINames() map[string]string

	// Handler resolves a handler for a method-event or handler-method
	// name, reporting whether one exists.
	Handler(name string) (Handler, bool)

	// Attach is called once when the behavior is added to its view.
	Attach(owner *View)

	// Detach is the teardown hook, called during the owning view's destroy
	// cascade. It must be safe to call once and only once per attachment.
	Detach()
}

// Releaser is an optional extension of Behavior for implementations
// holding external resources. Release runs at the very end of the owning
// view's destroy cascade, after the "destroy" dispatch, when no further
// method-events will reach the behavior.
type Releaser interface {
	Release()
}

// attachedBehavior pairs a behavior with its per-attachment UI registry.
type attachedBehavior struct {
	b  Behavior
	ui *uiRegistry
}

// View is a node in the component tree. Zero value is not usable; create
// views with New.
type View struct {
	event.Emitter

	cid    string
	el     *dom.Element
	binder dom.Binder

	model      *entity.Model
	collection *entity.Collection

	// Non-owning back-reference into the ownership chain.
	parent Node

	// Raw descriptor sources; view events are replaced by their normalized
	// form the first time composition runs without an explicit override.
	events           any
	triggers         any
	modelEvents      any
	collectionEvents any

	ui        *uiRegistry
	behaviors []*attachedBehavior

	// Handler registration table for method-events.
	methods map[string]Handler

	regions     map[string]*Region
	regionOrder []string

	childViewEvents      map[string]Handler
	childViewTriggers    map[string]string
	childViewEventPrefix string

	templateContext any

	// Listener-side bookkeeping released on destroy.
	listening      event.ListenerSet
	entityBindings []*event.Listener

	rendered  bool
	attached  bool
	destroyed bool
}

// Option configures a View at construction.
type Option func(*View)

// WithElement sets the view's root element.
func WithElement(el *dom.Element) Option {
	return func(v *View) { v.el = el }
}

// WithTag creates a fresh root element with the given tag name.
func WithTag(tag string) Option {
	return func(v *View) { v.el = dom.NewElement(tag) }
}

// WithBinder sets the DOM-binding primitive used for delegation.
func WithBinder(b dom.Binder) Option {
	return func(v *View) { v.binder = b }
}

// WithModel associates a model with the view.
func WithModel(m *entity.Model) Option {
	return func(v *View) { v.model = m }
}

// WithCollection associates a collection with the view.
func WithCollection(c *entity.Collection) Option {
	return func(v *View) { v.collection = c }
}

// WithEvents sets the view's DOM event descriptor source: a map or a
// func() map[string]any evaluated once at composition.
func WithEvents(src any) Option {
	return func(v *View) { v.events = src }
}

// WithTriggers sets the view's trigger descriptor source.
func WithTriggers(src any) Option {
	return func(v *View) { v.triggers = src }
}

// WithModelEvents sets the view's declarative model event source.
func WithModelEvents(src any) Option {
	return func(v *View) { v.modelEvents = src }
}

// WithCollectionEvents sets the view's declarative collection event source.
func WithCollectionEvents(src any) Option {
	return func(v *View) { v.collectionEvents = src }
}

// WithUI sets the view's symbolic-name -> selector table.
func WithUI(names map[string]string) Option {
	return func(v *View) { v.ui = newUIRegistry(names) }
}

// WithBehaviors attaches behaviors in order.
func WithBehaviors(bs ...Behavior) Option {
	return func(v *View) {
		for _, b := range bs {
			v.attachBehavior(b)
		}
	}
}

// WithHandler registers a method-event handler. The name may be an event
// name ("before:destroy") or a handler-method name ("onBeforeDestroy").
func WithHandler(name string, h Handler) Option {
	return func(v *View) { v.Handle(name, h) }
}

// WithChildViewEventPrefix overrides the prefix applied to events arriving
// from descendant views. An empty prefix disables prefixed forwarding.
func WithChildViewEventPrefix(prefix string) Option {
	return func(v *View) { v.childViewEventPrefix = prefix }
}

// WithChildViewEvents sets the map of handlers invoked when a descendant's
// event reaches this view.
func WithChildViewEvents(m map[string]Handler) Option {
	return func(v *View) { v.childViewEvents = m }
}

// WithChildViewTriggers sets the map of events re-triggered on this view
// when a descendant's event reaches it.
func WithChildViewTriggers(m map[string]string) Option {
	return func(v *View) { v.childViewTriggers = m }
}

// WithTemplateContext sets the view's template context source: a
// map[string]any or a func() map[string]any.
func WithTemplateContext(src any) Option {
	return func(v *View) { v.templateContext = src }
}

// New creates a live view. Without options it has a fresh "div" root
// element, a TreeBinder, and the default child-view event prefix.
func New(opts ...Option) *View {
	v := &View{
		cid:                  "view-" + uuid.NewString(),
		methods:              make(map[string]Handler),
		childViewEventPrefix: DefaultChildViewEventPrefix,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.el == nil {
		v.el = dom.NewElement("div")
	}
	if v.binder == nil {
		v.binder = dom.NewTreeBinder()
	}
	if v.ui == nil {
		v.ui = newUIRegistry(nil)
	}
	return v
}

// CID returns the view's unique identity.
func (v *View) CID() string { return v.cid }

// Element returns the view's root element.
func (v *View) Element() *dom.Element { return v.el }

// SetElement replaces the view's root element, undelegating from the old
// root and invalidating UI caches. The caller re-runs DelegateEvents when
// bindings are needed on the new root.
func (v *View) SetElement(el *dom.Element) *View {
	if v.el != nil {
		_ = v.binder.Undelegate(v.el)
	}
	v.unbindUIElements()
	v.el = el
	return v
}

// Model returns the associated model, or nil.
func (v *View) Model() *entity.Model { return v.model }

// Collection returns the associated collection, or nil.
func (v *View) Collection() *entity.Collection { return v.collection }

// ParentNode returns the view's container back-reference.
func (v *View) ParentNode() Node { return v.parent }

// SetParent installs the non-owning container back-reference.
func (v *View) SetParent(p Node) { v.parent = p }

// ChildViewEventPrefix returns the prefix this view applies to descendant
// events.
func (v *View) ChildViewEventPrefix() string { return v.childViewEventPrefix }

// Handle registers a method-event handler. The name may be an event name
// or the derived handler-method name; TriggerMethod checks both.
func (v *View) Handle(name string, h Handler) *View {
	if name != "" && h != nil {
		v.methods[name] = h
	}
	return v
}

// handler resolves a registered handler by event name or by the derived
// handler-method name.
func (v *View) handler(name string) (Handler, bool) {
	if h, ok := v.methods[name]; ok {
		return h, true
	}
	if h, ok := v.methods[event.MethodName(name)]; ok {
		return h, true
	}
	return nil, false
}

// AddBehavior attaches a behavior to a live view.
func (v *View) AddBehavior(b Behavior) error {
	if err := v.ensureIntact(); err != nil {
		return err
	}
	v.attachBehavior(b)
	return nil
}

func (v *View) attachBehavior(b Behavior) {
	if b == nil {
		return
	}
	v.behaviors = append(v.behaviors, &attachedBehavior{
		b:  b,
		ui: newUIRegistry(b.UINames()),
	})
	b.Attach(v)
}

// Behaviors returns the attached behaviors in attachment order.
func (v *View) Behaviors() []Behavior {
	out := make([]Behavior, len(v.behaviors))
	for i, ab := range v.behaviors {
		out[i] = ab.b
	}
	return out
}

// snapshotBehaviors copies the attachment list so cascades tolerate
// behaviors being added or removed mid-iteration.
func (v *View) snapshotBehaviors() []*attachedBehavior {
	out := make([]*attachedBehavior, len(v.behaviors))
	copy(out, v.behaviors)
	return out
}
