// Package dom provides the DOM-binding collaborator consumed by the view
// core, together with a reference in-memory element tree for tests and
// embedded hosts.
//
// The view core depends on exactly two operations, expressed by the Binder
// interface: Delegate, which installs a descriptor map of event handlers on
// a root element (replacing any prior delegation for that root), and
// Undelegate, which removes them. TreeBinder implements both against the
// in-memory tree.
//
// Elements form a parent/child tree with a tag name, an optional id,
// classes, and attributes. Events dispatched on an element bubble from the
// target to the root; delegated handlers fire when the event type matches
// and either the delegation entry has no selector (the root itself) or some
// element between the target and the delegation root matches the selector.
//
// Selector support is intentionally small: a compound simple selector of
// the form "tag#id.class1.class2", any part optional. Combinators, pseudo
// classes, and attribute selectors are out of scope.
package dom
