// Package behavior provides the behavior infrastructure around the view
// core: a declarative Base implementation of view.Behavior, a process-wide
// factory registry so views can attach behaviors by name, and a JSON
// manifest format for behaviors described outside the binary (see the lua
// subpackage for the scripted implementation).
//
// A behavior is owned exclusively by the view it is attached to. It
// contributes events, triggers, modelEvents, and collectionEvents maps to
// event composition, observes every method-event the view dispatches, and
// is torn down as part of the view's destroy cascade.
package behavior
