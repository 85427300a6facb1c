// Package view implements the lifecycle and event-composition core shared
// by every view instance.
//
// A View is a node in a tree of components. It composes DOM event bindings
// from four sources (behavior events, its own events, behavior triggers,
// its own triggers) into one delegation map with fixed precedence, binds
// declarative model and collection event maps, and dispatches method-events
// through TriggerMethod: the view's own handler runs first, then plain
// listeners, then every attached behavior, then the nearest ancestor view
// receives a single-hop prefixed notification.
//
// Lifecycle is a one-way state machine: a view is created live and
// Destroy moves it permanently to the destroyed state, tearing down UI
// caches, DOM delegation, child views, behaviors, and every event
// subscription in a fixed order. Destroy is idempotent; accessors that
// assume a live DOM presence fail with a DestroyedError instead.
//
// The package is single-threaded by design. Dispatch and teardown run to
// completion on the calling goroutine, and iteration over behaviors,
// children, and listeners works on snapshots so handlers may mutate the
// tree mid-cascade.
package view
