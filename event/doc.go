// Package event provides the entity pub/sub primitive and the event
// descriptor machinery shared by views and behaviors.
//
// The main components are:
//   - Emitter: a named-event pub/sub object with exact-identity unbinding,
//     embedded by models, collections, and views
//   - ListenerSet: listener-side bookkeeping so an object can release every
//     subscription it ever made in one call
//   - DescriptorMap / Normalize: the raw "domEvent selector" -> handler maps
//     authored on views and behaviors, with "@ui.name" placeholder resolution
//   - MethodName: the deterministic event-name -> handler-method derivation
//     ("before:destroy" -> "onBeforeDestroy") used by method-event dispatch
//
// Everything in this package is single-threaded by design: dispatch and
// composition run to completion on the calling goroutine, so Emitter performs
// no locking. External synchronization is required if an Emitter is shared
// across goroutines.
package event
