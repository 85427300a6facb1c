// Package entity provides the model and collection collaborators that views
// bind their declarative modelEvents and collectionEvents maps against.
//
// Model holds a flat attribute map and fires "change" plus per-attribute
// "change:<attr>" events on mutation. Collection holds an ordered list of
// models and fires "add", "remove", and "reset". Both embed event.Emitter,
// so the view core's subscribe/unsubscribe discipline applies unchanged.
//
// This package never interprets attribute values; mutation discipline
// beyond event emission is the application's concern.
package entity
