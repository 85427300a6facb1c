package view

import (
	"errors"
	"fmt"
)

// Sentinel errors for the view package.
var (
	// ErrDestroyed matches any DestroyedError via errors.Is.
	ErrDestroyed = errors.New("view is destroyed")

	// ErrNoElement is returned when an operation needs a root element and
	// the view has none.
	ErrNoElement = errors.New("view has no root element")

	// ErrUINotFound is returned when a symbolic UI name resolves to no
	// element in the current DOM root.
	ErrUINotFound = errors.New("ui element not found")

	// ErrRegionNotFound is returned when a named region does not exist.
	ErrRegionNotFound = errors.New("region not found")

	// ErrNilView is returned when a nil view is passed where one is required.
	ErrNilView = errors.New("view is nil")
)

// DestroyedError reports use of a view after Destroy. It signals a
// programming error and is never recovered internally.
type DestroyedError struct {
	// CID is the identity of the destroyed view.
	CID string
}

// Error implements the error interface.
func (e *DestroyedError) Error() string {
	return fmt.Sprintf("view %s has been destroyed and cannot be used", e.CID)
}

// Is makes errors.Is(err, ErrDestroyed) succeed for DestroyedError values.
func (e *DestroyedError) Is(target error) bool {
	return target == ErrDestroyed
}
