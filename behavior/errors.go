package behavior

import "errors"

// Behavior infrastructure errors.
var (
	// ErrNotRegistered is returned when a behavior name is not in the registry.
	ErrNotRegistered = errors.New("behavior not registered")

	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = errors.New("behavior factory is nil")

	// ErrDuplicateName is returned when registering a name twice.
	ErrDuplicateName = errors.New("behavior name already registered")

	// ErrNilManifest is returned when a nil manifest is provided.
	ErrNilManifest = errors.New("manifest is nil")

	// ErrInvalidManifest is returned when manifest validation fails.
	ErrInvalidManifest = errors.New("invalid behavior manifest")
)
