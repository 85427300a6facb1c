package dom

import "errors"

// Sentinel errors for the dom package.
var (
	// ErrBadSelector is returned when a selector string cannot be parsed.
	ErrBadSelector = errors.New("malformed selector")

	// ErrNilRoot is returned when a delegation operation is given a nil root.
	ErrNilRoot = errors.New("delegation root is nil")
)
