package lua

import "errors"

// Scripted behavior errors.
var (
	// ErrStateClosed is returned when using a closed Lua state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrNoTable is returned when a behavior chunk does not return a table.
	ErrNoTable = errors.New("behavior script did not return a table")

	// ErrNotAFunction is returned when a named handler is not a function.
	ErrNotAFunction = errors.New("handler is not a function")
)
