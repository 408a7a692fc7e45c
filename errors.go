package staticd

import "errors"

var (
	// ErrNotFound is returned when no location yields a servable resource.
	// It covers unresolvable paths, traversal attempts, disallowed
	// locations, and filesystem directories alike so that callers cannot
	// distinguish which reason applied.
	ErrNotFound = errors.New("resource not found")
	// ErrMethodNotSupported is returned for request methods other than
	// GET and HEAD. The HTTP layer translates it to a 405 response.
	ErrMethodNotSupported = errors.New("method not supported")
	// ErrRangeNotSatisfiable is returned when a Range header is malformed
	// or no requested range overlaps the resource.
	ErrRangeNotSatisfiable = errors.New("range not satisfiable")
	// ErrNoPathContext is returned when a request reaches the handler
	// without an extracted resource path. This indicates a wiring mistake
	// at setup time, not a bad request.
	ErrNoPathContext = errors.New("no resource path in request context")
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
