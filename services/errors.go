package services

import "errors"

var (
	// ErrInvalidInput marks a request the caller can correct, as opposed
	// to an infrastructure failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRouteFound marks the normal "ports unreachable or capacity
	// insufficient" outcome, as opposed to a computation failure.
	ErrNoRouteFound = errors.New("no route found between the given ports")

	// ErrPortNotFound is returned when neither an id nor a name lookup
	// resolves the requested port.
	ErrPortNotFound = errors.New("port not found")

	// ErrMissingConnection signals an inconsistency between the computed
	// path and the connection snapshot; it is a defect, never swallowed.
	ErrMissingConnection = errors.New("no connection found for route leg")
)
