package registry

import "errors"

var (
	// ErrDuplicateService is returned when a service key is registered twice.
	ErrDuplicateService = errors.New("service already registered")

	// ErrDuplicateFactory is returned when a factory is registered twice for
	// the same implementation type.
	ErrDuplicateFactory = errors.New("factory already registered")

	// ErrUnknownImplementation is returned when no factory exists for a
	// descriptor's implementation type.
	ErrUnknownImplementation = errors.New("unknown implementation type")

	// ErrNotFound is returned for a service key that was never registered.
	ErrNotFound = errors.New("service not found")

	// ErrTypeMismatch is returned by Lookup when the instance has another type.
	ErrTypeMismatch = errors.New("service type mismatch")

	// ErrInvalidArguments is returned by a factory whose positional arguments
	// do not match the expected shape.
	ErrInvalidArguments = errors.New("invalid constructor arguments")
)
