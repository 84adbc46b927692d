package eliasfano

import "errors"

// Sentinel errors returned by construction. Callers should use [errors.Is].
var (
	// ErrInvalidInput indicates an input value was below the declared lower
	// bound, or a monotone constructor received a decreasing pair.
	ErrInvalidInput = errors.New("eliasfano: invalid input")

	// ErrCapacityExceeded indicates the packed bit arrays required by the
	// input would exceed addressable bit positions.
	ErrCapacityExceeded = errors.New("eliasfano: capacity exceeded")

	// ErrIOFailure indicates an offline-construction temp file operation
	// failed. Only returned by the Offline constructors.
	ErrIOFailure = errors.New("eliasfano: io failure")
)
