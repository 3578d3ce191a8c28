package media

import "errors"

var (
	// ErrInvalidSize is returned when a resource is created with a zero or
	// oversized dimension.
	ErrInvalidSize = errors.New("media: invalid size")

	// ErrContextUnavailable is returned when no graphics context can be
	// made current for an operation.
	ErrContextUnavailable = errors.New("media: graphics context unavailable")

	// ErrNoContextSlots is returned when all context ids are in use.
	ErrNoContextSlots = errors.New("media: no free graphics context slots")

	// ErrShaderCompile wraps shader compile and link failures.
	ErrShaderCompile = errors.New("media: shader compilation failed")

	// ErrUnsupported is returned when the device lacks a required feature.
	ErrUnsupported = errors.New("media: feature not supported")
)
