package zoompan

import "errors"

// Configuration errors
var (
	// ErrConfiguration indicates that the filter could not be configured:
	// bad options, an unusable fill colour, a malformed schedule or an
	// expression that does not compile.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidOption indicates an unknown option or a value out of range.
	ErrInvalidOption = errors.New("invalid option")
)

// Runtime errors
var (
	// ErrResource indicates that an output frame could not be allocated.
	// The frame is dropped and the stream can continue.
	ErrResource = errors.New("resource error")

	// ErrGeometryChanged indicates an input frame whose format or size
	// differs from the configured geometry.
	ErrGeometryChanged = errors.New("input geometry changed")
)

// Lifecycle errors
var (
	// ErrClosed indicates use of a filter after Close.
	ErrClosed = errors.New("filter closed")

	// ErrNotConfigured indicates an accessor that needs the input geometry
	// was called before Configure or the first frame.
	ErrNotConfigured = errors.New("filter not configured")
)
