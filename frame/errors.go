package frame

import "errors"

// Sentinel errors for frame operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrUnknownFormat indicates a pixel format name that is not registered.
	ErrUnknownFormat = errors.New("unknown pixel format")

	// ErrInvalidGeometry indicates a frame whose planes do not match its
	// format and size.
	ErrInvalidGeometry = errors.New("invalid frame geometry")

	// ErrAllocation indicates that an output buffer could not be allocated.
	ErrAllocation = errors.New("frame allocation failed")

	// ErrFormatMismatch indicates an operation on two frames of different
	// pixel formats.
	ErrFormatMismatch = errors.New("pixel format mismatch")
)
