// Package limits provides centralized size limits for frames, options and
// trajectory files. This ensures consistent validation across the allocator,
// the option parser and the schedule loader.
package limits

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MaxDimension is the largest accepted frame width or height in pixels.
	// It matches the upper bound of the width/height options.
	MaxDimension = 65536

	// MaxAspectRatio is the upper bound of the ar option.
	MaxAspectRatio = 100.0

	// MaxFrameBytes is the largest buffer the default allocator hands out for
	// a single frame (all planes together, 1 GiB).
	MaxFrameBytes = 1 << 30

	// MaxScheduleBytes is the largest trajectory file read into memory
	// (256 MiB, about 11 million triples).
	MaxScheduleBytes = 256 << 20

	// MaxThreads bounds the worker count of the row executor.
	MaxThreads = 1024
)

var (
	// ErrInvalidDimension indicates a zero or negative width or height.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrDimensionTooLarge indicates a width or height above MaxDimension.
	ErrDimensionTooLarge = errors.New("dimension too large")

	// ErrBufferTooLarge indicates a byte count above the applicable limit.
	ErrBufferTooLarge = errors.New("buffer too large")

	// ErrOutOfRange indicates a numeric option outside its documented range.
	ErrOutOfRange = errors.New("value out of range")
)

// ValidateDimensions checks a frame size against MaxDimension.
// Returns an error with context including the offending size.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds limit %d", ErrDimensionTooLarge, width, height, MaxDimension)
	}
	return nil
}

// ValidateFrameBytes checks the total byte size of a frame allocation.
func ValidateFrameBytes(size int64) error {
	if size > MaxFrameBytes {
		return fmt.Errorf("%w: frame size %d exceeds limit %d", ErrBufferTooLarge, size, MaxFrameBytes)
	}
	return nil
}

// ValidateScheduleBytes checks the size of a trajectory file before it is
// read into memory.
func ValidateScheduleBytes(size int64) error {
	if size > MaxScheduleBytes {
		return fmt.Errorf("%w: schedule size %d exceeds limit %d", ErrBufferTooLarge, size, MaxScheduleBytes)
	}
	return nil
}

// ValidateAspectRatio checks the ar option. Zero means "derive from input".
func ValidateAspectRatio(ar float64) error {
	if math.IsNaN(ar) || ar < 0 || ar > MaxAspectRatio {
		return fmt.Errorf("%w: aspect ratio %v not in [0, %v]", ErrOutOfRange, ar, MaxAspectRatio)
	}
	return nil
}

// ValidateThreads checks the threads option. Zero means "use GOMAXPROCS".
func ValidateThreads(n int) error {
	if n < 0 || n > MaxThreads {
		return fmt.Errorf("%w: threads %d not in [0, %d]", ErrOutOfRange, n, MaxThreads)
	}
	return nil
}
