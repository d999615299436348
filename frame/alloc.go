package frame

import (
	"fmt"

	"github.com/opd-ai/zoompan/limits"
)

// DefaultAlign is the row alignment in bytes used by DefaultAllocator.
const DefaultAlign = 32

// Allocator produces zero-initialised writable frames.
type Allocator interface {
	Allocate(format *PixelFormat, width, height int) (*Frame, error)
}

// DefaultAllocator allocates frames on the Go heap with aligned strides.
type DefaultAllocator struct {
	// Align is the row alignment in bytes; zero means DefaultAlign.
	Align int
}

// Allocate returns a new zeroed frame. Sizes beyond the limits package
// bounds fail with ErrAllocation.
func (a DefaultAllocator) Allocate(format *PixelFormat, width, height int) (*Frame, error) {
	if format == nil {
		return nil, fmt.Errorf("%w: missing pixel format", ErrAllocation)
	}
	if err := limits.ValidateDimensions(width, height); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	align := a.Align
	if align <= 0 {
		align = DefaultAlign
	}

	n := format.PlaneCount()
	strides := make([]int, n)
	heights := make([]int, n)
	var total int64
	for i := 0; i < n; i++ {
		line := format.LineSize(i, width)
		strides[i] = (line + align - 1) / align * align
		_, heights[i] = format.PlaneSize(i, width, height)
		total += int64(strides[i]) * int64(heights[i])
	}
	if err := limits.ValidateFrameBytes(total); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	f := &Frame{
		Format: format,
		Width:  width,
		Height: height,
		Planes: make([]Plane, n),
		PTS:    NoPTS,
	}
	for i := 0; i < n; i++ {
		f.Planes[i] = Plane{Data: make([]byte, strides[i]*heights[i]), Stride: strides[i]}
	}
	return f, nil
}

// New allocates a frame with DefaultAllocator.
func New(format *PixelFormat, width, height int) (*Frame, error) {
	return DefaultAllocator{}.Allocate(format, width, height)
}
