package schedule

import (
	"errors"
	"fmt"
)

// I/O errors
var (
	// ErrOpen indicates the trajectory file could not be opened or read.
	ErrOpen = errors.New("cannot open schedule")
)

// Validation errors. All of them match ErrInvalid with errors.Is.
var (
	// ErrInvalid indicates structurally invalid trajectory data.
	ErrInvalid = errors.New("invalid schedule")

	// ErrEmpty indicates a trajectory without any data.
	ErrEmpty = fmt.Errorf("%w: empty", ErrInvalid)

	// ErrUnaligned indicates a byte count that is not a whole number of
	// doubles.
	ErrUnaligned = fmt.Errorf("%w: size not a multiple of %d bytes", ErrInvalid, doubleSize)

	// ErrPartialTriple indicates a double count that is not a whole number
	// of (x, y, zoom) triples.
	ErrPartialTriple = fmt.Errorf("%w: partial triple", ErrInvalid)

	// ErrKeyframe indicates a keyframe specification that cannot be parsed.
	ErrKeyframe = errors.New("invalid keyframe")
)
