package resample

import "errors"

// ErrInvalidPlane indicates a plane view whose sizes or buffers do not agree.
var ErrInvalidPlane = errors.New("invalid plane")
