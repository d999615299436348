package scale

import "errors"

// ErrUnknownInterpolation indicates an interpolation name that is not
// supported.
var ErrUnknownInterpolation = errors.New("unknown interpolation")
