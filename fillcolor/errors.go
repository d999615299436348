package fillcolor

import "errors"

// ErrInvalidColor indicates a colour specification that cannot be parsed.
var ErrInvalidColor = errors.New("invalid colour")
