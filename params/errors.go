package params

import "errors"

var (
	// ErrExpression indicates an expression that does not compile.
	ErrExpression = errors.New("invalid expression")

	// ErrInvalidConfig indicates driver settings that cannot be used, such
	// as a non-positive zoom_max.
	ErrInvalidConfig = errors.New("invalid parameter driver config")
)
