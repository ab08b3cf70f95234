package gridenv

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate falls outside the
	// grid's configured width/height.
	ErrOutOfBounds = errors.New("gridenv: coordinate out of bounds")

	// ErrInvalidDimensions is returned when NewGrid is given a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("gridenv: width and height must be positive")
)
