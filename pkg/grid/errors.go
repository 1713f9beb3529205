package grid

import "errors"

var (
	// ErrOutOfRange is returned when a row or column falls outside the grid.
	ErrOutOfRange = errors.New("grid: coordinates out of range")
	// ErrInvalidDimensions is returned when a grid is built with a non-positive size.
	ErrInvalidDimensions = errors.New("grid: dimensions must be positive")
)
