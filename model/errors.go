package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive width or height
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
