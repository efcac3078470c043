package core

import "errors"

// Contract violations signaled by grid operations. All checks run before any
// mutation, so a returned error means the grid is unchanged.
var (
	ErrInvalidDimension  = errors.New("grid dimensions must be at least 1x1")
	ErrInvalidShape      = errors.New("input must be a rectangular two-dimensional array")
	ErrOutOfBounds       = errors.New("coordinates outside grid bounds")
	ErrDimensionMismatch = errors.New("grids differ in dimensions")
	ErrInvalidResize     = errors.New("invalid resize count")
)
