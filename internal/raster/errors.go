package raster

import "errors"

var (
	// ErrDimensionMismatch reports rasters whose sizes do not satisfy an
	// operation's precondition (for example, overlay inputs of unequal size).
	ErrDimensionMismatch = errors.New("raster dimension mismatch")

	// ErrOutOfBounds reports a row or column index outside [0,height) x [0,width).
	ErrOutOfBounds = errors.New("raster index out of bounds")
)
