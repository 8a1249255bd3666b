package img2se

import "errors"

var (
	// ErrMissingInput is returned when no source image is supplied.
	ErrMissingInput = errors.New("img2se: missing input image")
	// ErrDecode is returned when a file cannot be read as a pixel buffer.
	ErrDecode = errors.New("img2se: cannot decode image")
	// ErrDimensionMismatch is returned when a height map does not cover the primary grid.
	ErrDimensionMismatch = errors.New("img2se: dimension mismatch")
	// ErrIO is returned when the blueprint cannot be written.
	ErrIO = errors.New("img2se: write failed")
	// ErrModeConflict is returned when a height map is combined with a multi-frame source.
	ErrModeConflict = errors.New("img2se: height map is not supported for multi-frame images")
)
