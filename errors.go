package termart

import "errors"

var (
	// ErrNoData is returned when a renderer is given nothing to draw.
	ErrNoData = errors.New("no data")
	// ErrInvalidValue is returned for negative, NaN or infinite inputs
	// where the renderer requires finite non-negative numbers.
	ErrInvalidValue = errors.New("invalid value")
	// ErrZeroScale is returned when the maximum used as a scale
	// denominator is not positive.
	ErrZeroScale = errors.New("scale maximum must be positive")
	// ErrGridTooSmall is returned when the grid cannot hold the margins.
	ErrGridTooSmall = errors.New("grid too small")
	// ErrRaggedPixels is returned when pixel rows differ in length.
	ErrRaggedPixels = errors.New("pixel rows have different widths")
)
