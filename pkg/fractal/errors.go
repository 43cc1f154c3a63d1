package fractal

import "errors"

var (
	// ErrNegativeDepth is returned for a depth below zero.
	ErrNegativeDepth = errors.New("fractal: negative depth")

	// ErrDepthOverflow is returned when the vertex count would not fit
	// a uint32 index buffer.
	ErrDepthOverflow = errors.New("fractal: depth exceeds index range")

	// ErrUnknownStrategy is returned for an unrecognised strategy.
	ErrUnknownStrategy = errors.New("fractal: unknown subdivision strategy")
)
