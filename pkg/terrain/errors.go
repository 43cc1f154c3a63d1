package terrain

import "errors"

var (
	ErrNoSource          = errors.New("terrain: no noise source")
	ErrInvalidTarget     = errors.New("terrain: target range must be finite with min < max")
	ErrNonFinite         = errors.New("terrain: non-finite height")
	ErrGridSize          = errors.New("terrain: grid size must be at least 1")
	ErrMismatch          = errors.New("terrain: points and heights differ in length")
	ErrIndexRange        = errors.New("terrain: triangle index out of range")
	ErrUnknownRootPolicy = errors.New("terrain: unknown root policy")
)
