package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image width and height must be positive")
	ErrInvalidSampling   = errors.New("renderer: invalid sampling options")
	ErrInterrupted       = errors.New("renderer: render interrupted")
)
