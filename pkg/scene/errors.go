package scene

import "errors"

var (
	ErrNoCamera        = errors.New("scene: no camera defined")
	ErrUnknownMaterial = errors.New("scene: shape references unknown material")
	ErrUnknownScene    = errors.New("scene: unknown built-in scene")
)
