package loaders

import "errors"

var (
	ErrUnknownShapeType    = errors.New("loaders: unknown shape type")
	ErrUnknownMaterialType = errors.New("loaders: unknown material type")
	ErrDuplicateMaterial   = errors.New("loaders: duplicate material name")
	ErrMissingMaterial     = errors.New("loaders: shape references undefined material")
	ErrInvalidParameter    = errors.New("loaders: invalid parameter")
)
