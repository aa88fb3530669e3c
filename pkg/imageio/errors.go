package imageio

import "errors"

var ErrUnsupportedFormat = errors.New("imageio: unsupported image format")
