package renderer

import (
	"fmt"
	"runtime"

	"github.com/df07/go-pathtracer/pkg/scene"
)

// Options controls how a scene is rendered
type Options struct {
	Sampling scene.SamplingConfig
	TileSize int   // Width and height of a work unit in pixels
	Workers  int   // Number of parallel workers (0 = use CPU count)
	Seed     int64 // Base seed; each tile derives its own generator from it
}

// DefaultOptions returns sensible defaults around the given sampling config
func DefaultOptions(sampling scene.SamplingConfig) Options {
	return Options{
		Sampling: sampling,
		TileSize: 32,
		Workers:  0,
		Seed:     42,
	}
}

// NumWorkers resolves the worker count
func (o Options) NumWorkers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

// Validate checks that the options describe a renderable image
func (o Options) Validate() error {
	if o.Sampling.Width <= 0 || o.Sampling.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", o.Sampling.Width, o.Sampling.Height, ErrInvalidDimensions)
	}
	if o.Sampling.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel %d: %w", o.Sampling.SamplesPerPixel, ErrInvalidSampling)
	}
	if o.Sampling.MaxDepth < 0 {
		return fmt.Errorf("max depth %d: %w", o.Sampling.MaxDepth, ErrInvalidSampling)
	}
	if o.TileSize <= 0 {
		return fmt.Errorf("tile size %d: %w", o.TileSize, ErrInvalidSampling)
	}
	return nil
}
