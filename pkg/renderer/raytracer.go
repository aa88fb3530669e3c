package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Raytracer renders a scene to an image using a pool of tile workers
type Raytracer struct {
	scene      *scene.Scene
	options    Options
	integrator integrator.Integrator
	logger     log.Logger
}

// NewRaytracer creates a raytracer for a validated scene and options
func NewRaytracer(sc *scene.Scene, options Options) (*Raytracer, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", sc.Name, err)
	}

	return &Raytracer{
		scene:      sc,
		options:    options,
		integrator: integrator.NewPathTracingIntegrator(),
		logger:     log.New("renderer"),
	}, nil
}

// Options returns the options the raytracer was created with
func (rt *Raytracer) Options() Options {
	return rt.options
}

// Render renders the whole image. If ctx is cancelled, workers stop after
// their current tile and ErrInterrupted is returned together with the
// stats gathered so far.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	sampling := rt.options.Sampling

	img := image.NewRGBA(image.Rect(0, 0, sampling.Width, sampling.Height))
	tiles := NewTileGrid(sampling.Width, sampling.Height, rt.options.TileSize, rt.options.Seed)

	numWorkers := min(rt.options.NumWorkers(), len(tiles))
	tileRenderer := NewTileRenderer(rt.scene, rt.integrator, sampling)
	pool := NewWorkerPool(tileRenderer, numWorkers, len(tiles))

	rt.logger.Infof("Rendering %q at %dx%d, %d samples/pixel, max depth %d (%d tiles, %d workers)",
		rt.scene.Name, sampling.Width, sampling.Height, sampling.SamplesPerPixel, sampling.MaxDepth, len(tiles), numWorkers)

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Image: img})
	}
	pool.Close()

	stats := RenderStats{
		Width:   sampling.Width,
		Height:  sampling.Height,
		Workers: make([]WorkerStats, numWorkers),
	}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}

	completed := 0
	nextReport := 10
	for result := range pool.Results() {
		completed++
		stats.Workers[result.WorkerID].add(result.Stats, result.Elapsed)
		stats.TotalPixels += result.Stats.Pixels
		stats.TotalSamples += result.Stats.Samples
		stats.TotalRays += result.Stats.Rays

		rt.logger.Debugf("Tile %d done by worker %d in %v (%d rays)", result.TileID, result.WorkerID, result.Elapsed, result.Stats.Rays)

		if percent := completed * 100 / len(tiles); percent >= nextReport {
			rt.logger.Infof("%d%% complete (%d/%d tiles)", percent, completed, len(tiles))
			nextReport = (percent/10 + 1) * 10
		}
	}
	stats.Elapsed = time.Since(start)

	if completed < len(tiles) {
		rt.logger.Warningf("Render cancelled after %d of %d tiles", completed, len(tiles))
		return nil, stats, fmt.Errorf("%d of %d tiles rendered: %w", completed, len(tiles), ErrInterrupted)
	}

	rt.logger.Infof("Rendered %d samples (%d rays) in %v", stats.TotalSamples, stats.TotalRays, stats.Elapsed)
	return img, stats, nil
}
