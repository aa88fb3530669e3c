package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width        int
	Height       int
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera samples taken
	TotalRays    int           // Path segments traced, camera rays included
	Elapsed      time.Duration // Wall clock time of the render
	Workers      []WorkerStats // Per-worker breakdown, indexed by worker id
}

// WorkerStats accumulates the work done by one worker
type WorkerStats struct {
	ID      int
	Tiles   int
	Pixels  int
	Samples int
	Rays    int
	Busy    time.Duration // Time spent rendering tiles
}

// TileStats is the work done for a single tile
type TileStats struct {
	Pixels  int
	Samples int
	Rays    int
}

// add folds a finished tile into the worker totals
func (ws *WorkerStats) add(tile TileStats, elapsed time.Duration) {
	ws.Tiles++
	ws.Pixels += tile.Pixels
	ws.Samples += tile.Samples
	ws.Rays += tile.Rays
	ws.Busy += elapsed
}

// RaysPerSecond returns the overall tracing throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalRays) / s.Elapsed.Seconds()
}

// AverageSamples returns samples per pixel over the whole image
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// PixelStats accumulates samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3
	SampleCount int
}

// AddSample adds a new color sample
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
