package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// TileRenderer renders the pixels of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	sampling   scene.SamplingConfig
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(sc *scene.Scene, integratorInst integrator.Integrator, sampling scene.SamplingConfig) *TileRenderer {
	return &TileRenderer{
		scene:      sc,
		integrator: integratorInst,
		sampling:   sampling,
	}
}

// RenderTile writes the pixels of tile into img. Tiles never overlap, so
// concurrent calls on distinct tiles of the same image are safe.
func (tr *TileRenderer) RenderTile(tile *Tile, img *image.RGBA) TileStats {
	sampler := core.NewRandomSampler(tile.Random)
	stats := TileStats{}

	for row := tile.Bounds.Min.Y; row < tile.Bounds.Max.Y; row++ {
		// The camera counts rows bottom-up
		j := tr.sampling.Height - 1 - row
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			var ps PixelStats
			stats.Rays += tr.samplePixel(i, j, &ps, sampler)
			stats.Samples += ps.SampleCount
			stats.Pixels++

			img.SetRGBA(i, row, vec3ToColor(ps.GetColor()))
		}
	}

	return stats
}

// samplePixel takes every sample for pixel (i, j) and returns the rays traced
func (tr *TileRenderer) samplePixel(i, j int, ps *PixelStats, sampler core.Sampler) int {
	width := float64(tr.sampling.Width)
	height := float64(tr.sampling.Height)
	rays := 0

	for sample := 0; sample < tr.sampling.SamplesPerPixel; sample++ {
		s := (float64(i) + sampler.Get1D()) / width
		t := (float64(j) + sampler.Get1D()) / height

		ray := tr.scene.Camera.GetRay(s, t, sampler)
		result := tr.integrator.Trace(ray, tr.scene, sampler, tr.sampling.MaxDepth)

		ps.AddSample(result.Color)
		rays += result.Segments
	}

	return rays
}

// vec3ToColor applies gamma 2, clamps and quantizes a linear color
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Sqrt().Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
