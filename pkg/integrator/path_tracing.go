package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PathTracingIntegrator implements unidirectional path tracing with a sky gradient
// as the only light source
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler, bouncesRemaining int) core.Vec3 {
	return pt.Trace(ray, sc, sampler, bouncesRemaining).Color
}

// Trace follows the path iteratively. The throughput is the product of every
// attenuation seen so far, so the result matches the recursive
// attenuation * RayColor(scattered, bounces-1) form exactly.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, sc *scene.Scene, sampler core.Sampler, bouncesRemaining int) PathResult {
	throughput := core.NewVec3(1, 1, 1)
	segments := 0

	for {
		segments++

		hit, isHit := sc.Hit(ray)
		if !isHit {
			return PathResult{Color: throughput.MultiplyVec(pt.backgroundGradient(ray, sc)), Segments: segments}
		}

		// Out of bounces: no more light is gathered
		if bouncesRemaining < 0 {
			return PathResult{Segments: segments}
		}

		scatter, didScatter := sc.Material(hit.MaterialID).Scatter(ray, *hit, sampler)
		if !didScatter {
			return PathResult{Segments: segments}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
		bouncesRemaining--
	}
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray, sc *scene.Scene) core.Vec3 {
	topColor, bottomColor := sc.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}
