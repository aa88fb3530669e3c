package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PathResult is the outcome of tracing one camera path
type PathResult struct {
	Color    core.Vec3 // Estimated radiance, unclamped
	Segments int       // Number of scene queries made along the path
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. A hit with
	// bouncesRemaining below zero contributes black.
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, bouncesRemaining int) core.Vec3

	// Trace is RayColor plus bookkeeping for render statistics
	Trace(ray core.Ray, scene *scene.Scene, sampler core.Sampler, bouncesRemaining int) PathResult
}
