package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
	// MaterialIndex returns the scene material this shape is made of
	MaterialIndex() core.MaterialID
}

// ParallelEpsilon is the smallest |normal·direction| for which a ray is not
// considered parallel to a plane
const ParallelEpsilon = 0.001
