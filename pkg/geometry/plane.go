package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3       // A point on the plane
	Normal   core.Vec3       // Unit normal
	Material core.MaterialID // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.MaterialID) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t, normal, ok := p.intersect(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	return &core.HitRecord{
		T:          t,
		Point:      ray.At(t),
		Normal:     normal,
		MaterialID: p.Material,
	}, true
}

// MaterialIndex returns the plane's material
func (p *Plane) MaterialIndex() core.MaterialID {
	return p.Material
}

// intersect solves the ray/plane equation and orients the normal.
// The returned normal faces against the incoming ray for hits in front of the
// ray origin and is negated for hits behind it.
func (p *Plane) intersect(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	denominator := p.Normal.Dot(ray.Direction)
	if math.Abs(denominator) <= ParallelEpsilon {
		return 0, core.Vec3{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (normal · ray_direction)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return 0, core.Vec3{}, false
	}

	normal := p.Normal
	if denominator > 0 {
		normal = normal.Negate()
	}
	if t < 0 {
		normal = normal.Negate()
	}

	return t, normal, true
}
