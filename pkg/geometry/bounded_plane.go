package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BoundedPlane is a rectangular patch of a plane, centred on its origin.
// Width is measured along the plane's local x axis and depth along its local z
// axis. For a horizontal plane these are the world X and Z axes.
type BoundedPlane struct {
	Plane
	Width float64
	Depth float64

	tangentX core.Vec3
	tangentZ core.Vec3
}

// NewBoundedPlane creates a new bounded plane
func NewBoundedPlane(origin, normal core.Vec3, width, depth float64, material core.MaterialID) *BoundedPlane {
	plane := NewPlane(origin, normal, material)
	tangentX, tangentZ := planeTangents(plane.Normal)

	return &BoundedPlane{
		Plane:    *plane,
		Width:    width,
		Depth:    depth,
		tangentX: tangentX,
		tangentZ: tangentZ,
	}
}

// Hit tests if a ray intersects with the plane inside its extents
func (b *BoundedPlane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t, normal, ok := b.intersect(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	point := ray.At(t)
	offset := point.Subtract(b.Point)
	if math.Abs(offset.Dot(b.tangentX)) > b.Width/2 || math.Abs(offset.Dot(b.tangentZ)) > b.Depth/2 {
		return nil, false
	}

	return &core.HitRecord{
		T:          t,
		Point:      point,
		Normal:     normal,
		MaterialID: b.Material,
	}, true
}

// planeTangents builds the local x and z axes of a plane with the given unit normal.
// For normal (0,1,0) this yields world X and Z.
func planeTangents(normal core.Vec3) (core.Vec3, core.Vec3) {
	reference := core.NewVec3(1, 0, 0)
	if math.Abs(normal.X) > 0.9 {
		reference = core.NewVec3(0, 1, 0)
	}

	tangentZ := reference.Cross(normal).Normalize()
	tangentX := normal.Cross(tangentZ)
	return tangentX, tangentZ
}
