package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Box represents an axis-aligned box centred on Center
type Box struct {
	Center   core.Vec3       // Center point of the box
	Width    float64         // Extent along X
	Height   float64         // Extent along Y
	Depth    float64         // Extent along Z
	Material core.MaterialID // Material for all faces
}

// NewBox creates a new axis-aligned box
func NewBox(center core.Vec3, width, height, depth float64, material core.MaterialID) *Box {
	return &Box{
		Center:   center,
		Width:    width,
		Height:   height,
		Depth:    depth,
		Material: material,
	}
}

// Hit tests a ray against the box using the slab method
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	half := b.halfExtents()
	lo := b.Center.Subtract(half)
	hi := b.Center.Add(half)

	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := component(ray.Origin, axis)
		direction := component(ray.Direction, axis)

		// A ray parallel to this slab can only hit if it starts inside it
		if direction == 0 {
			if origin < component(lo, axis) || origin > component(hi, axis) {
				return nil, false
			}
			continue
		}

		t0 := (component(lo, axis) - origin) / direction
		t1 := (component(hi, axis) - origin) / direction

		tNear = math.Max(tNear, math.Min(t0, t1))
		tFar = math.Min(tFar, math.Max(t0, t1))
	}

	if tNear > tFar || tNear <= tMin || tNear >= tMax {
		return nil, false
	}

	point := ray.At(tNear)
	return &core.HitRecord{
		T:          tNear,
		Point:      point,
		Normal:     b.faceNormal(point),
		MaterialID: b.Material,
	}, true
}

// MaterialIndex returns the box's material
func (b *Box) MaterialIndex() core.MaterialID {
	return b.Material
}

func (b *Box) halfExtents() core.Vec3 {
	return core.NewVec3(b.Width/2, b.Height/2, b.Depth/2)
}

// faceNormal returns the outward normal of the face containing point.
// The face is the axis on which the point sits closest to the boundary,
// relative to the half extent along that axis.
func (b *Box) faceNormal(point core.Vec3) core.Vec3 {
	offset := point.Subtract(b.Center)
	half := b.halfExtents()

	bestAxis := 0
	bestRatio := -1.0
	for axis := 0; axis < 3; axis++ {
		extent := component(half, axis)
		if extent <= 0 {
			continue
		}
		ratio := math.Abs(component(offset, axis)) / extent
		if ratio > bestRatio {
			bestRatio = ratio
			bestAxis = axis
		}
	}

	var normal core.Vec3
	sign := math.Copysign(1, component(offset, bestAxis))
	switch bestAxis {
	case 0:
		normal = core.NewVec3(sign, 0, 0)
	case 1:
		normal = core.NewVec3(0, sign, 0)
	default:
		normal = core.NewVec3(0, 0, sign)
	}
	return normal
}

// component returns the x, y or z component of v for axis 0, 1 or 2
func component(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
