package core

// MaterialID indexes a material in the owning scene's material table
type MaterialID int

// HitRecord contains information about a ray-object intersection.
// It is only valid for the query that produced it; the MaterialID refers to
// the scene that was queried and must not be resolved against any other.
type HitRecord struct {
	Point      Vec3       // Point of intersection
	Normal     Vec3       // Unit surface normal, oriented per shape
	T          float64    // Parameter t along the ray
	MaterialID MaterialID // Material of the hit object
}

// HitEpsilon is the minimum parametric distance accepted by scene queries.
// It keeps scattered rays from re-hitting the surface they leave.
const HitEpsilon = 0.001
