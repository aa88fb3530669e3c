package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	reflected := reflect(direction.Normalize(), hit.Normal)

	// The sign of d·n tells whether the ray leaves or enters the medium
	var outwardNormal core.Vec3
	var refractionRatio, cosine float64
	dn := direction.Dot(hit.Normal)
	if dn > 0 {
		outwardNormal = hit.Normal.Negate()
		refractionRatio = d.RefractiveIndex
		cosine = d.RefractiveIndex * dn / direction.Length()
	} else {
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractiveIndex
		cosine = -dn / direction.Length()
	}

	scattered := core.NewRay(hit.Point, reflected)
	if refracted, ok := refract(direction, outwardNormal, refractionRatio); ok {
		if sampler.Get1D() > Reflectance(cosine, d.RefractiveIndex) {
			scattered = core.NewRay(hit.Point, refracted)
		}
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}

// refract bends v through a surface with normal n using Snell's law.
// It returns false on total internal reflection.
func refract(v, n core.Vec3, etaiOverEtat float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - etaiOverEtat*etaiOverEtat*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}

	return uv.Subtract(n.Multiply(dt)).Multiply(etaiOverEtat).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
