package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates the classic scene: a green ground plane, a fuzzy gold
// sphere, a glass sphere and a large diffuse blue sphere behind them
func NewDefaultScene() *Scene {
	s := New("default")

	grass := s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.8, 0.4)))
	gold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	blue := s.AddMaterial(material.NewLambertian(core.NewVec3(0.3, 0.3, 0.9)))

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), grass),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, gold),
		// Negative radius: the glass sphere's normals point inwards
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), -0.5, glass),
		geometry.NewSphere(core.NewVec3(-1.25, 1.6, -2), 0.8, blue),
	)

	s.SetCamera(geometry.CameraConfig{
		Center: core.NewVec3(-0.5, 0.6, 1.0),
		LookAt: core.NewVec3(0, 0.5, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   72,
	})

	return s
}
