package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewGlassScene creates a hollow glass shell around a diffuse core, with a
// shallow depth of field focused on the shell
func NewGlassScene() *Scene {
	s := New("glass")
	s.SamplingConfig = SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 300,
		MaxDepth:        50,
	}

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	red := s.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)))
	silver := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0))
	teal := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.5, 0.5)))

	shellCenter := core.NewVec3(0, 0.5, -1)
	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(shellCenter, 0.5, glass),
		geometry.NewSphere(shellCenter, -0.45, glass),
		geometry.NewSphere(shellCenter, 0.25, red),
		geometry.NewSphere(core.NewVec3(1.3, 0.6, -2.2), 0.6, silver),
		geometry.NewSphere(core.NewVec3(-1.4, 0.4, -0.4), 0.4, teal),
	)

	s.SetCamera(geometry.CameraConfig{
		Center:   core.NewVec3(0, 0.9, 1.5),
		LookAt:   shellCenter,
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
		Aperture: 0.08,
	})

	return s
}
