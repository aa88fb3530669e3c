package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBoxesScene creates three boxes of different materials on a finite floor
func NewBoxesScene() *Scene {
	s := New("boxes")
	s.SamplingConfig = SamplingConfig{
		Width:           400,
		Height:          300,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}
	s.TopColor = core.NewVec3(0.6, 0.75, 1.0)

	floor := s.AddMaterial(material.NewLambertian(core.NewVec3(0.75, 0.7, 0.6)))
	clay := s.AddMaterial(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.2)))
	steel := s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.7, 0.75), 0.05))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	mirror := s.AddMaterial(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0))

	s.Add(
		geometry.NewBoundedPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 6, 5, floor),
		geometry.NewBox(core.NewVec3(-1.4, 0.5, -1.2), 1, 1, 1, clay),
		geometry.NewBox(core.NewVec3(0, 0.75, -1.6), 1, 1.5, 0.8, steel),
		geometry.NewBox(core.NewVec3(1.3, 0.4, -0.8), 0.8, 0.8, 0.8, glass),
		geometry.NewSphere(core.NewVec3(-1.4, 1.35, -1.2), 0.35, mirror),
		// Back wall: 6 wide along X, 3 tall along Y
		geometry.NewBoundedPlane(core.NewVec3(0, 1.5, -3.5), core.NewVec3(0, 0, 1), 6, 3, floor),
	)

	s.SetCamera(geometry.CameraConfig{
		Center: core.NewVec3(0.5, 2.2, 3.2),
		LookAt: core.NewVec3(0, 0.5, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40,
	})

	return s
}
