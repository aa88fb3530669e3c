package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestScene_NearestHitRegardlessOfOrder(t *testing.T) {
	near := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, 0)
	far := geometry.NewSphere(core.NewVec3(0, 0, -5), 2, 1)

	tests := []struct {
		name   string
		shapes []geometry.Shape
	}{
		{"near first", []geometry.Shape{near, far}},
		{"far first", []geometry.Shape{far, near}},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("test")
			s.AddMaterial(material.NewLambertian(core.NewVec3(1, 0, 0)))
			s.AddMaterial(material.NewLambertian(core.NewVec3(0, 1, 0)))
			s.Add(tt.shapes...)

			hit, isHit := s.Hit(ray)
			if !isHit {
				t.Fatal("expected a hit")
			}
			if hit.MaterialID != 0 {
				t.Errorf("expected the near sphere (material 0), got material %d", hit.MaterialID)
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("expected t=1.5, got %f", hit.T)
			}
		})
	}
}

func TestScene_EmptySceneMisses(t *testing.T) {
	s := New("empty")
	if _, isHit := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))); isHit {
		t.Error("expected empty scene to miss")
	}
}

func TestScene_TieKeepsFirstInserted(t *testing.T) {
	s := New("tie")
	s.AddMaterial(material.NewLambertian(core.NewVec3(1, 0, 0)))
	s.AddMaterial(material.NewLambertian(core.NewVec3(0, 1, 0)))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, 1),
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, 0),
	)

	hit, isHit := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("expected a hit")
	}
	if hit.MaterialID != 1 {
		t.Errorf("expected first inserted shape (material 1), got %d", hit.MaterialID)
	}
}

func TestScene_IgnoresHitsBehindEpsilon(t *testing.T) {
	s := New("epsilon")
	s.AddMaterial(material.NewLambertian(core.NewVec3(1, 1, 1)))
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0))

	// Starting on the surface and leaving it: no self intersection
	if _, isHit := s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))); isHit {
		t.Error("expected ray leaving the plane to miss")
	}
}

func TestScene_AddMaterialAssignsSequentialIDs(t *testing.T) {
	s := New("ids")
	for i := 0; i < 3; i++ {
		id := s.AddMaterial(material.NewDielectric(1.5))
		if id != core.MaterialID(i) {
			t.Errorf("expected id %d, got %d", i, id)
		}
	}
}

func TestScene_Validate(t *testing.T) {
	camera := geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 1),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
	}

	t.Run("no camera", func(t *testing.T) {
		s := New("v")
		if err := s.Validate(); !errors.Is(err, ErrNoCamera) {
			t.Errorf("expected ErrNoCamera, got %v", err)
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		s := New("v")
		s.SetCamera(camera)
		s.AddMaterial(material.NewLambertian(core.NewVec3(1, 1, 1)))
		s.Add(geometry.NewSphere(core.Vec3{}, 1, 0), geometry.NewSphere(core.Vec3{}, 1, 4))
		if err := s.Validate(); !errors.Is(err, ErrUnknownMaterial) {
			t.Errorf("expected ErrUnknownMaterial, got %v", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		s := New("v")
		s.SetCamera(camera)
		s.AddMaterial(material.NewLambertian(core.NewVec3(1, 1, 1)))
		s.Add(geometry.NewSphere(core.Vec3{}, 1, 0))
		if err := s.Validate(); err != nil {
			t.Errorf("expected valid scene, got %v", err)
		}
	})
}

func TestScene_CameraAspectFollowsImage(t *testing.T) {
	s := NewDefaultScene()
	if got := s.CameraConfig.AspectRatio; got != 2.0 {
		t.Errorf("expected aspect 2, got %f", got)
	}

	s.Resize(300, 300)
	if got := s.CameraConfig.AspectRatio; got != 1.0 {
		t.Errorf("expected aspect 1 after resize, got %f", got)
	}
	if s.Camera.Config().AspectRatio != 1.0 {
		t.Error("expected camera to be rebuilt after resize")
	}
}

func TestScene_DefaultSceneMatchesClassicLayout(t *testing.T) {
	s := NewDefaultScene()

	if len(s.Shapes) != 4 || len(s.Materials) != 4 {
		t.Fatalf("expected 4 shapes and 4 materials, got %d and %d", len(s.Shapes), len(s.Materials))
	}
	if s.SamplingConfig != DefaultSamplingConfig() {
		t.Errorf("unexpected sampling config %+v", s.SamplingConfig)
	}
	if s.Camera.LensRadius() != 0 {
		t.Errorf("expected pinhole camera, got lens radius %f", s.Camera.LensRadius())
	}
	// Focus distance resolves to the eye to look-at distance
	want := core.NewVec3(-0.5, 0.6, 1.0).Subtract(core.NewVec3(0, 0.5, 0)).Length()
	if math.Abs(s.Camera.Config().FocusDistance-want) > 1e-12 {
		t.Errorf("expected focus distance %f, got %f", want, s.Camera.Config().FocusDistance)
	}
}
