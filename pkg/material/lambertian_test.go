package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_AttenuationIsAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.4, 0.8, 0.4)
	lambert := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	hit := core.HitRecord{
		Point:  core.NewVec3(1, 0, -2),
		Normal: core.NewVec3(0, 1, 0),
		T:      2.5,
	}
	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0.2, -1, -0.4)),
		core.NewRay(core.NewVec3(9, 1, 9), core.NewVec3(-8, -1, -11)),
	}

	directions := make(map[core.Vec3]bool)
	for i := 0; i < 200; i++ {
		result, scattered := lambert.Scatter(rays[i%len(rays)], hit, sampler)
		if !scattered {
			t.Fatal("Lambertian should never absorb")
		}
		if result.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point {
			t.Fatalf("Expected scattered ray to start at %v, got %v", hit.Point, result.Scattered.Origin)
		}
		if result.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered direction %v points into the surface", result.Scattered.Direction)
		}
		directions[result.Scattered.Direction] = true
	}

	if len(directions) < 100 {
		t.Errorf("Expected scattered directions to vary, got only %d distinct", len(directions))
	}
}

func TestLambertian_DeterministicTarget(t *testing.T) {
	lambert := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	// (0.5, 0.75, 0.5) maps to (0, 0.5, 0) inside the unit sphere
	sampler := core.NewSequenceSampler(0.5, 0.75, 0.5)

	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	result, _ := lambert.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, sampler)

	expected := core.NewVec3(0, 1.5, 0)
	if result.Scattered.Direction != expected {
		t.Errorf("Expected direction %v, got %v", expected, result.Scattered.Direction)
	}
}
