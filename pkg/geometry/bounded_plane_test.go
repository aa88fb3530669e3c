package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestBoundedPlane_Hit_Extents(t *testing.T) {
	plane := NewBoundedPlane(core.NewVec3(1, 0, 1), core.NewVec3(0, 1, 0), 4, 2, testMaterial)

	tests := []struct {
		name     string
		x, z     float64
		expected bool
	}{
		{"center", 1, 1, true},
		{"inside corner", 2.9, 1.9, true},
		{"on width edge", 3, 1, true},
		{"past width", 3.1, 1, false},
		{"past negative width", -1.1, 1, false},
		{"past depth", 1, 2.1, false},
		{"past negative depth", 1, -0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tt.x, 2, tt.z), core.NewVec3(0, -1, 0))
			hit, isHit := plane.Hit(ray, 0.001, math.Inf(1))
			if isHit != tt.expected {
				t.Fatalf("Expected hit=%t at (%f, %f), got %t", tt.expected, tt.x, tt.z, isHit)
			}
			if isHit {
				assertVecNear(t, "point", core.NewVec3(tt.x, 0, tt.z), hit.Point)
				assertVecNear(t, "normal", core.NewVec3(0, 1, 0), hit.Normal)
			}
		})
	}
}

func TestBoundedPlane_Hit_VerticalPlane(t *testing.T) {
	// A wall facing +X: local x runs along world Y, local z along world Z
	plane := NewBoundedPlane(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 2, 6, testMaterial)

	inside := core.NewRay(core.NewVec3(5, 0.9, 2.9), core.NewVec3(-1, 0, 0))
	hit, isHit := plane.Hit(inside, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit inside the wall extents")
	}
	assertVecNear(t, "normal", core.NewVec3(1, 0, 0), hit.Normal)

	outside := core.NewRay(core.NewVec3(5, 1.1, 0), core.NewVec3(-1, 0, 0))
	if _, isHit := plane.Hit(outside, 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss above the wall extents")
	}
}

func TestBoundedPlane_Hit_Parallel(t *testing.T) {
	plane := NewBoundedPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 2, 2, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1))

	if _, isHit := plane.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected parallel ray to miss")
	}
}
