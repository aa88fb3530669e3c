package core

import (
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)

	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Sample %v lies outside the unit sphere", p)
		}
		sum = sum.Add(p)
	}

	// The distribution is symmetric so the mean should be near the origin
	mean := sum.Divide(n)
	if mean.Length() > 0.02 {
		t.Errorf("Expected mean near origin, got %v", mean)
	}
}

func TestRandomInUnitSphere_RejectsOutsidePoints(t *testing.T) {
	// First triple maps to (1,1,1) which is rejected, second maps to (0,0,0)
	sampler := NewSequenceSampler(1, 1, 1, 0.5, 0.5, 0.5)

	p := RandomInUnitSphere(sampler)
	if p != NewVec3(0, 0, 0) {
		t.Errorf("Expected rejected corner sample to be skipped, got %v", p)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(3)

	for i := 0; i < 5000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Expected z = 0, got %v", p)
		}
		if p.Dot(p) >= 1.0 {
			t.Fatalf("Sample %v lies outside the unit disk", p)
		}
	}
}

func TestSequenceSampler_Wraps(t *testing.T) {
	sampler := NewSequenceSampler(0.1, 0.2, 0.3)

	got := []float64{sampler.Get1D(), sampler.Get1D(), sampler.Get1D(), sampler.Get1D()}
	expected := []float64{0.1, 0.2, 0.3, 0.1}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Draw %d: expected %f, got %f", i, expected[i], got[i])
		}
	}

	v := sampler.Get2D()
	if v.X != 0.2 || v.Y != 0.3 {
		t.Errorf("Expected Get2D to continue the sequence, got %v", v)
	}
}

func TestSeededSampler_IsReproducible(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get3D() != b.Get3D() {
			t.Fatal("Expected identical draws from identically seeded samplers")
		}
	}
}
