package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

const testMaterial core.MaterialID = 3

func assertVecNear(t *testing.T, what string, expected, got core.Vec3) {
	t.Helper()
	const tolerance = 1e-9
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %s %v, got %v", what, expected, got)
	}
}
