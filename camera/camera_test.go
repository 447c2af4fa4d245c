package camera

import (
	"math"
	"testing"

	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/transform"
)

func TestGenerateRayCenterPointsForward(t *testing.T) {
	c2w, ok := transform.LookAt(rmath.NewVec3(0, 0, 0), rmath.NewVec3(0, 0, -1), rmath.NewVec3(0, 1, 0))
	if !ok {
		t.Fatal("look-at should succeed")
	}
	cam := NewPerspective(256, 256, float32(math.Pi)/2, 0.01, 1000, c2w)

	r := cam.GenerateRay(128, 128)
	if absf(r.Direction.X) > 1e-3 || absf(r.Direction.Y) > 1e-3 {
		t.Fatalf("center ray should point straight down -Z: %v", r.Direction)
	}
	if r.Direction.Z >= 0 {
		t.Fatalf("expected negative Z direction, got %v", r.Direction)
	}
	if absf(r.Direction.Length()-1) > 1e-4 {
		t.Fatalf("ray direction should be normalized: %v", r.Direction.Length())
	}
}

func TestGenerateRayOriginatesAtCamera(t *testing.T) {
	eye := rmath.NewVec3(1, 2, 3)
	c2w, _ := transform.LookAt(eye, rmath.NewVec3(0, 0, 0), rmath.NewVec3(0, 1, 0))
	cam := NewPerspective(64, 64, float32(math.Pi)/3, 0.1, 100, c2w)
	r := cam.GenerateRay(32, 32)
	if absf(r.Origin.X-eye.X) > 1e-3 || absf(r.Origin.Y-eye.Y) > 1e-3 || absf(r.Origin.Z-eye.Z) > 1e-3 {
		t.Fatalf("ray should originate at the eye: %v", r.Origin)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
