package light

import (
	"testing"

	"github.com/mario007/rtlib/color"
	rmath "github.com/mario007/rtlib/math"
)

func TestPointLightInverseSquareFalloff(t *testing.T) {
	l := NewPoint(color.New(1, 1, 1), rmath.NewPoint3(0, 0, 0))
	near, _ := l.Illuminate(rmath.NewPoint3(0, 0, 1))
	far, _ := l.Illuminate(rmath.NewPoint3(0, 0, 2))
	if near.Intensity.R <= far.Intensity.R {
		t.Fatal("intensity must fall off with distance")
	}
	if absf(near.Intensity.R-1) > 1e-5 {
		t.Fatalf("unit distance should give unit intensity, got %v", near.Intensity.R)
	}
	if absf(far.Intensity.R-0.25) > 1e-5 {
		t.Fatalf("distance 2 should give 1/4 intensity, got %v", far.Intensity.R)
	}
}

func TestPointLightDirection(t *testing.T) {
	l := NewPoint(color.New(1, 1, 1), rmath.NewPoint3(0, 0, 5))
	s, ok := l.Illuminate(rmath.NewPoint3(0, 0, 0))
	if !ok {
		t.Fatal("expected a sample")
	}
	if s.Wi.Z <= 0 {
		t.Fatalf("direction should point toward the light: %v", s.Wi)
	}
	if !l.IsDeltaLight() {
		t.Fatal("point light is a delta light")
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
