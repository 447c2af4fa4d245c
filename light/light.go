// Package light implements the light-sampling contract. Grounded on
// original_source/src/lights.rs.
package light

import (
	"github.com/mario007/rtlib/color"
	rmath "github.com/mario007/rtlib/math"
)

// Sample is the result of Illuminate: incident radiance, the light's
// world-space position, the direction toward it, and the area-measure pdf
// and foreshortening term for that position.
type Sample struct {
	Intensity color.RGB
	Position  rmath.Point3
	Wi        rmath.Vec3
	PdfA      float32
	CosTheta  float32
}

// Light is the per-light illumination contract, per spec.md §4.9.
type Light interface {
	// Illuminate returns a light sample toward the shading point p, or
	// ok=false if the light contributes nothing there.
	Illuminate(p rmath.Point3) (Sample, bool)
	// IsDeltaLight reports whether the light occupies zero measure (a
	// point/directional light), excluding it from multiple-importance
	// sampling against BSDF sampling.
	IsDeltaLight() bool
}

// Point is a delta point light: intensity falls off with inverse-square
// distance, with unit area pdf and foreshortening (spec.md §4.9).
type Point struct {
	Intensity color.RGB
	Position  rmath.Point3
}

func NewPoint(intensity color.RGB, position rmath.Point3) Point {
	return Point{Intensity: intensity, Position: position}
}

func (p Point) Illuminate(hit rmath.Point3) (Sample, bool) {
	toLight := p.Position.Sub(hit)
	distSqr := toLight.LengthSqr()
	wi := toLight.Normalize()
	return Sample{
		Intensity: p.Intensity.Mul(1 / distSqr),
		Position:  p.Position,
		Wi:        wi,
		PdfA:      1,
		CosTheta:  1,
	}, true
}

func (p Point) IsDeltaLight() bool { return true }
