// Package sampling provides local-frame direction sampling routines shared
// by materials and integrators. Grounded on original_source/src/samplings.rs.
package sampling

import (
	"math"

	rmath "github.com/mario007/rtlib/math"
)

const invPi = float32(1 / math.Pi)

// Direction is a sampled local-frame direction with its solid-angle pdf.
type Direction struct {
	Dir  rmath.Vec3
	PdfW float32
}

// CosHemisphere draws a cosine-weighted direction over the local +Z
// hemisphere via Malley's method (polar mapping, no rejection).
func CosHemisphere(u1, u2 float32) Direction {
	term1 := 2 * float32(math.Pi) * u1
	term2 := float32(math.Sqrt(float64(1 - u2)))
	x := float32(math.Cos(float64(term1))) * term2
	y := float32(math.Sin(float64(term1))) * term2
	z := float32(math.Sqrt(float64(u2)))
	return Direction{Dir: rmath.NewVec3(x, y, z), PdfW: z * invPi}
}

// UniformHemisphere draws a direction uniformly over the local +Z
// hemisphere.
func UniformHemisphere(u1, u2 float32) Direction {
	term1 := 2 * float32(math.Pi) * u2
	term2 := float32(math.Sqrt(float64(1 - u1*u1)))
	x := float32(math.Cos(float64(term1))) * term2
	y := float32(math.Sin(float64(term1))) * term2
	z := u1
	return Direction{Dir: rmath.NewVec3(x, y, z), PdfW: 0.5 * invPi}
}

// UniformSphere draws a direction uniformly over the full sphere.
func UniformSphere(u1, u2 float32) Direction {
	term1 := 2 * float32(math.Pi) * u1
	term2 := 2 * float32(math.Sqrt(float64(u2-u2*u2)))
	x := float32(math.Cos(float64(term1))) * term2
	y := float32(math.Sin(float64(term1))) * term2
	z := 1 - 2*u2
	return Direction{Dir: rmath.NewVec3(x, y, z), PdfW: 0.25 * invPi}
}
