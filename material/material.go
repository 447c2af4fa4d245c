// Package material implements the BSDF contract (Lambertian matte and
// emissive matte) shading evaluates against. Grounded on
// original_source/src/materials.rs.
package material

import (
	"github.com/mario007/rtlib/color"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/sampler"
)

// EvalSample is the result of Eval: the BSDF value and its solid-angle pdf.
type EvalSample struct {
	Color color.RGB
	PdfW  float32
}

// Sample is the result of SampleDir: a drawn outgoing direction plus the BSDF
// value and pdf at that direction.
type Sample struct {
	Wi    rmath.Vec3
	Color color.RGB
	PdfW  float32
}

// Material is the per-primitive shading contract, per spec.md §4.8.
type Material interface {
	// Eval returns the BSDF value and pdf for the (wo, wi) direction pair
	// around the shading normal n, or ok=false if wo/wi lie on opposite
	// sides of the surface.
	Eval(wo rmath.Vec3, n rmath.Vec3, wi rmath.Vec3) (EvalSample, bool)
	// SampleDir draws an outgoing direction given the outgoing view
	// direction wo and shading normal n, or ok=false if the draw was
	// degenerate (zero pdf or a rejected back-side sample).
	SampleDir(wo rmath.Vec3, n rmath.Vec3, s sampler.Sampler) (Sample, bool)
	// Emission returns the material's self-emitted radiance; zero for
	// non-emissive materials, and zero from the back face of an emissive
	// one.
	Emission(wo rmath.Vec3, n rmath.Vec3, backFace bool) color.RGB
}
