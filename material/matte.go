package material

import (
	"math"

	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/geom"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/sampler"
	"github.com/mario007/rtlib/sampling"
)

const invPi = float32(1 / math.Pi)

// sameSide reports whether wo and wi lie on the same side of the surface
// defined by n — the reject condition spec.md §4.8 states for both
// Eval and SampleDir.
func sameSide(n, wo, wi rmath.Vec3) bool {
	return (n.Dot(wi)) * (n.Dot(wo)) > 0
}

// Matte is a Lambertian diffuse BSDF: eval = reflectance/pi,
// pdf_w = |n.wi|/pi.
type Matte struct {
	Reflectance color.RGB
}

func NewMatte(reflectance color.RGB) Matte {
	return Matte{Reflectance: reflectance}
}

func (m Matte) Eval(wo, n, wi rmath.Vec3) (EvalSample, bool) {
	if !sameSide(n, wo, wi) {
		return EvalSample{}, false
	}
	return EvalSample{
		Color: m.Reflectance.Mul(invPi),
		PdfW:  absf(n.Dot(wi)) * invPi,
	}, true
}

func (m Matte) SampleDir(wo, n rmath.Vec3, s sampler.Sampler) (Sample, bool) {
	u1, u2 := s.Next2D()
	dir := sampling.CosHemisphere(u1, u2)
	frame := geom.FrameFromNormal(n)
	wi := frame.ToWorld(dir.Dir).Normalize()
	if !sameSide(n, wo, wi) {
		return Sample{}, false
	}
	if dir.PdfW == 0 {
		return Sample{}, false
	}
	return Sample{Wi: wi, Color: m.Reflectance.Mul(invPi), PdfW: dir.PdfW}, true
}

func (m Matte) Emission(wo, n rmath.Vec3, backFace bool) color.RGB {
	return color.Black
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
