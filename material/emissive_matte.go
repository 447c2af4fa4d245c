package material

import (
	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/geom"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/sampler"
	"github.com/mario007/rtlib/sampling"
)

// EmissiveMatte is a Matte BSDF plus constant front-face emission, per
// spec.md §4.8.
type EmissiveMatte struct {
	Reflectance color.RGB
	Emissive    color.RGB
}

func NewEmissiveMatte(reflectance, emissive color.RGB) EmissiveMatte {
	return EmissiveMatte{Reflectance: reflectance, Emissive: emissive}
}

func (m EmissiveMatte) Eval(wo, n, wi rmath.Vec3) (EvalSample, bool) {
	if !sameSide(n, wo, wi) {
		return EvalSample{}, false
	}
	return EvalSample{
		Color: m.Reflectance.Mul(invPi),
		PdfW:  absf(n.Dot(wi)) * invPi,
	}, true
}

func (m EmissiveMatte) SampleDir(wo, n rmath.Vec3, s sampler.Sampler) (Sample, bool) {
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

// Emission returns Emissive from the front face and zero from the back
// face — emissive-matte is one-sided, per spec.md §4.8.
func (m EmissiveMatte) Emission(wo, n rmath.Vec3, backFace bool) color.RGB {
	if backFace {
		return color.Black
	}
	return m.Emissive
}
