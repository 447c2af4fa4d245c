package integrator

import (
	"math"

	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/geom"
	"github.com/mario007/rtlib/sampler"
	"github.com/mario007/rtlib/sampling"
	"github.com/mario007/rtlib/scenepkg"
)

// AmbientOcclusion estimates AO(p) = 1/pi * integral_w V(p,w) * |n.w| dw,
// per spec.md §4.13. Grounded directly on
// original_source/src/integrators.rs's ambient_occlusion.
type AmbientOcclusion struct {
	CosSample   bool
	MaxDistance float32
}

func (a AmbientOcclusion) Li(ray geom.Ray, scene *scenepkg.Scene, s sampler.Sampler) color.RGB {
	si, hit := scene.Geometry.Intersect(ray, 1e-4, math.MaxFloat32)
	if !hit {
		return color.New(1, 1, 1)
	}

	u, v := s.Next2D()
	var dir sampling.Direction
	if a.CosSample {
		dir = sampling.CosHemisphere(u, v)
	} else {
		dir = sampling.UniformHemisphere(u, v)
	}
	if dir.PdfW == 0 {
		return color.Black
	}

	wi := geom.FrameFromNormal(si.Normal).ToWorld(dir.Dir).Normalize()
	shadowRay := geom.SpawnRay(si.HitPoint, si.Normal, wi)

	shadowSI, shadowHit := scene.Geometry.Intersect(shadowRay, 1e-4, math.MaxFloat32)
	if shadowHit && shadowSI.T < a.MaxDistance {
		return color.Black
	}

	cosa := absf(wi.Dot(si.Normal))
	denom := dir.PdfW * math.Pi
	return color.New(1, 1, 1).Mul(cosa / denom)
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
