package integrator

import (
	"math"

	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/geom"
	"github.com/mario007/rtlib/sampler"
	"github.com/mario007/rtlib/sampling"
	"github.com/mario007/rtlib/scenepkg"
)

// RandomWalk is a depth-limited, non-Russian-roulette unidirectional path
// tracer: every bounce samples a direction uniformly on the sphere around
// the shading normal rather than importance-sampling the BSDF, per
// spec.md §4.13. Grounded on
// original_source/src/integrators.rs's random_walk.
type RandomWalk struct {
	MaxDepth int
}

func (rw RandomWalk) Li(ray geom.Ray, scene *scenepkg.Scene, s sampler.Sampler) color.RGB {
	return rw.li(ray, scene, s, 0)
}

func (rw RandomWalk) li(ray geom.Ray, scene *scenepkg.Scene, s sampler.Sampler, depth int) color.RGB {
	si, hit := scene.Geometry.Intersect(ray, 1e-4, math.MaxFloat32)
	if !hit {
		return color.Black
	}

	mat := scene.Materials[si.MaterialID]
	wo := ray.Direction.Negate()
	le := mat.Emission(wo, si.Normal, si.BackFace)

	if depth == rw.MaxDepth {
		return le
	}

	u1, u2 := s.Next2D()
	dir := sampling.UniformSphere(u1, u2)
	wi := geom.FrameFromNormal(si.Normal).ToWorld(dir.Dir).Normalize()

	eval, ok := mat.Eval(wo, si.Normal, wi)
	if !ok {
		return le
	}
	fcos := eval.Color.Mul(absf(si.Normal.Dot(wi)))

	newRay := geom.SpawnRay(si.HitPoint, si.Normal, wi)
	incoming := rw.li(newRay, scene, s, depth+1)
	return le.Add(fcos.MulRGB(incoming).Mul(1 / dir.PdfW))
}
