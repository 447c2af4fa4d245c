package integrator

import (
	"math"

	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/geom"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/sampler"
	"github.com/mario007/rtlib/scenepkg"
)

// DirectLighting evaluates the single-bounce contribution of every light
// directly visible from the first hit, per spec.md §4.13. Grounded on
// original_source/src/integrators.rs's radiance_direct_lgt.
type DirectLighting struct{}

// pdfAtoW converts an area-measure pdf to the matching solid-angle pdf,
// per original_source/src/integrators.rs's pdfa_to_w.
func pdfAtoW(pdfA, dist, cosThere float32) float32 {
	return pdfA * (dist * dist) / absf(cosThere)
}

func (DirectLighting) Li(ray geom.Ray, scene *scenepkg.Scene, s sampler.Sampler) color.RGB {
	si, hit := scene.Geometry.Intersect(ray, 1e-4, math.MaxFloat32)
	if !hit {
		return color.Black
	}

	wo := ray.Direction.Negate()
	acc := color.Black
	mat := scene.Materials[si.MaterialID]

	for _, lt := range scene.Lights {
		ls, ok := lt.Illuminate(si.HitPoint)
		if !ok {
			continue
		}
		if !isVisible(si.HitPoint, si.Normal, ls.Position, scene) {
			continue
		}
		eval, ok := mat.Eval(wo, si.Normal, ls.Wi)
		if !ok {
			continue
		}
		cosa := absf(ls.Wi.Dot(si.Normal))
		dist := ls.Position.Sub(si.HitPoint).Length()
		pdf := pdfAtoW(ls.PdfA, dist, ls.CosTheta)
		acc = acc.Add(eval.Color.MulRGB(ls.Intensity).Mul(cosa / pdf))
	}
	return acc
}

// isVisible tests an unoccluded shadow ray from p toward target, per
// original_source/src/integrators.rs's visible.
func isVisible(p rmath.Point3, n rmath.Vec3, target rmath.Point3, scene *scenepkg.Scene) bool {
	toTarget := target.Sub(p)
	dist := toTarget.Length()
	wi := toTarget.Normalize()
	shadowRay := geom.SpawnRay(p, n, wi)
	return !scene.Geometry.IntersectP(shadowRay, 1e-4, dist-1e-3)
}
