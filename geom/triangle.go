package geom

import rmath "github.com/mario007/rtlib/math"

// IntersectTriangle solves the barycentric system via Cramer's rule with
// shared sub-expressions (spec.md §4.5). Rejects a zero denominator
// (degenerate/parallel triangle), any out-of-range barycentric coordinate,
// or t < tMin. Grounded on
// mrigankad-gorenderengine/editor/raycast.go's mollerTrumbore, adapted to
// the Cramer's-rule shared-subexpression form and tMin/tMax bounds.
func IntersectTriangle(r Ray, v0, v1, v2 rmath.Point3, tMin, tMax float32) (t, u, v float32, hit bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -1e-12 && det < 1e-12 {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := r.Origin.Sub(v0)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(edge1)
	v = r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = edge2.Dot(qvec) * invDet
	if t < tMin || t > tMax {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// TriangleNormal returns the unnormalized geometric normal
// (v1-v0) x (v2-v0); callers normalize.
func TriangleNormal(v0, v1, v2 rmath.Point3) rmath.Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0))
}
