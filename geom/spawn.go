package geom

import (
	"math"

	rmath "github.com/mario007/rtlib/math"
)

// offsetAxis nudges one coordinate of a surface point away from the
// surface along the matching normal component, per spec.md §4.13: for
// |p| < 1/32 (too close to zero for the integer-bit trick to move
// anything meaningful), add a small epsilon scaled by n; otherwise bump
// p's raw bit pattern by floor(256*|n|) representable floats, in the
// direction of n's sign. This is the standard floating-point shadow-acne fix: a ray
// spawned exactly on a surface can otherwise re-intersect that same
// surface due to rounding in the hit-point reconstruction.
func offsetAxis(p, n float32) float32 {
	const eps = float32(1.0 / 65536.0)
	if absf32(p) < 1.0/32.0 {
		return p + eps*n
	}
	bits := math.Float32bits(p)
	delta := uint32(math.Abs(float64(256 * n)))
	if p >= 0 {
		if n >= 0 {
			return math.Float32frombits(bits + delta)
		}
		return math.Float32frombits(bits - delta)
	}
	if n >= 0 {
		return math.Float32frombits(bits - delta)
	}
	return math.Float32frombits(bits + delta)
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// offsetOrigin nudges p away from the surface with normal n.
func offsetOrigin(p rmath.Point3, n rmath.Vec3) rmath.Point3 {
	return rmath.NewPoint3(offsetAxis(p.X, n.X), offsetAxis(p.Y, n.Y), offsetAxis(p.Z, n.Z))
}

// SpawnRay builds a ray leaving surface point p toward wi, using the
// surface normal n flipped to wi's side before offsetting so the ray
// always departs on the correct side of the surface, per spec.md §4.13.
func SpawnRay(p rmath.Point3, n rmath.Vec3, wi rmath.Vec3) Ray {
	side := n
	if wi.Dot(n) < 0 {
		side = n.Negate()
	}
	return Ray{Origin: offsetOrigin(p, side), Direction: wi}
}
