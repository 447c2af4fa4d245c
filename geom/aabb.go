package geom

import (
	"math"

	rmath "github.com/mario007/rtlib/math"
)

// AABB is an axis-aligned bounding box with Min <= Max componentwise.
type AABB struct {
	Min, Max rmath.Point3
}

// EmptyAABB returns a box whose union with anything yields that thing —
// Min at +Inf, Max at -Inf.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: rmath.NewPoint3(inf, inf, inf),
		Max: rmath.NewPoint3(-inf, -inf, -inf),
	}
}

func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: rmath.MinPoint3(b.Min, other.Min),
		Max: rmath.MaxPoint3(b.Max, other.Max),
	}
}

func (b AABB) UnionPoint(p rmath.Point3) AABB {
	return AABB{
		Min: rmath.MinPoint3(b.Min, p),
		Max: rmath.MaxPoint3(b.Max, p),
	}
}

func (b AABB) Centroid() rmath.Point3 {
	return rmath.NewPoint3(
		(b.Min.X+b.Max.X)*0.5,
		(b.Min.Y+b.Max.Y)*0.5,
		(b.Min.Z+b.Max.Z)*0.5,
	)
}

// Area returns the box's surface area, or 0 for an inverted box. The BVH
// does not use it (spec.md chooses a midpoint split); Area is kept as a
// general-purpose box query named in spec.md §3.
func (b AABB) Area() float32 {
	d := b.Max.Sub(b.Min)
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// LongestAxis returns 0, 1 or 2 for X, Y, Z.
func (b AABB) LongestAxis() int {
	d := b.Max.Sub(b.Min)
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

func (b AABB) AxisValue(axis int, p rmath.Point3) float32 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Hit tests the ray (given its precomputed inverse direction) against the
// box using Tavianator's branchless slab method: min/max are applied in
// the order that stays NaN-free even when invDir holds ±Inf, and a ray
// that exactly grazes a face counts as a hit (spec.md §8 property 5).
func (b AABB) Hit(r Ray, invDir rmath.Vec3, tMin, tMax float32) bool {
	near, far := slab((b.Min.X-r.Origin.X)*invDir.X, (b.Max.X-r.Origin.X)*invDir.X)
	tMin = maxNaNSafe(tMin, near)
	tMax = minNaNSafe(tMax, far)

	near, far = slab((b.Min.Y-r.Origin.Y)*invDir.Y, (b.Max.Y-r.Origin.Y)*invDir.Y)
	tMin = maxNaNSafe(tMin, near)
	tMax = minNaNSafe(tMax, far)

	near, far = slab((b.Min.Z-r.Origin.Z)*invDir.Z, (b.Max.Z-r.Origin.Z)*invDir.Z)
	tMin = maxNaNSafe(tMin, near)
	tMax = minNaNSafe(tMax, far)

	return tMax >= tMin
}

// slab orders one axis's two plane distances. A 0*Inf product (the ray is
// parallel to the axis and its origin lies on a face plane) is NaN; then
// both results are NaN, which the outer maxNaNSafe/minNaNSafe ignore, so
// that axis leaves the running interval unchanged.
func slab(t0, t1 float32) (near, far float32) {
	if t0 != t0 || t1 != t1 {
		nan := float32(math.NaN())
		return nan, nan
	}
	return minNaNSafe(t0, t1), maxNaNSafe(t0, t1)
}

// minNaNSafe/maxNaNSafe return a when b is NaN, so a NaN second argument
// never replaces the running bound.
func minNaNSafe(a, b float32) float32 {
	if b < a {
		return b
	}
	return a
}

func maxNaNSafe(a, b float32) float32 {
	if b > a {
		return b
	}
	return a
}
