// Package geom provides the ray, AABB and low-level intersection kernels
// the BVH and primitive tables are built on. Grounded on
// mrigankad-gorenderengine/editor/raycast.go (Ray, AABB, the slab test and
// the Möller-Trumbore triangle test), generalized from that file's
// editor-only mouse-picking use to the full rendering path.
package geom

import rmath "github.com/mario007/rtlib/math"

// Ray is a parametric ray; Direction is assumed normalized.
type Ray struct {
	Origin    rmath.Point3
	Direction rmath.Vec3
}

func (r Ray) At(t float32) rmath.Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// InvDirection precomputes 1/direction for the branchless AABB slab test.
// Components of Direction that are zero produce ±Inf, which the slab test
// is designed to tolerate (see AABB.Hit).
func (r Ray) InvDirection() rmath.Vec3 {
	return rmath.NewVec3(1/r.Direction.X, 1/r.Direction.Y, 1/r.Direction.Z)
}
