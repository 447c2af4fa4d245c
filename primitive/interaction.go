// Package primitive houses the per-kind primitive tables (spheres,
// triangle meshes, each entry with an optional transform), and the Geometry
// aggregate that unifies them behind a single intersect call. Grounded on
// spec.md §4.6/§4.7 and, for the broad/narrow-phase intersection shape,
// editor/raycast.go's RaycastScene.
package primitive

import (
	rmath "github.com/mario007/rtlib/math"
)

// MaterialID indexes into the scene's material list; lights that carry
// geometry (none in this build) would use the same space.
type MaterialID int

// SurfaceInteraction describes where and how a ray hit the scene, per
// spec.md §3. Normal always points against the incident ray direction;
// BackFace records whether the geometric normal had to be flipped to make
// that true.
type SurfaceInteraction struct {
	T          float32
	HitPoint   rmath.Point3
	Normal     rmath.Vec3
	MaterialID MaterialID
	BackFace   bool
}

// orientNormal flips geomNormal to face against rayDir if needed, and
// reports whether it had to.
func orientNormal(geomNormal, rayDir rmath.Vec3) (rmath.Vec3, bool) {
	if rayDir.Negate().Dot(geomNormal) < 0 {
		return geomNormal.Negate(), true
	}
	return geomNormal, false
}
