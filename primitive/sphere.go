package primitive

import (
	"github.com/mario007/rtlib/bvh"
	"github.com/mario007/rtlib/geom"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/transform"
)

type sphereEntry struct {
	center     rmath.Point3
	radius     float32
	materialID MaterialID
	xform      *transform.Transformation // nil: object space == world space
}

// SphereTable holds every sphere primitive in the scene plus the BVH built
// over their world-space bounds. Grounded on spec.md §3/§4.7.
type SphereTable struct {
	entries []sphereEntry
	tree    *bvh.BVH
}

// Add registers a sphere given in object space (object space is world
// space when xform is nil) and returns its primitive index.
func (s *SphereTable) Add(center rmath.Point3, radius float32, materialID MaterialID, xform *transform.Transformation) int {
	s.entries = append(s.entries, sphereEntry{center: center, radius: radius, materialID: materialID, xform: xform})
	return len(s.entries) - 1
}

func (s *SphereTable) Len() int { return len(s.entries) }

// MaterialIDs returns each sphere's material id, in Add order.
func (s *SphereTable) MaterialIDs() []MaterialID {
	out := make([]MaterialID, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.materialID
	}
	return out
}

func (s *SphereTable) worldBounds(i int) geom.AABB {
	e := s.entries[i]
	r := rmath.NewVec3(e.radius, e.radius, e.radius)
	box := geom.AABB{Min: e.center.Add(r.Negate()), Max: e.center.Add(r)}
	if e.xform != nil {
		box = e.xform.ApplyAABB(box)
	}
	return box
}

// PrepareForRendering builds the acceleration index over the current set
// of spheres. Must be called once after all spheres are added and before
// any Intersect call.
func (s *SphereTable) PrepareForRendering() {
	s.tree = bvh.Build(len(s.entries), s.worldBounds)
}

func (s *SphereTable) intersectOne(i int, r geom.Ray, tMin, tMax float32) (float32, bool) {
	e := s.entries[i]
	if e.xform == nil {
		return geom.IntersectSphere(r, [3]float32{e.center.X, e.center.Y, e.center.Z}, e.radius, tMin, tMax)
	}
	// Transformed-shape protocol, spec.md §4.6: intersect in object space,
	// then reproject t by measuring the world-space hit point against the
	// world ray origin.
	objRay := e.xform.Inverse().ApplyRay(r)
	tObj, hit := geom.IntersectSphere(objRay, [3]float32{e.center.X, e.center.Y, e.center.Z}, e.radius, tMin, tMax)
	if !hit {
		return 0, false
	}
	worldHit := e.xform.ApplyPoint(objRay.At(tObj))
	tWorld := worldHit.Sub(r.Origin).Length()
	if tWorld < tMin || tWorld > tMax {
		return 0, false
	}
	return tWorld, true
}

func (s *SphereTable) normalAt(i int, worldPoint rmath.Point3) rmath.Vec3 {
	e := s.entries[i]
	center := [3]float32{e.center.X, e.center.Y, e.center.Z}
	if e.xform == nil {
		n := geom.SphereNormal([3]float32{worldPoint.X, worldPoint.Y, worldPoint.Z}, center, e.radius)
		return rmath.NewVec3(n[0], n[1], n[2])
	}
	objPoint := e.xform.Inverse().ApplyPoint(worldPoint)
	nObj := geom.SphereNormal([3]float32{objPoint.X, objPoint.Y, objPoint.Z}, center, e.radius)
	n := e.xform.ApplyNormal(rmath.NewNormal(nObj[0], nObj[1], nObj[2]))
	return n.ToVec3()
}

// Intersect returns the nearest hit among this table's spheres, if any.
func (s *SphereTable) Intersect(r geom.Ray, tMin, tMax float32) (SurfaceInteraction, bool) {
	hit, ok := s.tree.Intersect(r, tMin, tMax, s.intersectOne)
	if !ok {
		return SurfaceInteraction{}, false
	}
	worldPoint := r.At(hit.T)
	geomNormal := s.normalAt(hit.Prim, worldPoint)
	n, back := orientNormal(geomNormal, r.Direction)
	return SurfaceInteraction{
		T:          hit.T,
		HitPoint:   worldPoint,
		Normal:     n,
		MaterialID: s.entries[hit.Prim].materialID,
		BackFace:   back,
	}, true
}
