package transform

import (
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/geom"
)

// ApplyRay transforms a ray's origin and direction into the transformed
// space. Direction is not renormalized; callers that need unit direction
// should normalize the result themselves (geom.Ray assumes normalized
// direction).
func (t Transformation) ApplyRay(r geom.Ray) geom.Ray {
	return geom.Ray{
		Origin:    t.ApplyPoint(r.Origin),
		Direction: t.ApplyVector(r.Direction),
	}
}

// ApplyAABB returns the AABB of the eight transformed corners of box.
func (t Transformation) ApplyAABB(box geom.AABB) geom.AABB {
	corners := [8]rmath.Point3{
		rmath.NewPoint3(box.Min.X, box.Min.Y, box.Min.Z),
		rmath.NewPoint3(box.Max.X, box.Min.Y, box.Min.Z),
		rmath.NewPoint3(box.Min.X, box.Max.Y, box.Min.Z),
		rmath.NewPoint3(box.Min.X, box.Min.Y, box.Max.Z),
		rmath.NewPoint3(box.Max.X, box.Max.Y, box.Min.Z),
		rmath.NewPoint3(box.Max.X, box.Min.Y, box.Max.Z),
		rmath.NewPoint3(box.Min.X, box.Max.Y, box.Max.Z),
		rmath.NewPoint3(box.Max.X, box.Max.Y, box.Max.Z),
	}
	result := geom.EmptyAABB()
	for _, c := range corners {
		result = result.UnionPoint(t.ApplyPoint(c))
	}
	return result
}
