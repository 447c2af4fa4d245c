package primitive

import (
	"github.com/mario007/rtlib/bvh"
	"github.com/mario007/rtlib/geom"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/transform"
)

// Mesh is parallel vertex/index arrays, per spec.md §3. len(Indices) must
// be a multiple of 3. UVs and Normals are optional per-vertex data carried
// through unchanged; shading does not read them.
type Mesh struct {
	Vertices []rmath.Point3
	Indices  []uint32
	UVs      []rmath.Vec2
	Normals  []rmath.Normal
}

// TriangleCount returns the number of triangles the mesh's index buffer
// describes.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m Mesh) triangleVerts(tri int) (v0, v1, v2 rmath.Point3) {
	i := tri * 3
	return m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
}

type meshInstance struct {
	mesh       *Mesh
	materialID MaterialID
	xform      *transform.Transformation
}

// triHandle is a (mesh instance, triangle) pair flattened into a single
// primitive index for the BVH, per spec.md §3's "Triangle handle".
type triHandle struct {
	instance int
	triangle int
}

// MeshTable holds every triangle-mesh instance in the scene, flattened
// into a single BVH over individual triangles. Grounded on spec.md
// §3/§4.7, broad/narrow-phase split generalized from
// editor/raycast.go's RaycastScene+rayMeshIntersect.
type MeshTable struct {
	instances []meshInstance
	handles   []triHandle
	tree      *bvh.BVH
}

// Add registers a mesh instance given in object space (object space is
// world space when xform is nil) and returns its instance index. Baking a
// per-mesh transform directly into vertices on insertion, per spec.md's
// "optional per-mesh transform baked into vertices", is the caller's
// choice — passing xform defers the transform to intersection time, with
// the instance's bounds taken through xform; a caller that wants the
// bake-in behavior can transform Vertices itself before calling Add and
// omit xform.
func (t *MeshTable) Add(m *Mesh, materialID MaterialID, xform *transform.Transformation) int {
	instIdx := len(t.instances)
	t.instances = append(t.instances, meshInstance{mesh: m, materialID: materialID, xform: xform})
	for tri := 0; tri < m.TriangleCount(); tri++ {
		t.handles = append(t.handles, triHandle{instance: instIdx, triangle: tri})
	}
	return instIdx
}

func (t *MeshTable) Len() int { return len(t.handles) }

// Instances returns every registered mesh, for construction-time
// validation (index bounds, multiple-of-three) ahead of PrepareForRendering.
func (t *MeshTable) Instances() []*Mesh {
	out := make([]*Mesh, len(t.instances))
	for i, inst := range t.instances {
		out[i] = inst.mesh
	}
	return out
}

// MaterialIDs returns each mesh instance's material id, in Add order.
func (t *MeshTable) MaterialIDs() []MaterialID {
	out := make([]MaterialID, len(t.instances))
	for i, inst := range t.instances {
		out[i] = inst.materialID
	}
	return out
}

func (t *MeshTable) worldBounds(i int) geom.AABB {
	h := t.handles[i]
	inst := t.instances[h.instance]
	v0, v1, v2 := inst.mesh.triangleVerts(h.triangle)
	box := geom.EmptyAABB().UnionPoint(v0).UnionPoint(v1).UnionPoint(v2)
	if inst.xform != nil {
		box = inst.xform.ApplyAABB(box)
	}
	return box
}

func (t *MeshTable) intersectOne(i int, r geom.Ray, tMin, tMax float32) (float32, bool) {
	h := t.handles[i]
	inst := t.instances[h.instance]
	v0, v1, v2 := inst.mesh.triangleVerts(h.triangle)
	if inst.xform == nil {
		tHit, _, _, hit := geom.IntersectTriangle(r, v0, v1, v2, tMin, tMax)
		return tHit, hit
	}
	objRay := inst.xform.Inverse().ApplyRay(r)
	tObj, _, _, hit := geom.IntersectTriangle(objRay, v0, v1, v2, tMin, tMax)
	if !hit {
		return 0, false
	}
	worldHit := inst.xform.ApplyPoint(objRay.At(tObj))
	tWorld := worldHit.Sub(r.Origin).Length()
	if tWorld < tMin || tWorld > tMax {
		return 0, false
	}
	return tWorld, true
}

func (t *MeshTable) normalAt(i int) rmath.Vec3 {
	h := t.handles[i]
	inst := t.instances[h.instance]
	v0, v1, v2 := inst.mesh.triangleVerts(h.triangle)
	n := geom.TriangleNormal(v0, v1, v2).Normalize()
	if inst.xform == nil {
		return n
	}
	return inst.xform.ApplyNormal(n.AsNormal()).ToVec3()
}

// PrepareForRendering builds the acceleration index over the current set
// of triangles. Must be called once after all meshes are added and before
// any Intersect call.
func (t *MeshTable) PrepareForRendering() {
	t.tree = bvh.Build(len(t.handles), t.worldBounds)
}

// Intersect returns the nearest hit among this table's triangles, if any.
func (t *MeshTable) Intersect(r geom.Ray, tMin, tMax float32) (SurfaceInteraction, bool) {
	hit, ok := t.tree.Intersect(r, tMin, tMax, t.intersectOne)
	if !ok {
		return SurfaceInteraction{}, false
	}
	worldPoint := r.At(hit.T)
	geomNormal := t.normalAt(hit.Prim)
	n, back := orientNormal(geomNormal, r.Direction)
	return SurfaceInteraction{
		T:          hit.T,
		HitPoint:   worldPoint,
		Normal:     n,
		MaterialID: t.instances[t.handles[hit.Prim].instance].materialID,
		BackFace:   back,
	}, true
}
