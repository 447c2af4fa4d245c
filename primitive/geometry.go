package primitive

import "github.com/mario007/rtlib/geom"

// Geometry aggregates the per-kind primitive tables behind a single
// intersect call, per spec.md §4.7.
type Geometry struct {
	Spheres SphereTable
	Meshes  MeshTable
}

// PrepareForRendering builds the acceleration structure for every table.
// Must be called once after scene construction, before any Intersect call.
func (g *Geometry) PrepareForRendering() {
	g.Spheres.PrepareForRendering()
	g.Meshes.PrepareForRendering()
}

// Intersect queries every table and returns the closest hit among them,
// per spec.md §4.7's three-step protocol.
func (g *Geometry) Intersect(r geom.Ray, tMin, tMax float32) (SurfaceInteraction, bool) {
	best, found := g.Spheres.Intersect(r, tMin, tMax)
	if si, ok := g.Meshes.Intersect(r, tMin, tMax); ok && (!found || si.T < best.T) {
		best, found = si, true
	}
	return best, found
}

// IntersectP is an occlusion-only query for shadow rays: it reports
// whether anything lies within (tMin, tMax) without computing the nearest
// hit's surface interaction.
func (g *Geometry) IntersectP(r geom.Ray, tMin, tMax float32) bool {
	if g.Spheres.tree != nil && g.Spheres.tree.AnyHit(r, tMin, tMax, g.Spheres.intersectOne) {
		return true
	}
	if g.Meshes.tree != nil && g.Meshes.tree.AnyHit(r, tMin, tMax, g.Meshes.intersectOne) {
		return true
	}
	return false
}
