package bvh

import (
	"testing"

	"github.com/mario007/rtlib/geom"
	rmath "github.com/mario007/rtlib/math"
)

type sphereSet struct {
	centers []rmath.Point3
	radius  float32
}

func (s sphereSet) bbox(i int) geom.AABB {
	c := s.centers[i]
	r := rmath.NewVec3(s.radius, s.radius, s.radius)
	return geom.AABB{Min: c.Add(r.Negate()), Max: c.Add(r)}
}

func (s sphereSet) intersect(i int, r geom.Ray, tMin, tMax float32) (float32, bool) {
	c := s.centers[i]
	t, hit := geom.IntersectSphere(r, [3]float32{c.X, c.Y, c.Z}, s.radius, tMin, tMax)
	return t, hit
}

func TestBVHFindsNearestSphere(t *testing.T) {
	set := sphereSet{
		centers: []rmath.Point3{
			rmath.NewPoint3(0, 0, 0),
			rmath.NewPoint3(5, 0, 0),
			rmath.NewPoint3(10, 0, 0),
			rmath.NewPoint3(-5, 0, 0),
		},
		radius: 1,
	}
	tree := Build(len(set.centers), set.bbox)

	ray := geom.Ray{Origin: rmath.NewPoint3(0, 0, -10), Direction: rmath.NewVec3(0, 0, 1)}
	hit, ok := tree.Intersect(ray, 1e-4, 1e30, set.intersect)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Prim != 0 {
		t.Fatalf("expected nearest sphere (index 0), got %d", hit.Prim)
	}
	if hit.T < 8 || hit.T > 10 {
		t.Fatalf("unexpected hit distance: %v", hit.T)
	}
}

func TestBVHMiss(t *testing.T) {
	set := sphereSet{centers: []rmath.Point3{rmath.NewPoint3(0, 0, 0)}, radius: 1}
	tree := Build(len(set.centers), set.bbox)
	ray := geom.Ray{Origin: rmath.NewPoint3(100, 100, 100), Direction: rmath.NewVec3(0, 0, 1)}
	if _, ok := tree.Intersect(ray, 1e-4, 1e30, set.intersect); ok {
		t.Fatal("expected a miss")
	}
}

func TestBVHEmpty(t *testing.T) {
	tree := Build(0, func(int) geom.AABB { return geom.AABB{} })
	ray := geom.Ray{Origin: rmath.NewPoint3(0, 0, 0), Direction: rmath.NewVec3(0, 0, 1)}
	if _, ok := tree.Intersect(ray, 1e-4, 1e30, func(int, geom.Ray, float32, float32) (float32, bool) { return 0, false }); ok {
		t.Fatal("empty tree must never report a hit")
	}
}

func TestBVHAnyHitStopsEarly(t *testing.T) {
	set := sphereSet{
		centers: []rmath.Point3{rmath.NewPoint3(0, 0, 0), rmath.NewPoint3(3, 0, 0)},
		radius:  1,
	}
	tree := Build(len(set.centers), set.bbox)
	ray := geom.Ray{Origin: rmath.NewPoint3(0, 0, -10), Direction: rmath.NewVec3(0, 0, 1)}
	calls := 0
	counted := func(i int, r geom.Ray, tMin, tMax float32) (float32, bool) {
		calls++
		return set.intersect(i, r, tMin, tMax)
	}
	if !tree.AnyHit(ray, 1e-4, 1e30, counted) {
		t.Fatal("expected an occlusion hit")
	}
	if calls != 1 {
		t.Fatalf("expected AnyHit to stop after the first hit, got %d primitive tests", calls)
	}
}

func TestBVHManyPrimitivesBuildsValidTree(t *testing.T) {
	centers := make([]rmath.Point3, 0, 200)
	for i := 0; i < 200; i++ {
		centers = append(centers, rmath.NewPoint3(float32(i)*2, 0, 0))
	}
	set := sphereSet{centers: centers, radius: 0.5}
	tree := Build(len(centers), set.bbox)

	for i, c := range centers {
		ray := geom.Ray{Origin: c.Add(rmath.NewVec3(0, 0, -10)), Direction: rmath.NewVec3(0, 0, 1)}
		hit, ok := tree.Intersect(ray, 1e-4, 1e30, set.intersect)
		if !ok {
			t.Fatalf("sphere %d: expected a hit", i)
		}
		if hit.Prim != i {
			t.Fatalf("sphere %d: expected self-hit, got %d", i, hit.Prim)
		}
	}
}
