package geom

import (
	"math"
	"testing"

	rmath "github.com/mario007/rtlib/math"
)

func TestIntersectSphereHeadOn(t *testing.T) {
	// Sphere of radius r at origin; ray from (0,0,-d) toward +z.
	d := float32(10)
	r := float32(2)
	ray := Ray{Origin: rmath.NewPoint3(0, 0, -d), Direction: rmath.NewVec3(0, 0, 1)}
	tHit, hit := IntersectSphere(ray, [3]float32{0, 0, 0}, r, 0, float32(math.Inf(1)))
	if !hit {
		t.Fatal("expected hit")
	}
	want := d - r
	if absDiff(tHit, want) > 1e-4 {
		t.Errorf("t = %v, want %v", tHit, want)
	}
}

func TestIntersectSphereMiss(t *testing.T) {
	ray := Ray{Origin: rmath.NewPoint3(10, 10, 10), Direction: rmath.NewVec3(0, 0, 1)}
	_, hit := IntersectSphere(ray, [3]float32{0, 0, 0}, 1, 0, float32(math.Inf(1)))
	if hit {
		t.Fatal("expected miss")
	}
}

func TestIntersectTriangleBasic(t *testing.T) {
	v0 := rmath.NewPoint3(-1, -1, -2)
	v1 := rmath.NewPoint3(1, -1, -2)
	v2 := rmath.NewPoint3(0, 1, -2)
	ray := Ray{Origin: rmath.NewPoint3(0, 0, 0), Direction: rmath.NewVec3(0, 0, -1)}
	tHit, u, v, hit := IntersectTriangle(ray, v0, v1, v2, 0, float32(math.Inf(1)))
	if !hit {
		t.Fatal("expected hit")
	}
	if absDiff(tHit, 2) > 1e-4 {
		t.Errorf("t = %v, want 2", tHit)
	}
	if u < 0 || v < 0 || u+v > 1 {
		t.Errorf("barycentric out of range: u=%v v=%v", u, v)
	}
}

func TestIntersectTriangleMissOutsideEdges(t *testing.T) {
	v0 := rmath.NewPoint3(-1, -1, -2)
	v1 := rmath.NewPoint3(1, -1, -2)
	v2 := rmath.NewPoint3(0, 1, -2)
	ray := Ray{Origin: rmath.NewPoint3(5, 5, 0), Direction: rmath.NewVec3(0, 0, -1)}
	_, _, _, hit := IntersectTriangle(ray, v0, v1, v2, 0, float32(math.Inf(1)))
	if hit {
		t.Fatal("expected miss")
	}
}

func TestAABBGrazingFaceIsHit(t *testing.T) {
	box := AABB{Min: rmath.NewPoint3(-1, -1, -1), Max: rmath.NewPoint3(1, 1, 1)}
	// Ray travels along x=1 exactly, grazing the +x face.
	ray := Ray{Origin: rmath.NewPoint3(1, 0, -5), Direction: rmath.NewVec3(0, 0, 1)}
	if !box.Hit(ray, ray.InvDirection(), 0, float32(math.Inf(1))) {
		t.Error("expected grazing ray to be considered a hit")
	}
}

func TestFrameOrthonormal(t *testing.T) {
	normals := []rmath.Vec3{
		rmath.NewVec3(0, 0, 1),
		rmath.NewVec3(0, 0, -1),
		rmath.NewVec3(1, 0, 0).Normalize(),
		rmath.NewVec3(1, 1, 1).Normalize(),
	}
	for _, n := range normals {
		f := FrameFromNormal(n)
		if absDiff(f.U.Length(), 1) > 1e-5 || absDiff(f.V.Length(), 1) > 1e-5 || absDiff(f.W.Length(), 1) > 1e-5 {
			t.Fatalf("frame not unit length for n=%v: %+v", n, f)
		}
		if absDiff(f.U.Dot(f.V), 0) > 1e-5 || absDiff(f.U.Dot(f.W), 0) > 1e-5 || absDiff(f.V.Dot(f.W), 0) > 1e-5 {
			t.Fatalf("frame not orthogonal for n=%v: %+v", n, f)
		}
		v := rmath.NewVec3(0.3, -0.6, 0.2)
		roundTrip := f.ToWorld(f.ToLocal(v))
		if absDiff(roundTrip.X, v.X) > 1e-5 || absDiff(roundTrip.Y, v.Y) > 1e-5 || absDiff(roundTrip.Z, v.Z) > 1e-5 {
			t.Fatalf("round trip mismatch: got %v want %v", roundTrip, v)
		}
	}
}

func absDiff(a, b float32) float32 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
