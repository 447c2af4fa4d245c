package math

import "testing"

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got, want := v1.Add(v2), NewVec3(5, 7, 9); got != want {
		t.Errorf("Add: got %v want %v", got, want)
	}
	if got, want := v2.Sub(v1), NewVec3(3, 3, 3); got != want {
		t.Errorf("Sub: got %v want %v", got, want)
	}
	if got, want := v1.Mul(2), NewVec3(2, 4, 6); got != want {
		t.Errorf("Mul: got %v want %v", got, want)
	}
	if got, want := v1.Dot(v2), float32(32); got != want {
		t.Errorf("Dot: got %v want %v", got, want)
	}
	cross := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0))
	if cross != NewVec3(0, 0, 1) {
		t.Errorf("Cross: got %v want (0,0,1)", cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if absf32(v.Length()-1) > 1e-6 {
		t.Errorf("Normalize: length %v, want 1", v.Length())
	}
	zero := Vec3Zero.Normalize()
	if zero != Vec3Zero {
		t.Errorf("Normalize of zero vector should stay zero, got %v", zero)
	}
}

func TestPoint3Algebra(t *testing.T) {
	p := NewPoint3(1, 2, 3)
	q := NewPoint3(4, 6, 8)
	if got, want := q.Sub(p), NewVec3(3, 4, 5); got != want {
		t.Errorf("Point3-Point3: got %v want %v", got, want)
	}
	if got, want := p.Add(NewVec3(1, 1, 1)), NewPoint3(2, 3, 4); got != want {
		t.Errorf("Point3+Vec3: got %v want %v", got, want)
	}
}
