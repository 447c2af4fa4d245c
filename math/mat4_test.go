package math

import (
	"math"
	"testing"
)

func matAlmostEqual(t *testing.T, a, b Mat4, eps float32) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if absf32(a[i][j]-b[i][j]) > eps {
				t.Fatalf("mismatch at [%d][%d]: %v vs %v\na=%v\nb=%v", i, j, a[i][j], b[i][j], a, b)
			}
		}
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	cases := []Mat4{
		Mat4Identity(),
		Mat4Translation(NewVec3(1, 2, 3)),
		Mat4Scale(NewVec3(2, 3, 4)),
		Mat4RotationY(0.7),
		Mat4Translation(NewVec3(1, 2, 3)).Mul(Mat4RotationY(0.4)).Mul(Mat4Scale(NewVec3(2, 2, 2))),
	}
	for i, m := range cases {
		inv, ok := m.Inverse()
		if !ok {
			t.Fatalf("case %d: expected invertible", i)
		}
		prod := m.Mul(inv)
		matAlmostEqual(t, prod, Mat4Identity(), 1e-4)
	}
}

func TestMat4InverseSingular(t *testing.T) {
	m := Mat4Zero()
	_, ok := m.Inverse()
	if ok {
		t.Fatal("zero matrix should not be invertible")
	}
}

func TestMat4LookAtDegenerate(t *testing.T) {
	eye := NewVec3(0, 0, 0)
	target := NewVec3(0, 0, -1)
	up := NewVec3(0, 0, 1) // parallel to view direction
	_, ok := Mat4LookAt(eye, target, up)
	if ok {
		t.Fatal("expected look-at with parallel up to fail")
	}
}

func TestDifferenceOfProductsNearCancellation(t *testing.T) {
	// a*b ~= c*d: naive subtraction loses almost all precision.
	a, b := float32(1e8)+1, float32(1e8)-1
	c, d := float32(1e8), float32(1e8)
	got := differenceOfProducts(a, b, c, d)
	want := float64(a)*float64(b) - float64(c)*float64(d) // -1, exactly representable
	if math.Abs(float64(got)-want) > 1e-3 {
		t.Errorf("differenceOfProducts: got %v want %v", got, want)
	}
}
