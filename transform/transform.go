// Package transform implements affine/projective transformations that
// carry a cached inverse, composed in lockstep under multiplication. See
// mrigankad-gorenderengine/math/mat4.go for the constructor functions this
// package wraps; unlike the teacher's bare Mat4, a Transformation never
// recomputes its inverse in the hot path.
package transform

import (
	rmath "github.com/mario007/rtlib/math"
)

// Transformation is a (M, M⁻¹) pair. Both matrices are kept mutually
// inverse within f32 roundoff as an invariant; composition updates both
// halves together.
type Transformation struct {
	m    rmath.Mat4
	mInv rmath.Mat4
}

func Identity() Transformation {
	id := rmath.Mat4Identity()
	return Transformation{m: id, mInv: id}
}

// New wraps an already-known (m, mInv) pair, e.g. one returned by a matrix
// Inverse() call the caller already performed.
func New(m, mInv rmath.Mat4) Transformation {
	return Transformation{m: m, mInv: mInv}
}

// FromMatrix computes the inverse of m and returns the pair, or false if m
// is singular — a construction-time fatal condition per spec.md §7.
func FromMatrix(m rmath.Mat4) (Transformation, bool) {
	inv, ok := m.Inverse()
	if !ok {
		return Transformation{}, false
	}
	return Transformation{m: m, mInv: inv}, true
}

func (t Transformation) Matrix() rmath.Mat4    { return t.m }
func (t Transformation) Inverse() Transformation {
	return Transformation{m: t.mInv, mInv: t.m}
}

// Compose returns t ∘ other, i.e. apply other first then t:
// (A,A⁻¹)∘(B,B⁻¹) = (A·B, B⁻¹·A⁻¹).
func (t Transformation) Compose(other Transformation) Transformation {
	return Transformation{
		m:    t.m.Mul(other.m),
		mInv: other.mInv.Mul(t.mInv),
	}
}

func Translate(delta rmath.Vec3) Transformation {
	m := rmath.Mat4Translation(delta)
	mInv := rmath.Mat4Translation(delta.Negate())
	return Transformation{m: m, mInv: mInv}
}

func Scale(s rmath.Vec3) Transformation {
	m := rmath.Mat4Scale(s)
	mInv := rmath.Mat4Scale(rmath.NewVec3(1/s.X, 1/s.Y, 1/s.Z))
	return Transformation{m: m, mInv: mInv}
}

func RotateX(angle float32) Transformation {
	m := rmath.Mat4RotationX(angle)
	return Transformation{m: m, mInv: m.Transpose()}
}

func RotateY(angle float32) Transformation {
	m := rmath.Mat4RotationY(angle)
	return Transformation{m: m, mInv: m.Transpose()}
}

func RotateZ(angle float32) Transformation {
	m := rmath.Mat4RotationZ(angle)
	return Transformation{m: m, mInv: m.Transpose()}
}

// LookAt builds the camera-to-world transformation: applying it to the
// camera-space origin yields eye, and to (0,0,1) a point along the view
// direction. Fails if up is parallel to the view direction, per spec.md §3.
func LookAt(eye, target, up rmath.Vec3) (Transformation, bool) {
	m, ok := rmath.Mat4LookAt(eye, target, up)
	if !ok {
		return Transformation{}, false
	}
	return FromMatrix(m)
}

func Orthographic(left, right, bottom, top, near, far float32) Transformation {
	m := rmath.Mat4Orthographic(left, right, bottom, top, near, far)
	t, ok := FromMatrix(m)
	if !ok {
		// Degenerate orthographic bounds are a caller programming error,
		// not a recoverable scene-construction condition.
		panic("transform: degenerate orthographic projection")
	}
	return t
}

// Perspective builds scale(1/tan(fov/2),1/tan(fov/2),1)·P(near,far), per
// spec.md §4.1.
func Perspective(fovY, near, far float32) Transformation {
	m := rmath.Mat4Perspective(fovY, near, far)
	t, ok := FromMatrix(m)
	if !ok {
		panic("transform: degenerate perspective projection")
	}
	return t
}

// ApplyPoint transforms a point with the full affine matrix, including
// translation.
func (t Transformation) ApplyPoint(p rmath.Point3) rmath.Point3 {
	v4 := t.m.MulVec(p.ToVec4())
	return v4.ToVec3DivW().AsPoint3()
}

// ApplyVector transforms a vector with the linear part only (no
// translation).
func (t Transformation) ApplyVector(v rmath.Vec3) rmath.Vec3 {
	return t.m.MulVec3NoTranslate(v)
}

// ApplyNormal transforms a normal by the inverse-transpose of M, per
// spec.md §3, and renormalizes.
func (t Transformation) ApplyNormal(n rmath.Normal) rmath.Normal {
	mInvT := t.mInv.Transpose()
	v := mInvT.MulVec3NoTranslate(n.ToVec3())
	return v.AsNormal().Normalize()
}
