package math

import "math"

// Mat4 is a row-major 4x4 matrix: m[row][col].
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	result := Mat4Zero()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return v.MulMat(m)
}

// MulVec3 applies m to v as a point (w=1, homogeneous divide applied).
func (m Mat4) MulVec3(v Vec3) Vec3 {
	v4 := v.ToVec4(1.0)
	result := m.MulVec(v4)
	return result.ToVec3DivW()
}

// MulVec3NoTranslate applies the linear (3x3) part of m to v: w=0, no
// translation, no homogeneous divide. Used for vectors and normals.
func (m Mat4) MulVec3NoTranslate(v Vec3) Vec3 {
	v4 := v.ToVec4(0)
	result := m.MulVec(v4)
	return result.ToVec3()
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

func Mat4Translation(translation Vec3) Mat4 {
	m := Mat4Identity()
	m[0][3] = translation.X
	m[1][3] = translation.Y
	m[2][3] = translation.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Perspective builds scale(1/tan(fov/2),1/tan(fov/2),1)·P(near,far) where
// P maps [near,far] -> [0,1] depthwise, per spec.md §4.1.
func Mat4Perspective(fovY, near, far float32) Mat4 {
	invTanHalfFov := 1 / float32(math.Tan(float64(fovY)/2))
	m := Mat4Identity()
	m[0][0] = invTanHalfFov
	m[1][1] = invTanHalfFov
	m[2][2] = far / (far - near)
	m[2][3] = -far * near / (far - near)
	m[3][2] = 1
	m[3][3] = 0
	return m
}

func Mat4Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	m := Mat4Identity()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[0][3] = -(right + left) / (right - left)
	m[1][3] = -(top + bottom) / (top - bottom)
	m[2][3] = -(far + near) / (far - near)
	return m
}

// Mat4LookAt builds the camera-to-world matrix for a camera at eye looking
// at target with the given up vector. Returns false if up is parallel to
// the view direction (degenerate basis).
func Mat4LookAt(eye, target, up Vec3) (Mat4, bool) {
	dir := target.Sub(eye).Normalize()
	right := up.Normalize().Cross(dir)
	if right.LengthSqr() < 1e-12 {
		return Mat4{}, false
	}
	right = right.Normalize()
	newUp := dir.Cross(right)

	return Mat4{
		{right.X, newUp.X, dir.X, eye.X},
		{right.Y, newUp.Y, dir.Y, eye.Y},
		{right.Z, newUp.Z, dir.Z, eye.Z},
		{0, 0, 0, 1},
	}, true
}

// differenceOfProducts computes a*b - c*d with an FMA-plus-compensation
// term that keeps the relative error to a few ULPs even when a*b ≈ c*d,
// per spec.md §4.1.
func differenceOfProducts(a, b, c, d float32) float32 {
	cd := c * d
	diff := math.FMA(float64(a), float64(b), float64(-cd))
	err := math.FMA(float64(-c), float64(d), float64(cd))
	return float32(diff + err)
}

// innerProduct evaluates a0*b0 + a1*b1 + ... with a compensated TwoSum +
// TwoProductFMA chain, used to evaluate matrix minors and cofactors.
func innerProduct(a, b []float32) float32 {
	sum := float64(a[0]) * float64(b[0])
	comp := 0.0
	for i := 1; i < len(a); i++ {
		ab := float64(a[i]) * float64(b[i])
		sumNew := sum + ab
		// compensation term for the product and for the running sum
		errProduct := math.FMA(float64(a[i]), float64(b[i]), -ab)
		errSum := twoSumErr(sum, ab, sumNew)
		comp += errProduct + errSum
		sum = sumNew
	}
	return float32(sum + comp)
}

func twoSumErr(a, b, sum float64) float64 {
	bVirtual := sum - a
	aVirtual := sum - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	return aRoundoff + bRoundoff
}

// minors2x2 returns the six 2x2 minors formed by the top two rows (s) and
// the six formed by the bottom two rows (c), shared by Determinant and
// Inverse.
func (m Mat4) minors2x2() (s, c [6]float32) {
	s[0] = differenceOfProducts(m[0][0], m[1][1], m[1][0], m[0][1])
	s[1] = differenceOfProducts(m[0][0], m[1][2], m[1][0], m[0][2])
	s[2] = differenceOfProducts(m[0][0], m[1][3], m[1][0], m[0][3])
	s[3] = differenceOfProducts(m[0][1], m[1][2], m[1][1], m[0][2])
	s[4] = differenceOfProducts(m[0][1], m[1][3], m[1][1], m[0][3])
	s[5] = differenceOfProducts(m[0][2], m[1][3], m[1][2], m[0][3])

	c[0] = differenceOfProducts(m[2][0], m[3][1], m[3][0], m[2][1])
	c[1] = differenceOfProducts(m[2][0], m[3][2], m[3][0], m[2][2])
	c[2] = differenceOfProducts(m[2][0], m[3][3], m[3][0], m[2][3])
	c[3] = differenceOfProducts(m[2][1], m[3][2], m[3][1], m[2][2])
	c[4] = differenceOfProducts(m[2][1], m[3][3], m[3][1], m[2][3])
	c[5] = differenceOfProducts(m[2][2], m[3][3], m[3][2], m[2][3])
	return s, c
}

// Determinant computes det(m) via the compensated 2x2-minor expansion
// shared with Inverse (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0).
func (m Mat4) Determinant() float32 {
	s, c := m.minors2x2()
	return innerProduct(
		[]float32{s[0], -s[1], s[2], s[3], -s[4], s[5]},
		[]float32{c[5], c[4], c[3], c[2], c[1], c[0]},
	)
}

// Inverse returns (m⁻¹, true), or (_, false) if m is exactly singular, per
// spec.md §4.1. Uses the compensated 2x2-minor expansion throughout to
// resist cancellation on near-singular matrices.
func (m Mat4) Inverse() (Mat4, bool) {
	s, c := m.minors2x2()

	det := innerProduct(
		[]float32{s[0], -s[1], s[2], s[3], -s[4], s[5]},
		[]float32{c[5], c[4], c[3], c[2], c[1], c[0]},
	)
	if det == 0 {
		return Mat4{}, false
	}
	invDet := 1 / det

	var inv Mat4
	inv[0][0] = innerProduct([]float32{m[1][1], -m[1][2], m[1][3]}, []float32{c[5], c[4], c[3]}) * invDet
	inv[0][1] = innerProduct([]float32{-m[0][1], m[0][2], -m[0][3]}, []float32{c[5], c[4], c[3]}) * invDet
	inv[0][2] = innerProduct([]float32{m[3][1], -m[3][2], m[3][3]}, []float32{s[5], s[4], s[3]}) * invDet
	inv[0][3] = innerProduct([]float32{-m[2][1], m[2][2], -m[2][3]}, []float32{s[5], s[4], s[3]}) * invDet

	inv[1][0] = innerProduct([]float32{-m[1][0], m[1][2], -m[1][3]}, []float32{c[5], c[2], c[1]}) * invDet
	inv[1][1] = innerProduct([]float32{m[0][0], -m[0][2], m[0][3]}, []float32{c[5], c[2], c[1]}) * invDet
	inv[1][2] = innerProduct([]float32{-m[3][0], m[3][2], -m[3][3]}, []float32{s[5], s[2], s[1]}) * invDet
	inv[1][3] = innerProduct([]float32{m[2][0], -m[2][2], m[2][3]}, []float32{s[5], s[2], s[1]}) * invDet

	inv[2][0] = innerProduct([]float32{m[1][0], -m[1][1], m[1][3]}, []float32{c[4], c[2], c[0]}) * invDet
	inv[2][1] = innerProduct([]float32{-m[0][0], m[0][1], -m[0][3]}, []float32{c[4], c[2], c[0]}) * invDet
	inv[2][2] = innerProduct([]float32{m[3][0], -m[3][1], m[3][3]}, []float32{s[4], s[2], s[0]}) * invDet
	inv[2][3] = innerProduct([]float32{-m[2][0], m[2][1], -m[2][3]}, []float32{s[4], s[2], s[0]}) * invDet

	inv[3][0] = innerProduct([]float32{-m[1][0], m[1][1], -m[1][2]}, []float32{c[3], c[1], c[0]}) * invDet
	inv[3][1] = innerProduct([]float32{m[0][0], -m[0][1], m[0][2]}, []float32{c[3], c[1], c[0]}) * invDet
	inv[3][2] = innerProduct([]float32{-m[3][0], m[3][1], -m[3][2]}, []float32{s[3], s[1], s[0]}) * invDet
	inv[3][3] = innerProduct([]float32{m[2][0], -m[2][1], m[2][2]}, []float32{s[3], s[1], s[0]}) * invDet

	return inv, true
}
