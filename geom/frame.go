package geom

import rmath "github.com/mario007/rtlib/math"

// Frame is an orthonormal basis (u, v, w) built around a surface normal,
// via the revised Frisvad/Duff method (no trigonometric branch, stable
// near the poles). w is the input normal.
type Frame struct {
	U, V, W rmath.Vec3
}

// FrameFromNormal builds a Frame whose W axis is n (assumed unit length).
func FrameFromNormal(n rmath.Vec3) Frame {
	sign := float32(1)
	if n.Z < 0 {
		sign = -1
	}
	a := -1 / (sign + n.Z)
	b := n.X * n.Y * a

	u := rmath.NewVec3(1+sign*n.X*n.X*a, sign*b, -sign*n.X)
	v := rmath.NewVec3(b, sign+n.Y*n.Y*a, -n.Y)

	return Frame{U: u, V: v, W: n}
}

func (f Frame) ToWorld(v rmath.Vec3) rmath.Vec3 {
	return f.U.Mul(v.X).Add(f.V.Mul(v.Y)).Add(f.W.Mul(v.Z))
}

func (f Frame) ToLocal(v rmath.Vec3) rmath.Vec3 {
	return rmath.NewVec3(v.Dot(f.U), v.Dot(f.V), v.Dot(f.W))
}
