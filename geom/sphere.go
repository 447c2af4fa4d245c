package geom

import "math"

// IntersectSphere implements the RT Gems precision-stable form: with
// f = origin - center, b' = -f·d, δ = r² - (f + b'd)², a negative δ means
// no hit. Otherwise q = b' + sign(b')·sqrt(δ); the two roots are c/q and q
// where c = f·f - r². This avoids the cancellation that a naive quadratic
// solve suffers when the ray grazes a large sphere far from the origin
// (spec.md §4.5, §8 property 4).
func IntersectSphere(r Ray, center [3]float32, radius, tMin, tMax float32) (t float32, hit bool) {
	fx := r.Origin.X - center[0]
	fy := r.Origin.Y - center[1]
	fz := r.Origin.Z - center[2]

	dx, dy, dz := r.Direction.X, r.Direction.Y, r.Direction.Z

	bPrime := -(fx*dx + fy*dy + fz*dz)
	ex := fx + bPrime*dx
	ey := fy + bPrime*dy
	ez := fz + bPrime*dz
	discriminant := radius*radius - (ex*ex + ey*ey + ez*ez)
	if discriminant < 0 {
		return 0, false
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	var q float32
	if bPrime < 0 {
		q = bPrime - sqrtDisc
	} else {
		q = bPrime + sqrtDisc
	}

	c := (fx*fx + fy*fy + fz*fz) - radius*radius

	root1 := c / q
	root2 := q

	if root1 > root2 {
		root1, root2 = root2, root1
	}

	if root1 > tMin && root1 < tMax {
		return root1, true
	}
	if root2 > tMin && root2 < tMax {
		return root2, true
	}
	return 0, false
}

// SphereNormal returns the (unnormalized-safe, since center/radius define a
// unit-length gradient) geometric normal at a point on the sphere surface.
func SphereNormal(point, center [3]float32, radius float32) [3]float32 {
	inv := 1 / radius
	return [3]float32{
		(point[0] - center[0]) * inv,
		(point[1] - center[1]) * inv,
		(point[2] - center[2]) * inv,
	}
}
