package math

// Point3 is a position in space. It differs from Vec3 in how it transforms:
// an affine Transformation applies its translation to a Point3 but not to a
// Vec3 or Normal.
type Point3 struct {
	X, Y, Z float32
}

var Point3Zero = Point3{0, 0, 0}

func NewPoint3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Sub of two points yields the displacement vector between them.
func (p Point3) Sub(other Point3) Vec3 {
	return Vec3{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// Add of a point and a vector yields the translated point.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

func (p Point3) ToVec3() Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

func (p Point3) ToVec4() Vec4 {
	return Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1}
}

func (p Point3) Distance(other Point3) float32 {
	return p.Sub(other).Length()
}

func (p Point3) DistanceSqr(other Point3) float32 {
	return p.Sub(other).LengthSqr()
}

func MinPoint3(a, b Point3) Point3 {
	return Point3{minf32(a.X, b.X), minf32(a.Y, b.Y), minf32(a.Z, b.Z)}
}

func MaxPoint3(a, b Point3) Point3 {
	return Point3{maxf32(a.X, b.X), maxf32(a.Y, b.Y), maxf32(a.Z, b.Z)}
}
