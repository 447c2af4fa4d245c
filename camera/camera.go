// Package camera implements the perspective camera: raster -> camera ->
// world ray generation. Grounded on original_source/src/camera.rs.
package camera

import (
	"github.com/mario007/rtlib/geom"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/transform"
)

// Perspective stores the two transforms generate_ray needs, per spec.md
// §4.12: raster-space point -> camera space, then camera space -> world.
type Perspective struct {
	rasterToCamera transform.Transformation
	cameraToWorld  transform.Transformation
}

// rasterToNDC maps [0,width)x[0,height) to [0,1)x[0,1) with Y flipped
// (raster Y grows downward, NDC Y grows upward).
func rasterToNDC(width, height int) transform.Transformation {
	return transform.Scale(rmath.NewVec3(float32(width), -float32(height), 1)).Inverse()
}

// ndcToScreen maps NDC into a screen window whose shorter axis spans
// [-1,1] and longer axis is stretched by the aspect ratio.
func ndcToScreen(width, height int) transform.Transformation {
	aspect := float32(width) / float32(height)
	var pMinX, pMinY, pMaxX, pMaxY float32
	if aspect > 1 {
		pMinX, pMinY, pMaxX, pMaxY = -aspect, -1, aspect, 1
	} else {
		pMinX, pMinY, pMaxX, pMaxY = -1, -1/aspect, 1, 1/aspect
	}
	scaleX := 1 / (pMaxX - pMinX)
	scaleY := 1 / (pMaxY - pMinY)
	screenToNDC := transform.Scale(rmath.NewVec3(scaleX, scaleY, 1)).
		Compose(transform.Translate(rmath.NewVec3(-pMinX, -pMaxY, 0)))
	return screenToNDC.Inverse()
}

func rasterToPerspective(width, height int, fovY, near, far float32) transform.Transformation {
	r2n := rasterToNDC(width, height)
	n2s := ndcToScreen(width, height)
	s2c := transform.Perspective(fovY, near, far).Inverse()
	return s2c.Compose(n2s).Compose(r2n)
}

// NewPerspective builds a camera for an image of the given size, field of
// view (radians) spanning the image's shorter axis, near/far clip planes, and a camera-to-world
// transform (e.g. from transform.LookAt).
func NewPerspective(width, height int, fovY, near, far float32, cameraToWorld transform.Transformation) Perspective {
	return Perspective{
		rasterToCamera: rasterToPerspective(width, height, fovY, near, far),
		cameraToWorld:  cameraToWorld,
	}
}

// GenerateRay maps the sub-pixel raster coordinate (x, y) — continuous,
// not necessarily integer — to a world-space ray originating at the
// camera, per spec.md §4.12.
func (c Perspective) GenerateRay(x, y float32) geom.Ray {
	pointOnCamera := c.rasterToCamera.ApplyPoint(rmath.NewPoint3(x, y, 0))
	localDir := pointOnCamera.ToVec3()
	localRay := geom.Ray{Origin: rmath.Point3Zero, Direction: localDir}
	worldRay := c.cameraToWorld.ApplyRay(localRay)
	worldRay.Direction = worldRay.Direction.Normalize()
	return worldRay
}
