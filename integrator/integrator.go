// Package integrator implements the per-ray radiance estimators: ambient
// occlusion, direct lighting, and depth-limited random walk. Grounded on
// original_source/src/integrators.rs. The shared pixel/sample loop that
// drives these (per spec.md §4.13/§5) lives in package render, which owns
// tiling and worker concurrency; this package only answers "what color
// does this one ray see".
package integrator

import (
	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/geom"
	"github.com/mario007/rtlib/sampler"
	"github.com/mario007/rtlib/scenepkg"
)

// Integrator estimates the radiance arriving back along a ray.
type Integrator interface {
	Li(ray geom.Ray, scene *scenepkg.Scene, s sampler.Sampler) color.RGB
}
