// Package render drives the tile-parallel rendering loop: it splits the
// image into tiles, runs one goroutine per worker claiming tiles from a
// shared atomic counter, and merges each finished tile's padded buffer
// into the global accumulation buffer before tone mapping to 8-bit, per
// spec.md §5's concurrency model. The worker-claims-next-unit-of-work
// pattern is grounded on
// deepteams-webp/internal/lossy/encode_parallel.go's encodeFrameParallel
// (an atomic row counter claimed by a fixed goroutine pool), adapted from
// per-row claims to per-tile claims since tiles, unlike encoder rows,
// carry no inter-unit ordering dependency.
package render

import (
	"sync"
	"sync/atomic"

	"github.com/mario007/rtlib/accum"
	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/integrator"
	"github.com/mario007/rtlib/sampler"
	"github.com/mario007/rtlib/scenepkg"
	"github.com/mario007/rtlib/tile"
)

// buildIntegrator selects the radiance estimator named by the scene's
// settings, per spec.md §6's algorithm tags.
func buildIntegrator(s *scenepkg.Scene) integrator.Integrator {
	switch s.Settings.Algorithm {
	case scenepkg.DirectLighting:
		return integrator.DirectLighting{}
	case scenepkg.RandomWalk:
		return integrator.RandomWalk{MaxDepth: s.Settings.RandomWalk.MaxDepth}
	default:
		return integrator.AmbientOcclusion{
			CosSample:   s.Settings.AmbientOcclusion.CosSample,
			MaxDistance: s.Settings.AmbientOcclusion.MaxDistance,
		}
	}
}

// Image renders scene to a tone-mapped 8-bit raster at scene.Settings'
// resolution, row-major, per spec.md §6's output contract.
func Image(scene *scenepkg.Scene) []color.RGB8 {
	buf := Render(scene)
	return buf.ToRGB8(scene.Settings.ToneMap)
}

// Render runs the full tile-parallel accumulation pass and returns the
// accumulation buffer of weighted sums (before resolve and tone mapping),
// for callers that want the
// intermediate buffer (tests, alternate output encodings).
func Render(scene *scenepkg.Scene) *accum.Buffer {
	width, height := scene.Settings.Width, scene.Settings.Height
	spp := scene.Settings.SamplesPerPixel
	tileSize := scene.Settings.TileSize
	if tileSize <= 0 {
		tileSize = width
		if height > tileSize {
			tileSize = height
		}
	}

	tiles := tile.Split(width, height, tileSize)
	global := accum.NewBuffer(width, height)
	integ := buildIntegrator(scene)
	filterRadius := scene.Filter.MaxRadius()

	numWorkers := scene.Settings.NumThreads
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(tiles) {
		numWorkers = len(tiles)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var nextTile atomic.Int32
	var mergeMu sync.Mutex
	var wg sync.WaitGroup

	for wi := 0; wi < numWorkers; wi++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker := scene.Sampler.Clone()
			for {
				i := int(nextTile.Add(1) - 1)
				if i >= len(tiles) {
					return
				}
				t := tiles[i]
				tb := renderTile(t, scene, integ, worker, spp, width, height, filterRadius)
				mergeMu.Lock()
				global.MergeTile(tb)
				mergeMu.Unlock()
			}
		}()
	}
	wg.Wait()

	return global
}

// renderTile runs every sample of every pixel in t through the integrator
// and deposits the filtered result into a fresh padded tile buffer, per
// spec.md §4.13's shared pixel/sample loop:
//
//	for sample i in [0,spp):
//	    for pixel (x,y) in tile:
//	        (sx,sy) = sampler.sample_pixel(x,y,i)
//	        ray = camera.generate_ray(x+sx, y+sy)
//	        color = integrator.li(ray, scene, sampler)
//	        accumulate(x+sx, y+sy, color)
func renderTile(t tile.Tile, scene *scenepkg.Scene, integ integrator.Integrator, s sampler.Sampler,
	spp, width, height int, filterRadius float32) *accum.TileBuffer {

	tb := accum.NewTileBuffer(t, &filterRadius, width, height)
	s.Initialize(t, 0)

	for i := 0; i < spp; i++ {
		for y := t.Y1; y < t.Y2; y++ {
			for x := t.X1; x < t.X2; x++ {
				sx, sy := s.SamplePixel(x, y, i)
				px := float32(x) + sx
				py := float32(y) + sy
				ray := scene.Camera.GenerateRay(px, py)
				c := integ.Li(ray, scene, s)
				tb.AddFiltered(px, py, c, scene.Filter)
			}
		}
	}
	return tb
}
