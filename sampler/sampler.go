// Package sampler produces the 1D/2D sample streams the integrators draw
// on, per spec.md §4.3. Grounded on original_source/src/samplers.rs.
package sampler

import "github.com/mario007/rtlib/tile"

// Sampler is the contract every sampler variant implements.
type Sampler interface {
	// Initialize reseeds the sampler for a tile/iteration pair. Must be
	// called per-tile so the seed depends on tile origin (spec.md §5).
	Initialize(t tile.Tile, iteration int)
	// SamplePixel returns the sub-pixel offset in [0,1)^2 for pixel (x,y)
	// at the given iteration, and resets the per-pixel dimension counter.
	SamplePixel(x, y, iteration int) (ux, uy float32)
	Next1D() float32
	Next2D() (float32, float32)
	// Clone returns an independent copy carrying the same configuration
	// but its own RNG/dimension-counter state, for use by one worker
	// goroutine per tile (spec.md §5: "each worker owns its sampler
	// instance").
	Clone() Sampler
}
