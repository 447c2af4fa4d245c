package sampler

import (
	"github.com/mario007/rtlib/rng"
	"github.com/mario007/rtlib/tile"
)

// Independent draws every dimension from a fresh PCG stream reseeded per
// pixel, with no stratification across the sample set. Grounded on
// original_source/src/samplers.rs's IndependentSampler.
type Independent struct {
	seed      uint64
	tileX1    int
	tileY1    int
	iteration int
	rng       *rng.PCG
}

// NewIndependent builds an Independent sampler rooted at the given global
// seed (spec.md §4.3).
func NewIndependent(seed uint64) *Independent {
	return &Independent{seed: seed, rng: rng.NewPCG(seed, 1)}
}

func (s *Independent) Initialize(t tile.Tile, iteration int) {
	s.tileX1 = t.X1
	s.tileY1 = t.Y1
	s.iteration = iteration
	tileSeed := rng.HashInts(s.seed, int64(t.X1), int64(t.Y1))
	s.rng = rng.NewPCG(tileSeed, uint64(iteration)<<1|1)
}

func (s *Independent) SamplePixel(x, y, iteration int) (ux, uy float32) {
	pixelSeed := rng.HashInts(s.seed, int64(s.tileX1), int64(s.tileY1), int64(x), int64(y), int64(iteration))
	s.rng = rng.NewPCG(pixelSeed, 1)
	return s.rng.Float32(), s.rng.Float32()
}

func (s *Independent) Next1D() float32 {
	return s.rng.Float32()
}

func (s *Independent) Next2D() (float32, float32) {
	return s.rng.Float32(), s.rng.Float32()
}

func (s *Independent) Clone() Sampler {
	c := *s
	state := *s.rng
	c.rng = &state
	return &c
}
