package sampler

import (
	"github.com/mario007/rtlib/rng"
	"github.com/mario007/rtlib/tile"
)

// Stratified divides each pixel's sample set into an xs*ys grid of strata
// per dimension pair and draws one jittered sample per stratum, with the
// stratum visited by a given iteration chosen by a Kensler permutation
// seeded from the pixel so different pixels don't share a stratum order
// (spec.md §4.3). Grounded on original_source/src/samplers.rs's
// StratifiedSampler.
type Stratified struct {
	seed   uint64
	xs, ys int

	tileX1, tileY1 int
	pixelX, pixelY int
	iteration      int
	dim            int
	jitterRng      *rng.PCG
}

// NewStratified builds a Stratified sampler with an xs x ys stratum grid
// per dimension pair; xs*ys should equal the per-pixel sample count.
func NewStratified(seed uint64, xs, ys int) *Stratified {
	if xs < 1 {
		xs = 1
	}
	if ys < 1 {
		ys = 1
	}
	return &Stratified{seed: seed, xs: xs, ys: ys, jitterRng: rng.NewPCG(seed, 1)}
}

func (s *Stratified) Initialize(t tile.Tile, iteration int) {
	s.tileX1 = t.X1
	s.tileY1 = t.Y1
	s.iteration = iteration
}

func (s *Stratified) SamplePixel(x, y, iteration int) (ux, uy float32) {
	s.pixelX, s.pixelY = x, y
	s.iteration = iteration
	s.dim = 0
	jitterSeed := rng.HashInts(s.seed, int64(s.tileX1), int64(s.tileY1), int64(x), int64(y), int64(iteration))
	s.jitterRng = rng.NewPCG(jitterSeed, 1)
	return s.Next2D()
}

func (s *Stratified) pixelHash() uint32 {
	h := rng.HashInts(s.seed, int64(s.tileX1), int64(s.tileY1), int64(s.pixelX), int64(s.pixelY), int64(s.dim))
	return uint32(h)
}

func (s *Stratified) Next1D() float32 {
	n := uint32(s.xs * s.ys)
	stratum := rng.PermutationElement(uint32(s.iteration)%n, n, s.pixelHash())
	s.dim++
	jitter := s.jitterRng.Float32()
	return (float32(stratum) + jitter) / float32(n)
}

func (s *Stratified) Next2D() (float32, float32) {
	n := uint32(s.xs * s.ys)
	stratum := rng.PermutationElement(uint32(s.iteration)%n, n, s.pixelHash())
	s.dim++
	xIdx := stratum % uint32(s.xs)
	yIdx := stratum / uint32(s.xs)
	jx, jy := s.jitterRng.Float32(), s.jitterRng.Float32()
	return (float32(xIdx) + jx) / float32(s.xs), (float32(yIdx) + jy) / float32(s.ys)
}

func (s *Stratified) Clone() Sampler {
	c := *s
	state := *s.jitterRng
	c.jitterRng = &state
	return &c
}
