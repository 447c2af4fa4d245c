// Package rng implements the deterministic RNG and hashing primitives the
// sampler is built on: a PCG-XSH-RR stream, 64-bit MurmurHash2-a, and the
// Kensler permutation. Grounded on original_source/src/rng.rs and
// src/hash.rs — no PCG or Murmur library appears anywhere in the
// retrieval pack, so these are hand-rolled the way
// mrigankad-gorenderengine hand-rolls its own math package rather than
// importing a third-party one.
package rng

// pcgMultiplier is the standard 64-bit PCG LCG multiplier.
const pcgMultiplier = uint64(6364136223846793005)

// PCG is a 64-bit-state, 32-bit-output PCG-XSH-RR generator.
type PCG struct {
	state uint64
	inc   uint64
}

// NewPCG seeds a generator from a 64-bit seed and stream selector, per the
// standard PCG seeding procedure.
func NewPCG(seed, seq uint64) *PCG {
	p := &PCG{}
	p.inc = (seq << 1) | 1
	p.state = 0
	p.step()
	p.state += seed
	p.step()
	return p
}

func (p *PCG) step() {
	p.state = p.state*pcgMultiplier + p.inc
}

// Uint32 returns the next raw 32-bit PCG-XSH-RR output.
func (p *PCG) Uint32() uint32 {
	oldState := p.state
	p.step()
	xorshifted := uint32(((oldState >> 18) ^ oldState) >> 27)
	rot := uint32(oldState >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Float32 returns a uniform value in [0,1), formed by discarding the low 8
// bits of the 32-bit output and scaling by 2^-24, per spec.md §4.2.
func (p *PCG) Float32() float32 {
	return float32(p.Uint32()>>8) * (1.0 / float32(uint32(1)<<24))
}
