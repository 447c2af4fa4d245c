// Package accum implements per-pixel weighted sample accumulation, tile
// buffers with filter-footprint deposit, merge into a global buffer, and
// tone mapping to an 8-bit raster. Grounded on
// original_source/src/color.rs's AccumlationBuffer/AccumlationTileBuffer
// and tone_map, and src/tile.rs's padded merge-offset arithmetic.
package accum

import "github.com/mario007/rtlib/color"

// PixelSample is a running weighted sum of color samples deposited into a
// single pixel, per spec.md §4.11.
type PixelSample struct {
	Spectrum color.RGB
	Weight   float32
}

func (s *PixelSample) add(other PixelSample) {
	s.Spectrum = s.Spectrum.Add(other.Spectrum)
	s.Weight += other.Weight
}

// Resolve divides the accumulated spectrum by its weight, or returns black
// if nothing was ever deposited.
func (s PixelSample) Resolve() color.RGB {
	if s.Weight == 0 {
		return color.Black
	}
	return s.Spectrum.Mul(1 / s.Weight)
}
