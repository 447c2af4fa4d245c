package accum

import "github.com/mario007/rtlib/color"

// Buffer is the global per-pixel accumulation buffer for a full image, per
// spec.md §4.11.
type Buffer struct {
	Width, Height int
	pixels        []PixelSample
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, pixels: make([]PixelSample, width*height)}
}

func (b *Buffer) index(x, y int) int { return y*b.Width + x }

// Add performs the unfiltered pixel deposit: buf[y*W+x] += {c, weight: 1}.
func (b *Buffer) Add(x, y int, c color.RGB) {
	b.pixels[b.index(x, y)].add(PixelSample{Spectrum: c, Weight: 1})
}

// Set overwrites a pixel's sample with a single fresh deposit.
func (b *Buffer) Set(x, y int, c color.RGB) {
	b.pixels[b.index(x, y)] = PixelSample{Spectrum: c, Weight: 1}
}

func (b *Buffer) Get(x, y int) PixelSample {
	return b.pixels[b.index(x, y)]
}

// ToRGB8 resolves and tone maps every pixel, returning a row-major 8-bit
// raster.
func (b *Buffer) ToRGB8(op ToneMap) []color.RGB8 {
	out := make([]color.RGB8, len(b.pixels))
	for i, s := range b.pixels {
		out[i] = color.ToRGB8(Apply(op, s.Resolve()))
	}
	return out
}

// MergeTile adds a finished tile's padded region into this buffer at the
// correct offset, clipped to the buffer's bounds, per spec.md §4.11 and
// original_source/src/color.rs's add_accumulation_tile_buffer.
func (b *Buffer) MergeTile(tb *TileBuffer) {
	for y := 0; y < tb.height; y++ {
		dstY := tb.originY + y
		for x := 0; x < tb.width; x++ {
			dstX := tb.originX + x
			b.pixels[b.index(dstX, dstY)].add(tb.pixels[y*tb.width+x])
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
