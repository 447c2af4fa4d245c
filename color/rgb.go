// Package color implements the RGB spectrum type the renderer carries
// through shading and accumulation, and its 8-bit display-ready
// counterpart. Grounded on original_source/src/color.rs and src/rgb.rs.
package color

// RGB is a linear three-channel color sample, per spec.md §3.
type RGB struct {
	R, G, B float32
}

var Black = RGB{}

func New(r, g, b float32) RGB { return RGB{R: r, G: g, B: b} }

func (c RGB) Add(o RGB) RGB {
	return RGB{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

func (c RGB) Mul(s float32) RGB {
	return RGB{R: c.R * s, G: c.G * s, B: c.B * s}
}

// MulRGB multiplies channel-by-channel, the common BSDF-times-incoming-
// radiance combination.
func (c RGB) MulRGB(o RGB) RGB {
	return RGB{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

func (c RGB) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// RGB8 is the display-ready, gamma/tone-mapped 8-bit-per-channel color.
type RGB8 struct {
	R, G, B uint8
}

// ToRGB8 quantizes a tone-mapped, [0,1]-range color to 8 bits per channel,
// clamping out-of-range input rather than wrapping.
func ToRGB8(c RGB) RGB8 {
	return RGB8{R: clampTo8(c.R), G: clampTo8(c.G), B: clampTo8(c.B)}
}

func clampTo8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
