package accum

import (
	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/filter"
	"github.com/mario007/rtlib/tile"
)

// TileBuffer is the per-worker accumulation buffer for one tile, padded by
// the reconstruction filter's radius so samples near a tile edge can still
// deposit into neighboring tiles' pixels before the merge, per spec.md
// §4.11. originX/originY are the buffer's top-left corner in global raster
// coordinates (already clipped to the image), used consistently by both
// Add and Buffer.MergeTile so a tile touching the image border never
// indexes outside its own backing slice.
type TileBuffer struct {
	tile             tile.Tile
	width, height    int
	pixels           []PixelSample
	hasFilter        bool
	padding          int
	originX, originY int
}

// NewTileBuffer builds a tile buffer. When filterRadius is non-nil, the
// buffer is padded by floor(0.5+radius) pixels, the radius rounded to the
// nearest pixel, which covers every pixel centre within the radius of a
// sample inside the tile (clipped to
// [0,maxWidth)x[0,maxHeight)) and Add must be called with sub-pixel
// coordinates and a filter. When nil, the buffer is exactly the tile's
// extent and Add deposits unfiltered unit-weight samples.
func NewTileBuffer(t tile.Tile, filterRadius *float32, maxWidth, maxHeight int) *TileBuffer {
	if filterRadius == nil {
		return &TileBuffer{
			tile: t, width: t.Width(), height: t.Height(),
			pixels:  make([]PixelSample, t.Width()*t.Height()),
			originX: t.X1, originY: t.Y1,
		}
	}
	padding := int(0.5 + *filterRadius)
	left := clampInt(t.X1-padding, 0, maxWidth)
	right := clampInt(t.X2+padding, 0, maxWidth)
	top := clampInt(t.Y1-padding, 0, maxHeight)
	bottom := clampInt(t.Y2+padding, 0, maxHeight)
	w, h := right-left, bottom-top
	return &TileBuffer{
		tile: t, width: w, height: h,
		pixels:    make([]PixelSample, w*h),
		hasFilter: true, padding: padding,
		originX: left, originY: top,
	}
}

// Add deposits an unfiltered unit-weight sample at integer pixel (ix, iy),
// per spec.md §4.11's "Pixel deposit, no filter". Only valid on a buffer
// built with filterRadius == nil.
func (tb *TileBuffer) Add(ix, iy int, c color.RGB) {
	localX, localY := ix-tb.originX, iy-tb.originY
	tb.pixels[localY*tb.width+localX].add(PixelSample{Spectrum: c, Weight: 1})
}

// AddFiltered deposits a sample at sub-pixel coordinate (fx, fy) across
// every pixel in the filter's footprint, per spec.md §4.11's "Pixel
// deposit, with filter". Only valid on a buffer built with a filter
// radius.
func (tb *TileBuffer) AddFiltered(fx, fy float32, c color.RGB, f filter.Filter) {
	localX := fx - float32(tb.originX)
	localY := fy - float32(tb.originY)
	radius := f.MaxRadius()

	xMin := clampInt(int(floor32(localX-radius)), 0, tb.width)
	xMax := clampInt(int(ceil32(localX+radius)), 0, tb.width)
	yMin := clampInt(int(floor32(localY-radius)), 0, tb.height)
	yMax := clampInt(int(ceil32(localY+radius)), 0, tb.height)

	for py := yMin; py < yMax; py++ {
		for px := xMin; px < xMax; px++ {
			dx := localX - (float32(px) + 0.5)
			dy := localY - (float32(py) + 0.5)
			w := f.Evaluate(dx, dy)
			if w > 0 {
				tb.pixels[py*tb.width+px].add(PixelSample{Spectrum: c.Mul(w), Weight: w})
			}
		}
	}
}

func floor32(v float32) float32 {
	i := float32(int(v))
	if v < 0 && i != v {
		return i - 1
	}
	return i
}

func ceil32(v float32) float32 {
	i := float32(int(v))
	if v > 0 && i != v {
		return i + 1
	}
	return i
}
