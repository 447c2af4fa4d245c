package accum

import (
	"testing"

	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/filter"
	"github.com/mario007/rtlib/tile"
)

func TestBufferAddAndResolve(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Add(1, 1, color.New(1, 0, 0))
	b.Add(1, 1, color.New(0, 1, 0))
	s := b.Get(1, 1)
	if s.Weight != 2 {
		t.Fatalf("expected weight 2, got %v", s.Weight)
	}
	resolved := s.Resolve()
	if resolved.R != 0.5 || resolved.G != 0.5 {
		t.Fatalf("expected averaged color, got %v", resolved)
	}
}

func TestBufferResolveUnwrittenPixelIsBlack(t *testing.T) {
	b := NewBuffer(2, 2)
	s := b.Get(0, 0)
	if !s.Resolve().IsBlack() {
		t.Fatal("never-written pixel should resolve to black")
	}
}

func TestToneMapOperators(t *testing.T) {
	c := color.New(1, 1, 1)
	if Apply(Linear, c) != c {
		t.Fatal("linear tone map should be identity")
	}
	g := Apply(Gamma, c)
	if g.R != 1 {
		t.Fatalf("gamma of 1 should stay 1, got %v", g.R)
	}
	r := Apply(Reinhard, color.New(3, 3, 3))
	if r.R <= 0 || r.R >= 1 {
		t.Fatalf("reinhard should compress into (0,1): %v", r.R)
	}
}

func TestTileBufferNoFilterMergeIntoGlobal(t *testing.T) {
	global := NewBuffer(8, 8)
	tl := tile.Tile{X1: 2, Y1: 2, X2: 6, Y2: 6}
	tb := NewTileBuffer(tl, nil, 8, 8)
	tb.Add(3, 3, color.New(1, 1, 1))
	global.MergeTile(tb)

	s := global.Get(3, 3)
	if s.Weight != 1 {
		t.Fatalf("expected deposit to reach the global buffer, weight=%v", s.Weight)
	}
}

func TestTileBufferFilteredFootprintSpreadsAcrossPixels(t *testing.T) {
	global := NewBuffer(16, 16)
	tl := tile.Tile{X1: 4, Y1: 4, X2: 8, Y2: 8}
	radius := float32(2)
	tb := NewTileBuffer(tl, &radius, 16, 16)
	f := filter.Triangle{XRadius: 2, YRadius: 2}
	tb.AddFiltered(5.5, 5.5, color.New(1, 1, 1), f)
	global.MergeTile(tb)

	total := float32(0)
	for y := 3; y < 8; y++ {
		for x := 3; x < 8; x++ {
			total += global.Get(x, y).Weight
		}
	}
	if total <= 0 {
		t.Fatal("expected the filter footprint to deposit weight across several pixels")
	}
}

func TestTileBufferBoundaryTileDoesNotPanic(t *testing.T) {
	global := NewBuffer(8, 8)
	tl := tile.Tile{X1: 0, Y1: 0, X2: 4, Y2: 4}
	radius := float32(2)
	tb := NewTileBuffer(tl, &radius, 8, 8)
	tb.AddFiltered(0.5, 0.5, color.New(1, 1, 1), filter.Triangle{XRadius: 2, YRadius: 2})
	global.MergeTile(tb)
}
