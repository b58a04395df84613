package blocklinear

import (
	"math/rand"
	"testing"

	"github.com/gpumem/niltile/internal/addr"
	"github.com/gpumem/niltile/internal/sector"
)

func TestGobOffsetBijective(t *testing.T) {
	g := Geometry{GobHeight: 8, XLog2: 2, YLog2: 1, ZLog2: 1}
	nx, ny, nz := g.GobsPerTile()

	seen := make(map[int]bool)
	for zg := 0; zg < nz; zg++ {
		for yg := 0; yg < ny; yg++ {
			for xg := 0; xg < nx; xg++ {
				off := gobOffset(xg, yg, zg, g)
				if seen[off] {
					t.Fatalf("duplicate gobOffset %d at (%d,%d,%d)", off, xg, yg, zg)
				}
				seen[off] = true
			}
		}
	}
	want := nx * ny * nz
	if len(seen) != want {
		t.Fatalf("gobOffset covered %d distinct values, want %d", len(seen), want)
	}
	for i := 0; i < want; i++ {
		if !seen[i] {
			t.Errorf("gobOffset never produced %d", i)
		}
	}
}

func TestWholeTileRoundTrip(t *testing.T) {
	g := Geometry{GobHeight: 8, XLog2: 1, YLog2: 1, ZLog2: 0}
	tileW, tileH := 64<<g.XLog2, 8<<g.YLog2
	tileSizeB := 512 * (1 << (g.XLog2 + g.YLog2 + g.ZLog2))

	r := rand.New(rand.NewSource(3))
	linear := make([]byte, tileW*tileH)
	r.Read(linear)

	cur := addr.Linear{RowStrideB: tileW, XDivisor: 1}
	tiled := make([]byte, tileSizeB)

	WholeTile(sector.None, true, tiled, linear, cur, g)

	roundtrip := make([]byte, tileW*tileH)
	WholeTile(sector.None, false, tiled, roundtrip, cur, g)

	for i := range linear {
		if linear[i] != roundtrip[i] {
			t.Fatalf("round-trip mismatch at byte %d: got %#x, want %#x", i, roundtrip[i], linear[i])
		}
	}
}

func TestPartialTileMatchesWholeTileWhenUnclipped(t *testing.T) {
	g := Geometry{GobHeight: 8, XLog2: 1, YLog2: 1, ZLog2: 0}
	tileW, tileH := 64<<g.XLog2, 8<<g.YLog2
	tileSizeB := 512 * (1 << (g.XLog2 + g.YLog2 + g.ZLog2))

	r := rand.New(rand.NewSource(4))
	linear := make([]byte, tileW*tileH)
	r.Read(linear)
	cur := addr.Linear{RowStrideB: tileW, XDivisor: 1}

	whole := make([]byte, tileSizeB)
	WholeTile(sector.None, true, whole, linear, cur, g)

	partial := make([]byte, tileSizeB)
	PartialTile(sector.None, true, partial, linear, cur, g, 0, 0, 0, tileW, tileH, 1)

	for i := range whole {
		if whole[i] != partial[i] {
			t.Fatalf("byte %d: whole=%#x partial=%#x", i, whole[i], partial[i])
		}
	}
}

func TestPartialTileClipsSubRegion(t *testing.T) {
	g := Geometry{GobHeight: 8, XLog2: 1, YLog2: 1, ZLog2: 0}
	tileW, tileH := 64<<g.XLog2, 8<<g.YLog2
	tileSizeB := 512 * (1 << (g.XLog2 + g.YLog2 + g.ZLog2))

	linear := make([]byte, tileW*tileH)
	for i := range linear {
		linear[i] = 0xFF
	}
	cur := addr.Linear{RowStrideB: tileW, XDivisor: 1}

	tiled := make([]byte, tileSizeB)
	// Touch only one GOB's worth, the top-left 64x8 region.
	PartialTile(sector.None, true, tiled, linear, cur, g, 0, 0, 0, 64, 8, 1)

	written := 0
	for _, b := range tiled {
		if b != 0 {
			written++
		}
	}
	if written != 512 {
		t.Errorf("PartialTile wrote %d non-zero bytes, want 512 (one GOB)", written)
	}
}
