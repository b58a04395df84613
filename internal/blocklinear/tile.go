// Package blocklinear implements the tile (block) walker and the
// rectangle partitioner that splits an arbitrary byte-space rectangle into
// a fully-aligned interior and an unaligned border, driving the GOB and
// sector primitives in internal/sector.
package blocklinear

import (
	"github.com/gpumem/niltile/internal/addr"
	"github.com/gpumem/niltile/internal/sector"
)

// Geometry carries the subset of a tile's log2 geometry the walker needs,
// decoupled from the root package's Tiling type to avoid an import cycle.
type Geometry struct {
	GobHeight           int // 4 or 8
	XLog2, YLog2, ZLog2 uint8
}

// GobsPerTile returns the tile's extent measured in whole GOBs.
func (g Geometry) GobsPerTile() (x, y, z int) {
	return 1 << g.XLog2, 1 << g.YLog2, 1 << g.ZLog2
}

// gobOffset computes the GOB's sequential index (0-based, in GOB units)
// within its tile from its GOB-grid coordinate, by bit-interleaving the
// three coordinates according to the tile's log2 geometry. Iterating all
// in-range (xg, yg, zg) produces every integer in
// [0, 2^(XLog2+YLog2+ZLog2)) exactly once.
func gobOffset(xg, yg, zg int, g Geometry) int {
	mx := (1 << g.XLog2) - 1
	my := (1 << g.YLog2) - 1
	mz := (1 << g.ZLog2) - 1
	return ((xg & mx) << 0) |
		((yg & my) << g.XLog2) |
		((zg & mz) << (g.XLog2 + g.YLog2))
}

// WholeTile copies every GOB of one tile, unconditionally. tiled must be
// exactly the tile's byte size. cur is the linear cursor positioned so
// that tile-local (0,0,0) maps to linear's own origin.
func WholeTile(sw sector.Swizzle, toTiled bool, tiled, linear []byte, cur addr.Linear, g Geometry) {
	gobSizeB := 64 * g.GobHeight
	nx, ny, nz := g.GobsPerTile()
	for zg := 0; zg < nz; zg++ {
		for yg := 0; yg < ny; yg++ {
			for xg := 0; xg < nx; xg++ {
				idx := gobOffset(xg, yg, zg, g)
				gobTiled := tiled[idx*gobSizeB : idx*gobSizeB+gobSizeB]
				base := cur.At(xg*64, yg*g.GobHeight, zg)
				sector.WholeGOB(sw, toTiled, gobTiled, linear[base:], cur, g.GobHeight)
			}
		}
	}
}

// PartialTile copies only the portion of a tile whose tile-local byte
// rectangle [xStart,xEnd) x [yStart,yEnd) x [zStart,zEnd) intersects the
// tile's own extent, picking the whole-GOB fast path for GOBs fully
// covered by the rectangle and the clipped path otherwise.
func PartialTile(sw sector.Swizzle, toTiled bool, tiled, linear []byte, cur addr.Linear, g Geometry, xStart, yStart, zStart, xEnd, yEnd, zEnd int) {
	gobSizeB := 64 * g.GobHeight
	nx, ny, nz := g.GobsPerTile()
	for zg := 0; zg < nz; zg++ {
		lz0, lz1 := zStart-zg, zEnd-zg
		if lz1 <= 0 || lz0 >= 1 {
			continue
		}
		for yg := 0; yg < ny; yg++ {
			gobY0 := yg * g.GobHeight
			ly0, ly1 := yStart-gobY0, yEnd-gobY0
			if ly1 <= 0 || ly0 >= g.GobHeight {
				continue
			}
			for xg := 0; xg < nx; xg++ {
				gobX0 := xg * 64
				lx0, lx1 := xStart-gobX0, xEnd-gobX0
				if lx1 <= 0 || lx0 >= 64 {
					continue
				}

				idx := gobOffset(xg, yg, zg, g)
				gobTiled := tiled[idx*gobSizeB : idx*gobSizeB+gobSizeB]
				base := cur.At(gobX0, gobY0, zg)
				gobLinear := linear[base:]

				whole := lx0 <= 0 && lx1 >= 64 && ly0 <= 0 && ly1 >= g.GobHeight
				if whole {
					sector.WholeGOB(sw, toTiled, gobTiled, gobLinear, cur, g.GobHeight)
					continue
				}
				sector.PartialGOB(sw, toTiled, gobTiled, gobLinear, cur, g.GobHeight, lx0, ly0, lx1, ly1)
			}
		}
	}
}
