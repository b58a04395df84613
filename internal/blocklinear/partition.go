package blocklinear

import (
	"github.com/gpumem/niltile/internal/addr"
	"github.com/gpumem/niltile/internal/sector"
)

// TileExtentB returns the byte extent of one tile under this geometry.
func (g Geometry) TileExtentB() (w, h, d int) {
	return 64 << g.XLog2, g.GobHeight << g.YLog2, 1 << g.ZLog2
}

// Copy partitions the byte-space rectangle [xs,xe) x [ys,ye) x [zs,ze)
// into tile-granularity chunks and drives WholeTile/PartialTile over each
// one that intersects it. tiled must hold at least
// levelExtentTiles.{w,h,d} tiles' worth of bytes, laid out tile-major;
// linCur is the linear-side cursor with its origin at the level's own
// (0,0,0).
//
// This mirrors the top-level traversal: compute the tile-aligned interior,
// run the unchecked whole-tile path there, and fall back to the clipped
// per-tile path only for tiles the rectangle merely overlaps.
func Copy(sw sector.Swizzle, toTiled bool, tiled, linear []byte, linCur addr.Linear, g Geometry, levelExtentTilesW, levelExtentTilesH, levelExtentTilesD int, xs, ys, zs, xe, ye, ze int) {
	tileW, tileH, tileD := g.TileExtentB()
	tileSizeB := 64 * g.GobHeight * (1 << (g.XLog2 + g.YLog2 + g.ZLog2))

	blk := addr.Block{
		BlockWidthB: tileW, BlockHeightB: tileH, BlockDepthB: tileD,
		LevelWidthBlocks: levelExtentTilesW, LevelHeightBlocks: levelExtentTilesH,
	}

	for zt := 0; zt < levelExtentTilesD; zt++ {
		tz0, tz1 := zt*tileD, (zt+1)*tileD
		if ze <= tz0 || zs >= tz1 {
			continue
		}
		for yt := 0; yt < levelExtentTilesH; yt++ {
			ty0, ty1 := yt*tileH, (yt+1)*tileH
			if ye <= ty0 || ys >= ty1 {
				continue
			}
			for xt := 0; xt < levelExtentTilesW; xt++ {
				tx0, tx1 := xt*tileW, (xt+1)*tileW
				if xe <= tx0 || xs >= tx1 {
					continue
				}

				tileBase := blk.At(xt, yt, zt)
				tiledTile := tiled[tileBase : tileBase+tileSizeB]
				linBase := linCur.At(tx0, ty0, tz0)
				linearTile := linear[linBase:]

				whole := xs <= tx0 && xe >= tx1 && ys <= ty0 && ye >= ty1 && zs <= tz0 && ze >= tz1
				if whole {
					WholeTile(sw, toTiled, tiledTile, linearTile, linCur, g)
					continue
				}
				PartialTile(sw, toTiled, tiledTile, linearTile, linCur, g,
					xs-tx0, ys-ty0, zs-tz0, xe-tx0, ye-ty0, ze-tz0)
			}
		}
	}
}
