package niltile

import (
	"github.com/gpumem/niltile/internal/blocklinear"
)

// CopyLinearToTiled copies the byte rectangle [offsetB, offsetB+extentB)
// from linear into tiled, applying swizzle and tiling's geometry.
//
// tiled.LevelExtentB is the mip-level's true byte extent; it is rounded up
// internally to a whole number of tiles, so tiled.Base must cover the
// aligned extent, not just LevelExtentB itself. offsetB+extentB must not
// exceed LevelExtentB.
func CopyLinearToTiled(tiled TiledView, linear LinearView, offsetB Offset3D[Bytes], extentB Extent3D[Bytes], swizzle CopySwizzle, tiling Tiling) error {
	return copyDirection(true, tiled, linear, offsetB, extentB, swizzle, tiling)
}

// CopyTiledToLinear copies the byte rectangle [offsetB, offsetB+extentB)
// from tiled into linear, applying swizzle and tiling's geometry. See
// CopyLinearToTiled for the shared preconditions.
func CopyTiledToLinear(linear LinearView, tiled TiledView, offsetB Offset3D[Bytes], extentB Extent3D[Bytes], swizzle CopySwizzle, tiling Tiling) error {
	return copyDirection(false, tiled, linear, offsetB, extentB, swizzle, tiling)
}

// copyDirection implements both CopyLinearToTiled (toTiled=true) and
// CopyTiledToLinear (toTiled=false): both validate preconditions, select a
// sector primitive for (direction, swizzle), and invoke the shared
// internal/blocklinear traversal.
func copyDirection(toTiled bool, tiled TiledView, linear LinearView, offsetB Offset3D[Bytes], extentB Extent3D[Bytes], swizzle CopySwizzle, tiling Tiling) error {
	if err := tiling.Validate(); err != nil {
		Logger().Warn("niltile copy rejected: invalid tiling", "err", err)
		return err
	}
	if !swizzle.Valid() {
		Logger().Warn("niltile copy rejected: invalid swizzle", "swizzle", int(swizzle))
		return ErrInvalidSwizzle
	}

	xs, ys, zs := offsetB.X, offsetB.Y, offsetB.Z
	xe, ye, ze := xs+extentB.Width, ys+extentB.Height, zs+extentB.Depth
	if xs < 0 || ys < 0 || zs < 0 ||
		xe > tiled.LevelExtentB.Width || ye > tiled.LevelExtentB.Height || ze > tiled.LevelExtentB.Depth {
		Logger().Warn("niltile copy rejected: rectangle out of bounds",
			"rect", [6]int{xs, ys, zs, xe, ye, ze}, "levelExtentB", tiled.LevelExtentB)
		return ErrRectOutOfBounds
	}

	div := swizzle.XDivisor()
	cur := linear.cursor(div)
	if cur.ReverseX(xs/div) != xs || cur.ReverseX(xe/div) != xe {
		Logger().Warn("niltile copy rejected: rectangle misaligned for swizzle x-divisor",
			"swizzle", swizzle.String(), "xDivisor", div, "xStart", xs, "xEnd", xe)
		return ErrMisalignedRectangle
	}

	levelTiles := tiling.LevelExtentTiles(tiled.LevelExtentB)
	requiredTiledB := uint64(levelTiles.Volume()) * tiling.TileSizeB()
	if uint64(len(tiled.Base)) < requiredTiledB {
		Logger().Warn("niltile copy rejected: tiled buffer too small",
			"have", len(tiled.Base), "want", requiredTiledB)
		return ErrBufferTooSmall
	}

	lastByteOff := cur.At(xe-1, ye-1, ze-1) + 1
	if lastByteOff > len(linear.Base) {
		Logger().Warn("niltile copy rejected: linear buffer too small",
			"have", len(linear.Base), "want", lastByteOff)
		return ErrBufferTooSmall
	}

	g := blocklinear.Geometry{GobHeight: tiling.GobHeight(), XLog2: tiling.XLog2, YLog2: tiling.YLog2, ZLog2: tiling.ZLog2}

	Logger().Debug("niltile copy",
		"toTiled", toTiled, "swizzle", swizzle.String(),
		"rect", [6]int{xs, ys, zs, xe, ye, ze},
		"levelTilesW", levelTiles.Width, "levelTilesH", levelTiles.Height, "levelTilesD", levelTiles.Depth)

	blocklinear.Copy(swizzle, toTiled, tiled.Base, linear.Base, cur, g,
		levelTiles.Width, levelTiles.Height, levelTiles.Depth,
		xs, ys, zs, xe, ye, ze)
	return nil
}
