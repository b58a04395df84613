// Package niltiletest holds shared test helpers for exercising a Tiling
// value end to end, used by this module's own package tests so the
// round-trip property isn't re-derived at every call site.
package niltiletest

import (
	"math/rand"
	"testing"

	"github.com/gpumem/niltile"
)

// RoundTrip fills a linear buffer with a reproducible pattern, copies the
// byte rectangle [offsetB, offsetB+extentB) of levelExtentB into a tiled
// buffer under tiling and swizzle, copies it back out, and fails t if the
// rectangle doesn't come back byte-identical or if any byte outside the
// rectangle was disturbed.
func RoundTrip(t *testing.T, tiling niltile.Tiling, swizzle niltile.CopySwizzle, levelExtentB niltile.Extent3D[niltile.Bytes], offsetB niltile.Offset3D[niltile.Bytes], extentB niltile.Extent3D[niltile.Bytes]) {
	t.Helper()

	div := swizzle.XDivisor()
	linRowStride := levelExtentB.Width / div
	linear := make([]byte, linRowStride*levelExtentB.Height*levelExtentB.Depth)
	rand.New(rand.NewSource(42)).Read(linear)
	original := append([]byte(nil), linear...)

	tiled := make([]byte, tiling.TileSizeB()*uint64(mustVolumeTiles(tiling, levelExtentB)))

	lv := niltile.LinearView{Base: linear, RowStrideB: linRowStride, PlaneStrideB: linRowStride * levelExtentB.Height}
	tv := niltile.TiledView{Base: tiled, LevelExtentB: levelExtentB}

	if err := niltile.CopyLinearToTiled(tv, lv, offsetB, extentB, swizzle, tiling); err != nil {
		t.Fatalf("CopyLinearToTiled: %v", err)
	}

	out := make([]byte, len(linear))
	ov := niltile.LinearView{Base: out, RowStrideB: linRowStride, PlaneStrideB: linRowStride * levelExtentB.Height}
	if err := niltile.CopyTiledToLinear(ov, tv, offsetB, extentB, swizzle, tiling); err != nil {
		t.Fatalf("CopyTiledToLinear: %v", err)
	}

	for z := 0; z < extentB.Depth; z++ {
		for y := 0; y < extentB.Height; y++ {
			for x := 0; x < extentB.Width/div; x++ {
				gx, gy, gz := offsetB.X/div+x, offsetB.Y+y, offsetB.Z+z
				i := gz*linRowStride*levelExtentB.Height + gy*linRowStride + gx
				if out[i] != original[i] {
					t.Fatalf("(%d,%d,%d): round-trip byte = %#x, want %#x", gx, gy, gz, out[i], original[i])
				}
			}
		}
	}

	rx0, rx1 := offsetB.X/div, (offsetB.X+extentB.Width)/div
	for i := range out {
		gx, gy, gz := i%linRowStride, i/linRowStride%levelExtentB.Height, i/(linRowStride*levelExtentB.Height)
		inside := gx >= rx0 && gx < rx1 &&
			gy >= offsetB.Y && gy < offsetB.Y+extentB.Height &&
			gz >= offsetB.Z && gz < offsetB.Z+extentB.Depth
		if !inside && out[i] != 0 {
			t.Fatalf("(%d,%d,%d) outside the rectangle was written: %#x", gx, gy, gz, out[i])
		}
	}
}

func mustVolumeTiles(tiling niltile.Tiling, levelExtentB niltile.Extent3D[niltile.Bytes]) int {
	tiles := tiling.LevelExtentTiles(levelExtentB)
	return tiles.Volume()
}
