package niltile

import (
	"math/rand"
	"testing"
)

func fillRandom(seed int64, n int) []byte {
	b := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(b)
	return b
}

// TestCopySingleWholeGOB mirrors a single whole GOB copy: offset=(0,0,0),
// extent=(64,8,1), tile = one 64x8-byte GOB.
func TestCopySingleWholeGOB(t *testing.T) {
	tiling := Tiling{GobHeightIs8: true}
	linear := fillRandom(1, 64*8)
	tiled := make([]byte, tiling.TileSizeB())

	lv := LinearView{Base: linear, RowStrideB: 64}
	tv := TiledView{Base: tiled, LevelExtentB: Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}}

	if err := CopyLinearToTiled(tv, lv, Offset3D[Bytes]{}, Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}, SwizzleNone, tiling); err != nil {
		t.Fatalf("CopyLinearToTiled: %v", err)
	}

	roundtrip := make([]byte, 64*8)
	rv := LinearView{Base: roundtrip, RowStrideB: 64}
	if err := CopyTiledToLinear(rv, tv, Offset3D[Bytes]{}, Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}, SwizzleNone, tiling); err != nil {
		t.Fatalf("CopyTiledToLinear: %v", err)
	}
	for i := range linear {
		if linear[i] != roundtrip[i] {
			t.Fatalf("byte %d: round-trip = %#x, want %#x", i, roundtrip[i], linear[i])
		}
	}
}

// TestCopySubSectorPartial mirrors offset=(3,1,0), extent=(5,3,1): a
// sub-sector partial that exercises the clipped sector path.
func TestCopySubSectorPartial(t *testing.T) {
	tiling := Tiling{GobHeightIs8: true}
	levelExtent := Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}
	linear := fillRandom(2, 64*8)
	tiled := make([]byte, tiling.TileSizeB())

	lv := LinearView{Base: linear, RowStrideB: 64}
	tv := TiledView{Base: tiled, LevelExtentB: levelExtent}
	off := Offset3D[Bytes]{X: 3, Y: 1}
	ext := Extent3D[Bytes]{Width: 5, Height: 3, Depth: 1}

	if err := CopyLinearToTiled(tv, lv, off, ext, SwizzleNone, tiling); err != nil {
		t.Fatalf("CopyLinearToTiled: %v", err)
	}

	roundtrip := make([]byte, 64*8)
	rv := LinearView{Base: roundtrip, RowStrideB: 64}
	if err := CopyTiledToLinear(rv, tv, off, ext, SwizzleNone, tiling); err != nil {
		t.Fatalf("CopyTiledToLinear: %v", err)
	}
	for y := off.Y; y < off.Y+ext.Height; y++ {
		for x := off.X; x < off.X+ext.Width; x++ {
			i := y*64 + x
			if linear[i] != roundtrip[i] {
				t.Fatalf("(%d,%d): round-trip = %#x, want %#x", x, y, roundtrip[i], linear[i])
			}
		}
	}
}

// TestCopySingleWholeTile mirrors offset=(0,0,0), extent=(128,16,1) on
// XLog2=1,YLog2=1 — exactly one tile, only the whole-tile path.
func TestCopySingleWholeTile(t *testing.T) {
	tiling := Tiling{GobHeightIs8: true, XLog2: 1, YLog2: 1}
	levelExtent := Extent3D[Bytes]{Width: 128, Height: 16, Depth: 1}
	linear := fillRandom(3, 128*16)
	tiled := make([]byte, tiling.TileSizeB())

	lv := LinearView{Base: linear, RowStrideB: 128}
	tv := TiledView{Base: tiled, LevelExtentB: levelExtent}
	ext := Extent3D[Bytes]{Width: 128, Height: 16, Depth: 1}

	if err := CopyLinearToTiled(tv, lv, Offset3D[Bytes]{}, ext, SwizzleNone, tiling); err != nil {
		t.Fatalf("CopyLinearToTiled: %v", err)
	}

	roundtrip := make([]byte, 128*16)
	rv := LinearView{Base: roundtrip, RowStrideB: 128}
	if err := CopyTiledToLinear(rv, tv, Offset3D[Bytes]{}, ext, SwizzleNone, tiling); err != nil {
		t.Fatalf("CopyTiledToLinear: %v", err)
	}
	for i := range linear {
		if linear[i] != roundtrip[i] {
			t.Fatalf("byte %d: round-trip = %#x, want %#x", i, roundtrip[i], linear[i])
		}
	}
}

// TestCopyCrossesFourGOBCorners mirrors offset=(48,6,0), extent=(32,4,1):
// crosses four GOB corners, exercising both partial-GOB and partial-sector
// paths.
func TestCopyCrossesFourGOBCorners(t *testing.T) {
	tiling := Tiling{GobHeightIs8: true, XLog2: 1, YLog2: 1}
	levelExtent := Extent3D[Bytes]{Width: 128, Height: 16, Depth: 1}
	linear := fillRandom(4, 128*16)
	tiled := make([]byte, tiling.TileSizeB())

	lv := LinearView{Base: linear, RowStrideB: 128}
	tv := TiledView{Base: tiled, LevelExtentB: levelExtent}
	off := Offset3D[Bytes]{X: 48, Y: 6}
	ext := Extent3D[Bytes]{Width: 32, Height: 4, Depth: 1}

	if err := CopyLinearToTiled(tv, lv, off, ext, SwizzleNone, tiling); err != nil {
		t.Fatalf("CopyLinearToTiled: %v", err)
	}

	roundtrip := make([]byte, 128*16)
	rv := LinearView{Base: roundtrip, RowStrideB: 128}
	if err := CopyTiledToLinear(rv, tv, off, ext, SwizzleNone, tiling); err != nil {
		t.Fatalf("CopyTiledToLinear: %v", err)
	}
	for y := off.Y; y < off.Y+ext.Height; y++ {
		for x := off.X; x < off.X+ext.Width; x++ {
			i := y*128 + x
			if linear[i] != roundtrip[i] {
				t.Fatalf("(%d,%d): round-trip = %#x, want %#x", x, y, roundtrip[i], linear[i])
			}
		}
	}
}

func TestCopyRectOutOfBoundsError(t *testing.T) {
	tiling := Tiling{GobHeightIs8: true}
	levelExtent := Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}
	tv := TiledView{Base: make([]byte, tiling.TileSizeB()), LevelExtentB: levelExtent}
	lv := LinearView{Base: make([]byte, 64*8), RowStrideB: 64}

	err := CopyLinearToTiled(tv, lv, Offset3D[Bytes]{X: 60}, Extent3D[Bytes]{Width: 10, Height: 8, Depth: 1}, SwizzleNone, tiling)
	if err != ErrRectOutOfBounds {
		t.Fatalf("err = %v, want ErrRectOutOfBounds", err)
	}
}

func TestCopyBufferTooSmallError(t *testing.T) {
	tiling := Tiling{GobHeightIs8: true}
	levelExtent := Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}
	tv := TiledView{Base: make([]byte, 10), LevelExtentB: levelExtent}
	lv := LinearView{Base: make([]byte, 64*8), RowStrideB: 64}

	err := CopyLinearToTiled(tv, lv, Offset3D[Bytes]{}, Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}, SwizzleNone, tiling)
	if err != ErrBufferTooSmall {
		t.Fatalf("err = %v, want ErrBufferTooSmall", err)
	}
}

func TestCopyInvalidSwizzleError(t *testing.T) {
	tiling := Tiling{GobHeightIs8: true}
	levelExtent := Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}
	tv := TiledView{Base: make([]byte, tiling.TileSizeB()), LevelExtentB: levelExtent}
	lv := LinearView{Base: make([]byte, 64*8), RowStrideB: 64}

	err := CopyLinearToTiled(tv, lv, Offset3D[Bytes]{}, Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}, CopySwizzle(99), tiling)
	if err != ErrInvalidSwizzle {
		t.Fatalf("err = %v, want ErrInvalidSwizzle", err)
	}
}

// TestCopyX24S8Stencil verifies the stencil swizzle through the public
// API: stencil bytes written to tiled storage with SwizzleX24S8 read back
// unchanged. The tiled-side byte placement (stencil at 4k+3, bytes
// 4k..4k+2 untouched) is checked by internal/sector's CopyLine tests.
func TestCopyX24S8Stencil(t *testing.T) {
	tiling := Tiling{GobHeightIs8: true}
	levelExtent := Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}
	// X24S8's linear side is 1 byte per pixel; 64 tiled bytes per row
	// compact to 16 linear bytes (xDivisor=4).
	linear := make([]byte, 16*8)
	for i := range linear {
		linear[i] = byte(i + 1)
	}
	tiled := make([]byte, tiling.TileSizeB())
	for i := range tiled {
		tiled[i] = 0xAA
	}

	lv := LinearView{Base: linear, RowStrideB: 16}
	tv := TiledView{Base: tiled, LevelExtentB: levelExtent}
	ext := Extent3D[Bytes]{Width: 64, Height: 8, Depth: 1}

	if err := CopyLinearToTiled(tv, lv, Offset3D[Bytes]{}, ext, SwizzleX24S8, tiling); err != nil {
		t.Fatalf("CopyLinearToTiled: %v", err)
	}

	roundtrip := make([]byte, 16*8)
	rv := LinearView{Base: roundtrip, RowStrideB: 16}
	if err := CopyTiledToLinear(rv, tv, Offset3D[Bytes]{}, ext, SwizzleX24S8, tiling); err != nil {
		t.Fatalf("CopyTiledToLinear: %v", err)
	}
	for i := range linear {
		if roundtrip[i] != linear[i] {
			t.Fatalf("stencil byte %d: round-trip = %#x, want %#x", i, roundtrip[i], linear[i])
		}
	}
}
