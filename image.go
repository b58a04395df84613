package niltile

import (
	"github.com/gpumem/niltile/internal/addr"
)

// LinearView describes a strided linear byte buffer: the layout a host
// application sees when it maps an image for reading or writing.
type LinearView struct {
	Base []byte

	// RowStrideB and PlaneStrideB are the byte distance between
	// consecutive rows and consecutive depth planes.
	RowStrideB, PlaneStrideB int

	// XDivisor is the ratio of tiled-side bytes to linear-side bytes;
	// 1 for swizzles with no byte compaction. CopyLinearToTiled and
	// CopyTiledToLinear do not read this field: they always use the
	// divisor of the requested CopySwizzle.
	XDivisor int
}

// cursor builds the addr.Linear cursor this view's stride fields
// describe, applying the given x-divisor.
func (v LinearView) cursor(xDivisor int) addr.Linear {
	return addr.Linear{RowStrideB: v.RowStrideB, PlaneStrideB: v.PlaneStrideB, XDivisor: xDivisor}
}

// TiledView describes a block-linear tiled byte buffer: the layout the
// GPU sees. LevelExtentB is the mip-level's true byte extent; Tiling.AlignUp
// rounds it up to a whole number of tiles internally wherever the
// block-linear grid must be rectangular.
type TiledView struct {
	Base         []byte
	LevelExtentB Extent3D[Bytes]
}
