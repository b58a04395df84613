// Package addr computes byte offsets for the linear and block-linear sides
// of a tiled copy.
//
// Both cursors are pure arithmetic: they never touch memory themselves, they
// only translate a 3-D byte coordinate into a flat offset that the caller
// then slices into. This mirrors the stride/offset math in an ordinary
// strided pixel buffer (PixelOffset/RowBytes over width/height/stride), with
// two generalizations the tiled side needs: an XDivisor on the linear
// cursor (stencil-only buffers pack 4 tiled bytes into 1 linear byte) and a
// block-nested cursor whose block extent is a parameter; the copy path uses
// it for tile-in-level addressing.
package addr

// Linear is a byte-offset calculator for a strided linear buffer.
//
// At((x,y,z)) returns base + z*planeStride + y*rowStride + x/xDivisor.
// XDivisor expresses that every group of XDivisor tiled-side bytes maps to
// one linear-side byte; it must be a power of two. A value of 1 means no
// compaction (the common case).
type Linear struct {
	RowStrideB   int
	PlaneStrideB int
	XDivisor     int
}

// At returns the byte offset of (x, y, z) from the cursor's origin.
func (c Linear) At(x, y, z int) int {
	div := c.XDivisor
	if div <= 0 {
		div = 1
	}
	return z*c.PlaneStrideB + y*c.RowStrideB + x/div
}

// ReverseX returns the smallest x coordinate (in tiled-side bytes) whose
// linear x-offset within a row is off, i.e. a right inverse of the x term
// of At: At's x term of ReverseX(off) is off again.
func (c Linear) ReverseX(off int) int {
	div := c.XDivisor
	if div <= 0 {
		div = 1
	}
	return off * div
}

// Block is a byte-offset calculator for one level of block-linear nesting
// (either tile-within-level or GOB-within-tile, depending on which block
// extent it is constructed with).
//
// At(xBlocks, yBlocks, zBlocks) returns the byte offset of the block at
// that block-grid coordinate within the level. Coordinates are in whole
// blocks, not bytes; callers are expected to have already divided down to
// block units (the partitioner guarantees this).
type Block struct {
	// BlockWidthB, BlockHeightB, BlockDepthB describe one block's extent in
	// bytes (e.g. one GOB's (64, 8, 1), or one tile's (tileW, tileH, tileD)).
	BlockWidthB, BlockHeightB, BlockDepthB int

	// LevelWidthBlocks, LevelHeightBlocks describe the block-aligned level
	// extent, i.e. how many blocks make up one row/plane of the enclosing
	// grid.
	LevelWidthBlocks, LevelHeightBlocks int
}

// At returns the byte offset of the block containing (x, y, z), where x, y,
// z are given in blocks (not bytes) along each axis.
func (c Block) At(xBlocks, yBlocks, zBlocks int) int {
	blockSizeB := c.BlockWidthB * c.BlockHeightB * c.BlockDepthB
	return zBlocks*c.LevelWidthBlocks*c.LevelHeightBlocks*blockSizeB +
		yBlocks*c.LevelWidthBlocks*blockSizeB +
		xBlocks*blockSizeB
}
