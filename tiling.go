package niltile

// Tiling is an immutable description of one mip-level's block-linear tile
// geometry. It carries no buffer state; the same Tiling value is reused
// across every copy against levels that share the geometry.
type Tiling struct {
	// GobHeightIs8 selects the GOB shape: 64x8 bytes when true (the
	// current, primary hardware configuration), 64x4 bytes (the legacy
	// path) when false.
	GobHeightIs8 bool

	// XLog2, YLog2, ZLog2 are the log2 of the number of GOBs packed into
	// one tile along each axis. A tile holds 2^(XLog2+YLog2+ZLog2) GOBs
	// arranged block-linearly.
	XLog2, YLog2, ZLog2 uint8
}

// GobHeight returns 8 or 4 depending on GobHeightIs8.
func (t Tiling) GobHeight() int {
	if t.GobHeightIs8 {
		return 8
	}
	return 4
}

// Validate enforces the Tiling invariant: all log2 fields at most 5 (a
// tile may hold at most 32 GOBs along any one axis).
func (t Tiling) Validate() error {
	if t.XLog2 > 5 || t.YLog2 > 5 || t.ZLog2 > 5 {
		return ErrInvalidTiling
	}
	return nil
}

// GobExtentB returns the byte extent of a single GOB: (64, GobHeight(), 1).
func (t Tiling) GobExtentB() Extent3D[Bytes] {
	return Extent3D[Bytes]{Width: 64, Height: t.GobHeight(), Depth: 1}
}

// TileExtentB returns the byte extent of a single tile.
func (t Tiling) TileExtentB() Extent3D[Bytes] {
	return Extent3D[Bytes]{
		Width:  64 << t.XLog2,
		Height: t.GobHeight() << t.YLog2,
		Depth:  1 << t.ZLog2,
	}
}

// GobCountPerTile returns 2^(XLog2+YLog2+ZLog2), the number of GOBs in one
// tile.
func (t Tiling) GobCountPerTile() int {
	return 1 << (t.XLog2 + t.YLog2 + t.ZLog2)
}

// TileSizeB returns the byte size of one tile: GobSizeB() * GobCountPerTile().
func (t Tiling) TileSizeB() uint64 {
	return uint64(t.GobSizeB()) * uint64(t.GobCountPerTile())
}

// GobSizeB returns the byte size of one GOB: 64*GobHeight().
func (t Tiling) GobSizeB() int {
	return 64 * t.GobHeight()
}

// GobExtentPerTile returns the tile extent measured in whole GOBs, i.e.
// (2^XLog2, 2^YLog2, 2^ZLog2).
func (t Tiling) GobExtentPerTile() Extent3D[GOBs] {
	return Extent3D[GOBs]{
		Width:  1 << t.XLog2,
		Height: 1 << t.YLog2,
		Depth:  1 << t.ZLog2,
	}
}

// AlignUp rounds a byte extent up to a whole number of tiles in each
// dimension, the alignment step a mip level's true extent needs before its
// tile grid can be addressed.
func (t Tiling) AlignUp(e Extent3D[Bytes]) Extent3D[Bytes] {
	tile := t.TileExtentB()
	return Extent3D[Bytes]{
		Width:  alignUp(e.Width, tile.Width),
		Height: alignUp(e.Height, tile.Height),
		Depth:  alignUp(e.Depth, tile.Depth),
	}
}

// LevelExtentTiles returns the level's aligned extent measured in whole
// tiles, used by the tile-in-level address cursor.
func (t Tiling) LevelExtentTiles(levelExtentB Extent3D[Bytes]) Extent3D[Tiles] {
	aligned := t.AlignUp(levelExtentB)
	tile := t.TileExtentB()
	return Extent3D[Tiles]{
		Width:  aligned.Width / tile.Width,
		Height: aligned.Height / tile.Height,
		Depth:  aligned.Depth / tile.Depth,
	}
}

func alignUp(n, align int) int {
	if align <= 0 {
		return n
	}
	return (n + align - 1) / align * align
}
