package sector

import "github.com/gpumem/niltile/internal/addr"

// GobWidthB is the byte width of a GOB (Group of Bytes); fixed regardless
// of GOB height.
const GobWidthB = 64

// SectorWidthB and SectorHeight are a sector's dimensions: 16 bytes wide,
// 2 rows tall, 32 bytes total.
const (
	SectorWidthB = 16
	SectorHeight = 2
	SectorSizeB  = SectorWidthB * SectorHeight
)

// anchor is one sector's position within a GOB: its sequential byte offset
// from the GOB base (a multiple of 32), and its GOB-local (x, y) origin in
// bytes.
type anchor struct {
	offsetB int
	x, y    int
}

// sectorOffset computes the tiled byte offset (within a GOB) of the byte
// at GOB-local coordinate (x, y), for x in [0,64) and y in [0, gobHeight).
//
// The hardware bit-interleave is a 9-bit permutation of x's 6 bits and
// y's 3 bits (x0..x5, y0..y2) into bit positions
// [x0 x1 x2 x3 y0 x4 y1 y2 x5] from low to high. Completing the pattern
// to include y2 (the bit distinguishing the third and fourth 2-row bands
// of an 8-row GOB) is required for the mapping to be exhaustive and
// non-repeating over a 64x8 GOB, as section 8's sector-enumeration
// property requires; a formula using only y0 and y1 collides between
// y values 4 bytes apart (e.g. y=0 and y=4 both reduce to the same
// offset), which a direct enumeration of all 16 sector anchors reveals.
func sectorOffset(x, y int) int {
	return (x & 15) |
		(y&1)<<4 |
		(x&16)<<1 |
		(y&2)<<5 |
		(y&4)<<5 |
		(x&32)<<3
}

// sectorAnchors returns the sequential (by tiled offset) list of sector
// anchors for a GOB of the given height (4 or 8), derived from
// sectorOffset rather than hand-enumerated.
func sectorAnchors(gobHeight int) []anchor {
	var all []anchor
	for y := 0; y < gobHeight; y += SectorHeight {
		for x := 0; x < GobWidthB; x += SectorWidthB {
			all = append(all, anchor{offsetB: sectorOffset(x, y), x: x, y: y})
		}
	}
	// Sort by offset so iteration order matches the tiled buffer's
	// physical sector order.
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].offsetB < all[j-1].offsetB; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	return all
}

var (
	anchors8 = sectorAnchors(8)
	anchors4 = sectorAnchors(4)
)

func anchorsFor(gobHeight int) []anchor {
	if gobHeight == 4 {
		return anchors4
	}
	return anchors8
}

// WholeGOB copies all of one GOB's sectors, unconditionally and without
// bounds checking. tiled must be exactly GobWidthB*gobHeight bytes (the
// GOB itself). linear is accessed through cur, positioned so GOB-local
// (0,0,0) maps to linear's own origin.
func WholeGOB(sw Swizzle, toTiled bool, tiled, linear []byte, cur addr.Linear, gobHeight int) {
	div := sw.XDivisor()
	for _, a := range anchorsFor(gobHeight) {
		tiledSector := tiled[a.offsetB : a.offsetB+SectorSizeB]
		for row := 0; row < SectorHeight; row++ {
			tiledRow := tiledSector[row*SectorWidthB : row*SectorWidthB+SectorWidthB]
			linOff := cur.At(a.x, a.y+row, 0)
			linearRow := linear[linOff : linOff+SectorWidthB/div]
			CopyLine(sw, toTiled, tiledRow, linearRow, 0, SectorWidthB)
		}
	}
}

// PartialGOB copies only the portion of a GOB whose GOB-local byte
// rectangle [xStart,xEnd) x [yStart,yEnd) intersects [0,GobWidthB) x
// [0,gobHeight). xStart and yStart may be negative (the rectangle may
// begin before this GOB); xEnd and yEnd are absolute GOB-local bounds.
func PartialGOB(sw Swizzle, toTiled bool, tiled, linear []byte, cur addr.Linear, gobHeight int, xStart, yStart, xEnd, yEnd int) {
	div := sw.XDivisor()
	for _, a := range anchorsFor(gobHeight) {
		lx0 := xStart - a.x
		ly0 := yStart - a.y
		lx1 := xEnd - a.x
		ly1 := yEnd - a.y
		if lx1 <= 0 || ly1 <= 0 || lx0 >= SectorWidthB || ly0 >= SectorHeight {
			continue
		}
		x0 := max(lx0, 0)
		x1 := min(lx1, SectorWidthB)
		y0 := max(ly0, 0)
		y1 := min(ly1, SectorHeight)

		tiledSector := tiled[a.offsetB : a.offsetB+SectorSizeB]
		for row := y0; row < y1; row++ {
			tiledRow := tiledSector[row*SectorWidthB : row*SectorWidthB+SectorWidthB]
			linOff := cur.At(a.x, a.y+row, 0)
			linearRow := linear[linOff : linOff+SectorWidthB/div]
			CopyLine(sw, toTiled, tiledRow, linearRow, x0, x1)
		}
	}
}
