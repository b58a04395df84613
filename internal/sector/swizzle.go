// Package sector implements the 16x2-byte sector copy primitive and its
// depth/stencil swizzle variants, and the GOB (Group of Bytes) walker that
// drives the primitive over one 64xN-byte GOB in hardware order.
package sector

// Swizzle selects the per-pixel byte remapping a copy applies between the
// tiled and linear sides of a sector.
type Swizzle int

const (
	// None moves bytes byte-for-byte; no pixel structure is assumed.
	None Swizzle = iota
	// Z24X8 treats both sides as 4-byte pixels and copies only the low 3
	// bytes of each pixel (the 24-bit depth value), leaving the high
	// byte (padding) of the destination untouched.
	Z24X8
	// X24S8 treats the tiled side as 4-byte pixels with an 8-bit
	// stencil value at byte 3, and the linear side as a dense 1-byte
	// stencil buffer. Four tiled bytes collapse to one linear byte.
	X24S8
	// Z32X32 treats both sides as 8-byte pixels and copies only the low
	// 4 bytes of each pixel (the 32-bit depth value).
	Z32X32
	// X32X24S8 treats the tiled side as 8-byte pixels with an 8-bit
	// stencil value at byte 7, and the linear side as a dense 1-byte
	// stencil buffer. Eight tiled bytes collapse to one linear byte.
	X32X24S8
)

// info describes, for a swizzle variant, which bytes of a tiled-side pixel
// are meaningful and how tiled-side byte positions compact onto the
// linear side.
type info struct {
	bppTiled  int // bytes per tiled-side pixel; 0 means "raw", no pixel structure at all
	usefulOff int // offset of the meaningful byte range within a tiled pixel
	usefulLen int // length of the meaningful byte range
	xDivisor  int // ratio of tiled-side bytes to linear-side bytes; 1 means identity addressing
}

var table = [...]info{
	None:     {bppTiled: 0, xDivisor: 1},
	Z24X8:    {bppTiled: 4, usefulOff: 0, usefulLen: 3, xDivisor: 1},
	X24S8:    {bppTiled: 4, usefulOff: 3, usefulLen: 1, xDivisor: 4},
	Z32X32:   {bppTiled: 8, usefulOff: 0, usefulLen: 4, xDivisor: 1},
	X32X24S8: {bppTiled: 8, usefulOff: 7, usefulLen: 1, xDivisor: 8},
}

func (s Swizzle) info() info {
	if int(s) < 0 || int(s) >= len(table) {
		return table[None]
	}
	return table[s]
}

// XDivisor returns the ratio of tiled-side bytes to linear-side bytes this
// swizzle addresses with; a power of two, 1 for variants with no
// compaction.
func (s Swizzle) XDivisor() int { return s.info().xDivisor }

// Valid reports whether s is one of the five defined variants.
func (s Swizzle) Valid() bool { return s >= None && s <= X32X24S8 }

func (s Swizzle) String() string {
	switch s {
	case None:
		return "None"
	case Z24X8:
		return "Z24X8"
	case X24S8:
		return "X24S8"
	case Z32X32:
		return "Z32_X32"
	case X32X24S8:
		return "X32_X24S8"
	default:
		return "Swizzle(invalid)"
	}
}
