package niltile

import "github.com/gpumem/niltile/internal/sector"

// CopySwizzle selects which per-pixel byte remapping a copy applies
// between the tiled and linear sides, matching the five variants of the
// C-ABI's swizzle enum.
type CopySwizzle = sector.Swizzle

// The five defined CopySwizzle variants.
const (
	SwizzleNone     = sector.None
	SwizzleZ24X8    = sector.Z24X8
	SwizzleX24S8    = sector.X24S8
	SwizzleZ32X32   = sector.Z32X32
	SwizzleX32X24S8 = sector.X32X24S8
)
