package niltile

import "errors"

// Sentinel errors returned by niltile's public entry points. Callers should
// compare with errors.Is.
var (
	// ErrInvalidTiling is returned when a Tiling fails Validate: one of
	// its XLog2, YLog2 or ZLog2 fields is above 5.
	ErrInvalidTiling = errors.New("niltile: invalid tiling")

	// ErrRectOutOfBounds is returned when a requested copy rectangle
	// falls (even partially) outside the image extent it is addressed
	// against.
	ErrRectOutOfBounds = errors.New("niltile: copy rectangle out of bounds")

	// ErrBufferTooSmall is returned when a LinearView or TiledView's
	// backing slice is smaller than the region its stride/extent imply
	// it must cover.
	ErrBufferTooSmall = errors.New("niltile: backing buffer too small")

	// ErrInvalidSwizzle is returned when a CopySwizzle value outside the
	// five defined variants is passed to a copy entry point.
	ErrInvalidSwizzle = errors.New("niltile: invalid copy swizzle")

	// ErrMisalignedRectangle is returned when a copy rectangle's offset or
	// extent is not expressible in whole bytes on the linear side once the
	// swizzle's x-divisor is applied, e.g. an odd X offset under X24S8's
	// 4-byte compaction.
	ErrMisalignedRectangle = errors.New("niltile: copy rectangle misaligned for swizzle's x-divisor")
)
