// Package niltile converts pixel-rectangle byte ranges between a strided
// linear byte layout (as a host application sees a mapped image) and
// NVIDIA's "Block Linear" tiled layout (as the GPU sees it), for the subset
// of operations a Vulkan VK_EXT_host_image_copy path needs.
//
// The package is organized leaves-first, mirroring the traversal it
// performs:
//
//   - internal/sector holds the 16-byte-aligned copy primitive and its
//     depth/stencil swizzle variants, plus the GOB (Group of Bytes) walker
//     that enumerates a GOB's 16 sectors in hardware order.
//   - internal/addr holds the pure byte-offset arithmetic for both the
//     linear side (row/plane stride, optional x-divisor compaction) and the
//     block-linear side (nested tile-in-level / GOB-in-tile addressing).
//   - internal/blocklinear holds the tile (block) walker and the rectangle
//     partitioner that splits an arbitrary byte-space rectangle into a
//     fully-aligned interior (fast path) and unaligned border (clipped
//     path).
//   - internal/vma holds the interval allocator used to reserve GPU virtual
//     address ranges for the buffers that participate in a copy.
//
// CopyLinearToTiled and CopyTiledToLinear are the two public entry points;
// everything else in this package is the descriptor types they consume
// (Tiling, LinearView, TiledView, CopySwizzle) plus VM/VMA, the virtual
// address heap.
//
// niltile does not decode pixel formats or compute miplevel extents:
// callers pass already-byte-space rectangles, the way the C ABI this
// package is modeled on does. niltile also does not submit GPU work or map
// GPU memory; it performs a direct CPU-side memory copy between two
// caller-owned byte slices.
package niltile
