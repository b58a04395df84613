package niltile

import (
	"sync/atomic"

	"github.com/gpumem/niltile/internal/vma"
)

// VM is a thread-safe interval allocator over a 64-bit address range, used
// to carve out virtual address reservations for the tiled and linear
// buffers a copy runs between. It is independent of the copy path itself:
// callers that already manage their own address space have no need to
// construct one.
type VM struct {
	heap      *vma.Heap
	exhausted atomic.Bool
}

// VMA is one reservation returned by VM.Alloc: a half-open address
// interval [Addr, Addr+Size).
type VMA struct {
	Addr, Size uint64
}

// NewVM constructs a VM covering [start, start+size).
func NewVM(start, size uint64) *VM {
	Logger().Info("vma heap created", "start", start, "size", size)
	return &VM{heap: vma.New(start, size)}
}

// Alloc reserves size bytes aligned to align (a power of two) and reports
// false if no free interval of sufficient size exists.
func (v *VM) Alloc(size, align uint64) (VMA, bool) {
	addr, ok := v.heap.Alloc(size, align)
	if !ok {
		v.exhausted.Store(true)
		return VMA{}, false
	}
	return VMA{Addr: addr, Size: size}, true
}

// Free releases a reservation previously returned by Alloc with the exact
// (addr, size) pair Alloc returned, coalescing with adjacent free
// intervals. If a prior Alloc had failed due to exhaustion, Free logs the
// heap's recovery once space is returned to it.
func (v *VM) Free(addr, size uint64) {
	v.heap.Free(addr, size)
	if v.exhausted.CompareAndSwap(true, false) {
		Logger().Info("vma heap recovered from exhaustion", "addr", addr, "size", size)
	}
}
