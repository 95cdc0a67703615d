// Package arena carves typed, pointer-free views out of a single
// caller-provided byte block.
//
// The arena never allocates. Every view it hands out aliases the block,
// starts at an address aligned for its element type, and is zeroed before
// it is returned. Element types must not contain Go pointers: the garbage
// collector does not scan the block for them.
package arena

import "unsafe"

// Arena is a bump allocator over a byte block.
//
// Arena is not safe for concurrent use.
type Arena struct {
	buf []byte
	off int
}

// New returns an arena over buf. The arena starts at offset 0.
func New(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// Offset returns the number of bytes consumed so far, padding included.
func (a *Arena) Offset() int {
	return a.off
}

// Remaining returns the number of bytes left after the cursor.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.off
}

// Align moves the cursor forward to the next address that is a multiple of
// to. It reports false, leaving the cursor untouched, if the aligned
// position lies past the end of the block.
func (a *Arena) Align(to uintptr) bool {
	if len(a.buf) == 0 {
		return false
	}
	pad := padding(a.addr(), to)
	if a.off+pad > len(a.buf) {
		return false
	}
	a.off += pad
	return true
}

// Alloc carves one zeroed T from the arena.
// Returns nil if T does not fit.
func Alloc[T any](a *Arena) *T {
	var zero T
	p := a.alloc(unsafe.Sizeof(zero), unsafe.Alignof(zero), 1)
	if p == nil {
		return nil
	}
	return (*T)(p)
}

// Slice carves n zeroed, contiguous Ts from the arena.
// Returns nil if they do not fit. A request for zero elements yields an
// empty slice without moving the cursor.
func Slice[T any](a *Arena, n int) []T {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []T{}
	}
	var zero T
	p := a.alloc(unsafe.Sizeof(zero), unsafe.Alignof(zero), n)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// Fit returns how many Ts would fit after aligning the cursor for T,
// without carving anything.
func Fit[T any](a *Arena) int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || len(a.buf) == 0 {
		return 0
	}
	pad := padding(a.addr(), unsafe.Alignof(zero))
	left := a.Remaining() - pad
	if left <= 0 {
		return 0
	}
	return left / size
}

func (a *Arena) alloc(size, align uintptr, n int) unsafe.Pointer {
	if len(a.buf) == 0 || size == 0 {
		return nil
	}
	pad := padding(a.addr(), align)
	total := int(size) * n
	if total/n != int(size) {
		return nil
	}
	start := a.off + pad
	if start > len(a.buf) || len(a.buf)-start < total {
		return nil
	}
	mem := a.buf[start : start+total]
	clear(mem)
	a.off = start + total
	return unsafe.Pointer(unsafe.SliceData(mem))
}

// addr returns the address of the cursor.
func (a *Arena) addr() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.buf))) + uintptr(a.off)
}

// padding returns the bytes needed to round p up to a multiple of to.
// to has to be a power of two.
func padding(p, to uintptr) int {
	return int(-p & (to - 1))
}
