package tagarena

import "unsafe"

// block is a fixed-capacity byte region with a monotonic bump cursor. The
// cursor only ever moves forward; space comes back when the whole block is
// released to its allocator.
type block struct {
	buf     []byte
	offset  uintptr
	padding uintptr
}

func newBlock(alloc Allocator, capacity int) *block {
	return &block{buf: alloc.Allocate(capacity)}
}

// alloc reserves size bytes aligned to align and returns their address, or
// nil when the remaining capacity cannot hold the padded request. align must
// be a power of two; the caller guarantees size > 0. With fullPad set, every
// call consumes a full alignment-width pad instead of the minimal bytes
// needed to reach the next aligned address.
func (b *block) alloc(size, align uintptr, fullPad bool) unsafe.Pointer {
	var pad uintptr
	if fullPad {
		pad = align
	} else {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
		pad = (align - (base+b.offset)&(align-1)) & (align - 1)
	}
	if b.offset+pad+size > uintptr(len(b.buf)) {
		return nil
	}
	b.offset += pad
	b.padding += pad
	p := unsafe.Pointer(&b.buf[b.offset])
	b.offset += size
	return p
}

// free returns the block's storage to its allocator. The block must not be
// used afterwards.
func (b *block) free(alloc Allocator) {
	alloc.Free(b.buf)
	b.buf = nil
}
