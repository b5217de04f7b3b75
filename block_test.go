package tagarena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestBlockAlloc(t *testing.T) {
	b := newBlock(newHeapAllocator(), 64)

	p1 := b.alloc(8, 1, false)
	assert.NotNil(t, p1)
	assert.Equal(t, uintptr(8), b.offset)

	p2 := b.alloc(8, 1, false)
	assert.NotNil(t, p2)
	assert.Equal(t, uintptr(16), b.offset)
	assert.Equal(t, uintptr(8), uintptr(p2)-uintptr(p1))
}

func TestBlockAllocAligned(t *testing.T) {
	b := newBlock(newHeapAllocator(), 256)

	b.alloc(1, 1, false)
	p := b.alloc(8, 64, false)
	assert.NotNil(t, p)
	assert.Equal(t, uintptr(0), uintptr(p)%64)
}

func TestBlockAllocFull(t *testing.T) {
	b := newBlock(newHeapAllocator(), 64)

	assert.NotNil(t, b.alloc(64, 1, false))
	assert.Nil(t, b.alloc(1, 1, false))
	assert.Equal(t, uintptr(64), b.offset, "failed alloc must not move the cursor")
}

func TestBlockAllocFullPad(t *testing.T) {
	b := newBlock(newHeapAllocator(), 64)

	p := b.alloc(8, 8, true)
	assert.NotNil(t, p)
	assert.Equal(t, uintptr(16), b.offset, "full-pad mode always consumes a whole alignment width")
	assert.Equal(t, uintptr(8), b.padding)

	// 60+8 exceeds the remaining 48 bytes.
	assert.Nil(t, b.alloc(60, 8, true))
}

func TestBlockAllocWithinStorage(t *testing.T) {
	b := newBlock(newHeapAllocator(), 128)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))

	for i := 0; i < 4; i++ {
		p := b.alloc(16, 8, false)
		assert.NotNil(t, p)
		assert.GreaterOrEqual(t, uintptr(p), base)
		assert.LessOrEqual(t, uintptr(p)+16, base+128)
	}
}
