//go:build !unix

package tagarena

// NewMmapAllocator falls back to the heap allocator on platforms without
// anonymous mmap support.
func NewMmapAllocator() Allocator {
	return newHeapAllocator()
}
