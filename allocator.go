package tagarena

// Allocator memory allocation for arena blocks
type Allocator interface {
	// Allocate allocate a []byte with len(data) == capacity, the returned
	// []byte cannot be moved or resized while the arena holds it.
	Allocate(capacity int) []byte
	// Free free the allocated memory
	Free([]byte)
}

type heapAllocator struct {
}

func newHeapAllocator() Allocator {
	return &heapAllocator{}
}

func (ha *heapAllocator) Allocate(capacity int) []byte {
	return make([]byte, capacity)
}

func (ha *heapAllocator) Free([]byte) {

}
