//go:build unix

package tagarena

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

type mmapAllocator struct {
}

// NewMmapAllocator returns an Allocator that maps anonymous private pages for
// each block and unmaps them on Free, so freed tags hand their memory back to
// the system immediately instead of waiting for the garbage collector.
func NewMmapAllocator() Allocator {
	return &mmapAllocator{}
}

func (ma *mmapAllocator) Allocate(capacity int) []byte {
	b, err := unix.Mmap(-1, 0, capacity,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(fmt.Sprintf("tagarena: mmap %d bytes: %v", capacity, err))
	}
	return b
}

func (ma *mmapAllocator) Free(data []byte) {
	if data == nil {
		return
	}
	if err := unix.Munmap(data); err != nil {
		logger.Error("munmap failed",
			zap.Int("bytes", len(data)),
			zap.Error(err))
	}
}
