package tagarena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapAllocate(t *testing.T) {
	allocator := newHeapAllocator()
	assert.Equal(t, 10, len(allocator.Allocate(10)))
}
