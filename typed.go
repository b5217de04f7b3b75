package tagarena

import (
	"unsafe"

	"github.com/fagongzi/util/hack"
)

// Alloc allocates a zeroed T under tag using T's natural alignment. The
// returned pointer is valid until the tag is freed or the arena is closed.
func Alloc[T any](a *TaggedArena, tag Tag) (*T, error) {
	var zero T
	return AllocAligned[T](a, tag, int(unsafe.Alignof(zero)))
}

// AllocAligned allocates a zeroed T under tag at the given alignment,
// overriding T's natural one. align must be a power of two. The object is
// only initialized when the underlying allocation succeeded.
func AllocAligned[T any](a *TaggedArena, tag Tag, align int) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		// Zero-sized types still get a distinct address.
		size = 1
	}
	p, err := a.Alloc(tag, size, align)
	if err != nil {
		return nil, err
	}
	t := (*T)(p)
	*t = zero
	return t, nil
}

// AllocSlice allocates a zeroed slice of n elements of T under tag, using
// T's natural alignment. The whole slice must fit in one block.
func AllocSlice[T any](a *TaggedArena, tag Tag, n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	var zero T
	size := n * int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	p, err := a.Alloc(tag, size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	s := unsafe.Slice((*T)(p), n)
	clear(s)
	return s, nil
}

// AllocString copies s into arena storage under tag and returns a string
// backed by that storage, without a second copy. The result is invalid after
// the tag is freed.
func AllocString(a *TaggedArena, tag Tag, s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	b, err := a.AllocBytes(tag, len(s), 1)
	if err != nil {
		return "", err
	}
	copy(b, s)
	return hack.SliceToString(b), nil
}
