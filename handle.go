package tagarena

import "errors"

// ErrStaleHandle the handle's tag was freed after the handle was minted
var ErrStaleHandle = errors.New("tagarena: handle outlived its tag")

// Handle is a non-owning reference to a typed arena allocation, bound to the
// epoch of the tag it was allocated under. Freeing the tag advances the
// epoch, so a stale handle is rejected at runtime instead of reading freed
// memory.
type Handle[T any] struct {
	arena *TaggedArena
	ptr   *T
	tag   Tag
	epoch uint64
}

// AllocHandle allocates a zeroed T under tag and returns a handle to it.
func AllocHandle[T any](a *TaggedArena, tag Tag) (Handle[T], error) {
	ptr, err := Alloc[T](a, tag)
	if err != nil {
		return Handle[T]{}, err
	}
	return Handle[T]{
		arena: a,
		ptr:   ptr,
		tag:   tag,
		epoch: a.chains[tag].epoch,
	}, nil
}

// Get returns the referenced object, or ErrStaleHandle once the handle's tag
// has been freed or the arena closed.
func (h Handle[T]) Get() (*T, error) {
	if h.arena == nil || h.arena.closed || h.arena.chains[h.tag].epoch != h.epoch {
		return nil, ErrStaleHandle
	}
	return h.ptr, nil
}

// Valid reports whether Get would succeed.
func (h Handle[T]) Valid() bool {
	_, err := h.Get()
	return err == nil
}
