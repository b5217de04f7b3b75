// Package tagarena implements a tagged bump allocator: memory is grouped by a
// coarse tag naming a phase of the workload, allocations under a tag are never
// freed one by one, and the whole tag is released in a single call when its
// phase ends. Each tag owns a chain of fixed-size blocks that grows on demand.
package tagarena

import (
	"errors"
	"unsafe"

	"go.uber.org/zap"
)

// DefaultBlockSize default capacity of a block, 2MiB
const DefaultBlockSize = 2 * 1024 * 1024

var (
	// ErrInvalidTag the tag is the sentinel or out of range
	ErrInvalidTag = errors.New("tagarena: invalid tag")
	// ErrInvalidSize the requested size is not positive
	ErrInvalidSize = errors.New("tagarena: allocation size must be positive")
	// ErrCapacityExceeded the requested size exceeds the block size
	ErrCapacityExceeded = errors.New("tagarena: allocation exceeds block size")
	// ErrBlockExhausted a fresh block still cannot hold the padded request
	ErrBlockExhausted = errors.New("tagarena: request does not fit a fresh block")
	// ErrClosed the arena has been closed
	ErrClosed = errors.New("tagarena: arena is closed")
)

// chain holds the blocks owned by one tag, oldest first. Only the last block
// accepts new allocations. An empty chain is a valid state: the tag was just
// freed and the next allocation regrows it.
type chain struct {
	blocks []*block
	epoch  uint64
	frees  uint64
}

func (c *chain) head() *block {
	if n := len(c.blocks); n > 0 {
		return c.blocks[n-1]
	}
	return nil
}

// TaggedArena routes allocation requests to per-tag block chains. It is not
// goroutine safe; callers serialize access externally if needed.
type TaggedArena struct {
	chains [NumTags]chain
	closed bool

	options struct {
		blockSize int
		alloc     Allocator
		fullPad   bool
	}
}

// NewTaggedArena create a tagged arena with one block already allocated for
// every tag.
func NewTaggedArena(opts ...Option) *TaggedArena {
	a := &TaggedArena{}
	for _, opt := range opts {
		opt(a)
	}
	a.adjust()
	for i := 0; i < NumTags; i++ {
		a.grow(Tag(i))
	}
	return a
}

func (a *TaggedArena) adjust() {
	if a.options.blockSize <= 0 {
		a.options.blockSize = DefaultBlockSize
	}
	if a.options.alloc == nil {
		a.options.alloc = newHeapAllocator()
	}
}

// Alloc reserves size bytes aligned to align under tag and returns their
// address. align must be a power of two. The address stays valid until the
// tag is freed or the arena is closed. When the tag's current block is full
// a new block is pushed and the allocation retried exactly once; a request
// that still does not fit the fresh block because of alignment padding fails
// with ErrBlockExhausted, there is no fallback to a different padding
// strategy.
func (a *TaggedArena) Alloc(tag Tag, size, align int) (unsafe.Pointer, error) {
	if a.closed {
		return nil, ErrClosed
	}
	if !tag.Valid() {
		return nil, ErrInvalidTag
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if size > a.options.blockSize {
		return nil, ErrCapacityExceeded
	}

	c := &a.chains[tag]
	if b := c.head(); b != nil {
		if p := b.alloc(uintptr(size), uintptr(align), a.options.fullPad); p != nil {
			return p, nil
		}
	}

	// Head is full, or the tag was freed and has no block. Push a fresh
	// block and retry once.
	b := a.grow(tag)
	if p := b.alloc(uintptr(size), uintptr(align), a.options.fullPad); p != nil {
		return p, nil
	}

	// Even an empty block cannot hold size plus the pad. Pop it again so the
	// failed attempt leaves no trace in the chain.
	c.blocks = c.blocks[:len(c.blocks)-1]
	b.free(a.options.alloc)
	return nil, ErrBlockExhausted
}

// AllocBytes reserves size bytes aligned to align under tag and returns them
// as a slice with len == cap == size.
func (a *TaggedArena) AllocBytes(tag Tag, size, align int) ([]byte, error) {
	p, err := a.Alloc(tag, size, align)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(p), size), nil
}

// Free releases every block held by tag. All addresses previously returned
// for allocations under tag are invalid once Free returns; handles minted
// for the tag become stale. The tag itself stays usable, the next allocation
// regrows its chain.
func (a *TaggedArena) Free(tag Tag) error {
	if a.closed {
		return ErrClosed
	}
	if !tag.Valid() {
		return ErrInvalidTag
	}

	c := &a.chains[tag]
	released := len(c.blocks)
	for _, b := range c.blocks {
		b.free(a.options.alloc)
	}
	c.blocks = nil
	c.epoch++
	c.frees++
	logger.Debug("tag freed",
		zap.Stringer("tag", tag),
		zap.Int("blocks", released))
	return nil
}

// Close frees every tag and makes the arena unusable. Any operation after
// Close fails with ErrClosed.
func (a *TaggedArena) Close() {
	if a.closed {
		return
	}
	for i := 0; i < NumTags; i++ {
		_ = a.Free(Tag(i))
	}
	a.closed = true
	logger.Debug("arena closed")
}

func (a *TaggedArena) grow(tag Tag) *block {
	b := newBlock(a.options.alloc, a.options.blockSize)
	c := &a.chains[tag]
	c.blocks = append(c.blocks, b)
	logger.Debug("block allocated",
		zap.Stringer("tag", tag),
		zap.Int("blocks", len(c.blocks)),
		zap.Int("blockSize", a.options.blockSize))
	return b
}
