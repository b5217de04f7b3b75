package tagarena

// Option tagged arena option
type Option func(*TaggedArena)

// WithBlockSize set the capacity in bytes of every block. A single
// allocation can never exceed this value.
func WithBlockSize(blockSize int) Option {
	return func(a *TaggedArena) {
		a.options.blockSize = blockSize
	}
}

// WithAllocator set the allocator backing block storage. Blocks are handed
// back to the allocator when their tag is freed.
func WithAllocator(alloc Allocator) Option {
	return func(a *TaggedArena) {
		a.options.alloc = alloc
	}
}

// WithFullAlignmentPadding make every allocation consume a full
// alignment-width pad instead of the minimal bytes needed to reach the next
// aligned address. This reproduces the classic tagged heap behavior and
// wastes up to align bytes per allocation.
func WithFullAlignmentPadding() Option {
	return func(a *TaggedArena) {
		a.options.fullPad = true
	}
}
