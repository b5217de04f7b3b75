package tagarena

// TagStats is a snapshot of one tag's chain.
type TagStats struct {
	Tag      Tag    // the tag
	Blocks   int    // blocks currently in the chain
	Capacity int    // total bytes reserved from the allocator
	Used     int    // bytes claimed by allocations, padding included
	Padding  int    // bytes lost to alignment padding
	Frees    uint64 // times Free has run on this tag
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to
// 1.0), or 0.0 for an empty chain.
func (s TagStats) Utilization() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Used) / float64(s.Capacity)
}

// ArenaStats is a snapshot of every tag's chain.
type ArenaStats struct {
	Tags      [NumTags]TagStats
	BlockSize int
}

// TagStats returns a snapshot of tag's chain.
func (a *TaggedArena) TagStats(tag Tag) (TagStats, error) {
	if !tag.Valid() {
		return TagStats{}, ErrInvalidTag
	}
	c := &a.chains[tag]
	s := TagStats{
		Tag:    tag,
		Blocks: len(c.blocks),
		Frees:  c.frees,
	}
	for _, b := range c.blocks {
		s.Capacity += len(b.buf)
		s.Used += int(b.offset)
		s.Padding += int(b.padding)
	}
	return s, nil
}

// Stats returns a snapshot of every tag.
func (a *TaggedArena) Stats() ArenaStats {
	s := ArenaStats{BlockSize: a.options.blockSize}
	for i := 0; i < NumTags; i++ {
		s.Tags[i], _ = a.TagStats(Tag(i))
	}
	return s
}
