package tagarena

// Tag identifies one phase of the workload. Every allocation made under a
// tag shares a single lifetime and is released together by Free.
type Tag uint8

const (
	// TagShared allocations that live across phases of one iteration
	TagShared Tag = iota
	// TagGame game logic phase
	TagGame
	// TagRendering rendering phase
	TagRendering
	// TagGPU gpu submission phase
	TagGPU

	// tagCount sentinel, sizes the per-tag storage and is never a valid key
	tagCount
)

// NumTags number of valid tags
const NumTags = int(tagCount)

// Valid reports whether t can be allocated under or freed.
func (t Tag) Valid() bool {
	return t < tagCount
}

func (t Tag) String() string {
	switch t {
	case TagShared:
		return "shared"
	case TagGame:
		return "game"
	case TagRendering:
		return "rendering"
	case TagGPU:
		return "gpu"
	default:
		return "invalid"
	}
}
