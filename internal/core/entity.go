package core

// EntityID identifies one visual entity across the core and its renderer.
// Zero is never assigned.
type EntityID uint64

// Kind tells the renderer what an entity is so it can pick a glyph and color.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindBlock
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// IDAllocator hands out increasing entity IDs for one session.
type IDAllocator struct {
	last EntityID
}

// Next returns a fresh ID.
func (a *IDAllocator) Next() EntityID {
	a.last++
	return a.last
}
