package arkanoid

import (
	"iter"
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Ball is the moving ball. X and Y are its top-left corner in units.
type Ball struct {
	ID         core.EntityID
	X, Y       int
	MovingLeft bool
	MovingUp   bool
	StepX      int // Horizontal displacement per step, in [1, DeviationMax]
	StepY      int // Vertical displacement per step, in [1, DeviationMax]
	Size       int
	InPlay     bool // False until recentered after a miss, a win or a restart
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Paddle is the player-controlled paddle. Its Y never changes.
type Paddle struct {
	ID         core.EntityID
	X, Y       int
	Width      int
	Height     int
	Speed      int
	Positioned bool // Set once the paddle has been placed on the field
}

// Bounds returns the paddle's bounding box.
func (p Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Block is one destructible brick.
type Block struct {
	ID       core.EntityID
	Col, Row int // Grid cell the block was generated at
	Bounds   core.Rect
}

// BlockSet is the set of live blocks. Iteration follows insertion order so
// collision scans are reproducible.
type BlockSet struct {
	order  []core.EntityID
	blocks map[core.EntityID]Block
}

// NewBlockSet creates an empty set.
func NewBlockSet() *BlockSet {
	return &BlockSet{blocks: make(map[core.EntityID]Block)}
}

// Add inserts a block. It reports false if a block with the same ID is present.
func (s *BlockSet) Add(b Block) bool {
	if _, ok := s.blocks[b.ID]; ok {
		return false
	}
	s.blocks[b.ID] = b
	s.order = append(s.order, b.ID)
	return true
}

// Remove deletes a block and returns it.
func (s *BlockSet) Remove(id core.EntityID) (Block, bool) {
	b, ok := s.blocks[id]
	if !ok {
		return Block{}, false
	}
	delete(s.blocks, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return b, true
}

// Get looks up a block by ID.
func (s *BlockSet) Get(id core.EntityID) (Block, bool) {
	b, ok := s.blocks[id]
	return b, ok
}

// Len returns the number of live blocks.
func (s *BlockSet) Len() int {
	return len(s.order)
}

// All yields live blocks in insertion order.
func (s *BlockSet) All() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for _, id := range s.order {
			if !yield(s.blocks[id]) {
				return
			}
		}
	}
}

// HealthScore holds the player's counters.
type HealthScore struct {
	Health int
	Score  int
}

// GameState is the state of the game loop.
type GameState int

const (
	StateIdle    GameState = iota // Never started
	StateRunning                  // Tick source armed
	StateStopped                  // Tick source cleared, resumable
)

func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
