package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Generator owns block set membership and keeps the renderer in step with it.
type Generator struct {
	params   Params
	set      *BlockSet
	renderer Renderer
	ids      *core.IDAllocator
}

// NewGenerator creates a generator over an empty set.
func NewGenerator(p Params, r Renderer, ids *core.IDAllocator) *Generator {
	return &Generator{params: p, set: NewBlockSet(), renderer: r, ids: ids}
}

// Blocks exposes the live set for read-only scans.
func (g *Generator) Blocks() *BlockSet { return g.set }

// Count returns the number of live blocks.
func (g *Generator) Count() int { return g.set.Len() }

// GridSize is the number of blocks Generate produces.
func (g *Generator) GridSize() int {
	f := g.params.Field
	return (f.Width - g.params.LeftMargin) * (f.Height / 2)
}

// Generate fills the upper half of the field with blocks, column by column.
// The set must be empty.
func (g *Generator) Generate() error {
	if g.set.Len() != 0 {
		return core.InvalidStatef("Generator.Generate", "%d blocks still live", g.set.Len())
	}
	f := g.params.Field
	for col := g.params.LeftMargin; col < f.Width; col++ {
		for row := 0; row < f.Height/2; row++ {
			b := Block{
				ID:     g.ids.Next(),
				Col:    col,
				Row:    row,
				Bounds: g.params.blockBounds(col, row),
			}
			if err := g.renderer.Create(b.ID, core.KindBlock, b.Bounds); err != nil {
				return fmt.Errorf("generate block at %d,%d: %w", col, row, err)
			}
			g.set.Add(b)
		}
	}
	return nil
}

// Break removes one block and destroys its visual.
func (g *Generator) Break(id core.EntityID) (Block, error) {
	b, ok := g.set.Remove(id)
	if !ok {
		return Block{}, &core.NotFoundError{Op: "Generator.Break", ID: id}
	}
	if err := g.renderer.Destroy(id); err != nil {
		return b, err
	}
	return b, nil
}

// Clear destroys every block.
func (g *Generator) Clear() error {
	for b := range g.set.All() {
		if err := g.renderer.Destroy(b.ID); err != nil {
			return err
		}
	}
	g.set = NewBlockSet()
	return nil
}
