// Package arkanoid implements the simulation core of the game: the tick loop
// and its state machine, ball physics and collision resolution, the block
// grid and the score/health counters. Drawing, sound and key capture are
// reached only through the collaborator interfaces in collaborators.go.
package arkanoid

import (
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Field is the fixed play area. All sizes are in grid cells; Scale converts
// a cell into simulation units.
type Field struct {
	Width     int // Play columns including the left wall column
	Height    int // Play rows below the HUD
	HUDHeight int // Rows reserved above the play area
	Scale     int // Units per cell
}

// DefaultField returns the classic 9x12 field with a two-row HUD.
func DefaultField() Field {
	return Field{Width: 9, Height: 12, HUDHeight: 2, Scale: 50}
}

// LeftWall is the smallest x a ball or paddle may occupy.
func (f Field) LeftWall() int { return f.Scale }

// RightWall is one past the largest x a ball or paddle may occupy.
func (f Field) RightWall() int { return f.Width * f.Scale }

// Top is the ceiling of the play area.
func (f Field) Top() int { return f.HUDHeight * f.Scale }

// Bottom is the floor of the play area; crossing it is a miss.
func (f Field) Bottom() int { return (f.Height + f.HUDHeight) * f.Scale }

// Bounds returns the play area as a rectangle in units.
func (f Field) Bounds() core.Rect {
	return core.NewRect(f.LeftWall(), f.Top(), f.RightWall()-f.LeftWall(), f.Bottom()-f.Top())
}

// Extent returns the whole drawable area (HUD, walls and play area) in units.
func (f Field) Extent() core.Rect {
	return core.NewRect(0, 0, (f.Width+1)*f.Scale, (f.Height+f.HUDHeight)*f.Scale)
}

// Params holds every tunable of a session.
type Params struct {
	Field Field

	BallSize     int // Ball diameter in units
	DeviationMax int // Upper bound of a re-rolled step magnitude

	PaddleWidth  int
	PaddleHeight int
	PaddleSpeed  int // Units per tick

	BlockWidth  int
	BlockHeight int
	LeftMargin  int // Columns skipped by the generator for the side wall
	TopOffset   int // Rows between the HUD and the first block row

	MaxHealth  int
	Damage     int // Health lost per miss
	BlockScore int // Score per destroyed block

	BlurDelay  time.Duration // Paddle highlight after a hit
	TraceTTL   time.Duration // Lifetime of a ball trace
	TraceEvery int           // Leave a trace every N steps, 0 disables
}

// DefaultParams returns the stock game tuning.
func DefaultParams() Params {
	f := DefaultField()
	return Params{
		Field:        f,
		BallSize:     f.Scale / 2,
		DeviationMax: 2,
		PaddleWidth:  2 * f.Scale,
		PaddleHeight: f.Scale / 2,
		PaddleSpeed:  2,
		BlockWidth:   f.Scale * 4 / 5,
		BlockHeight:  f.Scale / 2,
		LeftMargin:   1,
		TopOffset:    1,
		MaxHealth:    100,
		Damage:       30,
		BlockScore:   10,
		BlurDelay:    100 * time.Millisecond,
		TraceTTL:     100 * time.Millisecond,
		TraceEvery:   2,
	}
}

// Validate rejects parameter sets the simulation cannot honor.
func (p Params) Validate() error {
	const op = "Params.Validate"
	f := p.Field
	switch {
	case f.Scale <= 0:
		return core.Configf(op, "scale must be positive, got %d", f.Scale)
	case f.Width < 2 || f.Height < 2 || f.HUDHeight < 0:
		return core.Configf(op, "field %dx%d (hud %d) is too small", f.Width, f.Height, f.HUDHeight)
	case p.BallSize <= 0 || p.BallSize > f.RightWall()-f.LeftWall():
		return core.Configf(op, "ball size %d does not fit the field", p.BallSize)
	case p.DeviationMax < 1:
		return core.Configf(op, "deviation max must be at least 1, got %d", p.DeviationMax)
	case p.PaddleWidth <= 0 || p.PaddleHeight <= 0 || p.PaddleWidth > f.RightWall()-f.LeftWall():
		return core.Configf(op, "paddle %dx%d does not fit the field", p.PaddleWidth, p.PaddleHeight)
	case p.PaddleSpeed < 0:
		return core.Configf(op, "paddle speed must not be negative, got %d", p.PaddleSpeed)
	case p.BlockWidth <= 0 || p.BlockHeight <= 0:
		return core.Configf(op, "block %dx%d is empty", p.BlockWidth, p.BlockHeight)
	case p.LeftMargin < 1 || p.LeftMargin >= f.Width:
		return core.Configf(op, "left margin %d outside [1, %d)", p.LeftMargin, f.Width)
	case p.TopOffset < 0:
		return core.Configf(op, "top offset must not be negative, got %d", p.TopOffset)
	case !f.Bounds().ContainsRect(p.blockBounds(f.Width-1, f.Height/2-1)):
		return core.Configf(op, "block grid does not fit the field")
	case p.MaxHealth <= 0:
		return core.Configf(op, "max health must be positive, got %d", p.MaxHealth)
	case p.Damage <= 0:
		return core.Configf(op, "damage must be positive, got %d", p.Damage)
	case p.BlockScore < 0:
		return core.Configf(op, "block score must not be negative, got %d", p.BlockScore)
	case p.BlurDelay < 0 || p.TraceTTL < 0 || p.TraceEvery < 0:
		return core.Configf(op, "effect timings must not be negative")
	}
	return nil
}

// blockBounds places the block of the given grid column and row.
func (p Params) blockBounds(col, row int) core.Rect {
	f := p.Field
	cellY := row + f.HUDHeight + p.TopOffset
	return core.NewRect(col*f.Scale, cellY*f.Scale, p.BlockWidth, p.BlockHeight)
}

// PaddleY is the fixed top edge of the paddle: one cell above the floor.
func (p Params) PaddleY() int {
	return p.Field.Bottom() - p.Field.Scale
}

// PaddleHome is where the paddle sits at the start of a rally.
func (p Params) PaddleHome() int {
	f := p.Field
	return (f.Scale + f.RightWall() - p.PaddleWidth) / 2
}

// BallHome is where the ball sits at the start of a rally.
func (p Params) BallHome() (int, int) {
	f := p.Field
	return (f.Extent().W - p.BallSize) / 2, f.Height*f.Scale + p.BallSize
}
