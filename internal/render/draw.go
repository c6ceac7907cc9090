package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Grid says how many simulation units one terminal cell covers.
type Grid struct {
	UnitsX int
	UnitsY int
}

// DefaultGrid maps a field cell onto 5x2 terminal cells, which keeps the
// picture roughly square in a typical terminal font.
func DefaultGrid(scale int) Grid {
	return Grid{UnitsX: max(scale/5, 1), UnitsY: max(scale/2, 1)}
}

// Size returns the screen size in cells needed to draw the frame.
func (g Grid) Size(f Frame) (int, int) {
	return ceilDiv(f.Width, g.UnitsX), ceilDiv(f.Height, g.UnitsY)
}

const healthBarWidth = 10

// Draw rasterizes a frame onto a fresh screen.
func Draw(f Frame, g Grid) *core.Screen {
	w, h := g.Size(f)
	scr := core.NewScreen(w, h)
	if f.Scale <= 0 {
		return scr
	}

	drawWalls(scr, f, g)

	for _, t := range f.Traces {
		scr.DrawRect(t.Project(g.UnitsX, g.UnitsY), '·', core.ColorGray)
	}
	for _, e := range f.Entities {
		r := e.Bounds().Project(g.UnitsX, g.UnitsY)
		switch e.Kind {
		case core.KindBlock.String():
			scr.DrawRect(r, '█', core.BlockColor(e.Y/f.Scale))
		case core.KindPaddle.String():
			c := core.ColorWhite
			if e.Flashed {
				c = core.ColorYellow
			}
			scr.DrawRect(r, '▀', c)
		default:
			scr.DrawRect(r, '●', core.ColorCyan)
		}
	}

	drawHUD(scr, f)
	return scr
}

// drawWalls draws each side wall as a hatched, outlined pillar under the
// HUD divider.
func drawWalls(scr *core.Screen, f Frame, g Grid) {
	top := f.Top / g.UnitsY
	left := ceilDiv(f.LeftWall, g.UnitsX)
	right := f.RightWall / g.UnitsX
	h := scr.Height() - top
	for _, wall := range []core.Rect{
		core.NewRect(0, top, left, h),
		core.NewRect(right, top, scr.Width()-right, h),
	} {
		if wall.W <= 0 || wall.H <= 0 {
			continue
		}
		scr.DrawRect(wall, '▒', core.ColorGray)
		scr.DrawBox(wall, core.ColorGray)
	}
	if top > 0 {
		for x := range scr.Width() {
			scr.SetColored(x, top-1, '─', core.ColorGray)
		}
	}
}

func drawHUD(scr *core.Screen, f Frame) {
	scr.DrawText(1, 0, fmt.Sprintf("Score: %d", f.Score), core.ColorWhite)
	if f.Indicator && f.MaxHealth > 0 {
		bar := HealthBar(f.Health, f.MaxHealth, healthBarWidth)
		scr.DrawText(scr.Width()-1-len([]rune(bar)), 0, bar, core.ColorRed)
	}
	if f.Info != "" {
		scr.DrawTextCentered(0, scr.Width(), 1, f.Info, core.ColorYellow)
	}
}

// HealthBar renders health as a fixed-width bar.
func HealthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 || width <= 0 {
		return ""
	}
	filled := core.Clamp(health*width/maxHealth, 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
