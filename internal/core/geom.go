// Package core provides the shared vocabulary of the arkanoid simulation:
// integer geometry, entity identifiers, the error taxonomy, input actions and a
// character screen buffer. It has no third-party dependencies so the
// simulation stays pure and testable.
package core

// Rect is an axis-aligned bounding box in simulation units.
type Rect struct {
	X int `json:"x"` // Top-left corner
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ContainsRect reports whether other lies fully inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// MoveTo returns a copy of the rectangle with its corner at (x, y).
func (r Rect) MoveTo(x, y int) Rect {
	r.X, r.Y = x, y
	return r
}

// Project maps a rectangle in units onto a coarser grid (e.g. terminal cells).
// unitsX/unitsY are the units per grid column/row. The result covers every
// grid cell the rectangle touches and is at least 1x1.
func (r Rect) Project(unitsX, unitsY int) Rect {
	if unitsX <= 0 || unitsY <= 0 {
		return r
	}
	x0 := floorDiv(r.X, unitsX)
	y0 := floorDiv(r.Y, unitsY)
	x1 := floorDiv(r.Right()-1, unitsX)
	y1 := floorDiv(r.Bottom()-1, unitsY)
	return Rect{X: x0, Y: y0, W: max(x1-x0+1, 1), H: max(y1-y0+1, 1)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
