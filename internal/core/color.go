package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal front-end.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
)

// blockColors cycles by block row so the grid reads as stripes.
var blockColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta}

// BlockColor returns the stripe color for a block in the given grid row.
func BlockColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return blockColors[row%len(blockColors)]
}
