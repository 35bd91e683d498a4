package render

import (
	"github.com/vovakirdan/tui-raycast/internal/player"
	"github.com/vovakirdan/tui-raycast/internal/raycast"
)

// Column is one projected wall strip.
type Column struct {
	Index  int
	X      float64 // Left edge in surface units
	Width  float64
	Top    float64 // Top edge; the strip is centered in the view
	Height float64 // 0 when the ray missed
	Hit    raycast.Hit
}

// Visible reports whether the column produces a strip.
func (c Column) Visible() bool {
	return c.Height > 0
}

// Frame is the result of one sweep laid out on a surface.
type Frame struct {
	Layout    Layout
	Player    player.State
	RefHeight float64
	Columns   []Column
}

// VisibleCount returns the number of columns with a wall strip.
func (f Frame) VisibleCount() int {
	n := 0
	for _, c := range f.Columns {
		if c.Visible() {
			n++
		}
	}
	return n
}
