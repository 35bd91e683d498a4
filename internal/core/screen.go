package core

import (
	"math"
	"strings"
)

// Glyphs used when the renderer draws onto a character screen.
const (
	GlyphBlank = ' '
	GlyphFill  = '█'
	GlyphLine  = '•'
)

// Cell is one character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer that implements Surface.
// It decouples rendering from the terminal: the renderer draws rectangles and
// lines while the platform layer turns the buffer into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Surface = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear(ColorDefault)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Size implements Surface.
func (s *Screen) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear(ColorDefault)

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen. The default color clears to blank cells,
// any other color paints solid blocks.
func (s *Screen) Clear(c Color) {
	r := GlyphFill
	if c == ColorDefault {
		r = GlyphBlank
	}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, Color: c}
		}
	}
}

// SetCell places a colored rune at the given position.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: GlyphBlank}
	}
	return s.cells[y][x]
}

// FillRect implements Surface. Edges are rounded to the nearest cell, and a
// rectangle with positive area always covers at least one cell.
func (s *Screen) FillRect(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := cellSpan(x, w)
	y0, y1 := cellSpan(y, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.SetCell(cx, cy, GlyphFill, c)
		}
	}
}

// cellSpan rounds [start, start+length) to whole cells.
func cellSpan(start, length float64) (int, int) {
	lo := int(math.Round(start))
	hi := int(math.Round(start + length))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// DrawLine implements Surface using Bresenham's algorithm on rounded endpoints.
func (s *Screen) DrawLine(x0, y0, x1, y1 float64, c Color) {
	ax, ay := int(math.Round(x0)), int(math.Round(y0))
	bx, by := int(math.Round(x1)), int(math.Round(y1))

	dx := Abs(bx - ax)
	dy := -Abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy

	// Bounded by the segment's cell length; the loop always reaches (bx, by).
	for {
		s.SetCell(ax, ay, GlyphLine, c)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// Present implements Surface. It is a no-op: the platform decides when to
// display the buffer.
func (s *Screen) Present() {}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, r, c)
		i++
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
