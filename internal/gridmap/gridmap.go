// Package gridmap implements the immutable binary occupancy grid the raycaster
// marches through. Cells are stored in row-major order: index = row*W + col.
package gridmap

import (
	"fmt"
	"math"
	"strings"
)

// Map is a fixed-size, axis-aligned wall grid with square cells of side CellSize.
// A Map is never mutated after construction and is safe for concurrent reads.
type Map struct {
	w        int
	h        int
	cellSize float64
	solid    []bool
}

// New builds a map from a rectangular grid of cells (true = wall).
// The input is copied; later changes to cells do not affect the map.
func New(cells [][]bool, cellSize float64) (*Map, error) {
	if err := validateShape(cells, cellSize); err != nil {
		return nil, err
	}

	h := len(cells)
	w := len(cells[0])
	m := &Map{
		w:        w,
		h:        h,
		cellSize: cellSize,
		solid:    make([]bool, w*h),
	}
	for row, line := range cells {
		copy(m.solid[row*w:(row+1)*w], line)
	}
	return m, nil
}

// FromRows builds a map from text rows. '1' and '#' are walls; '0', '.' and
// space are empty. Any other rune is rejected.
func FromRows(rows []string, cellSize float64) (*Map, error) {
	cells := make([][]bool, len(rows))
	for y, line := range rows {
		cells[y] = make([]bool, 0, len(line))
		for _, r := range line {
			x := len(cells[y])
			switch r {
			case '1', '#':
				cells[y] = append(cells[y], true)
			case '0', '.', ' ':
				cells[y] = append(cells[y], false)
			default:
				return nil, fmt.Errorf("row %d col %d: %w", y, x, ValidationError{
					Code:    CodeBadCell,
					Message: fmt.Sprintf("unexpected cell %q", r),
				})
			}
		}
	}
	return New(cells, cellSize)
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.w
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.h
}

// CellSize returns the side length of one cell in world units.
func (m *Map) CellSize() float64 {
	return m.cellSize
}

// WorldSize returns the map extent in world units.
func (m *Map) WorldSize() (float64, float64) {
	return float64(m.w) * m.cellSize, float64(m.h) * m.cellSize
}

// MaxSteps returns the default DDA step bound: the larger map dimension.
func (m *Map) MaxSteps() int {
	if m.w > m.h {
		return m.w
	}
	return m.h
}

// InBounds reports whether (col, row) addresses a cell of the map.
func (m *Map) InBounds(col, row int) bool {
	return col >= 0 && col < m.w && row >= 0 && row < m.h
}

// IsSolid reports whether the cell is a wall. Cells outside the map are solid,
// so a march always stops at the border. Column and row are bounded
// individually before the flat index is formed.
func (m *Map) IsSolid(col, row int) bool {
	if !m.InBounds(col, row) {
		return true
	}
	return m.solid[row*m.w+col]
}

// CellOf returns the cell containing world point (x, y).
// Negative coordinates map to negative cells.
func (m *Map) CellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / m.cellSize)), int(math.Floor(y / m.cellSize))
}

// IsSolidAt reports whether the world point (x, y) lies inside a wall.
func (m *Map) IsSolidAt(x, y float64) bool {
	return m.IsSolid(m.CellOf(x, y))
}

// Cells returns a copy of the grid as rows of booleans.
func (m *Map) Cells() [][]bool {
	out := make([][]bool, m.h)
	for row := range out {
		out[row] = make([]bool, m.w)
		copy(out[row], m.solid[row*m.w:(row+1)*m.w])
	}
	return out
}

// WallCount returns the number of solid cells.
func (m *Map) WallCount() int {
	count := 0
	for _, s := range m.solid {
		if s {
			count++
		}
	}
	return count
}

// String renders the grid with '#' for walls and '.' for open cells.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.w + 1) * m.h)
	for row := 0; row < m.h; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < m.w; col++ {
			if m.solid[row*m.w+col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
