package render

import (
	"github.com/vovakirdan/tui-raycast/internal/core"
)

const (
	markerSize    = 8  // Player marker side in world units
	headingLength = 20 // Heading line length in world units
	gapMinCell    = 4  // Minimap cells smaller than this are drawn without a gap
)

// minimapTransform maps world coordinates into the minimap rectangle.
type minimapTransform struct {
	rect   core.RectF
	sx, sy float64
	ww, wh float64
}

func (r *Renderer) minimapTransform(rect core.RectF) minimapTransform {
	ww, wh := r.Map.WorldSize()
	return minimapTransform{rect: rect, sx: rect.W / ww, sy: rect.H / wh, ww: ww, wh: wh}
}

// point maps a world point, clamped to the map so lines to out-of-bounds
// hits stay inside the minimap.
func (t minimapTransform) point(x, y float64) (float64, float64) {
	x = core.ClampF(x, 0, t.ww)
	y = core.ClampF(y, 0, t.wh)
	return t.rect.X + x*t.sx, t.rect.Y + y*t.sy
}

// drawMinimap draws the grid, the rays to their hit points, the player
// marker and its heading line, in that order.
func (r *Renderer) drawMinimap(s core.Surface, f Frame) {
	t := r.minimapTransform(f.Layout.Minimap)
	size := r.Map.CellSize()
	cw, ch := size*t.sx, size*t.sy

	gap := 0.0
	if cw >= gapMinCell && ch >= gapMinCell {
		gap = 1
	}

	for row, line := range r.Map.Cells() {
		for col, solid := range line {
			c := r.Palette.MapFloor
			if solid {
				c = r.Palette.MapWall
			}
			x, y := t.point(float64(col)*size, float64(row)*size)
			s.FillRect(x, y, cw-gap, ch-gap, c)
		}
	}

	p := f.Player
	px, py := t.point(p.X, p.Y)
	if r.MinimapRay {
		for _, c := range f.Columns {
			if !c.Hit.Found() {
				continue
			}
			hx, hy := t.point(c.Hit.X, c.Hit.Y)
			s.DrawLine(px, py, hx, hy, r.Palette.Ray)
		}
	}

	mw, mh := markerSize*t.sx, markerSize*t.sy
	s.FillRect(px-mw/2, py-mh/2, mw, mh, r.Palette.Player)
	hx, hy := t.point(p.X+p.DX*headingLength, p.Y+p.DY*headingLength)
	s.DrawLine(px, py, hx, hy, r.Palette.Heading)
}
