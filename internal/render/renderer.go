// Package render turns a sweep into draw calls on a core.Surface.
package render

import (
	"errors"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/gridmap"
	"github.com/vovakirdan/tui-raycast/internal/player"
	"github.com/vovakirdan/tui-raycast/internal/raycast"
)

// ErrNoCaster is returned by New when no caster is supplied.
var ErrNoCaster = errors.New("render: caster is required")

// Renderer draws one frame per call to Draw. It owns no per-frame state.
type Renderer struct {
	Map       *gridmap.Map
	Caster    *raycast.Caster
	Projector raycast.Projector // RefHeight 0 = view height
	Layout    Layout            // Zero value = arranged from the surface size each frame
	Palette   Palette

	Minimap    bool    // Draw the minimap when Layout is auto-arranged
	MinimapRay bool    // Draw the rays on the minimap
	CellAspect float64 // Surface unit height/width, see Arrange
}

// New creates a renderer for the caster's map.
func New(c *raycast.Caster, proj raycast.Projector, pal Palette) (*Renderer, error) {
	if c == nil {
		return nil, ErrNoCaster
	}
	return &Renderer{
		Map:        c.Map(),
		Caster:     c,
		Projector:  proj,
		Palette:    pal,
		MinimapRay: true,
		CellAspect: 1,
	}, nil
}

// ToggleMinimap flips minimap visibility and returns the new state.
func (r *Renderer) ToggleMinimap() bool {
	r.Minimap = !r.Minimap
	return r.Minimap
}

// LayoutFor returns the layout used on a w x h surface.
func (r *Renderer) LayoutFor(w, h float64) Layout {
	if !r.Layout.View.Empty() {
		return r.Layout
	}
	ww, wh := r.Map.WorldSize()
	return Arrange(w, h, r.Minimap, ww, wh, r.CellAspect)
}

// Frame sweeps once and lays the columns out on a w x h surface
// without drawing anything.
func (r *Renderer) Frame(w, h float64, p player.State) Frame {
	layout := r.LayoutFor(w, h)
	view := layout.View

	proj := r.Projector
	if proj.RefHeight <= 0 {
		proj = proj.WithRefHeight(view.H)
	}

	hits := r.Caster.Sweep(p)
	cols := make([]Column, len(hits))
	colW := view.W / float64(len(hits))
	for i, hit := range hits {
		height := proj.HeightFor(hit.Distance)
		cols[i] = Column{
			Index:  i,
			X:      view.X + float64(i)*colW,
			Width:  colW,
			Top:    view.Y + (view.H-height)/2,
			Height: height,
			Hit:    hit,
		}
	}

	return Frame{
		Layout:    layout,
		Player:    p,
		RefHeight: proj.RefHeight,
		Columns:   cols,
	}
}

// Draw renders one frame: clear, minimap, wall strips, present.
func (r *Renderer) Draw(s core.Surface, p player.State) Frame {
	w, h := s.Size()
	f := r.Frame(w, h, p)

	s.Clear(r.Palette.Background)
	if f.Layout.HasMinimap() {
		r.drawMinimap(s, f)
	}
	for _, c := range f.Columns {
		if !c.Visible() {
			continue
		}
		s.FillRect(c.X, c.Top, c.Width, c.Height, r.Palette.Wall(c.Hit.Axis == raycast.AxisVertical))
	}
	s.Present()
	return f
}
