package render

import "github.com/vovakirdan/tui-raycast/internal/core"

// Layout places the 3D view and the optional minimap on a surface.
type Layout struct {
	View    core.RectF // 3D viewport
	Minimap core.RectF // Empty = minimap hidden
}

// HasMinimap reports whether the layout reserves room for the minimap.
func (l Layout) HasMinimap() bool {
	return !l.Minimap.Empty()
}

// Arrange splits a w x h surface. Without a minimap the view takes the whole
// surface. With one, the map sits on the left at the world's aspect ratio,
// using at most half the width, and the view takes the rest.
//
// cellAspect is the height of one surface unit divided by its width: 1 for
// pixels, about 2 for terminal character cells.
func Arrange(w, h float64, minimap bool, worldW, worldH, cellAspect float64) Layout {
	if !minimap || worldW <= 0 || worldH <= 0 {
		return Layout{View: core.RectF{W: w, H: h}}
	}
	if cellAspect <= 0 {
		cellAspect = 1
	}

	mh := h
	mw := h * cellAspect * worldW / worldH
	if mw > w/2 {
		mw = w / 2
		mh = mw * worldH / (worldW * cellAspect)
	}
	return Layout{
		Minimap: core.RectF{X: 0, Y: 0, W: mw, H: mh},
		View:    core.RectF{X: mw, Y: 0, W: w - mw, H: h},
	}
}
