package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// lineWidth is the stroke width of minimap lines in pixels.
const lineWidth = 1

// Surface draws onto an ebiten image. The target is swapped in each frame
// by Game.Draw.
type Surface struct {
	target *ebiten.Image
}

// NewSurface wraps an image.
func NewSurface(img *ebiten.Image) *Surface {
	return &Surface{target: img}
}

// SetTarget points the surface at a new image.
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Size returns the image size in pixels.
func (s *Surface) Size() (float64, float64) {
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the image with one color.
func (s *Surface) Clear(c core.Color) {
	s.target.Fill(RGBA(c))
}

// FillRect fills a rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), RGBA(c), false)
}

// DrawLine strokes a line segment.
func (s *Surface) DrawLine(x0, y0, x1, y1 float64, c core.Color) {
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, RGBA(c), false)
}

// Present is a no-op; ebiten flips the buffer itself after Draw returns.
func (s *Surface) Present() {}
