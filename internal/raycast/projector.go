package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// Projector maps a corrected wall distance to an on-screen column height.
type Projector struct {
	CellSize  float64 // World units per grid cell
	RefHeight float64 // Height of a wall one cell away, and the clamp ceiling
}

// NewProjector creates a projector.
func NewProjector(cellSize, refHeight float64) Projector {
	return Projector{CellSize: cellSize, RefHeight: refHeight}
}

// HeightFor returns S*RefHeight/dist clamped to [0, RefHeight].
// A non-positive distance yields RefHeight; a miss (+Inf) or NaN yields 0.
func (p Projector) HeightFor(dist float64) float64 {
	switch {
	case math.IsNaN(dist), math.IsInf(dist, 1):
		return 0
	case dist <= 0:
		return p.RefHeight
	}
	return core.ClampF(p.CellSize*p.RefHeight/dist, 0, p.RefHeight)
}

// WithRefHeight returns a copy using a different reference height.
func (p Projector) WithRefHeight(h float64) Projector {
	p.RefHeight = h
	return p
}
