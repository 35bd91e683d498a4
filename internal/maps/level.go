package maps

import (
	"fmt"

	"github.com/vovakirdan/tui-raycast/internal/gridmap"
	"github.com/vovakirdan/tui-raycast/internal/player"
)

// Level is a map definition loaded from a file or the built-in set.
type Level struct {
	ID       string
	Name     string
	CellSize float64 // 0 = use the configured default
	Rows     []string
	Spawn    Spawn
	Metadata map[string]string
	FilePath string // Empty for built-in maps
}

// Spawn is the player start. When the file gives no position, the player
// starts at the center of the first open cell (Col, Row), facing east.
type Spawn struct {
	X, Y  float64 // World units
	Angle float64 // Degrees
	Set   bool    // X/Y/Angle came from the file

	Col, Row int
}

// Builtin reports whether the level ships with the binary.
func (l Level) Builtin() bool {
	return l.FilePath == ""
}

// Origin describes where the level came from.
func (l Level) Origin() string {
	if l.Builtin() {
		return "builtin"
	}
	return l.FilePath
}

// EffectiveCellSize returns the level's cell size or the fallback.
func (l Level) EffectiveCellSize(fallback float64) float64 {
	if l.CellSize > 0 {
		return l.CellSize
	}
	return fallback
}

// ToGrid builds the grid map.
func (l Level) ToGrid(defaultCellSize float64) (*gridmap.Map, error) {
	g, err := gridmap.FromRows(l.Rows, l.EffectiveCellSize(defaultCellSize))
	if err != nil {
		return nil, fmt.Errorf("building map %s: %w", l.ID, err)
	}
	return g, nil
}

// NewPlayer places a player at the spawn point of a grid built from this level.
func (l Level) NewPlayer(g *gridmap.Map) *player.State {
	if l.Spawn.Set {
		return player.NewDegrees(l.Spawn.X, l.Spawn.Y, l.Spawn.Angle)
	}
	s := g.CellSize()
	return player.New((float64(l.Spawn.Col)+0.5)*s, (float64(l.Spawn.Row)+0.5)*s, 0)
}

// firstOpenCell scans rows top to bottom for an empty cell.
func firstOpenCell(g *gridmap.Map) (col, row int, ok bool) {
	for row = 0; row < g.Height(); row++ {
		for col = 0; col < g.Width(); col++ {
			if !g.IsSolid(col, row) {
				return col, row, true
			}
		}
	}
	return 0, 0, false
}
