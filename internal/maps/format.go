package maps

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNoID is returned for map files without an id.
var ErrNoID = errors.New("map id is required")

// yamlMap is the on-disk layout of a map file.
type yamlMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	CellSize float64           `yaml:"cell_size,omitempty"`
	Rows     []string          `yaml:"rows"`
	Player   *yamlSpawn        `yaml:"player,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// yamlSpawn is the player start; angle is in degrees.
type yamlSpawn struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
}

// ParseYAML parses a map file. The grid is validated so a Level that parses
// always builds.
func ParseYAML(data []byte) (Level, error) {
	var ym yamlMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Level{}, ErrNoID
	}

	lvl := Level{
		ID:       ym.ID,
		Name:     ym.Name,
		CellSize: ym.CellSize,
		Rows:     ym.Rows,
		Metadata: ym.Metadata,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}

	// Validate with a placeholder cell size when the map defers to config.
	size := lvl.CellSize
	if size == 0 {
		size = 1
	}
	g, err := lvl.ToGrid(size)
	if err != nil {
		return Level{}, fmt.Errorf("map %s: %w", lvl.ID, err)
	}

	if ym.Player != nil {
		lvl.Spawn = Spawn{X: ym.Player.X, Y: ym.Player.Y, Angle: ym.Player.Angle, Set: true}
	} else if col, row, ok := firstOpenCell(g); ok {
		lvl.Spawn = Spawn{Col: col, Row: row}
	}
	return lvl, nil
}

// MarshalYAML encodes a level in the map file layout.
func MarshalYAML(l Level) ([]byte, error) {
	ym := yamlMap{
		ID:       l.ID,
		Name:     l.Name,
		CellSize: l.CellSize,
		Rows:     l.Rows,
		Metadata: l.Metadata,
	}
	if l.Spawn.Set {
		ym.Player = &yamlSpawn{X: l.Spawn.X, Y: l.Spawn.Y, Angle: l.Spawn.Angle}
	}
	return yaml.Marshal(ym)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
