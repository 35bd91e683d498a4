package render

import (
	"fmt"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// Palette assigns colors to everything the renderer draws.
type Palette struct {
	Background     core.Color
	WallVertical   core.Color // Wall faces struck on a vertical grid line
	WallHorizontal core.Color // Wall faces struck on a horizontal grid line
	MapWall        core.Color
	MapFloor       core.Color
	Player         core.Color
	Heading        core.Color
	Ray            core.Color
}

// DefaultPalette mirrors the classic demo: red walls in two shades on gray,
// a white/black minimap and a yellow player.
func DefaultPalette() Palette {
	return Palette{
		Background:     core.ColorDarkGray,
		WallVertical:   core.ColorBrightRed,
		WallHorizontal: core.ColorRed,
		MapWall:        core.ColorWhite,
		MapFloor:       core.ColorBlack,
		Player:         core.ColorYellow,
		Heading:        core.ColorYellow,
		Ray:            core.ColorGreen,
	}
}

// Wall returns the wall color for a hit axis.
func (p Palette) Wall(vertical bool) core.Color {
	if vertical {
		return p.WallVertical
	}
	return p.WallHorizontal
}

// ParsePalette builds a palette from color names keyed by palette slot.
// Missing slots keep their default; unknown slots or names are errors.
func ParsePalette(names map[string]string) (Palette, error) {
	p := DefaultPalette()
	slots := map[string]*core.Color{
		"background":      &p.Background,
		"wall_vertical":   &p.WallVertical,
		"wall_horizontal": &p.WallHorizontal,
		"map_wall":        &p.MapWall,
		"map_floor":       &p.MapFloor,
		"player":          &p.Player,
		"heading":         &p.Heading,
		"ray":             &p.Ray,
	}
	for slot, name := range names {
		dst, ok := slots[slot]
		if !ok {
			return p, fmt.Errorf("unknown palette slot %q", slot)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return p, fmt.Errorf("palette slot %q: unknown color %q", slot, name)
		}
		*dst = c
	}
	return p, nil
}
