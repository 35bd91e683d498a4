// Package window provides the ebiten frontend: a core.Surface backed by an
// *ebiten.Image and a Game that feeds held keys into the scene.
package window

import (
	"image/color"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// rgba maps palette entries to window colors. The reds and grays follow the
// classic demo: (0.9, 0, 0) and (0.7, 0, 0) walls on a (0.3, 0.3, 0.3) floor.
var rgba = map[core.Color]color.RGBA{
	core.ColorDefault:       {0, 0, 0, 0},
	core.ColorBlack:         {0, 0, 0, 255},
	core.ColorRed:           {178, 0, 0, 255},
	core.ColorGreen:         {0, 200, 0, 255},
	core.ColorYellow:        {255, 255, 0, 255},
	core.ColorBlue:          {0, 0, 200, 255},
	core.ColorMagenta:       {200, 0, 200, 255},
	core.ColorCyan:          {0, 200, 200, 255},
	core.ColorWhite:         {255, 255, 255, 255},
	core.ColorBrightRed:     {229, 0, 0, 255},
	core.ColorBrightGreen:   {0, 255, 0, 255},
	core.ColorBrightYellow:  {255, 255, 128, 255},
	core.ColorBrightBlue:    {64, 64, 255, 255},
	core.ColorBrightMagenta: {255, 64, 255, 255},
	core.ColorBrightCyan:    {64, 255, 255, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 140, 0, 255},
	core.ColorGray:          {128, 128, 128, 255},
	core.ColorDarkGray:      {77, 77, 77, 255},
}

// RGBA returns the window color for a palette entry. Unknown entries are transparent.
func RGBA(c core.Color) color.RGBA {
	return rgba[c]
}
