// Package scene binds one map, one player and one renderer into the unit a
// frontend drives: apply the frame's commands, then draw.
package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-raycast/internal/config"
	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/gridmap"
	"github.com/vovakirdan/tui-raycast/internal/maps"
	"github.com/vovakirdan/tui-raycast/internal/player"
	"github.com/vovakirdan/tui-raycast/internal/raycast"
	"github.com/vovakirdan/tui-raycast/internal/render"
)

// Scene is the per-session state. The player is the only mutable part and is
// only changed by Step, between frames.
type Scene struct {
	Level    maps.Level
	Map      *gridmap.Map
	Player   *player.State
	Renderer *render.Renderer
	Steps    player.Steps

	frames int
}

// New builds a scene for a level using the given configuration.
func New(cfg config.Config, lvl maps.Level) (*Scene, error) {
	g, err := lvl.ToGrid(cfg.Map.CellSize)
	if err != nil {
		return nil, err
	}

	c, err := raycast.New(g, cfg.Caster())
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", lvl.ID, err)
	}

	pal, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	r, err := render.New(c, cfg.Projector(g.CellSize()), pal)
	if err != nil {
		return nil, err
	}
	r.Minimap = cfg.Display.Minimap
	r.MinimapRay = cfg.Display.MinimapRays

	return &Scene{
		Level:    lvl,
		Map:      g,
		Player:   lvl.NewPlayer(g),
		Renderer: r,
		Steps:    cfg.Steps(),
	}, nil
}

// Step applies one frame of commands to the player.
func (s *Scene) Step(f core.CommandFrame) {
	s.Player.ApplyFrame(f, s.Steps)
}

// Draw renders the current pose onto the surface.
func (s *Scene) Draw(surf core.Surface) render.Frame {
	s.frames++
	return s.Renderer.Draw(surf, s.Player.Snapshot())
}

// Frame sweeps the current pose without drawing.
func (s *Scene) Frame(w, h float64) render.Frame {
	return s.Renderer.Frame(w, h, s.Player.Snapshot())
}

// Frames returns the number of frames drawn.
func (s *Scene) Frames() int {
	return s.frames
}

// Reset puts the player back at the level's spawn point.
func (s *Scene) Reset() {
	s.Player = s.Level.NewPlayer(s.Map)
}

// Status is the one-line HUD text shared by the frontends. Walls do not
// block movement, so it flags a player standing inside one.
func (s *Scene) Status() string {
	p := s.Player
	col, row := s.Map.CellOf(p.X, p.Y)
	status := fmt.Sprintf("%s  x:%.0f y:%.0f  angle:%.0f°  cell:%d,%d", s.Level.Name, p.X, p.Y, p.AngleDegrees(), col, row)
	if s.Map.IsSolidAt(p.X, p.Y) {
		status += "  [in wall]"
	}
	return status
}
