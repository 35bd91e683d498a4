// Package config provides YAML-based configuration for the raycaster:
// camera, projection, movement, DDA bounds, display and colors.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/player"
	"github.com/vovakirdan/tui-raycast/internal/raycast"
	"github.com/vovakirdan/tui-raycast/internal/render"
)

// Config contains all raycaster settings.
type Config struct {
	Map        MapConfig         `yaml:"map"`
	Camera     CameraConfig      `yaml:"camera"`
	Projection ProjectionConfig  `yaml:"projection"`
	Movement   MovementConfig    `yaml:"movement"`
	Raycast    RaycastConfig     `yaml:"raycast"`
	Display    DisplayConfig     `yaml:"display"`
	Colors     map[string]string `yaml:"colors"` // Palette slot -> color name

	// Source names where the config came from: a file path, "embedded" or "builtin".
	Source string `yaml:"-"`
}

// MapConfig selects the map and its default cell size.
type MapConfig struct {
	Default  string  `yaml:"default"`   // Map ID used when none is given
	CellSize float64 `yaml:"cell_size"` // Used by maps that do not set their own
}

// CameraConfig defines the sweep.
type CameraConfig struct {
	FOV  float64 `yaml:"fov"`  // Degrees
	Rays int     `yaml:"rays"` // Columns per frame
}

// ProjectionConfig defines the distance to height mapping.
type ProjectionConfig struct {
	RefHeight float64 `yaml:"ref_height"` // 0 = viewport height
}

// MovementConfig defines default command magnitudes.
type MovementConfig struct {
	Step float64 `yaml:"step"` // World units per move
	Turn float64 `yaml:"turn"` // Degrees per turn
}

// RaycastConfig bounds the DDA march.
type RaycastConfig struct {
	Epsilon  float64 `yaml:"epsilon"`
	MaxSteps int     `yaml:"max_steps"` // 0 = larger map dimension
	Workers  int     `yaml:"workers"`   // <= 1 = sequential sweep
}

// DisplayConfig defines frontend presentation.
type DisplayConfig struct {
	Width       int     `yaml:"width"`  // Window width in pixels
	Height      int     `yaml:"height"` // Window height in pixels
	Title       string  `yaml:"title"`
	FPS         int     `yaml:"fps"`
	Minimap     bool    `yaml:"minimap"`
	MinimapRays bool    `yaml:"minimap_rays"`
	CellAspect  float64 `yaml:"cell_aspect"` // Terminal cell height/width
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that every numeric setting is usable.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Map.CellSize > 0, "map.cell_size must be positive, got %v", c.Map.CellSize)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 360, "camera.fov must be in (0, 360), got %v", c.Camera.FOV)
	check(c.Camera.Rays > 0, "camera.rays must be positive, got %d", c.Camera.Rays)
	check(c.Projection.RefHeight >= 0, "projection.ref_height must not be negative, got %v", c.Projection.RefHeight)
	check(c.Movement.Step >= 0, "movement.step must not be negative, got %v", c.Movement.Step)
	check(c.Movement.Turn >= 0, "movement.turn must not be negative, got %v", c.Movement.Turn)
	check(c.Raycast.Epsilon > 0 && c.Raycast.Epsilon < 1, "raycast.epsilon must be in (0, 1), got %v", c.Raycast.Epsilon)
	check(c.Raycast.MaxSteps >= 0, "raycast.max_steps must not be negative, got %d", c.Raycast.MaxSteps)
	check(c.Display.FPS > 0, "display.fps must be positive, got %d", c.Display.FPS)
	check(c.Display.Width > 0 && c.Display.Height > 0, "display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)

	if _, err := render.ParsePalette(c.Colors); err != nil {
		errs = append(errs, fmt.Errorf("%w: colors: %v", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// Steps returns the default command magnitudes in internal units.
func (c Config) Steps() player.Steps {
	return player.StepsFromDegrees(c.Movement.Step, c.Movement.Turn)
}

// Caster returns the sweep parameters.
func (c Config) Caster() raycast.Config {
	return raycast.Config{
		FOV:      core.DegToRad(c.Camera.FOV),
		Rays:     c.Camera.Rays,
		Epsilon:  c.Raycast.Epsilon,
		MaxSteps: c.Raycast.MaxSteps,
		Workers:  c.Raycast.Workers,
	}
}

// Projector returns the projector for a map with the given cell size.
func (c Config) Projector(cellSize float64) raycast.Projector {
	return raycast.NewProjector(cellSize, c.Projection.RefHeight)
}

// Palette returns the configured palette.
func (c Config) Palette() (render.Palette, error) {
	return render.ParsePalette(c.Colors)
}
