// Package raycast implements the grid DDA raycaster and the column projector.
//
// Every ray is resolved by two independent searches: one that visits the
// crossings of vertical grid lines and one that visits horizontal grid lines.
// Both use the same march primitive; the nearer result wins.
package raycast

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-raycast/internal/gridmap"
)

// edgeNudge moves a start point just across a grid line so that CellOf lands
// in the cell on the far side when the ray travels left or up.
const edgeNudge = 1e-4

// Config holds the sweep parameters.
type Config struct {
	FOV      float64 // Field of view in radians
	Rays     int     // Number of sample angles (screen columns)
	Epsilon  float64 // Tolerance for axis-parallel rays
	MaxSteps int     // DDA step bound per search; 0 = larger map dimension
	Workers  int     // Parallel sweep workers; <= 1 = single-threaded
}

// DefaultConfig returns a 60° field of view sampled by 60 rays.
func DefaultConfig() Config {
	return Config{
		FOV:     math.Pi / 3,
		Rays:    60,
		Epsilon: 1e-3,
	}
}

// Errors returned by New for unusable configurations.
var (
	ErrNoMap   = errors.New("raycast: map is required")
	ErrFOV     = errors.New("raycast: field of view must be in (0, 2π)")
	ErrRays    = errors.New("raycast: ray count must be positive")
	ErrEpsilon = errors.New("raycast: epsilon must be in [0, 1)")
)

// Caster casts rays through a map. It holds no per-frame state, so one Caster
// can serve any number of frames and concurrent sweeps.
type Caster struct {
	m   *gridmap.Map
	cfg Config
}

// New creates a caster for the given map.
func New(m *gridmap.Map, cfg Config) (*Caster, error) {
	if m == nil {
		return nil, ErrNoMap
	}
	if !(cfg.FOV > 0 && cfg.FOV < 2*math.Pi) {
		return nil, fmt.Errorf("%w: got %v", ErrFOV, cfg.FOV)
	}
	if cfg.Rays <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrRays, cfg.Rays)
	}
	if cfg.Epsilon < 0 || cfg.Epsilon >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrEpsilon, cfg.Epsilon)
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = m.MaxSteps()
	}
	return &Caster{m: m, cfg: cfg}, nil
}

// Map returns the map the caster marches through.
func (c *Caster) Map() *gridmap.Map {
	return c.m
}

// Config returns the effective configuration (MaxSteps resolved).
func (c *Caster) Config() Config {
	return c.cfg
}

// Rays returns the number of columns per sweep.
func (c *Caster) Rays() int {
	return c.cfg.Rays
}

// search describes one grid march: a start point, the vector between
// successive grid-line crossings, and the step bound.
type search struct {
	x, y   float64
	dx, dy float64
	bound  int
}

// march advances along s until it lands in a solid cell or the bound is used up.
// It returns the landing point of the hit and the number of advances taken.
func (c *Caster) march(s search) (x, y float64, col, row, steps int, ok bool) {
	x, y = s.x, s.y
	for steps = 0; steps < s.bound; steps++ {
		col, row = c.m.CellOf(x, y)
		if c.m.IsSolid(col, row) {
			return x, y, col, row, steps, true
		}
		x += s.dx
		y += s.dy
	}
	return x, y, 0, 0, steps, false
}

// verticalSearch builds the march over vertical grid-line crossings.
// It reports false for rays that are (nearly) vertical.
func (c *Caster) verticalSearch(px, py, cos, tan float64) (search, bool) {
	S := c.m.CellSize()
	cellLeft := math.Floor(px/S) * S

	var s search
	switch {
	case cos < -c.cfg.Epsilon: // travelling left
		s.x = cellLeft - edgeNudge
		s.dx = -S
	case cos > c.cfg.Epsilon: // travelling right
		s.x = cellLeft + S
		s.dx = S
	default:
		return search{}, false
	}
	s.y = (px-s.x)*tan + py
	s.dy = -s.dx * tan
	s.bound = c.cfg.MaxSteps
	return s, true
}

// horizontalSearch builds the march over horizontal grid-line crossings.
// It reports false for rays that are (nearly) horizontal.
func (c *Caster) horizontalSearch(px, py, sin, tan float64) (search, bool) {
	S := c.m.CellSize()
	cellTop := math.Floor(py/S) * S
	invTan := 1 / tan

	var s search
	switch {
	case sin > c.cfg.Epsilon: // travelling up the screen
		s.y = cellTop - edgeNudge
		s.dy = -S
	case sin < -c.cfg.Epsilon: // travelling down the screen
		s.y = cellTop + S
		s.dy = S
	default:
		return search{}, false
	}
	s.x = (py-s.y)*invTan + px
	s.dx = -s.dy * invTan
	s.bound = c.cfg.MaxSteps
	return s, true
}

// Cast resolves a single ray from (px, py) at absolute angle theta (radians).
// The returned Distance is measured along the ray; Sweep replaces it with the
// perpendicular distance to the viewer plane.
func (c *Caster) Cast(px, py, theta float64) Hit {
	sin, cos := math.Sincos(theta)
	tan := sin / cos
	best := miss(theta, px, py)

	try := func(s search, axis Axis) {
		x, y, col, row, steps, ok := c.march(s)
		if !ok {
			return
		}
		length := cos*(x-px) - sin*(y-py)
		if length < best.RayLength {
			best = Hit{
				Angle:     theta,
				Distance:  length,
				RayLength: length,
				X:         x,
				Y:         y,
				Col:       col,
				Row:       row,
				Axis:      axis,
				Steps:     steps,
			}
		}
	}

	if s, ok := c.verticalSearch(px, py, cos, tan); ok {
		try(s, AxisVertical)
	}
	if s, ok := c.horizontalSearch(px, py, sin, tan); ok {
		try(s, AxisHorizontal)
	}
	return best
}
