package raycast

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/gridmap"
	"github.com/vovakirdan/tui-raycast/internal/maps"
)

const cell = 64.0

// openRoom returns a bordered w x h map with an empty interior.
func openRoom(t *testing.T, w, h int) *gridmap.Map {
	t.Helper()
	rows := make([]string, h)
	for y := range rows {
		if y == 0 || y == h-1 {
			rows[y] = strings.Repeat("1", w)
			continue
		}
		rows[y] = "1" + strings.Repeat("0", w-2) + "1"
	}
	m, err := gridmap.FromRows(rows, cell)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

// classicMap loads the built-in 8x8 classic map with 64-unit cells.
func classicMap(t *testing.T) *gridmap.Map {
	t.Helper()
	lvl, _, err := maps.Catalog{}.Get("classic")
	if err != nil {
		t.Fatalf("Get(classic): %v", err)
	}
	m, err := lvl.ToGrid(cell)
	if err != nil {
		t.Fatalf("ToGrid: %v", err)
	}
	return m
}

func newCaster(t *testing.T, m *gridmap.Map, cfg Config) *Caster {
	t.Helper()
	c, err := New(m, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsBadConfig(t *testing.T) {
	m := openRoom(t, 4, 4)
	testCases := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"zero fov", func(c *Config) { c.FOV = 0 }, ErrFOV},
		{"full circle fov", func(c *Config) { c.FOV = 2 * math.Pi }, ErrFOV},
		{"no rays", func(c *Config) { c.Rays = 0 }, ErrRays},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1 }, ErrEpsilon},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)
			if _, err := New(m, cfg); !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, expected %v", err, tc.want)
			}
		})
	}

	if _, err := New(nil, DefaultConfig()); !errors.Is(err, ErrNoMap) {
		t.Errorf("New(nil) error = %v, expected ErrNoMap", err)
	}
}

func TestNewResolvesMaxSteps(t *testing.T) {
	c := newCaster(t, openRoom(t, 12, 5), DefaultConfig())
	if got := c.Config().MaxSteps; got != 12 {
		t.Errorf("MaxSteps = %d, expected 12", got)
	}
}

func TestBothSearchesFiniteInsideQuadrant(t *testing.T) {
	m := openRoom(t, 10, 10)
	c := newCaster(t, m, DefaultConfig())

	px, py := 300.0, 300.0
	theta := core.DegToRad(30)
	sin, cos := math.Sincos(theta)
	tan := sin / cos

	vs, ok := c.verticalSearch(px, py, cos, tan)
	if !ok {
		t.Fatal("vertical search rejected a diagonal ray")
	}
	hs, ok := c.horizontalSearch(px, py, sin, tan)
	if !ok {
		t.Fatal("horizontal search rejected a diagonal ray")
	}
	if _, _, _, _, _, hit := c.march(vs); !hit {
		t.Error("vertical march missed in a closed room")
	}
	if _, _, _, _, _, hit := c.march(hs); !hit {
		t.Error("horizontal march missed in a closed room")
	}

	// The inner face of the right border is x = 9*S; the top border is y = S.
	toRight := (9*cell - px) / cos
	toTop := (py - cell) / sin
	want := math.Min(toRight, toTop)

	h := c.Cast(px, py, theta)
	if !h.Found() {
		t.Fatal("Cast reported a miss")
	}
	if math.Abs(h.RayLength-want) > 1e-3 {
		t.Errorf("RayLength = %f, expected %f", h.RayLength, want)
	}
	if h.Axis != AxisVertical {
		t.Errorf("Axis = %v, expected vertical", h.Axis)
	}
	if h.Col != 9 {
		t.Errorf("Col = %d, expected 9", h.Col)
	}
}

func TestCastQuadrants(t *testing.T) {
	m := openRoom(t, 10, 10)
	c := newCaster(t, m, DefaultConfig())
	px, py := 300.0, 300.0

	for _, deg := range []float64{15, 60, 120, 170, 200, 250, 290, 340} {
		theta := core.DegToRad(deg)
		sin, cos := math.Sincos(theta)

		var toX, toY float64
		if cos > 0 {
			toX = (9*cell - px) / cos
		} else {
			toX = (cell - px) / cos
		}
		if sin > 0 {
			toY = (py - cell) / sin
		} else {
			toY = (py - 9*cell) / sin
		}
		want := math.Min(toX, toY)

		h := c.Cast(px, py, theta)
		if math.Abs(h.RayLength-want) > 1e-3 {
			t.Errorf("%v°: RayLength = %f, expected %f", deg, h.RayLength, want)
		}
	}
}

func TestCastAxisParallel(t *testing.T) {
	c := newCaster(t, classicMap(t), DefaultConfig())

	testCases := []struct {
		name  string
		deg   float64
		dist  float64
		axis  Axis
		steps int
	}{
		// From (150, 400): column 2 is blocked at row 3 whose bottom face is y = 256.
		{"up", 90, 400 - 256, AxisHorizontal, 2},
		{"down", 270, 448 - 400, AxisHorizontal, 0},
		{"right", 0, 448 - 150, AxisVertical, 4},
		{"left", 180, 150 - 64, AxisVertical, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := c.Cast(150, 400, core.DegToRad(tc.deg))
			if h.Axis != tc.axis {
				t.Errorf("Axis = %v, expected %v", h.Axis, tc.axis)
			}
			if math.Abs(h.RayLength-tc.dist) > 1e-3 {
				t.Errorf("RayLength = %f, expected %f", h.RayLength, tc.dist)
			}
			if h.Steps != tc.steps {
				t.Errorf("Steps = %d, expected %d", h.Steps, tc.steps)
			}
		})
	}
}

func TestCastMissBeyondBound(t *testing.T) {
	m := openRoom(t, 20, 20)
	cfg := DefaultConfig()
	cfg.MaxSteps = 1
	c := newCaster(t, m, cfg)

	h := c.Cast(640, 640, core.DegToRad(37))
	if h.Found() {
		t.Fatalf("expected a miss, got %+v", h)
	}
	if !math.IsInf(h.Distance, 1) {
		t.Errorf("Distance = %f, expected +Inf", h.Distance)
	}
	if h.Axis != AxisNone {
		t.Errorf("Axis = %v, expected none", h.Axis)
	}
}

func TestCastOutsideMapHitsImmediately(t *testing.T) {
	m := openRoom(t, 4, 4)
	c := newCaster(t, m, DefaultConfig())

	// A viewer left of the map looking further left only sees out-of-bounds cells.
	h := c.Cast(-100, 100, math.Pi)
	if !h.Found() {
		t.Fatal("out-of-bounds cells must be solid")
	}
	if h.Steps != 0 {
		t.Errorf("Steps = %d, expected 0", h.Steps)
	}
}

func TestAxisString(t *testing.T) {
	testCases := []struct {
		axis Axis
		want string
	}{
		{AxisNone, "none"},
		{AxisVertical, "vertical"},
		{AxisHorizontal, "horizontal"},
	}
	for _, tc := range testCases {
		if got := tc.axis.String(); got != tc.want {
			t.Errorf("Axis(%d).String() = %q, expected %q", tc.axis, got, tc.want)
		}
	}
}
