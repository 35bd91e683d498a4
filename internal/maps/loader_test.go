package maps_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-raycast/internal/gridmap"
	"github.com/vovakirdan/tui-raycast/internal/maps"
)

const testdataDir = "testdata/maps"

func TestParseYAML(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"valid", "id: a\nrows: ['111', '101', '111']\n", nil},
		{"missing id", "rows: ['111', '101', '111']\n", maps.ErrNoID},
		{"ragged rows", "id: a\nrows: ['111', '10', '111']\n", gridmap.ErrRagged},
		{"bad cell", "id: a\nrows: ['111', '1x1', '111']\n", gridmap.ErrBadCell},
		{"no rows", "id: a\n", gridmap.ErrEmpty},
		{"negative cell size", "id: a\ncell_size: -4\nrows: ['1']\n", gridmap.ErrCellSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maps.ParseYAML([]byte(tc.data))
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("ParseYAML() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParseYAML() error = %v, expected %v", err, tc.wantErr)
			}
		})
	}

	if _, err := maps.ParseYAML([]byte("id: [")); err == nil {
		t.Error("expected yaml syntax error")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	l := maps.NewLoader(testdataDir)
	levels, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	if len(ids) != 2 || ids[0] != "classic" || ids[1] != "small" {
		t.Errorf("ids = %v, expected [classic small]", ids)
	}
	if len(l.Skipped) != 2 {
		t.Errorf("Skipped = %v, expected broken.yaml and noid.yml", l.Skipped)
	}
}

func TestLoaderLoadFile(t *testing.T) {
	l := maps.NewLoader(testdataDir)

	lvl, err := l.LoadFile(filepath.Join(testdataDir, "small.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if lvl.Name != "small" {
		t.Errorf("Name = %q, expected ID fallback", lvl.Name)
	}
	if lvl.FilePath != filepath.Join(testdataDir, "small.yaml") {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}
	if lvl.Builtin() {
		t.Error("file map reported as builtin")
	}

	if _, err := l.LoadFile(filepath.Join(testdataDir, "broken.yaml")); err == nil {
		t.Error("LoadFile(broken.yaml) should fail")
	}
}

func TestSpawn(t *testing.T) {
	l := maps.NewLoader(testdataDir)

	t.Run("first open cell", func(t *testing.T) {
		lvl, err := l.LoadFile(filepath.Join(testdataDir, "small.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		g, err := lvl.ToGrid(64)
		if err != nil {
			t.Fatal(err)
		}
		p := lvl.NewPlayer(g)
		if p.X != 96 || p.Y != 96 || p.Angle != 0 {
			t.Errorf("player = %+v, expected center of cell (1, 1)", p)
		}
	})

	t.Run("explicit", func(t *testing.T) {
		lvl, err := l.LoadFile(filepath.Join(testdataDir, "nested", "override.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		g, err := lvl.ToGrid(64)
		if err != nil {
			t.Fatal(err)
		}
		if g.CellSize() != 32 {
			t.Errorf("CellSize() = %f, expected the file's 32", g.CellSize())
		}
		p := lvl.NewPlayer(g)
		if p.X != 48 || p.Y != 48 || p.Angle != 0 {
			t.Errorf("player = %+v", p)
		}
	})
}

func TestBuiltin(t *testing.T) {
	levels, err := maps.Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if len(levels) < 2 {
		t.Fatalf("expected several builtin maps, got %d", len(levels))
	}

	for _, lvl := range levels {
		if !lvl.Builtin() {
			t.Errorf("%s: not marked builtin", lvl.ID)
		}
		g, err := lvl.ToGrid(64)
		if err != nil {
			t.Errorf("%s: %v", lvl.ID, err)
			continue
		}
		p := lvl.NewPlayer(g)
		if g.IsSolidAt(p.X, p.Y) {
			t.Errorf("%s: player spawns inside a wall at (%f, %f)", lvl.ID, p.X, p.Y)
		}
	}
}

func TestBuiltinClassic(t *testing.T) {
	lvl, skipped, err := maps.Catalog{}.Get("classic")
	if err != nil {
		t.Fatalf("Get(classic): %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("builtin-only catalog skipped %v", skipped)
	}
	g, err := lvl.ToGrid(1)
	if err != nil {
		t.Fatal(err)
	}

	if g.Width() != 8 || g.Height() != 8 || g.MaxSteps() != 8 {
		t.Fatalf("expected 8x8 with MaxSteps 8, got %dx%d / %d", g.Width(), g.Height(), g.MaxSteps())
	}
	if g.CellSize() != 64 {
		t.Errorf("CellSize() = %f, expected the file's 64", g.CellSize())
	}
	for i := 0; i < 8; i++ {
		if !g.IsSolid(i, 0) || !g.IsSolid(i, 7) || !g.IsSolid(0, i) || !g.IsSolid(7, i) {
			t.Fatalf("border cell missing at index %d", i)
		}
	}
	if !g.IsSolid(2, 1) || !g.IsSolid(2, 3) || !g.IsSolid(5, 5) {
		t.Error("interior walls missing")
	}
	if g.IsSolid(2, 4) {
		t.Error("wall stub should end at row 3")
	}
	if g.WallCount() != 32 {
		t.Errorf("WallCount() = %d, expected 32", g.WallCount())
	}

	p := lvl.NewPlayer(g)
	if p.X != 150 || p.Y != 400 || p.AngleDegrees() != 90 {
		t.Errorf("classic spawn = (%f, %f, %f°)", p.X, p.Y, p.AngleDegrees())
	}
}

func TestCatalog(t *testing.T) {
	c := maps.Catalog{Dir: testdataDir}
	levels, skipped, err := c.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(skipped) != 2 {
		t.Errorf("skipped = %d, expected 2", len(skipped))
	}

	builtin, _ := maps.Builtin()
	if len(levels) != len(builtin)+1 {
		t.Errorf("len(levels) = %d, expected builtin + small", len(levels))
	}

	lvl, skipped, err := c.Get("classic")
	if err != nil {
		t.Fatal(err)
	}
	if len(skipped) != 2 {
		t.Errorf("Get skipped = %v, expected broken.yaml and noid.yml", skipped)
	}
	if lvl.Name != "Classic Override" {
		t.Errorf("classic not overridden by directory map: %q", lvl.Name)
	}

	missing := maps.Catalog{Dir: filepath.Join(t.TempDir(), "absent")}
	if _, _, err := missing.All(); err != nil {
		t.Errorf("missing directory should fall back to builtin: %v", err)
	}
}

func TestCatalogResolve(t *testing.T) {
	c := maps.Catalog{}

	lvl, skipped, err := c.Resolve(filepath.Join(testdataDir, "small.yaml"))
	if err != nil {
		t.Fatalf("Resolve(path): %v", err)
	}
	if lvl.ID != "small" || len(skipped) != 0 {
		t.Errorf("Resolve(path) = %q, skipped %v", lvl.ID, skipped)
	}

	if _, _, err := c.Resolve("courtyard"); err != nil {
		t.Errorf("Resolve(courtyard): %v", err)
	}
	if _, _, err := c.Resolve("missing"); !errors.Is(err, maps.ErrNotFound) {
		t.Errorf("Resolve(missing) error = %v", err)
	}
}

func TestCatalogResolveReportsSkipped(t *testing.T) {
	c := maps.Catalog{Dir: testdataDir}

	testCases := []struct {
		name    string
		ref     string
		wantErr error
	}{
		{"found by id", "small", nil},
		{"builtin by id", "courtyard", nil},
		{"unknown id", "missing", maps.ErrNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, skipped, err := c.Resolve(tc.ref)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Resolve(%q) error = %v, expected %v", tc.ref, err, tc.wantErr)
			}
			if len(skipped) != 2 {
				t.Errorf("Resolve(%q) skipped = %v, expected broken.yaml and noid.yml", tc.ref, skipped)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	lvl, _, err := maps.Catalog{}.Get("courtyard")
	if err != nil {
		t.Fatal(err)
	}
	data, err := maps.MarshalYAML(lvl)
	if err != nil {
		t.Fatal(err)
	}
	back, err := maps.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML(MarshalYAML()): %v", err)
	}
	if back.ID != lvl.ID || back.Spawn != lvl.Spawn || len(back.Rows) != len(lvl.Rows) {
		t.Errorf("round trip changed the level: %+v", back)
	}
}
