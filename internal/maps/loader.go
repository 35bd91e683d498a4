// Package maps loads map files: YAML grids with a player start, from a
// directory tree and from the built-in set embedded in the binary.
package maps

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned when no map has the requested ID.
var ErrNotFound = errors.New("map not found")

// Loader handles loading maps from a directory.
type Loader struct {
	Root string

	// Skipped collects the errors of files LoadAll could not parse.
	Skipped []error
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Invalid files are skipped and recorded in Skipped.
// Returns maps sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	l.Skipped = nil

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			l.Skipped = append(l.Skipped, err)
			return nil
		}

		levels = append(levels, lvl)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortLevels(levels)
	return levels, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// Builtin returns the maps embedded in the binary, sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, err
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			return nil, err
		}
		lvl, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", e.Name(), err)
		}
		levels = append(levels, lvl)
	}
	sortLevels(levels)
	return levels, nil
}

// Catalog merges the built-in maps with an optional directory of map files.
// A file map replaces a built-in map with the same ID.
type Catalog struct {
	Dir string // Empty = built-in maps only
}

// All returns every available map sorted by ID, plus the errors of skipped files.
func (c Catalog) All() ([]Level, []error, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, nil, err
	}
	if c.Dir == "" {
		return levels, nil, nil
	}
	if _, err := os.Stat(c.Dir); errors.Is(err, os.ErrNotExist) {
		return levels, nil, nil
	}

	l := NewLoader(c.Dir)
	files, err := l.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	for _, f := range files {
		i := slices.IndexFunc(levels, func(b Level) bool { return b.ID == f.ID })
		if i >= 0 {
			levels[i] = f
		} else {
			levels = append(levels, f)
		}
	}
	sortLevels(levels)
	return levels, l.Skipped, nil
}

// Get returns the map with the given ID, plus the errors of the directory
// files that were skipped while searching for it.
func (c Catalog) Get(id string) (Level, []error, error) {
	levels, skipped, err := c.All()
	if err != nil {
		return Level{}, nil, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, skipped, nil
		}
	}
	return Level{}, skipped, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Resolve loads a map by ID, or by file path when ref names an existing file.
// Skipped directory files are reported as in Get; a direct file load skips nothing.
func (c Catalog) Resolve(ref string) (Level, []error, error) {
	if isSupportedExtension(strings.ToLower(filepath.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			lvl, err := NewLoader(filepath.Dir(ref)).LoadFile(ref)
			return lvl, nil, err
		}
	}
	return c.Get(ref)
}

func sortLevels(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
