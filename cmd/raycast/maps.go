package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/maps"
)

var (
	flagShowGrid bool
	flagExport   bool
)

var mapsCmd = &cobra.Command{
	Use:   "maps [map]",
	Short: "List available maps",
	Long: `Lists the built-in maps and the map files found in --maps-dir.
A file map with the same ID as a built-in map replaces it.
With a map argument, prints that map's grid, or with --yaml its map file.

Examples:
  raycast maps
  raycast maps --maps-dir ./maps
  raycast maps classic
  raycast maps classic --yaml > ~/.raycast/maps/mine.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMaps,
}

func init() {
	mapsCmd.Flags().BoolVar(&flagShowGrid, "grid", false, "Print the grid of every map")
	mapsCmd.Flags().BoolVar(&flagExport, "yaml", false, "Print the map as a map file (with a map argument)")
}

func runMaps(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if len(args) == 1 {
		lvl, err := resolveLevel(logger, args[0])
		if err != nil {
			return err
		}
		if flagExport {
			data, err := maps.MarshalYAML(lvl)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}
		g, err := lvl.ToGrid(cfg.Map.CellSize)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s) %dx%d cells of %g, %d walls\n", lvl.Name, lvl.ID, g.Width(), g.Height(), g.CellSize(), g.WallCount())
		fmt.Println(g.String())
		return nil
	}

	levels, skipped, err := catalog().All()
	if err != nil {
		return err
	}
	logSkipped(logger, skipped)

	if len(levels) == 0 {
		fmt.Println("No maps available.")
		return nil
	}

	fmt.Println("Available maps:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, lvl := range levels {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %5s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Walls", "Origin")
	fmt.Printf("  %-*s  %-*s  %-7s  %5s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "-----", "------")
	for _, lvl := range levels {
		g, err := lvl.ToGrid(cfg.Map.CellSize)
		if err != nil {
			logger.Warn("unusable map", "id", lvl.ID, "error", err)
			continue
		}
		size := fmt.Sprintf("%dx%d", g.Width(), g.Height())
		fmt.Printf("  %-*s  %-*s  %-7s  %5d  %s\n", maxIDLen, lvl.ID, maxNameLen, lvl.Name, size, g.WallCount(), lvl.Origin())
		if flagShowGrid {
			fmt.Println(indent(g.String(), "      "))
		}
	}

	fmt.Println()
	fmt.Println("Run 'raycast play <id>' to walk a map.")
	return nil
}
