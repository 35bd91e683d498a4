// raycast is a grid raycasting renderer for the terminal and the desktop.
//
// Usage:
//
//	raycast play [map]       - Walk a map in the terminal
//	raycast window [map]     - Walk a map in a desktop window
//	raycast inspect [map]    - Browse one sweep as a table
//	raycast snapshot [map]   - Print one frame as text
//	raycast maps             - List available maps
//	raycast frontends        - List available frontends
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.raycast/config.yaml, ./configs/raycast.yaml)
//	--maps-dir <dir>    - Directory of extra map files (default: ~/.raycast/maps)
//	--fps <rate>        - Override display.fps
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log destination while a terminal frontend is running
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/config"
	"github.com/vovakirdan/tui-raycast/internal/maps"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-raycast/internal/platform/tui"
	_ "github.com/vovakirdan/tui-raycast/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagMapsDir  string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycast",
	Short: "Grid raycaster for the terminal and the desktop",
	Long: `raycast renders a 2D tile map as a pseudo-3D view: one ray per screen
column, walls drawn taller the closer they are.

Available commands:
  play       - Walk a map in the terminal
  window     - Walk a map in a desktop window
  inspect    - Browse one sweep as a table
  snapshot   - Print one frame as text
  maps       - List available maps
  frontends  - List available frontends

Examples:
  raycast play
  raycast play courtyard --fps 60
  raycast window classic
  raycast snapshot --angle 45 --minimap
  raycast maps --maps-dir ./maps`,
	// Commands return their errors; main prints them once and exits.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps-dir", "", "Directory of map files (default: ~/.raycast/maps)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(frontendsCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "raycast",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, func() {}, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	return cfg, nil
}

// catalog returns the map catalog for --maps-dir, defaulting to ~/.raycast/maps.
func catalog() maps.Catalog {
	dir := flagMapsDir
	if dir == "" {
		if home := config.UserDir(); home != "" {
			dir = filepath.Join(home, "maps")
		}
	}
	return maps.Catalog{Dir: dir}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// resolveLevel finds a map in the catalog and logs the map files that were
// skipped on the way.
func resolveLevel(logger *log.Logger, ref string) (maps.Level, error) {
	lvl, skipped, err := catalog().Resolve(ref)
	logSkipped(logger, skipped)
	if err != nil {
		return lvl, fmt.Errorf("%w\nRun 'raycast maps' to see available maps.", err)
	}
	return lvl, nil
}

// logSkipped reports map files that could not be loaded.
func logSkipped(logger *log.Logger, skipped []error) {
	for _, e := range skipped {
		logger.Warn("skipped map file", "error", e)
	}
}
