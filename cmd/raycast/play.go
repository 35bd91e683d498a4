package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/maps"
	"github.com/vovakirdan/tui-raycast/internal/platform/tui"
	"github.com/vovakirdan/tui-raycast/internal/registry"
	"github.com/vovakirdan/tui-raycast/internal/scene"
)

var (
	flagFrontend string
	flagPick     bool
	flagMap      string
)

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Walk a map",
	Long: `Start the raycaster on a map. The map is a built-in ID, the ID of a file
in --maps-dir, or a path to a map file. Without an argument the config's
map.default is used.

Controls:
  W/Up      - Move forward
  S/Down    - Move backward
  A/Left    - Turn left
  D/Right   - Turn right
  M         - Toggle minimap
  R         - Respawn
  Ctrl+S    - Save a text screenshot to ~/.raycast/screenshots
  ?         - Toggle help
  Q/Esc     - Quit

Examples:
  raycast play
  raycast play courtyard
  raycast play ./maps/arena.yaml
  raycast play --pick
  raycast play --frontend window`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to run (see 'raycast frontends')")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the map from a menu")
	playCmd.Flags().StringVar(&flagMap, "map", "", "Map ID or file (same as the positional argument)")
}

func runPlay(_ *cobra.Command, args []string) error {
	return runFrontend(flagFrontend, args, flagPick)
}

// runFrontend resolves config, map and frontend, then runs the frontend.
func runFrontend(frontendID string, args []string, pick bool) error {
	if !registry.Exists(frontendID) {
		return fmt.Errorf("unknown frontend %q\nRun 'raycast frontends' to see available frontends.", frontendID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Terminal frontends own stdout and stderr; only the window can log to the console.
	var fallback io.Writer = io.Discard
	if frontendID == "window" {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", cfg.Source)

	ctx, cancel := signalContext()
	defer cancel()

	var lvl maps.Level
	if pick {
		levels, skipped, err := catalog().All()
		if err != nil {
			return err
		}
		logSkipped(logger, skipped)
		w, h := tui.TerminalSize()
		chosen, ok, err := tui.RunMenu(ctx, levels, cfg.Map.Default, w, h)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		lvl = chosen
	} else {
		ref := cfg.Map.Default
		if flagMap != "" {
			ref = flagMap
		}
		if len(args) > 0 {
			ref = args[0]
		}
		if lvl, err = resolveLevel(logger, ref); err != nil {
			return err
		}
	}

	s, err := scene.New(cfg, lvl)
	if err != nil {
		return err
	}
	logger.Info("map loaded", "id", lvl.ID, "origin", lvl.Origin(), "cells", []int{s.Map.Width(), s.Map.Height()}, "cell_size", s.Map.CellSize())

	fe, err := registry.Create(frontendID)
	if err != nil {
		return err
	}
	if err := fe.Run(ctx, s, registry.Options{Config: cfg, Logger: logger}); err != nil {
		logger.Error("frontend failed", "frontend", frontendID, "error", err)
		return err
	}
	logger.Info("session ended", "frames", s.Frames())
	return nil
}
