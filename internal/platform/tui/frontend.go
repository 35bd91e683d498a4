package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raycast/internal/registry"
	"github.com/vovakirdan/tui-raycast/internal/scene"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return playFrontend{} })
	registry.Register("inspect", func() registry.Frontend { return inspectFrontend{} })
}

// playFrontend runs the raycaster in the terminal.
type playFrontend struct{}

func (playFrontend) ID() string    { return "tui" }
func (playFrontend) Title() string { return "Terminal raycaster" }

func (playFrontend) Run(ctx context.Context, s *scene.Scene, opts registry.Options) error {
	w, h := TerminalSize()
	opts.Log().Info("starting terminal frontend", "map", s.Level.ID, "size", []int{w, h}, "fps", opts.Config.Display.FPS)
	return ignoreCancel(ctx, Run(ctx, s, opts.Config, opts.Log(), w, h))
}

// inspectFrontend shows one sweep as a table.
type inspectFrontend struct{}

func (inspectFrontend) ID() string    { return "inspect" }
func (inspectFrontend) Title() string { return "Sweep inspector" }

func (inspectFrontend) Run(ctx context.Context, s *scene.Scene, opts registry.Options) error {
	w, h := TerminalSize()
	opts.Log().Info("starting inspector", "map", s.Level.ID)
	return ignoreCancel(ctx, RunInspect(ctx, s, w, h))
}

// Fallback size when stdout is not a terminal.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// TerminalSize returns the size of stdout, or 80x24 when stdout is not a terminal.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// ignoreCancel treats a program killed by ctx cancellation as a clean exit.
func ignoreCancel(ctx context.Context, err error) error {
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
