package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-raycast/internal/registry"
	"github.com/vovakirdan/tui-raycast/internal/scene"
)

func init() {
	registry.Register("window", func() registry.Frontend { return windowFrontend{} })
}

// windowFrontend runs the raycaster in a desktop window.
type windowFrontend struct{}

func (windowFrontend) ID() string    { return "window" }
func (windowFrontend) Title() string { return "Window raycaster" }

func (windowFrontend) Run(ctx context.Context, s *scene.Scene, opts registry.Options) error {
	d := opts.Config.Display
	logger := opts.Log()

	// Pixels are square.
	s.Renderer.CellAspect = 1

	ebiten.SetWindowSize(d.Width, d.Height)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.FPS)

	logger.Info("starting window frontend", "map", s.Level.ID, "size", []int{d.Width, d.Height}, "fps", d.FPS)
	err := ebiten.RunGame(NewGame(ctx, s, logger, d.Width, d.Height))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
