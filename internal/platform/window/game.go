package window

import (
	"context"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/scene"
)

// hudMargin is the HUD text offset from the top-left corner in pixels.
const hudMargin = 8

// binding ties a command to the keys that trigger it while held.
type binding struct {
	kind core.CommandKind
	keys []ebiten.Key
}

var bindings = []binding{
	{core.CommandMoveForward, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.CommandMoveBackward, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.CommandTurnLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.CommandTurnRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
}

// commandsFor builds one frame of commands from the held keys.
// Each command is issued at most once per frame.
func commandsFor(pressed func(ebiten.Key) bool) core.CommandFrame {
	var f core.CommandFrame
	for _, b := range bindings {
		for _, k := range b.keys {
			if pressed(k) {
				f.Push(core.Cmd(b.kind))
				break
			}
		}
	}
	return f
}

// Game implements ebiten.Game for a scene.
type Game struct {
	ctx     context.Context
	scene   *scene.Scene
	surface *Surface
	logger  *log.Logger
	face    text.Face
	width   int
	height  int
	showHUD bool
}

// NewGame creates a game with a fixed logical screen size.
func NewGame(ctx context.Context, s *scene.Scene, logger *log.Logger, w, h int) *Game {
	return &Game{
		ctx:     ctx,
		scene:   s,
		surface: NewSurface(nil),
		logger:  logger,
		face:    text.NewGoXFace(basicfont.Face7x13),
		width:   w,
		height:  h,
		showHUD: true,
	}
}

// Update polls input and advances the player. It ends the game on Escape,
// Q, or when the context is cancelled.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		on := g.scene.Renderer.ToggleMinimap()
		g.logger.Debug("minimap toggled", "on", on)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Reset()
	}

	if f := commandsFor(ebiten.IsKeyPressed); f.Len() > 0 {
		g.scene.Step(f)
	}
	return nil
}

// Draw renders the scene and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.scene.Draw(g.surface)

	if g.showHUD {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMargin, hudMargin)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, g.scene.Status(), g.face, op)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
