package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raycast/internal/config"
	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/scene"
)

// noticeFrames is how long a HUD notice stays visible.
const noticeFrames = 60

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for the raycaster view.
type Model struct {
	scene  *scene.Scene
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	frame  core.CommandFrame
	fps    int
	width  int
	height int
	logger *log.Logger

	screenshotDir string
	notice        string
	noticeTTL     int
	quitting      bool
}

// NewModel creates a model for a w x h terminal.
func NewModel(s *scene.Scene, cfg config.Config, logger *log.Logger, w, h int) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s.Renderer.CellAspect = cfg.Display.CellAspect

	m := Model{
		scene:  s,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		fps:    cfg.Display.FPS,
		width:  w,
		height: h,
		logger: logger,
	}
	if dir := config.UserDir(); dir != "" {
		m.screenshotDir = filepath.Join(dir, "screenshots")
	}
	m.help.Width = w
	m.screen = core.NewScreen(w, m.viewHeight())
	m.redraw()
	return m
}

// viewHeight is the terminal height left for the 3D view after the HUD and help lines.
func (m Model) viewHeight() int {
	return max(1, m.height-1-m.helpHeight())
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, group := range m.keys.FullHelp() {
		rows = max(rows, len(group))
	}
	return rows
}

// redraw renders the scene into the character screen.
func (m *Model) redraw() {
	m.scene.Draw(m.screen)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys are queued and applied
// on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Minimap):
		on := m.scene.Renderer.ToggleMinimap()
		m.logger.Debug("minimap toggled", "on", on)
		m.redraw()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.scene.Reset()
		m.redraw()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.viewHeight())
		m.redraw()
		return m, nil
	}

	m.frame.Push(m.keys.Command(msg))
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.width, m.viewHeight())
	m.redraw()
	return m, nil
}

// handleTick applies the queued commands and draws a frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.frame.Len() > 0 {
		m.scene.Step(m.frame)
		m.frame.Clear()
	}
	if m.noticeTTL > 0 {
		m.noticeTTL--
		if m.noticeTTL == 0 {
			m.notice = ""
		}
	}
	m.redraw()
	return m, tickCmd(m.fps)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	path, err := SaveScreenshot(m.screen, m.screenshotDir, m.scene.Level.ID, time.Now())
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.setNotice("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setNotice("saved " + path)
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeTTL = noticeFrames
}

// SaveScreenshot writes the screen to dir as <prefix>_<timestamp>.txt and returns the path.
func SaveScreenshot(s *core.Screen, dir, prefix string, at time.Time) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", prefix, at.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(m.scene.Status()))
	if m.notice != "" {
		b.WriteString("  ")
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for a scene.
func Run(ctx context.Context, s *scene.Scene, cfg config.Config, logger *log.Logger, w, h int) error {
	model := NewModel(s, cfg, logger, w, h)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
