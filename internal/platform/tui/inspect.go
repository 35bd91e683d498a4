package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/render"
	"github.com/vovakirdan/tui-raycast/internal/scene"
)

// Inspector layout constants
const (
	inspectViewW = 60 // Nominal view size used to compute strip heights
	inspectViewH = 20
	chromeHeight = 8 // Title, player line, borders and help
)

// InspectKeyMap defines the key bindings for the sweep inspector.
type InspectKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Forward   key.Binding
	Backward  key.Binding
	TurnLeft  key.Binding
	TurnRight key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k InspectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Forward, k.Backward, k.TurnLeft, k.TurnRight, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k InspectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Forward, k.Backward, k.TurnLeft, k.TurnRight},
		{k.Quit},
	}
}

// DefaultInspectKeyMap returns default key bindings.
func DefaultInspectKeyMap() InspectKeyMap {
	return InspectKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev ray"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next ray"),
		),
		Forward: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "back"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "turn right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InspectModel is the Bubble Tea model listing one sweep as a table.
type InspectModel struct {
	scene    *scene.Scene
	frame    render.Frame
	table    table.Model
	help     help.Model
	keys     InspectKeyMap
	width    int
	height   int
	quitting bool
}

// NewInspectModel creates an inspector for a w x h terminal.
func NewInspectModel(s *scene.Scene, w, h int) InspectModel {
	m := InspectModel{
		scene:  s,
		help:   help.New(),
		keys:   DefaultInspectKeyMap(),
		width:  w,
		height: h,
	}
	m.table = m.createTable()
	m.resweep()
	return m
}

// createTable creates a new table sized for the terminal.
func (m *InspectModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Ray", Width: 5},
		{Title: "Angle°", Width: 8},
		{Title: "Distance", Width: 10},
		{Title: "Axis", Width: 11},
		{Title: "Steps", Width: 6},
		{Title: "Height", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-chromeHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resweep recomputes the frame and refreshes the rows, keeping the cursor.
func (m *InspectModel) resweep() {
	m.frame = m.scene.Frame(inspectViewW, inspectViewH)
	cursor := m.table.Cursor()
	m.table.SetRows(SweepRows(m.frame))
	if cursor >= 0 && cursor < len(m.frame.Columns) {
		m.table.SetCursor(cursor)
	}
}

// SweepRows formats a frame as table rows.
func SweepRows(f render.Frame) []table.Row {
	rows := make([]table.Row, len(f.Columns))
	for i, c := range f.Columns {
		dist := "miss"
		if !math.IsInf(c.Hit.Distance, 1) {
			dist = fmt.Sprintf("%.2f", c.Hit.Distance)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", c.Index),
			fmt.Sprintf("%.2f", core.RadToDeg(c.Hit.Angle)),
			dist,
			c.Hit.Axis.String(),
			fmt.Sprintf("%d", c.Hit.Steps),
			fmt.Sprintf("%.2f", c.Height),
		}
	}
	return rows
}

// Init initializes the inspector.
func (m InspectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inspector.
func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var c core.Command
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Forward):
			c = core.Cmd(core.CommandMoveForward)
		case key.Matches(msg, m.keys.Backward):
			c = core.Cmd(core.CommandMoveBackward)
		case key.Matches(msg, m.keys.TurnLeft):
			c = core.Cmd(core.CommandTurnLeft)
		case key.Matches(msg, m.keys.TurnRight):
			c = core.Cmd(core.CommandTurnRight)
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		if c.Kind != core.CommandNone {
			var f core.CommandFrame
			f.Push(c)
			m.scene.Step(f)
			m.resweep()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.resweep()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the inspector.
func (m InspectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SWEEP - "+m.scene.Level.Name, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("%s  hits:%d/%d", m.scene.Status(), m.frame.VisibleCount(), len(m.frame.Columns)), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Frame returns the sweep currently shown.
func (m InspectModel) Frame() render.Frame {
	return m.frame
}

// RunInspect runs the sweep inspector.
func RunInspect(ctx context.Context, s *scene.Scene, w, h int) error {
	p := tea.NewProgram(
		NewInspectModel(s, w, h),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
