package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycast/internal/maps"
)

// MenuKeyMap defines the key bindings for the map picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("w", "up", "k")),
		Down:   key.NewBinding(key.WithKeys("s", "down", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the map picker.
type MenuModel struct {
	levels   []maps.Level
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	quitting bool
	selected *maps.Level // Set when the user picks a map
}

// NewMenuModel creates a map picker. The cursor starts on preselect if present.
func NewMenuModel(levels []maps.Level, preselect string, w, h int) MenuModel {
	m := MenuModel{
		levels: levels,
		width:  w,
		height: h,
		keys:   DefaultMenuKeyMap(),
	}
	for i, lvl := range levels {
		if lvl.ID == preselect {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.levels)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				selected := m.levels[m.cursor]
				m.selected = &selected
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("R A Y C A S T", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a map", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%dx%d)", cursor, lvl.Name, width(lvl), len(lvl.Rows))
		if !lvl.Builtin() {
			line += dimStyle.Render(" " + lvl.FilePath)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected map, or nil if none was selected.
func (m MenuModel) Selected() *maps.Level {
	return m.selected
}

// width returns the map width in cells, counted in runes.
func width(lvl maps.Level) int {
	if len(lvl.Rows) == 0 {
		return 0
	}
	return len([]rune(lvl.Rows[0]))
}

// RunMenu shows the map picker and returns the chosen map.
// ok is false when the user quit without choosing.
func RunMenu(ctx context.Context, levels []maps.Level, preselect string, w, h int) (lvl maps.Level, ok bool, err error) {
	p := tea.NewProgram(
		NewMenuModel(levels, preselect, w, h),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return maps.Level{}, false, err
	}

	m, isMenu := final.(MenuModel)
	if !isMenu || m.Selected() == nil {
		return maps.Level{}, false, nil
	}
	return *m.Selected(), true, nil
}
