package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// KeyMap defines the key bindings for the raycaster view.
type KeyMap struct {
	Forward    key.Binding
	Backward   key.Binding
	TurnLeft   key.Binding
	TurnRight  key.Binding
	Minimap    key.Binding
	Reset      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Backward, k.TurnLeft, k.TurnRight, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.TurnLeft, k.TurnRight},
		{k.Minimap, k.Reset, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "back"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "turn right"),
		),
		Minimap: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimap"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "respawn"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key to a player command. Keys that do not move the
// player yield a CommandNone command.
func (k KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Forward):
		return core.Cmd(core.CommandMoveForward)
	case key.Matches(msg, k.Backward):
		return core.Cmd(core.CommandMoveBackward)
	case key.Matches(msg, k.TurnLeft):
		return core.Cmd(core.CommandTurnLeft)
	case key.Matches(msg, k.TurnRight):
		return core.Cmd(core.CommandTurnRight)
	}
	return core.Cmd(core.CommandNone)
}
