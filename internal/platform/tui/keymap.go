package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a frontend-level command derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionStick       // Grow the stick, or let it fall if already growing
	ActionReset
	ActionScreenshot
	ActionQuit
)

// KeyMap defines the key bindings for the game screen.
// Terminals do not report key releases, so one tap starts the stick and the
// next tap drops it. Mouse buttons report both.
type KeyMap struct {
	Stick      key.Binding
	Reset      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stick, k.Reset, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Stick, k.Reset},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Stick: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/click", "tap: grow, tap: drop"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key message to a frontend action.
func (k KeyMap) Action(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Screenshot):
		return ActionScreenshot
	case key.Matches(msg, k.Reset):
		return ActionReset
	case key.Matches(msg, k.Stick):
		return ActionStick
	}
	return ActionNone
}
