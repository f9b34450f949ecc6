package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-zombies/internal/core"
)

// KeyMap defines the key bindings for a game session.
// The nine movement keys form a 3x3 block on a QWERTY keyboard, with the
// centre key (s) standing still.
type KeyMap struct {
	UpLeft    key.Binding
	Up        key.Binding
	UpRight   key.Binding
	Left      key.Binding
	Stay      key.Binding
	Right     key.Binding
	DownLeft  key.Binding
	Down      key.Binding
	DownRight key.Binding
	Teleport  key.Binding
	Quit      key.Binding
	Help      key.Binding

	// Move summarizes the nine movement keys in the short help.
	// Action never consults it.
	Move key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Teleport, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.UpLeft, k.Left, k.DownLeft},
		{k.Up, k.Stay, k.Down},
		{k.UpRight, k.Right, k.DownRight},
		{k.Teleport, k.Quit, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		UpLeft: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "up-left"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		UpRight: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "up-right"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Stay: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stay"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		DownLeft: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "down-left"),
		),
		Down: key.NewBinding(
			key.WithKeys("x", "down"),
			key.WithHelp("x/↓", "down"),
		),
		DownRight: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "down-right"),
		),
		Teleport: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "teleport"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "give up"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Move: key.NewBinding(
			key.WithKeys("q", "w", "e", "a", "s", "d", "z", "x", "c"),
			key.WithHelp("qwe/asd/zxc", "move"),
		),
	}
}

// Action translates a key message to a game action.
// Keys with no binding map to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.UpLeft, core.ActionUpLeft},
		{k.Up, core.ActionUp},
		{k.UpRight, core.ActionUpRight},
		{k.Left, core.ActionLeft},
		{k.Stay, core.ActionStay},
		{k.Right, core.ActionRight},
		{k.DownLeft, core.ActionDownLeft},
		{k.Down, core.ActionDown},
		{k.DownRight, core.ActionDownRight},
		{k.Teleport, core.ActionTeleport},
		{k.Quit, core.ActionQuit},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
