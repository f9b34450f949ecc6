package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-zombies/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"q", runeKey('q'), core.ActionUpLeft},
		{"w", runeKey('w'), core.ActionUp},
		{"e", runeKey('e'), core.ActionUpRight},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionStay},
		{"d", runeKey('d'), core.ActionRight},
		{"z", runeKey('z'), core.ActionDownLeft},
		{"x", runeKey('x'), core.ActionDown},
		{"c", runeKey('c'), core.ActionDownRight},
		{"t", runeKey('t'), core.ActionTeleport},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound letter", runeKey('k'), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
		{"help is not a game action", runeKey('?'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if action := km.Action(tc.msg); action != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), action, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	// Nine moves plus teleport, quit and help
	if total != 12 {
		t.Errorf("FullHelp() lists %d bindings, expected 12", total)
	}
}
