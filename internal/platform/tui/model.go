// Package tui provides the Bubble Tea integration for the zombies game.
// It handles the terminal UI loop, key mapping and board rendering.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-zombies/internal/games/zombies"
)

// Model is the Bubble Tea model for one game session.
// Every key press is one action; there is no tick loop.
type Model struct {
	game     *zombies.Game
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	tooSmall bool
	outcome  zombies.Outcome
	done     bool
}

// NewModel creates a model for a game that has already been Reset.
// A nil logger discards all output.
func NewModel(game *zombies.Game, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:    game,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		outcome: game.Outcome(),
	}
}

// Init implements tea.Model. Nothing happens until the first key press.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey applies one action per key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)

	// Only giving up is allowed while the board does not fit
	if m.tooSmall && !key.Matches(msg, m.keys.Quit) {
		return m, nil
	}

	m.outcome = m.game.Apply(action)
	m.logger.Debug("turn",
		"key", msg.String(),
		"action", action,
		"outcome", m.outcome,
		"turn", m.game.Turns(),
		"alive", m.game.Alive(),
		"player", m.game.Player(),
	)

	if m.outcome.Terminal() {
		m.done = true
		m.logger.Info("game over",
			"outcome", m.outcome,
			"turns", m.game.Turns(),
			"alive", m.game.Alive(),
		)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	needW, needH := RequiredSize(m.game.Config())
	m.tooSmall = msg.Width < needW || msg.Height < needH
	if m.tooSmall {
		m.logger.Warn("window too small",
			"width", msg.Width, "height", msg.Height,
			"need_width", needW, "need_height", needH)
	}
	return m, nil
}

// Outcome returns the outcome of the last applied action.
func (m Model) Outcome() zombies.Outcome {
	return m.outcome
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.tooSmall {
		needW, needH := RequiredSize(m.game.Config())
		return fmt.Sprintf("Window too small: need %dx%d, have %dx%d\nResize to continue, ctrl+c to give up",
			needW, needH, m.width, m.height)
	}

	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteRune('\n')
	sb.WriteString(RenderBoard(m.game.Rows(), m.game.Config().Glyphs))
	sb.WriteRune('\n')
	sb.WriteString(StatusLine(m.game))
	sb.WriteRune('\n')
	if msg := OutcomeMessage(m.outcome); msg != "" {
		sb.WriteString(msg)
	} else {
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}

// Run starts the Bubble Tea program for the given game and blocks until the
// game ends or the user gives up. It returns the final outcome.
func Run(game *zombies.Game, logger *log.Logger) (zombies.Outcome, error) {
	p := tea.NewProgram(
		NewModel(game, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return zombies.OutcomeContinue, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return zombies.OutcomeContinue, fmt.Errorf("tui: unexpected model type %T", final)
	}
	return m.Outcome(), nil
}
