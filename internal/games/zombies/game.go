// Package zombies implements a turn-based chase on a bordered grid: the
// player lures every zombie into a hole before one of them catches up.
package zombies

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-zombies/internal/config"
	"github.com/vovakirdan/tui-zombies/internal/core"
)

// ErrBoardTooSmall is returned by Reset when the interior cannot hold every
// zombie, every hole and the player with room to spare.
var ErrBoardTooSmall = errors.New("zombies: board too small")

// State is the lifecycle stage of a game.
type State int

const (
	StateSetup State = iota
	StatePlaying
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game owns the board and drives it one action at a time.
// It is not safe for concurrent use.
type Game struct {
	cfg     config.ZombiesConfig
	rng     Rand
	board   board
	state   State
	outcome Outcome
	turns   int
}

// New creates a game for the given setup parameters.
// The board is empty until Reset is called.
func New(cfg config.ZombiesConfig) *Game {
	return &Game{cfg: cfg}
}

// Reset builds a fresh board: border first, then zombies, holes and finally
// the player, each on a random empty interior cell.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	if err := g.cfg.Validate(); err != nil {
		return fmt.Errorf("zombies: %w", err)
	}
	need := g.cfg.Zombies + g.cfg.Holes + 1
	if area := g.cfg.InteriorArea(); area <= need {
		return fmt.Errorf("%w: %d interior cells for %d zombies, %d holes and the player",
			ErrBoardTooSmall, area, g.cfg.Zombies, g.cfg.Holes)
	}

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.state = StateSetup
	g.outcome = OutcomeContinue
	g.turns = 0

	grid := newGrid(g.cfg.Board.Width, g.cfg.Board.Height)

	zombies := make([]Zombie, 0, g.cfg.Zombies)
	for i := 0; i < g.cfg.Zombies; i++ {
		p, err := grid.RandomEmpty(g.rng)
		if err != nil {
			return fmt.Errorf("zombies: placing zombie: %w", err)
		}
		grid.Set(p, CellZombie)
		zombies = append(zombies, Zombie{Pos: p})
	}

	for i := 0; i < g.cfg.Holes; i++ {
		p, err := grid.RandomEmpty(g.rng)
		if err != nil {
			return fmt.Errorf("zombies: placing hole: %w", err)
		}
		grid.Set(p, CellHole)
	}

	p, err := grid.RandomEmpty(g.rng)
	if err != nil {
		return fmt.Errorf("zombies: placing player: %w", err)
	}
	grid.Set(p, CellPlayer)

	g.board = board{grid: grid, player: Player{Pos: p}, zombies: zombies}
	g.state = StatePlaying
	return nil
}

// Apply performs one action and returns its outcome.
//
// Movement actions run a full turn. Teleport moves the player to a random
// empty cell and then lets the zombies react. Quit loses immediately.
// Unrecognized actions change nothing. Once the game is won or lost every
// action returns the final outcome unchanged.
func (g *Game) Apply(action core.Action) Outcome {
	if g.state != StatePlaying {
		return g.outcome
	}

	var out Outcome
	switch action {
	case core.ActionQuit:
		out = OutcomeLose
	case core.ActionTeleport:
		out = g.teleport()
		g.turns++
	default:
		delta, ok := action.Delta()
		if !ok {
			return OutcomeContinue
		}
		out = g.board.resolveTurn(delta)
		g.turns++
	}

	g.outcome = out
	switch out {
	case OutcomeWin:
		g.state = StateWon
	case OutcomeLose:
		g.state = StateLost
	}
	return out
}

// teleport relocates the player without the usual legality check, then runs
// the zombies' half of a turn.
func (g *Game) teleport() Outcome {
	b := &g.board
	b.grid.Set(b.player.Pos, CellEmpty)
	// The player's own cell was just freed, so this cannot fail.
	if p, err := b.grid.RandomEmpty(g.rng); err == nil {
		b.player.Pos = p
	}
	b.grid.Set(b.player.Pos, CellPlayer)
	return b.resolveTurn(core.Point{})
}

// State returns the lifecycle stage.
func (g *Game) State() State {
	return g.state
}

// Outcome returns the outcome of the most recent action.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Turns returns the number of turns consumed so far.
func (g *Game) Turns() int {
	return g.turns
}

// Player returns the player's position.
func (g *Game) Player() core.Point {
	return g.board.player.Pos
}

// Zombies returns a copy of the roster in turn order.
func (g *Game) Zombies() []Zombie {
	out := make([]Zombie, len(g.board.zombies))
	copy(out, g.board.zombies)
	return out
}

// Alive returns the number of zombies still on the board.
func (g *Game) Alive() int {
	return g.board.alive()
}

// Rows returns a row-major snapshot of the board. It is nil before Reset.
func (g *Game) Rows() [][]Cell {
	if g.board.grid == nil {
		return nil
	}
	return g.board.grid.Rows()
}

// Config returns the setup parameters the game was created with.
func (g *Game) Config() config.ZombiesConfig {
	return g.cfg
}
