package zombies

import "github.com/vovakirdan/tui-zombies/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Turn    int
	State   State
	Outcome Outcome
	Player  core.Point
	Zombies []Zombie
	Alive   int
	Board   []string // FromLayout notation
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Turn:    g.turns,
		State:   g.state,
		Outcome: g.outcome,
		Player:  g.board.player.Pos,
		Zombies: g.Zombies(),
		Alive:   g.board.alive(),
		Board:   g.Layout(),
	}
}
