package zombies

import "github.com/vovakirdan/tui-zombies/internal/core"

// Outcome is the result of one resolved turn.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal returns true if the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeLose
}

// board is the aggregate a turn mutates. The grid is authoritative for
// occupancy; player and zombie positions are caches of it.
type board struct {
	grid    *Grid
	player  Player
	zombies []Zombie
}

// resolveTurn moves the player by delta, then lets every zombie take one step
// in roster order.
//
// A non-zero delta onto anything but an empty cell is rejected and the whole
// turn is a no-op, zombies included. A zero delta always succeeds.
func (b *board) resolveTurn(delta core.Point) Outcome {
	target := b.player.Pos.Add(delta)
	if !delta.IsZero() && b.grid.At(target) != CellEmpty {
		return OutcomeContinue
	}

	b.grid.Set(b.player.Pos, CellEmpty)
	b.grid.Set(target, CellPlayer)
	b.player.Pos = target

	// Zombies move one at a time against the live grid, so a later zombie
	// sees the cells earlier ones just entered or vacated.
	for i := range b.zombies {
		if b.advanceZombie(&b.zombies[i]) {
			return OutcomeLose
		}
	}

	if b.allDead() {
		return OutcomeWin
	}
	return OutcomeContinue
}

// advanceZombie steps one zombie toward the player and returns true if it
// caught them.
func (b *board) advanceZombie(z *Zombie) bool {
	if z.Dead || b.grid.At(z.Pos) != CellZombie {
		return false
	}

	b.grid.Set(z.Pos, CellEmpty)
	dest := z.Pos.Add(z.Pos.StepToward(b.player.Pos))

	switch b.grid.At(dest) {
	case CellEmpty:
		b.grid.Set(dest, CellZombie)
		z.Pos = dest
	case CellHole:
		// The hole is used up: nothing is drawn there afterwards.
		b.grid.Set(dest, CellEmpty)
		z.Dead = true
	case CellPlayer:
		b.grid.Set(dest, CellZombie)
		z.Pos = dest
		return true
	default:
		// Another zombie (or a border) is in the way: stay put.
		b.grid.Set(z.Pos, CellZombie)
	}
	return false
}

func (b *board) allDead() bool {
	for _, z := range b.zombies {
		if !z.Dead {
			return false
		}
	}
	return true
}

func (b *board) alive() int {
	n := 0
	for _, z := range b.zombies {
		if !z.Dead {
			n++
		}
	}
	return n
}
