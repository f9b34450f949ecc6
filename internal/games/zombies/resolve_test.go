package zombies

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-zombies/internal/core"
)

func mustLayout(t *testing.T, rows ...string) *Game {
	t.Helper()
	g, err := FromLayout(rows, 1)
	if err != nil {
		t.Fatalf("FromLayout() failed: %v", err)
	}
	return g
}

func assertLayout(t *testing.T, g *Game, expected ...string) {
	t.Helper()
	got := g.Layout()
	if strings.Join(got, "\n") != strings.Join(expected, "\n") {
		t.Errorf("board mismatch\ngot:\n%s\nexpected:\n%s",
			strings.Join(got, "\n"), strings.Join(expected, "\n"))
	}
}

func TestPlayerMoveThenZombieStep(t *testing.T) {
	g := mustLayout(t,
		"#######",
		"#@....#",
		"#.....#",
		"#....Z#",
		"#######",
	)

	if out := g.Apply(core.ActionRight); out != OutcomeContinue {
		t.Fatalf("Apply() = %v, expected continue", out)
	}

	assertLayout(t, g,
		"#######",
		"#.@...#",
		"#...Z.#",
		"#.....#",
		"#######",
	)
	if g.Player() != core.Pt(2, 1) {
		t.Errorf("Player() = %v, expected (2,1)", g.Player())
	}
	if z := g.Zombies()[0]; z.Pos != core.Pt(4, 2) {
		t.Errorf("zombie at %v, expected (4,2)", z.Pos)
	}
}

func TestBlockedMoveIsFullNoOp(t *testing.T) {
	layout := []string{
		"#######",
		"#@O...#",
		"#Z....#",
		"#....Z#",
		"#######",
	}

	tests := []struct {
		name   string
		action core.Action
	}{
		{"into top border", core.ActionUp},
		{"into left border", core.ActionLeft},
		{"into corner", core.ActionUpLeft},
		{"into hole", core.ActionRight},
		{"into zombie", core.ActionDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustLayout(t, layout...)

			if out := g.Apply(tc.action); out != OutcomeContinue {
				t.Errorf("Apply() = %v, expected continue", out)
			}
			if g.Player() != core.Pt(1, 1) {
				t.Errorf("Player() = %v, expected (1,1)", g.Player())
			}
			// No zombie moved either
			assertLayout(t, g, layout...)
			if g.State() != StatePlaying {
				t.Errorf("State() = %v, expected playing", g.State())
			}
		})
	}
}

func TestStayStillMovesZombies(t *testing.T) {
	g := mustLayout(t,
		"#######",
		"#Z....#",
		"#.....#",
		"#....@#",
		"#######",
	)

	g.Apply(core.ActionStay)

	assertLayout(t, g,
		"#######",
		"#.....#",
		"#.Z...#",
		"#....@#",
		"#######",
	)
}

func TestCatchLoses(t *testing.T) {
	g := mustLayout(t,
		"#####",
		"#Z..#",
		"#.@.#",
		"#...#",
		"#####",
	)
	prior := g.Player()

	if out := g.Apply(core.ActionStay); out != OutcomeLose {
		t.Fatalf("Apply() = %v, expected lose", out)
	}
	if g.State() != StateLost {
		t.Errorf("State() = %v, expected lost", g.State())
	}
	if z := g.Zombies()[0]; z.Pos != prior {
		t.Errorf("zombie at %v, expected the player's cell %v", z.Pos, prior)
	}
	assertLayout(t, g,
		"#####",
		"#...#",
		"#.Z.#",
		"#...#",
		"#####",
	)
}

func TestCatchStopsRemainingZombies(t *testing.T) {
	g := mustLayout(t,
		"#######",
		"#Z....#",
		"#.@...#",
		"#.....#",
		"#....Z#",
		"#######",
	)

	if out := g.Apply(core.ActionStay); out != OutcomeLose {
		t.Fatalf("Apply() = %v, expected lose", out)
	}
	// The second zombie never got its step
	if z := g.Zombies()[1]; z.Pos != core.Pt(5, 4) {
		t.Errorf("second zombie at %v, expected (5,4)", z.Pos)
	}
}

func TestAllZombiesIntoHolesWins(t *testing.T) {
	g := mustLayout(t,
		"#######",
		"#Z...Z#",
		"#.O.O.#",
		"#..@..#",
		"#######",
	)

	if out := g.Apply(core.ActionStay); out != OutcomeWin {
		t.Fatalf("Apply() = %v, expected win", out)
	}
	if g.State() != StateWon {
		t.Errorf("State() = %v, expected won", g.State())
	}
	if g.Alive() != 0 {
		t.Errorf("Alive() = %d, expected 0", g.Alive())
	}
	// Holes are used up by the zombies that fell in
	assertLayout(t, g,
		"#######",
		"#.....#",
		"#.....#",
		"#..@..#",
		"#######",
	)
}

func TestDeadZombieKeepsStalePosition(t *testing.T) {
	g := mustLayout(t,
		"########",
		"#Z.....#",
		"#.O....#",
		"#...@..#",
		"#.....Z#",
		"########",
	)

	if out := g.Apply(core.ActionStay); out != OutcomeContinue {
		t.Fatalf("Apply() = %v, expected continue", out)
	}

	z := g.Zombies()[0]
	if !z.Dead {
		t.Fatal("first zombie should have fallen into the hole")
	}
	if z.Pos != core.Pt(1, 1) {
		t.Errorf("dead zombie position = %v, expected stale (1,1)", z.Pos)
	}
	if g.Alive() != 1 {
		t.Errorf("Alive() = %d, expected 1", g.Alive())
	}
}

func TestCollisionTieBreakFollowsRosterOrder(t *testing.T) {
	g := mustLayout(t,
		"#######",
		"#Z.Z..#",
		"#.....#",
		"#.....#",
		"#.@...#",
		"#######",
	)

	if out := g.Apply(core.ActionStay); out != OutcomeContinue {
		t.Fatalf("Apply() = %v, expected continue", out)
	}

	// Both aim at (2,2); the first in reading order gets it
	assertLayout(t, g,
		"#######",
		"#..Z..#",
		"#.Z...#",
		"#.....#",
		"#.@...#",
		"#######",
	)
	zs := g.Zombies()
	if zs[0].Pos != core.Pt(2, 2) {
		t.Errorf("first zombie at %v, expected (2,2)", zs[0].Pos)
	}
	if zs[1].Pos != core.Pt(3, 1) {
		t.Errorf("second zombie at %v, expected to stay at (3,1)", zs[1].Pos)
	}
}

func TestLaterZombieSeesEarlierMoves(t *testing.T) {
	g := mustLayout(t,
		"#######",
		"#.Z...#",
		"#.Z...#",
		"#.....#",
		"#.....#",
		"#.@...#",
		"#######",
	)

	g.Apply(core.ActionStay)

	// The rear zombie is blocked by the front one, which only moves afterwards
	assertLayout(t, g,
		"#######",
		"#.Z...#",
		"#.....#",
		"#.Z...#",
		"#.....#",
		"#.@...#",
		"#######",
	)
}

func TestZombieBlockedByWallStaysPut(t *testing.T) {
	layout := []string{
		"######",
		"#Z...#",
		"#.#..#",
		"#..@.#",
		"######",
	}
	g := mustLayout(t, layout...)

	if out := g.Apply(core.ActionStay); out != OutcomeContinue {
		t.Fatalf("Apply() = %v, expected continue", out)
	}

	assertLayout(t, g, layout...)
	if z := g.Zombies()[0]; z.Dead || z.Pos != core.Pt(1, 1) {
		t.Errorf("zombie = %+v, expected alive at (1,1)", z)
	}
	if n := g.board.grid.Count(CellZombie); n != g.Alive() {
		t.Errorf("%d zombie cells for %d live zombies", n, g.Alive())
	}
}

func TestZombieMissingFromGridIsSkipped(t *testing.T) {
	g := mustLayout(t,
		"######",
		"#Z...#",
		"#....#",
		"#..@.#",
		"######",
	)
	g.board.grid.Set(core.Pt(1, 1), CellEmpty)

	g.Apply(core.ActionStay)

	if n := g.board.grid.Count(CellZombie); n != 0 {
		t.Errorf("Count(zombie) = %d, expected 0", n)
	}
	if z := g.Zombies()[0]; z.Pos != core.Pt(1, 1) {
		t.Errorf("zombie moved to %v", z.Pos)
	}
}
