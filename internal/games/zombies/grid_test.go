package zombies

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-zombies/internal/core"
)

// scriptedRand replays a fixed sequence of Intn results.
type scriptedRand struct {
	values []int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func TestNewGridBorder(t *testing.T) {
	g := newGrid(5, 4)

	if g.Width() != 5 || g.Height() != 4 {
		t.Fatalf("expected 5x4 grid, got %dx%d", g.Width(), g.Height())
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := core.Pt(x, y)
			expected := CellEmpty
			if !g.Interior(p) {
				expected = CellBorder
			}
			if g.At(p) != expected {
				t.Errorf("At(%v) = %v, expected %v", p, g.At(p), expected)
			}
		}
	}

	if n := g.Count(CellBorder); n != 14 {
		t.Errorf("Count(border) = %d, expected 14", n)
	}
	if n := g.Count(CellEmpty); n != 6 {
		t.Errorf("Count(empty) = %d, expected 6", n)
	}
}

func TestGridInteriorAndBounds(t *testing.T) {
	g := newGrid(4, 4)

	testCases := []struct {
		p        core.Point
		inBounds bool
		interior bool
	}{
		{core.Pt(0, 0), true, false},
		{core.Pt(1, 1), true, true},
		{core.Pt(2, 2), true, true},
		{core.Pt(3, 2), true, false},
		{core.Pt(2, 3), true, false},
		{core.Pt(-1, 1), false, false},
		{core.Pt(4, 1), false, false},
	}

	for _, tc := range testCases {
		if g.InBounds(tc.p) != tc.inBounds {
			t.Errorf("InBounds(%v) = %v, expected %v", tc.p, g.InBounds(tc.p), tc.inBounds)
		}
		if g.Interior(tc.p) != tc.interior {
			t.Errorf("Interior(%v) = %v, expected %v", tc.p, g.Interior(tc.p), tc.interior)
		}
	}
}

func TestRandomEmptyRejectsOccupied(t *testing.T) {
	g := newGrid(5, 5)
	g.Set(core.Pt(1, 1), CellHole)

	// First draw lands on the hole at (1,1), second on (2,3)
	rng := &scriptedRand{values: []int{0, 0, 1, 2}}
	p, err := g.RandomEmpty(rng)
	if err != nil {
		t.Fatalf("RandomEmpty() failed: %v", err)
	}
	if p != core.Pt(2, 3) {
		t.Errorf("RandomEmpty() = %v, expected (2,3)", p)
	}
}

func TestRandomEmptyStaysInterior(t *testing.T) {
	g := newGrid(6, 5)
	g.Set(core.Pt(2, 2), CellZombie)
	g.Set(core.Pt(3, 3), CellHole)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		p, err := g.RandomEmpty(rng)
		if err != nil {
			t.Fatalf("RandomEmpty() failed: %v", err)
		}
		if !g.Interior(p) {
			t.Fatalf("RandomEmpty() = %v, outside the interior", p)
		}
		if g.At(p) != CellEmpty {
			t.Fatalf("RandomEmpty() = %v holding %v", p, g.At(p))
		}
	}
}

func TestRandomEmptyFullInterior(t *testing.T) {
	g := newGrid(4, 3)
	g.Set(core.Pt(1, 1), CellZombie)
	g.Set(core.Pt(2, 1), CellHole)

	_, err := g.RandomEmpty(rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoEmptyCell) {
		t.Errorf("RandomEmpty() error = %v, expected ErrNoEmptyCell", err)
	}
}

func TestGridRowsIsCopy(t *testing.T) {
	g := newGrid(3, 3)
	rows := g.Rows()

	if len(rows) != 3 || len(rows[0]) != 3 {
		t.Fatalf("Rows() has shape %dx%d, expected 3x3", len(rows[0]), len(rows))
	}
	if rows[1][1] != CellEmpty {
		t.Errorf("rows[1][1] = %v, expected empty", rows[1][1])
	}

	rows[1][1] = CellZombie
	if g.At(core.Pt(1, 1)) != CellEmpty {
		t.Error("modifying Rows() result changed the grid")
	}

	clone := g.Clone()
	clone.Set(core.Pt(1, 1), CellHole)
	if g.At(core.Pt(1, 1)) != CellEmpty {
		t.Error("modifying a clone changed the original grid")
	}
}
