package zombies

import (
	"errors"

	"github.com/vovakirdan/tui-zombies/internal/core"
)

// Cell is the occupant tag of one grid position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBorder
	CellHole
	CellPlayer
	CellZombie
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBorder:
		return "border"
	case CellHole:
		return "hole"
	case CellPlayer:
		return "player"
	case CellZombie:
		return "zombie"
	default:
		return "unknown"
	}
}

// ErrNoEmptyCell is returned when a random empty cell is requested but the
// interior has none left.
var ErrNoEmptyCell = errors.New("zombies: no empty interior cell")

// Rand is the random source the grid draws cells from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Grid is the game board as a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
// The outer ring is painted with CellBorder at construction and never changes,
// so any step off an interior cell lands on a border instead of out of bounds.
type Grid struct {
	w, h  int
	cells []Cell
}

// newGrid creates a grid with a border ring and an empty interior.
// Callers guarantee w, h >= 3.
func newGrid(w, h int) *Grid {
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
	for x := 0; x < w; x++ {
		g.Set(core.Pt(x, 0), CellBorder)
		g.Set(core.Pt(x, h-1), CellBorder)
	}
	for y := 0; y < h; y++ {
		g.Set(core.Pt(0, y), CellBorder)
		g.Set(core.Pt(w-1, y), CellBorder)
	}
	return g
}

// Width returns the grid width, border included.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height, border included.
func (g *Grid) Height() int { return g.h }

func (g *Grid) index(p core.Point) int {
	return p.Y*g.w + p.X
}

// InBounds returns true if p lies on the grid.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// Interior returns true if p lies inside the border ring.
func (g *Grid) Interior(p core.Point) bool {
	return p.X >= 1 && p.X < g.w-1 && p.Y >= 1 && p.Y < g.h-1
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p core.Point) Cell {
	return g.cells[g.index(p)]
}

// Set overwrites the cell at p. p must be in bounds.
func (g *Grid) Set(p core.Point, c Cell) {
	g.cells[g.index(p)] = c
}

// Count returns the number of cells holding c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// emptyInterior reports whether at least one interior cell is empty.
// The border is never empty, so scanning the whole buffer is enough.
func (g *Grid) emptyInterior() bool {
	for _, cell := range g.cells {
		if cell == CellEmpty {
			return true
		}
	}
	return false
}

// RandomEmpty draws interior coordinates uniformly until it hits an empty
// cell. It fails with ErrNoEmptyCell rather than looping forever on a full
// interior.
func (g *Grid) RandomEmpty(rng Rand) (core.Point, error) {
	if !g.emptyInterior() {
		return core.Point{}, ErrNoEmptyCell
	}
	for {
		p := core.Pt(1+rng.Intn(g.w-2), 1+rng.Intn(g.h-2))
		if g.At(p) == CellEmpty {
			return p, nil
		}
	}
}

// Rows returns a row-major copy of the grid for rendering.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.h)
	for y := range rows {
		row := make([]Cell, g.w)
		copy(row, g.cells[y*g.w:(y+1)*g.w])
		rows[y] = row
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}
