package zombies

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-zombies/internal/config"
	"github.com/vovakirdan/tui-zombies/internal/core"
)

// ErrInvalidLayout is returned (wrapped) by FromLayout for malformed layouts.
var ErrInvalidLayout = errors.New("zombies: invalid layout")

// Layout characters, one per cell.
const (
	LayoutEmpty  = '.'
	LayoutBorder = '#'
	LayoutHole   = 'O'
	LayoutPlayer = '@'
	LayoutZombie = 'Z'
)

var layoutCells = map[rune]Cell{
	LayoutEmpty:  CellEmpty,
	LayoutBorder: CellBorder,
	LayoutHole:   CellHole,
	LayoutPlayer: CellPlayer,
	LayoutZombie: CellZombie,
}

var cellLayout = map[Cell]rune{
	CellEmpty:  LayoutEmpty,
	CellBorder: LayoutBorder,
	CellHole:   LayoutHole,
	CellPlayer: LayoutPlayer,
	CellZombie: LayoutZombie,
}

// FromLayout builds a game in the playing state from a hand-drawn board.
// The outer ring must be all '#'; '#' inside the ring acts as a wall.
// The roster follows reading order (top to bottom, left to right).
// seed drives teleport destinations.
//
//	#######
//	#Z...O#
//	#..@..#
//	#######
func FromLayout(rows []string, seed int64) (*Game, error) {
	h := len(rows)
	if h < config.MinBoardSize {
		return nil, fmt.Errorf("%w: need at least %d rows, got %d", ErrInvalidLayout, config.MinBoardSize, h)
	}
	w := len([]rune(rows[0]))
	if w < config.MinBoardSize {
		return nil, fmt.Errorf("%w: need at least %d columns, got %d", ErrInvalidLayout, config.MinBoardSize, w)
	}

	grid := newGrid(w, h)
	var zombies []Zombie
	var player Player
	players, holes := 0, 0

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidLayout, y, len(runes), w)
		}
		for x, r := range runes {
			p := core.Pt(x, y)
			cell, ok := layoutCells[r]
			if !ok {
				return nil, fmt.Errorf("%w: unknown character %q at %v", ErrInvalidLayout, r, p)
			}
			if !grid.Interior(p) {
				if cell != CellBorder {
					return nil, fmt.Errorf("%w: border broken at %v", ErrInvalidLayout, p)
				}
				continue
			}
			grid.Set(p, cell)
			switch cell {
			case CellZombie:
				zombies = append(zombies, Zombie{Pos: p})
			case CellPlayer:
				player.Pos = p
				players++
			case CellHole:
				holes++
			}
		}
	}

	if players != 1 {
		return nil, fmt.Errorf("%w: expected exactly one player, got %d", ErrInvalidLayout, players)
	}
	if len(zombies) == 0 {
		return nil, fmt.Errorf("%w: no zombies", ErrInvalidLayout)
	}

	return &Game{
		cfg: config.ZombiesConfig{
			Board:   config.BoardConfig{Width: w, Height: h},
			Zombies: len(zombies),
			Holes:   holes,
			Glyphs:  config.GlyphsASCII,
		},
		rng:   rand.New(rand.NewSource(seed)),
		board: board{grid: grid, player: player, zombies: zombies},
		state: StatePlaying,
	}, nil
}

// Layout returns the board in FromLayout notation.
func (g *Game) Layout() []string {
	rows := g.Rows()
	out := make([]string, len(rows))
	var sb strings.Builder
	for y, row := range rows {
		sb.Reset()
		for _, cell := range row {
			sb.WriteRune(cellLayout[cell])
		}
		out[y] = sb.String()
	}
	return out
}
