package zombies

import "github.com/vovakirdan/tui-zombies/internal/core"

// Player is the single human-controlled piece.
type Player struct {
	Pos core.Point
}

// Zombie is one member of the pursuing roster.
// A dead zombie keeps its last position, which no longer matches the grid.
type Zombie struct {
	Pos  core.Point
	Dead bool
}
