package main

import (
	"fmt"
	"os"
	"time"

	"github.com/vovakirdan/tui-zombies/internal/config"
	"github.com/vovakirdan/tui-zombies/internal/core"
	"github.com/vovakirdan/tui-zombies/internal/games/zombies"
)

// newGame loads the configuration and sets up a board.
// Errors are reported to stderr and terminate the process.
func newGame(width, height int) (*zombies.Game, int64) {
	cfg, err := config.LoadZombies(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	}

	game := zombies.New(cfg)
	if err := game.Reset(rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return game, seed
}
