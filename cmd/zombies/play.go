package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-zombies/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on a freshly generated board.

Controls:
  q w e
  a s d    - Move in eight directions (s stays put)
  z x c
  Arrows   - Move up, down, left, right
  t        - Teleport to a random empty cell
  ?        - Toggle full help
  Ctrl+C   - Give up (counts as a loss)

Examples:
  zombies play
  zombies play --seed 42
  zombies play --log-file zombies.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger = logger.With("session", uuid.NewString())

	// Get terminal size early so a board that cannot fit is reported up front
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, seed := newGame(width, height)
	logger.Info("game started",
		"seed", seed,
		"width", game.Config().Board.Width,
		"height", game.Config().Board.Height,
		"zombies", game.Config().Zombies,
		"holes", game.Config().Holes,
	)

	needW, needH := tui.RequiredSize(game.Config())
	if width < needW || height < needH {
		logger.Warn("terminal smaller than the board",
			"width", width, "height", height,
			"need_width", needW, "need_height", needH)
	}

	outcome, err := tui.Run(game, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen is gone; leave the final board in the scrollback
	fmt.Println(tui.Header)
	fmt.Println(tui.RenderBoard(game.Rows(), game.Config().Glyphs))
	fmt.Println(tui.StatusLine(game))
	if msg := tui.OutcomeMessage(outcome); msg != "" {
		fmt.Println(msg)
	}
}
