package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-zombies/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a starting board and exit",
	Long: `Generate a starting board with the effective configuration and print it.

With --seed the same board is printed every time, which is handy for
checking a custom config before playing it.

Examples:
  zombies board --seed 7
  zombies board --config ./small.yaml`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	game, seed := newGame(0, 0)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed: %d\n", seed)
	fmt.Fprintln(out, tui.RenderBoard(game.Rows(), game.Config().Glyphs))
	fmt.Fprintln(out, tui.StatusLine(game))
}
