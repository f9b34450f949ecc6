package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-zombies/internal/config"
	"github.com/vovakirdan/tui-zombies/internal/games/zombies"
)

// Header is drawn above the board.
const Header = "Zombies: use qwe|asd|zxc to move and t to teleport"

// glyphSets maps each cell to the text drawn for it.
// Emoji glyphs are two columns wide; ASCII glyphs are padded to match.
var glyphSets = map[config.GlyphSet]map[zombies.Cell]string{
	config.GlyphsEmoji: {
		zombies.CellEmpty:  "🟫",
		zombies.CellBorder: "🟩",
		zombies.CellHole:   "🟣",
		zombies.CellPlayer: "😀",
		zombies.CellZombie: "🧟",
	},
	config.GlyphsASCII: {
		zombies.CellEmpty:  ". ",
		zombies.CellBorder: "# ",
		zombies.CellHole:   "O ",
		zombies.CellPlayer: "@ ",
		zombies.CellZombie: "Z ",
	},
}

// cellStyles colors ASCII glyphs. Emoji carry their own colors.
var cellStyles = map[zombies.Cell]lipgloss.Style{
	zombies.CellEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	zombies.CellBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	zombies.CellHole:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	zombies.CellPlayer: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	zombies.CellZombie: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	loseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// cellWidth is the number of terminal columns one cell occupies.
const cellWidth = 2

// chromeLines is the number of lines drawn around the board
// (header, status line, help line).
const chromeLines = 3

// RequiredSize returns the terminal size needed to draw a board.
func RequiredSize(cfg config.ZombiesConfig) (width, height int) {
	width = cfg.Board.Width * cellWidth
	if w := len(Header); w > width {
		width = w
	}
	return width, cfg.Board.Height + chromeLines
}

// RenderBoard converts board rows to a string for display.
// Groups adjacent cells of the same kind to minimize ANSI escape sequences.
func RenderBoard(rows [][]zombies.Cell, glyphs config.GlyphSet) string {
	set, ok := glyphSets[glyphs]
	if !ok {
		set = glyphSets[config.GlyphsASCII]
	}
	styled := glyphs != config.GlyphsEmoji

	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(row) {
			start := row[x]

			var run strings.Builder
			for x < len(row) && row[x] == start {
				run.WriteString(set[start])
				x++
			}

			if styled {
				sb.WriteString(cellStyles[start].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

// StatusLine summarizes the game below the board.
func StatusLine(g *zombies.Game) string {
	return statusStyle.Render(fmt.Sprintf("Turn %d  Zombies left %d/%d",
		g.Turns(), g.Alive(), len(g.Zombies())))
}

// OutcomeMessage returns the closing message for a finished game, or an
// empty string while it is still running.
func OutcomeMessage(out zombies.Outcome) string {
	switch out {
	case zombies.OutcomeWin:
		return winStyle.Render("You win!")
	case zombies.OutcomeLose:
		return loseStyle.Render("You lose!")
	default:
		return ""
	}
}
