// Package config provides YAML-based game configuration loading for the
// zombies game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// ZombiesConfig contains all setup parameters for a zombies game.
// Values are read once at startup and never change during a game.
type ZombiesConfig struct {
	Board   BoardConfig `yaml:"board"`
	Zombies int         `yaml:"zombies"` // Size of the zombie roster
	Holes   int         `yaml:"holes"`   // Number of holes placed at setup
	Glyphs  GlyphSet    `yaml:"glyphs"`  // "emoji" or "ascii"
}

// BoardConfig defines the board dimensions, border ring included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GlyphSet names the set of characters the terminal renderer draws cells with.
type GlyphSet string

const (
	GlyphsEmoji GlyphSet = "emoji"
	GlyphsASCII GlyphSet = "ascii"
)

// MinBoardSize is the smallest width or height that still leaves an interior.
const MinBoardSize = 3

// Validate checks field ranges. Whether the interior can actually hold every
// zombie, hole and the player is decided by the game at setup.
func (c ZombiesConfig) Validate() error {
	if c.Board.Width < MinBoardSize || c.Board.Height < MinBoardSize {
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			ErrInvalid, MinBoardSize, MinBoardSize, c.Board.Width, c.Board.Height)
	}
	if c.Zombies < 1 {
		return fmt.Errorf("%w: zombies must be at least 1, got %d", ErrInvalid, c.Zombies)
	}
	if c.Holes < 0 {
		return fmt.Errorf("%w: holes must not be negative, got %d", ErrInvalid, c.Holes)
	}
	switch c.Glyphs {
	case GlyphsEmoji, GlyphsASCII:
	default:
		return fmt.Errorf("%w: unknown glyph set %q (want %q or %q)",
			ErrInvalid, c.Glyphs, GlyphsEmoji, GlyphsASCII)
	}
	return nil
}

// InteriorArea returns the number of cells inside the border ring.
func (c ZombiesConfig) InteriorArea() int {
	return (c.Board.Width - 2) * (c.Board.Height - 2)
}
