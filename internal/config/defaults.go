package config

import (
	_ "embed"
)

//go:embed defaults/zombies.yaml
var defaultZombiesYAML []byte

// DefaultZombiesConfig returns the default zombies configuration.
func DefaultZombiesConfig() ZombiesConfig {
	return ZombiesConfig{
		Board: BoardConfig{
			Width:  40,
			Height: 40,
		},
		Zombies: 10,
		Holes:   40,
		Glyphs:  GlyphsEmoji,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultZombiesYAML
}
