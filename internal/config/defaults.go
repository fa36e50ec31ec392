package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			InitialLength: 3,
		},
		Speed:         snake.SpeedNormal.String(),
		Theme:         "classic",
		SpawnAttempts: snake.DefaultSpawnAttempts,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
