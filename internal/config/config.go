// Package config provides YAML-based configuration loading for snake.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// SnakeConfig contains everything configurable from YAML.
type SnakeConfig struct {
	Board         BoardConfig `yaml:"board"`
	Speed         string      `yaml:"speed"`
	Theme         string      `yaml:"theme"`
	SpawnAttempts int         `yaml:"spawn_attempts"`
}

// BoardConfig defines the playfield. A zero width or height is filled in
// from the terminal size at startup.
type BoardConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	InitialLength int `yaml:"initial_length"`
}

// Validate checks every field without touching the board size fallback.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 0 {
		return fmt.Errorf("config: board.width must not be negative, got %d", c.Board.Width)
	}
	if c.Board.Height < 0 {
		return fmt.Errorf("config: board.height must not be negative, got %d", c.Board.Height)
	}
	if c.Board.InitialLength < snake.MinInitialLength || c.Board.InitialLength > snake.MaxInitialLength {
		return fmt.Errorf("config: board.initial_length must be between %d and %d, got %d",
			snake.MinInitialLength, snake.MaxInitialLength, c.Board.InitialLength)
	}
	if c.SpawnAttempts < 0 {
		return fmt.Errorf("config: spawn_attempts must not be negative, got %d", c.SpawnAttempts)
	}
	if _, err := c.Engine(); err != nil {
		return err
	}
	return nil
}

// Engine resolves the speed and theme names into engine settings.
func (c SnakeConfig) Engine() (snake.Config, error) {
	speed, err := snake.ParseSpeedTier(c.Speed)
	if err != nil {
		return snake.Config{}, fmt.Errorf("config: %w", err)
	}
	idx, err := theme.IndexOf(c.Theme)
	if err != nil {
		return snake.Config{}, fmt.Errorf("config: %w", err)
	}
	return snake.Config{Speed: speed, Theme: idx}, nil
}

// FitBoard fills a zero board dimension from the available terminal cells.
// The board is drawn inside a border with a status line and a help line below it.
func (c *SnakeConfig) FitBoard(termW, termH int) {
	if c.Board.Width == 0 {
		c.Board.Width = max(termW-2, c.Board.InitialLength+1)
	}
	if c.Board.Height == 0 {
		c.Board.Height = max(termH-4, 1)
	}
}

// Override replaces the speed and theme names when they are non-empty.
// Command line flags use it on top of the loaded file.
func (c *SnakeConfig) Override(speed, themeName string) {
	if speed != "" {
		c.Speed = speed
	}
	if themeName != "" {
		c.Theme = themeName
	}
}
