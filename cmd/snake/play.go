package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer (the first key starts the round)
  Esc/P        - Pause
  O            - Settings (speed, theme)
  ?            - Help
  Ctrl+S       - Screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Speed options:
  easy   - One step every 50ms
  normal - One step every 40ms
  hard   - One step every 30ms

Examples:
  snake play
  snake play --speed hard
  snake play --seed 42 --log snake.log --log-level debug
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs would corrupt the game screen, so they only go to a file.
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	logger.Debug("config loaded", "source", source)

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed

	err = tui.Run(tui.Options{
		Config: cfg,
		Term:   rc,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
