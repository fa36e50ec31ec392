// snake is the classic snake game for the terminal, played locally or
// served over SSH.
//
// Usage:
//
//	snake play      - Play in this terminal
//	snake serve     - Start SSH server for remote play
//	snake themes    - List colour themes
//	snake config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Config file (default: ~/.snake/snake.yaml, ./configs/snake.yaml)
//	--speed <tier>    - easy, normal or hard
//	--theme <name>    - Colour theme
//	--seed <value>    - Set RNG seed for reproducible apple placement
//	--log <path>      - Write logs to a file
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSpeed    string
	flagTheme    string
	flagSeed     int64
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game: steer the snake to the apple, grow, and
don't run into the walls or yourself.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  themes   - List colour themes
  config   - Print the effective configuration

Examples:
  snake play
  snake play --speed hard --theme ocean
  snake serve --ssh :2222
  snake config > ~/.snake/snake.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed tier: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Colour theme (see 'snake themes')")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the command line overrides.
func loadConfig() (config.SnakeConfig, string, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	cfg.Override(flagSpeed, flagTheme)
	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// newLogger creates a logger writing to the --log file, or to fallback when
// no file is set. The returned closer releases the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() error { return nil }
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
