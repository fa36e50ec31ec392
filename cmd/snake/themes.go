package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List colour themes",
	Long:  `Shows every colour theme with a sample of the snake and apple.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := theme.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range themes {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxNameLen, "Name", "Title", "Sample")
	fmt.Printf("  %-*s  %-12s  %s\n", maxNameLen, "----", "-----", "------")

	for _, t := range themes {
		fmt.Printf("  %-*s  %-12s  %s\n", maxNameLen, t.Name, t.Title, sample(t))
	}

	fmt.Println()
	fmt.Println("Run 'snake play --theme <name>' or press O in game to switch.")
}

// sample draws a short snake chasing an apple in the theme's colours.
func sample(t theme.Theme) string {
	paint := func(c core.Color, s string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color(c))).Render(s)
	}
	return paint(core.ColorSnakeBody, "oooo") + paint(core.ColorSnakeHead, "@") + "  " + paint(core.ColorApple, "*")
}
