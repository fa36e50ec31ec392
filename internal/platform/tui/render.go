package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// Board glyphs.
const (
	headRune  = '@'
	bodyRune  = 'o'
	appleRune = '*'
)

// Styles holds the lipgloss styles for one theme and one output.
type Styles struct {
	cells  map[core.Color]lipgloss.Style
	Status lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles builds styles for t. Over SSH each session has its own renderer
// so colour support is detected per client.
func NewStyles(r *lipgloss.Renderer, t theme.Theme) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	st := Styles{cells: make(map[core.Color]lipgloss.Style)}
	for role, color := range t.Palette {
		st.cells[role] = r.NewStyle().Foreground(lipgloss.Color(color))
	}
	st.cells[core.ColorDefault] = r.NewStyle()
	if head, ok := st.cells[core.ColorSnakeHead]; ok {
		st.cells[core.ColorSnakeHead] = head.Bold(true)
	}
	st.Status = st.style(core.ColorText)
	st.Muted = st.style(core.ColorMuted)
	return st
}

func (st Styles) style(c core.Color) lipgloss.Style {
	if s, ok := st.cells[c]; ok {
		return s
	}
	return st.cells[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, st Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(st.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// boardSize returns the screen cells needed to draw grid with its border.
func boardSize(grid core.Grid) (w, h int) {
	return grid.Width() + 2, grid.Height() + 2
}

// DrawBoard draws the border, apple and snake. Board cell (x, y) lands on
// screen cell (x+1, y+1).
func DrawBoard(s *core.Screen, grid core.Grid, snap snake.Snapshot) {
	w, h := boardSize(grid)
	s.Resize(w, h)
	s.Clear()
	s.DrawBox(core.NewRect(0, 0, w, h), core.ColorBorder)

	s.SetCell(snap.Apple.X+1, snap.Apple.Y+1, appleRune, core.ColorApple)
	for i := len(snap.Body) - 1; i > 0; i-- {
		p := snap.Body[i]
		s.SetCell(p.X+1, p.Y+1, bodyRune, core.ColorSnakeBody)
	}
	if len(snap.Body) > 0 {
		head := snap.Head()
		s.SetCell(head.X+1, head.Y+1, headRune, core.ColorSnakeHead)
	}
}
