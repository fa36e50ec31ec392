// Package tui hosts the snake engine in a Bubble Tea program, locally or
// over SSH. It owns the tick schedule, key mapping, drawing and settings.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the engine by one step. Gen identifies
// the tick loop that scheduled it; ticks from a stale loop are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules the next tick of loop gen after interval.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
