package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Body      []core.Position // Head first
	Apple     core.Position
	Score     int
	State     GameState
	Round     int
	Direction core.Direction
	Config    Config
}

// Head returns the first body segment.
func (s Snapshot) Head() core.Position {
	if len(s.Body) == 0 {
		return core.Position{}
	}
	return s.Body[0]
}

// Snapshot returns the current state. The body is a copy.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Body:      e.snake.Body(),
		Apple:     e.apple,
		Score:     e.score,
		State:     e.State(),
		Round:     e.round,
		Direction: e.snake.Direction(),
		Config:    e.cfg,
	}
}

// DebugState returns a multi-line description of the engine, for logs and tests.
func (e *Engine) DebugState() string {
	s := e.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Round: %d, State: %s, Score: %d\n", s.Round, s.State, s.Score)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Buffered: %s\n", len(s.Body), s.Direction, e.snake.NextDirection())
	fmt.Fprintf(&b, "Head: %s, Apple: %s\n", s.Head(), s.Apple)
	return b.String()
}
