package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the ordered body plus the applied and buffered directions.
type Snake struct {
	// Stored tail first so that moving the head is an append and cutting the
	// tail is a reslice, both amortized O(1).
	cells    []core.Position
	occupied map[core.Position]struct{}
	dir      core.Direction // Applied on the next move
	ndir     core.Direction // Requested by input, committed at the next tick
}

// NewSnake lays out a straight snake of the given length with its head at
// head, trailing away from dir.
func NewSnake(head core.Position, length int, dir core.Direction) *Snake {
	back := dir.Opposite()
	body := make([]core.Position, 0, length)
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	s, err := NewSnakeFromBody(body, dir)
	if err != nil {
		// A straight line never overlaps itself.
		panic(err)
	}
	return s
}

// NewSnakeFromBody builds a snake from an explicit head-first body.
func NewSnakeFromBody(body []core.Position, dir core.Direction) (*Snake, error) {
	if len(body) == 0 {
		return nil, &ConfigError{Field: "body", Value: 0, Reason: "snake needs at least one segment"}
	}
	if !dir.Valid() {
		return nil, &ConfigError{Field: "direction", Value: int(dir), Reason: "unknown direction"}
	}

	s := &Snake{
		cells:    make([]core.Position, 0, len(body)+8),
		occupied: make(map[core.Position]struct{}, len(body)),
		dir:      dir,
		ndir:     dir,
	}
	for i := len(body) - 1; i >= 0; i-- {
		p := body[i]
		if _, dup := s.occupied[p]; dup {
			return nil, &ConfigError{Field: "body", Value: p, Reason: fmt.Sprintf("segment %d overlaps another", i)}
		}
		s.cells = append(s.cells, p)
		s.occupied[p] = struct{}{}
	}
	return s, nil
}

// Head returns the first segment.
func (s *Snake) Head() core.Position {
	return s.cells[len(s.cells)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.cells)
}

// Contains reports whether a segment occupies p.
func (s *Snake) Contains(p core.Position) bool {
	_, ok := s.occupied[p]
	return ok
}

// Body returns a head-first copy of the segments.
func (s *Snake) Body() []core.Position {
	body := make([]core.Position, len(s.cells))
	for i, p := range s.cells {
		body[len(s.cells)-1-i] = p
	}
	return body
}

// Direction returns the direction currently being applied.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// NextDirection returns the buffered direction.
func (s *Snake) NextDirection() core.Direction {
	return s.ndir
}

// NextHead returns where the head moves on the next step. It does not mutate.
func (s *Snake) NextHead() core.Position {
	return s.Head().Add(s.dir)
}

// MoveHead prepends p as the new head.
func (s *Snake) MoveHead(p core.Position) {
	s.cells = append(s.cells, p)
	s.occupied[p] = struct{}{}
}

// CutTail drops the last segment. A single-segment snake is left alone.
func (s *Snake) CutTail() {
	if len(s.cells) <= 1 {
		return
	}
	tail := s.cells[0]
	s.cells = s.cells[1:]
	// The head may have just moved onto the old tail cell.
	if s.Head() != tail {
		delete(s.occupied, tail)
	}
}

// SetNextDirection buffers d for the next tick. While playing only
// perpendicular turns are accepted; while stopped anything but a reversal of
// the current direction is. Rejected and invalid requests return false.
func (s *Snake) SetNextDirection(d core.Direction, playing bool) bool {
	if !d.Valid() {
		return false
	}
	if playing {
		if !core.IsAxisChange(d, s.dir) {
			return false
		}
	} else if d == s.dir.Opposite() {
		return false
	}
	s.ndir = d
	return true
}

// commitDirection applies the buffered direction.
func (s *Snake) commitDirection() {
	s.dir = s.ndir
}
