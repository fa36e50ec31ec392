// Package core provides the board geometry and drawing primitives shared by the
// snake engine and the terminal front end. It has no external dependencies so
// the game logic stays pure and testable.
package core

import "fmt"

// Position is a cell on the board, in grid coordinates.
type Position struct {
	X, Y int // Column and row
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the neighbouring cell one step in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four movement directions. The values are ordered so
// that opposite directions are exactly two apart modulo 4.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// directionCount is the size of the direction domain.
const directionCount = 4

var (
	deltaX = [directionCount]int{0, 1, 0, -1}
	deltaY = [directionCount]int{-1, 0, 1, 0}
)

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Delta returns the unit step for d. Invalid directions yield (0, 0).
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltaX[d], deltaY[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

// IsAxisChange reports whether a and b lie on different axes, i.e. a turn from
// one to the other is perpendicular.
func IsAxisChange(a, b Direction) bool {
	return a%2 != b%2
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Grid is the immutable board geometry measured in cells.
type Grid struct {
	width  int
	height int
}

// NewGrid returns a grid of the given size. Callers validate the dimensions.
func NewGrid(width, height int) Grid {
	return Grid{width: width, height: height}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Area returns the total number of cells.
func (g Grid) Area() int {
	return g.width * g.height
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Rect is an axis-aligned area of the screen, used for layout.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
