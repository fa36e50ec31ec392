package core

// Color is a foreground colour for a screen cell, resolved to a terminal
// colour by the active theme at render time.
type Color uint8

// Semantic colour roles. The renderer maps each role to a concrete terminal
// colour from the current theme, so switching themes never touches the board.
const (
	ColorDefault Color = iota
	ColorBorder
	ColorSnakeBody
	ColorSnakeHead
	ColorApple
	ColorText
	ColorMuted
	ColorHighlight
)
