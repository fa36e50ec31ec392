package snake

import (
	"errors"
	"fmt"
)

var (
	// ErrBoardFull is returned by the spawner when no free cell is left for an apple.
	ErrBoardFull = errors.New("snake: board full")

	// ErrNotPlaying is returned by Tick outside the Playing state.
	ErrNotPlaying = errors.New("snake: engine is not playing")

	// ErrInvalidTransition is returned when an operation is not allowed in the current state.
	ErrInvalidTransition = errors.New("snake: invalid state transition")
)

// ConfigError reports an invalid construction or settings parameter.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("snake: invalid config %s=%v: %s", e.Field, e.Value, e.Reason)
}
