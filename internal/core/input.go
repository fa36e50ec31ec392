package core

// Action is a semantic input, abstracted from physical key presses so the
// host can bind any key to it.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow, W, K
	ActionRight           // Right arrow, D, L
	ActionDown            // Down arrow, S, J
	ActionLeft            // Left arrow, A, H
	ActionPause           // Esc, P
	ActionSettings        // O, Ctrl+O
	ActionHelp            // ?
	ActionQuit            // Q, Ctrl+C
)

// Direction returns the movement direction for a directional action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionRight:
		return Right, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	default:
		return 0, false
	}
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionPause:
		return "Pause"
	case ActionSettings:
		return "Settings"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
