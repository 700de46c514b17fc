package core

// Action represents a semantic input, abstracted from physical key presses.
// This allows the arbiter to work with high-level intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow
	ActionDown           // Down arrow
	ActionLeft           // Left arrow
	ActionRight          // Right arrow
	ActionJump           // Space
	ActionConfirm        // Enter
	ActionBack           // B, Escape - return to menu
	ActionRetry          // R - retry after game over
	ActionHistory        // Y - transition history
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRetry:
		return "Retry"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps arrow actions to a grid direction.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return Direction{}, false
}

// Cue is a discrete game event the platform may turn into sound.
type Cue uint8

const (
	CueJump Cue = iota + 1
	CueEat
	CueBounce
	CueCountdown
	CueGo
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueEat:
		return "eat"
	case CueBounce:
		return "bounce"
	case CueCountdown:
		return "countdown"
	case CueGo:
		return "go"
	case CueGameOver:
		return "game-over"
	default:
		return "none"
	}
}
