package lifecycle

import "github.com/vovakirdan/waitroom/internal/core"

// Status is the lifecycle state.
type Status uint8

const (
	StatusMenu Status = iota
	StatusReady
	StatusCountdown
	StatusPlaying
	StatusGameOver
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusReady:
		return "ready"
	case StatusCountdown:
		return "countdown"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Session is what the presentation layer sees of the lifecycle.
type Session struct {
	Game      core.GameKind
	Status    Status
	Countdown *int // nil outside the countdown
	Score     int
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	if s.Countdown != nil {
		n := *s.Countdown
		s.Countdown = &n
	}
	return s
}

// Equal reports whether two sessions show the same thing.
func (s Session) Equal(o Session) bool {
	if s.Game != o.Game || s.Status != o.Status || s.Score != o.Score {
		return false
	}
	if (s.Countdown == nil) != (o.Countdown == nil) {
		return false
	}
	return s.Countdown == nil || *s.Countdown == *o.Countdown
}

// Snapshot is published to subscribers after every change and every tick.
type Snapshot struct {
	Session Session
	Frame   core.DrawList // Last drawn frame; shared, never modified
	Bounds  core.Bounds
}

// Active reports whether input should be routed to the game for this status.
func (s Status) Active() bool {
	return s == StatusReady || s == StatusCountdown || s == StatusPlaying
}
