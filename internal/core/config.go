package core

// GameKind tags which simulation a session runs.
type GameKind string

const (
	GameNone       GameKind = ""
	GameJump       GameKind = "jump"
	GameGridSnake  GameKind = "grid-snake"
	GamePaddleBall GameKind = "paddle-ball"
)

// Kinds lists the playable games in menu order.
func Kinds() []GameKind {
	return []GameKind{GameJump, GameGridSnake, GamePaddleBall}
}

// ParseGameKind accepts the canonical id or a short alias.
func ParseGameKind(s string) (GameKind, bool) {
	switch s {
	case "jump", "dino":
		return GameJump, true
	case "grid-snake", "snake":
		return GameGridSnake, true
	case "paddle-ball", "paddle":
		return GamePaddleBall, true
	}
	return GameNone, false
}

func (k GameKind) String() string {
	if k == GameNone {
		return "none"
	}
	return string(k)
}

// TickResult is returned by a simulation after each tick.
type TickResult struct {
	Score    int      // Displayed score after this tick
	Terminal bool     // A terminal collision ended the run; no state changed after it
	Frame    DrawList // Draw instructions for this tick; nil when nothing was drawn
	Cues     []Cue    // Discrete events that happened during the tick
}
