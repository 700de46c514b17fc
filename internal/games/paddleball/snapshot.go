package paddleball

import "github.com/vovakirdan/waitroom/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Ball   core.Vec
	Vel    core.Vec
	Paddle float64
	Score  int
	Over   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Ball:   g.ball,
		Vel:    g.vel,
		Paddle: g.paddle,
		Score:  g.score,
		Over:   g.over,
	}
}
