package gridsnake

import "github.com/vovakirdan/waitroom/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick  uint64
	Score int
	Len   int
	Head  core.Point
	Dir   core.Direction
	Food  core.Point
	Over  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Len:   len(g.body),
		Head:  g.body[0],
		Dir:   g.dir,
		Food:  g.food,
		Over:  g.over,
	}
}
