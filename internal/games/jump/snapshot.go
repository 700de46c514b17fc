package jump

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Y         float64
	VY        float64
	Obstacles int
	Raw       int
	Score     int
	Over      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Y:         g.y,
		VY:        g.vy,
		Obstacles: g.obstacles.Len(),
		Raw:       g.raw,
		Score:     g.Score(),
		Over:      g.over,
	}
}
