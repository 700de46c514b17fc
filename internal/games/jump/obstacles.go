package jump

// Obstacle is a ground obstacle the player must clear.
type Obstacle struct {
	X float64 // Left edge
	W float64
	H float64
}

// Obstacles is the FIFO of live obstacles, oldest first.
type Obstacles struct {
	items []Obstacle
}

// Reset removes every obstacle.
func (o *Obstacles) Reset() {
	o.items = o.items[:0]
}

// Spawn appends an obstacle at the right edge.
func (o *Obstacles) Spawn(x, w, h float64) {
	o.items = append(o.items, Obstacle{X: x, W: w, H: h})
}

// Advance moves every obstacle left and drops those at or past cullX.
func (o *Obstacles) Advance(speed, cullX float64) {
	kept := o.items[:0]
	for _, it := range o.items {
		it.X -= speed
		if it.X > cullX {
			kept = append(kept, it)
		}
	}
	o.items = kept
}

// Hits reports whether any obstacle inside the (minX, maxX) window is taller
// than the player's clearance. y is the player's offset from the ground
// (negative = up).
func (o *Obstacles) Hits(minX, maxX, y, clearance float64) bool {
	for _, it := range o.items {
		if it.X > minX && it.X < maxX && y > clearance-it.H {
			return true
		}
	}
	return false
}

// All returns the live obstacles. The slice must not be modified.
func (o *Obstacles) All() []Obstacle {
	return o.items
}

// Len returns the number of live obstacles.
func (o *Obstacles) Len() int {
	return len(o.items)
}
