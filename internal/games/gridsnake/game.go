// Package gridsnake implements the classic snake on a fixed square grid.
//
// Direction changes are buffered: Steer writes the next direction and a
// one-shot guard, and Tick commits it at the start of the following step.
// This keeps at most one turn per tick and rules out 180° reversals.
package gridsnake

import (
	"math/rand"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/frame"
	"github.com/vovakirdan/waitroom/internal/registry"
)

// startLen is the number of segments a new snake has.
const startLen = 3

// Game implements the Grid-Snake simulation.
type Game struct {
	cfg     config.SnakeConfig
	palette config.Palette

	body    []core.Point // Head at index 0
	dir     core.Direction
	next    core.Direction // Buffered intent, committed at the next tick
	steered bool           // A turn is already buffered for the pending tick
	food    core.Point
	score   int
	over    bool
	rng     *rand.Rand
	tick    uint64
}

// New creates a Grid-Snake game from configuration.
func New(cfg config.Config) *Game {
	g := &Game{
		cfg:     cfg.Snake,
		palette: cfg.Theme.Palette(),
	}
	g.Reset(0)
	return g
}

func init() {
	registry.Register(core.GameGridSnake, func(cfg config.Config) registry.Game {
		return New(cfg)
	})
}

// Kind returns the game tag.
func (g *Game) Kind() core.GameKind { return core.GameGridSnake }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Icon returns the menu glyph.
func (g *Game) Icon() string { return "🐍" }

// Rules returns the ready-screen instructions.
func (g *Game) Rules() string {
	return "Use [Arrow Keys] to move. Eat the apples, avoid the walls and yourself!"
}

// Cadence ticks on a fixed interval, independent of the display.
func (g *Game) Cadence() frame.Cadence {
	return frame.Cadence{Fixed: g.cfg.Tick}
}

// Reset restores the canonical start: three segments heading right from the
// centre and food at three quarters of the board, which on the default 20×20
// grid is body (10,10),(9,10),(8,10) and food (15,15).
func (g *Game) Reset(seed int64) {
	n := g.cfg.Grid
	g.rng = rand.New(rand.NewSource(seed))
	g.body = g.body[:0]
	for i := range startLen {
		g.body = append(g.body, core.Point{X: n/2 - i, Y: n / 2})
	}
	g.dir = core.DirRight
	g.next = core.DirRight
	g.steered = false
	g.food = core.Point{X: n * 3 / 4, Y: n * 3 / 4}
	g.score = 0
	g.over = false
	g.tick = 0
}

// Steer buffers a turn for the next tick. It is rejected when a turn is
// already buffered or when d lies on the current axis.
func (g *Game) Steer(d core.Direction) bool {
	if g.over || g.steered || d.Collinear(g.dir) {
		return false
	}
	g.next = d
	g.steered = true
	return true
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Head returns the head cell.
func (g *Game) Head() core.Point {
	return g.body[0]
}

// Len returns the number of segments.
func (g *Game) Len() int {
	return len(g.body)
}

// Direction returns the committed direction.
func (g *Game) Direction() core.Direction {
	return g.dir
}

// Food returns the food cell.
func (g *Game) Food() core.Point {
	return g.food
}

// Tick commits the buffered direction and moves one cell.
func (g *Game) Tick(b core.Bounds) core.TickResult {
	if g.over || b.W <= 0 || b.H <= 0 {
		return core.TickResult{Score: g.score, Terminal: g.over}
	}
	g.tick++

	g.dir = g.next
	g.steered = false

	head := g.body[0].Add(g.dir)
	if !head.In(g.cfg.Grid, g.cfg.Grid) {
		return g.end()
	}

	eating := head == g.food

	// Tail leaves before the self test, so following the tail is legal.
	g.body = append(g.body, core.Point{})
	copy(g.body[1:], g.body)
	g.body[0] = head
	if !eating {
		g.body = g.body[:len(g.body)-1]
	}

	for _, seg := range g.body[1:] {
		if seg == head {
			return g.end()
		}
	}

	var cues []core.Cue
	if eating {
		g.score += g.cfg.FoodScore
		g.placeFood()
		cues = append(cues, core.CueEat)
	}

	return core.TickResult{Score: g.score, Frame: g.draw(b), Cues: cues}
}

func (g *Game) end() core.TickResult {
	g.over = true
	return core.TickResult{Score: g.score, Terminal: true, Cues: []core.Cue{core.CueGameOver}}
}

// placeFood picks uniformly random cells until one is free. After
// FoodAttempts misses the last candidate is kept even if occupied.
func (g *Game) placeFood() {
	var c core.Point
	for i := 0; i < max(g.cfg.FoodAttempts, 1); i++ {
		c = core.Point{X: g.rng.Intn(g.cfg.Grid), Y: g.rng.Intn(g.cfg.Grid)}
		if !g.occupied(c) {
			break
		}
	}
	g.food = c
}

func (g *Game) occupied(p core.Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}
