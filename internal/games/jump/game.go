// Package jump implements a side-scrolling jump-avoidance game.
// The player stands on the ground line and jumps over obstacles that
// scroll in from the right.
package jump

import (
	"math/rand"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/frame"
	"github.com/vovakirdan/waitroom/internal/registry"
)

// Game implements the Jump simulation.
type Game struct {
	cfg     config.JumpConfig
	palette config.Palette

	y         float64 // Vertical offset from the ground (negative = up)
	vy        float64 // Vertical velocity
	obstacles *Obstacles
	raw       int // Ticks survived
	over      bool
	rng       *rand.Rand
	tick      uint64
}

// New creates a Jump game from configuration.
func New(cfg config.Config) *Game {
	g := &Game{
		cfg:       cfg.Jump,
		palette:   cfg.Theme.Palette(),
		obstacles: &Obstacles{},
	}
	g.Reset(0)
	return g
}

func init() {
	registry.Register(core.GameJump, func(cfg config.Config) registry.Game {
		return New(cfg)
	})
}

// Kind returns the game tag.
func (g *Game) Kind() core.GameKind { return core.GameJump }

// Title returns the display name.
func (g *Game) Title() string { return "Dino Jump" }

// Icon returns the menu glyph.
func (g *Game) Icon() string { return "🦖" }

// Rules returns the ready-screen instructions.
func (g *Game) Rules() string {
	return "Press [Space] to jump over obstacles. Don't touch the cacti!"
}

// Cadence ticks once per display refresh.
func (g *Game) Cadence() frame.Cadence { return frame.Cadence{} }

// Reset puts the player on the ground and clears all obstacles.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.y = 0
	g.vy = 0
	g.raw = 0
	g.over = false
	g.tick = 0
	g.obstacles.Reset()
}

// Grounded reports whether the player is standing on the ground.
func (g *Game) Grounded() bool {
	return g.y == 0 && g.vy == 0
}

// Height returns how far above the ground the player is. Never negative.
func (g *Game) Height() float64 {
	return -g.y
}

// Jump applies the upward impulse when the player is grounded.
func (g *Game) Jump() bool {
	if g.over || !g.Grounded() {
		return false
	}
	g.vy = g.cfg.Impulse
	return true
}

// Score returns the displayed score.
func (g *Game) Score() int {
	return g.raw / max(g.cfg.ScoreDivisor, 1)
}

// Tick advances physics, obstacles and collision by one step.
func (g *Game) Tick(b core.Bounds) core.TickResult {
	if g.over || b.W <= 0 || b.H <= 0 {
		return core.TickResult{Score: g.Score(), Terminal: g.over}
	}
	g.tick++

	// Gravity, then landing.
	g.vy += g.cfg.Gravity
	g.y += g.vy
	if g.y > 0 {
		g.y = 0
		g.vy = 0
	}

	if g.rng.Float64() < g.cfg.SpawnChance {
		g.obstacles.Spawn(b.W, g.cfg.ObstacleWidth, g.cfg.ObstacleHeight)
	}
	g.obstacles.Advance(g.cfg.Speed, g.cfg.CullX)

	if g.obstacles.Hits(g.cfg.HitMinX, g.cfg.HitMaxX, g.y, g.cfg.Clearance) {
		g.over = true
		return core.TickResult{Score: g.Score(), Terminal: true, Cues: []core.Cue{core.CueGameOver}}
	}

	g.raw++
	return core.TickResult{Score: g.Score(), Frame: g.draw(b)}
}

func (g *Game) ground(b core.Bounds) float64 {
	return b.H - g.cfg.GroundOffset
}

func (g *Game) draw(b core.Bounds) core.DrawList {
	ground := g.ground(b)
	var l core.DrawList

	l.Clear(b.Rect())
	l.Line(core.Vec{X: 0, Y: ground}, core.Vec{X: b.W, Y: ground}, core.Stroke{Color: g.palette.Ink, Width: 2})

	glyph := core.Font{Size: g.cfg.GlyphSize, Color: g.palette.Ink, Align: core.AlignCenter}
	l.Text(g.cfg.PlayerGlyph, core.Vec{X: g.cfg.PlayerX, Y: ground + g.y - 10}, glyph)

	glyph.Color = g.palette.Accent
	for _, o := range g.obstacles.All() {
		l.Text(g.cfg.ObstacleGlyph, core.Vec{X: o.X + o.W/2, Y: ground - 5}, glyph)
	}
	return l
}
