// Package paddleball implements a single-paddle ball game: keep the ball in
// play by moving the paddle under it with the pointer.
package paddleball

import (
	"math/rand"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/frame"
	"github.com/vovakirdan/waitroom/internal/registry"
)

// Layout constants measured from the bottom edge.
const (
	paddleTop    = 20 // Paddle top edge above the bottom
	labelRise    = 12 // Paddle label baseline above the bottom
	paddleRadius = 7
	ballSize     = 34
	labelSize    = 20
)

// Game implements the Paddle-Ball simulation.
type Game struct {
	cfg     config.PaddleConfig
	palette config.Palette

	ball   core.Vec
	vel    core.Vec
	paddle float64 // Left edge of the paddle
	score  int
	over   bool
	rng    *rand.Rand
	tick   uint64
}

// New creates a Paddle-Ball game from configuration.
func New(cfg config.Config) *Game {
	g := &Game{
		cfg:     cfg.Paddle,
		palette: cfg.Theme.Palette(),
	}
	g.Reset(0)
	return g
}

func init() {
	registry.Register(core.GamePaddleBall, func(cfg config.Config) registry.Game {
		return New(cfg)
	})
}

// Kind returns the game tag.
func (g *Game) Kind() core.GameKind { return core.GamePaddleBall }

// Title returns the display name.
func (g *Game) Title() string { return "Paddle Ball" }

// Icon returns the menu glyph.
func (g *Game) Icon() string { return "🎾" }

// Rules returns the ready-screen instructions.
func (g *Game) Rules() string {
	return "Move your mouse to control the paddle. Keep the ball in play!"
}

// Cadence ticks once per display refresh.
func (g *Game) Cadence() frame.Cadence { return frame.Cadence{} }

// Reset serves the ball from the canonical position.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.ball = core.Vec{X: g.cfg.BallX, Y: g.cfg.BallY}
	g.vel = core.Vec{X: g.cfg.BallDX, Y: g.cfg.BallDY}
	g.paddle = g.cfg.PaddleX
	g.score = 0
	g.over = false
	g.tick = 0
}

// Point moves the paddle so its centre follows the pointer, clamped to the
// surface. Applied immediately.
func (g *Game) Point(x float64, b core.Bounds) {
	if g.over {
		return
	}
	g.paddle = core.ClampF(x-g.cfg.PaddleWidth/2, 0, b.W-g.cfg.PaddleWidth)
}

// Paddle returns the paddle's left edge.
func (g *Game) Paddle() float64 {
	return g.paddle
}

// Ball returns the ball position.
func (g *Game) Ball() core.Vec {
	return g.ball
}

// Score returns the number of returns.
func (g *Game) Score() int {
	return g.score
}

// Tick moves the ball, resolves wall and paddle contact, and draws.
func (g *Game) Tick(b core.Bounds) core.TickResult {
	if g.over || b.W <= 0 || b.H <= 0 {
		return core.TickResult{Score: g.score, Terminal: g.over}
	}
	if g.ball.Y > b.H {
		return g.end()
	}
	g.tick++

	g.ball = g.ball.Add(g.vel)

	// Walls only reflect a ball still heading into them.
	m := g.cfg.WallMargin
	if (g.ball.X < m && g.vel.X < 0) || (g.ball.X > b.W-m && g.vel.X > 0) {
		g.vel.X = -g.vel.X
	}
	if g.ball.Y < m && g.vel.Y < 0 {
		g.vel.Y = -g.vel.Y
	}

	var cues []core.Cue
	if g.ball.Y > b.H-g.cfg.ZoneHeight {
		over := g.ball.X > g.paddle && g.ball.X < g.paddle+g.cfg.PaddleWidth
		switch {
		case over && g.vel.Y > 0:
			g.vel.Y = -g.vel.Y
			g.vel.X += (g.rng.Float64() - 0.5) * g.cfg.Jitter
			g.score++
			cues = append(cues, core.CueBounce)
		case g.ball.Y > b.H:
			return g.end()
		}
	}

	return core.TickResult{Score: g.score, Frame: g.draw(b), Cues: cues}
}

func (g *Game) end() core.TickResult {
	g.over = true
	return core.TickResult{Score: g.score, Terminal: true, Cues: []core.Cue{core.CueGameOver}}
}

func (g *Game) draw(b core.Bounds) core.DrawList {
	var l core.DrawList
	l.Clear(b.Rect())

	l.Text(g.cfg.BallGlyph, g.ball, core.Font{
		Size:     ballSize,
		Color:    g.palette.Ink,
		Align:    core.AlignCenter,
		Baseline: core.BaselineMiddle,
	})

	l.RoundedRect(core.RectF{
		X: g.paddle,
		Y: b.H - paddleTop,
		W: g.cfg.PaddleWidth,
		H: g.cfg.PaddleHeight,
	}, paddleRadius, core.Fill{
		Color:       g.palette.Accent,
		ShadowBlur:  g.cfg.ShadowBlur,
		ShadowColor: g.palette.Accent.WithAlpha(0.3),
	})

	l.Text(g.cfg.PaddleLabel, core.Vec{X: g.paddle + g.cfg.PaddleWidth/2, Y: b.H - labelRise}, core.Font{
		Size:     labelSize,
		Color:    core.ColorWhite,
		Align:    core.AlignCenter,
		Baseline: core.BaselineMiddle,
	})
	return l
}
