// Package lifecycle owns the session state machine
// (menu → ready → countdown → playing → game-over), the active simulation
// and its schedule.
//
// A Controller is not safe for concurrent use. Every call, including
// Deliver for fired timers, must come from the same goroutine (the Bubble
// Tea update loop). Other goroutines observe it through Subscribe.
package lifecycle

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/frame"
	"github.com/vovakirdan/waitroom/internal/registry"
	"github.com/vovakirdan/waitroom/internal/scale"
)

// Player plays sound cues.
type Player interface {
	Play(c core.Cue)
}

// Recorder stores status transitions.
type Recorder interface {
	Record(game, from, to string, at time.Time) error
}

// Deps are the optional collaborators of a Controller.
type Deps struct {
	Logger   *log.Logger
	Audio    Player
	Recorder Recorder
	Seed     func() int64 // Seed for each fresh simulation; defaults to the clock
}

// Controller drives one session.
type Controller struct {
	cfg   config.Config
	sched *frame.Scheduler
	log   *log.Logger
	audio Player
	rec   Recorder
	seed  func() int64

	session   Session
	countdown int
	game      registry.Game

	element scale.Element
	bounds  core.Bounds
	mounted bool
	frame   core.DrawList

	listeners []func(Snapshot)
}

// New creates a controller in the menu state.
func New(cfg config.Config, deps Deps) *Controller {
	c := &Controller{
		cfg:   cfg,
		sched: frame.NewScheduler(),
		log:   deps.Logger,
		audio: deps.Audio,
		rec:   deps.Recorder,
		seed:  deps.Seed,
	}
	if c.log == nil {
		c.log = log.New(io.Discard)
	}
	if c.seed == nil {
		c.seed = func() int64 { return time.Now().UnixNano() }
	}
	c.session = Session{Game: core.GameNone, Status: StatusMenu}
	return c
}

// Scheduler returns the scheduler the platform drains.
func (c *Controller) Scheduler() *frame.Scheduler {
	return c.sched
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session.Clone()
}

// Game returns the active simulation, or nil in the menu.
func (c *Controller) Game() registry.Game {
	return c.game
}

// Frame returns the last drawn frame.
func (c *Controller) Frame() core.DrawList {
	return c.frame
}

// Bounds returns the logical bounds of the attached surface.
func (c *Controller) Bounds() core.Bounds {
	return c.bounds
}

// Config returns the configuration in effect.
func (c *Controller) Config() config.Config {
	return c.cfg
}

// SetConfig replaces the configuration. It takes effect at the next game
// selection, which rebuilds the simulation.
func (c *Controller) SetConfig(cfg config.Config) {
	c.cfg = cfg
}

// Subscribe registers fn to receive a snapshot after every change.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.listeners = append(c.listeners, fn)
}

// Snapshot returns what subscribers were last sent.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Session: c.Session(), Frame: c.frame, Bounds: c.bounds}
}

func (c *Controller) publish() {
	s := c.Snapshot()
	for _, fn := range c.listeners {
		fn(s)
	}
}

// Attach sets the drawing surface and scales it.
func (c *Controller) Attach(el scale.Element) {
	c.element = el
	c.Rescale()
}

// Rescale re-measures the surface. It reports false while no surface is
// mounted; ticks are skipped until it succeeds.
func (c *Controller) Rescale() bool {
	c.bounds, c.mounted = scale.Setup(c.element)
	return c.mounted
}

func (c *Controller) transition(to Status) {
	from := c.session.Status
	c.session.Status = to
	c.log.Debug("transition", "game", c.session.Game, "from", from, "to", to)
	if c.rec != nil {
		if err := c.rec.Record(c.session.Game.String(), from.String(), to.String(), time.Now()); err != nil {
			c.log.Warn("could not record transition", "error", err)
		}
	}
}

func (c *Controller) play(cues ...core.Cue) {
	if c.audio == nil {
		return
	}
	for _, cue := range cues {
		c.audio.Play(cue)
	}
}
