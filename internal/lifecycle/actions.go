package lifecycle

import (
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/frame"
	"github.com/vovakirdan/waitroom/internal/registry"
)

// SelectGame fully reinitialises the session around kind and moves to ready.
// It is accepted from menu, ready and game-over; during a countdown or a
// running game, and for unknown kinds, it does nothing and returns false.
func (c *Controller) SelectGame(kind core.GameKind) bool {
	if c.session.Status == StatusCountdown || c.session.Status == StatusPlaying {
		return false
	}
	game, err := registry.Create(kind, c.cfg)
	if err != nil {
		c.log.Debug("ignoring selection", "game", kind, "error", err)
		return false
	}

	c.sched.CancelAll()
	game.Reset(c.seed())
	c.game = game
	c.frame = nil
	c.countdown = 0
	c.session = Session{Game: kind, Status: c.session.Status}
	c.transition(StatusReady)
	c.Rescale()
	c.publish()
	return true
}

// Start begins the countdown. Only valid from ready.
func (c *Controller) Start() bool {
	if c.session.Status != StatusReady || c.game == nil {
		return false
	}
	c.countdown = c.cfg.Countdown.Start
	if c.countdown <= 0 {
		c.beginPlaying()
		return true
	}

	c.setCountdown(c.countdown)
	c.transition(StatusCountdown)
	c.play(core.CueCountdown)
	c.sched.RequestAfter(frame.TopicCountdown, c.cfg.Countdown.Step)
	c.publish()
	return true
}

// Retry restarts the same game after a game over.
func (c *Controller) Retry() bool {
	if c.session.Status != StatusGameOver {
		return false
	}
	return c.SelectGame(c.session.Game)
}

// ReturnToMenu drops the active game from any state.
func (c *Controller) ReturnToMenu() {
	c.sched.CancelAll()
	c.game = nil
	c.frame = nil
	c.countdown = 0
	c.session.Countdown = nil
	c.session.Score = 0
	if c.session.Status != StatusMenu {
		c.transition(StatusMenu)
	}
	c.session.Game = core.GameNone
	c.publish()
}

// Deliver runs a fired scheduler request. Stale requests are dropped.
func (c *Controller) Deliver(r frame.Request) {
	if !c.sched.Fire(r) {
		return
	}
	switch r.Topic {
	case frame.TopicCountdown:
		c.stepCountdown()
	case frame.TopicSimulation:
		c.tick()
	}
}

func (c *Controller) setCountdown(n int) {
	c.session.Countdown = &n
}

func (c *Controller) stepCountdown() {
	if c.session.Status != StatusCountdown {
		return
	}
	c.countdown--
	if c.countdown > 0 {
		c.setCountdown(c.countdown)
		c.play(core.CueCountdown)
		c.sched.RequestAfter(frame.TopicCountdown, c.cfg.Countdown.Step)
		c.publish()
		return
	}
	c.beginPlaying()
}

func (c *Controller) beginPlaying() {
	c.session.Countdown = nil
	c.transition(StatusPlaying)
	// The surface may have changed since the game was selected.
	c.Rescale()
	c.play(core.CueGo)
	c.sched.Next(frame.TopicSimulation, c.game.Cadence())
	c.publish()
}

func (c *Controller) tick() {
	if c.session.Status != StatusPlaying || c.game == nil {
		return
	}
	if !c.mounted && !c.Rescale() {
		// Surface not mounted yet; try again next time.
		c.sched.Next(frame.TopicSimulation, c.game.Cadence())
		return
	}

	res := c.game.Tick(c.bounds)
	c.session.Score = res.Score
	if res.Frame != nil {
		c.frame = res.Frame
	}
	c.play(res.Cues...)

	if res.Terminal {
		c.endGame()
		return
	}
	c.sched.Next(frame.TopicSimulation, c.game.Cadence())
	c.publish()
}

func (c *Controller) endGame() {
	// Nothing may tick once the status has left playing.
	c.sched.Cancel(frame.TopicSimulation)
	c.transition(StatusGameOver)
	c.log.Info("game over", "game", c.session.Game, "score", c.session.Score)
	c.publish()
}
