// Package input routes key and pointer events to the active game.
//
// The arbiter only listens while the session is ready, counting down or
// playing. While a game runs it swallows the arrow keys and the space bar
// even when the game rejects them, so the host never scrolls underneath.
package input

import (
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/lifecycle"
	"github.com/vovakirdan/waitroom/internal/registry"
)

// Target is the part of the lifecycle controller the arbiter drives.
type Target interface {
	Game() registry.Game
	Bounds() core.Bounds
	Start() bool
}

// Result reports what happened to an event.
type Result struct {
	Consumed bool // The host must not handle the event itself
	Accepted bool // The event changed the session or the game
}

// Arbiter routes events by lifecycle status.
type Arbiter struct {
	keys   KeyMap
	target Target
	audio  lifecycle.Player
	status lifecycle.Status
	active bool
}

// New creates an arbiter. It stays inactive until the first Sync.
func New(t Target, keys KeyMap, p lifecycle.Player) *Arbiter {
	return &Arbiter{keys: keys, target: t, audio: p}
}

// Sync registers or deregisters the arbiter for a status change.
// It is meant to be passed to Controller.Subscribe.
func (a *Arbiter) Sync(s lifecycle.Snapshot) {
	a.status = s.Session.Status
	a.active = a.status.Active()
}

// Active reports whether events are being routed.
func (a *Arbiter) Active() bool {
	return a.active
}

// Key handles a key by name.
func (a *Arbiter) Key(name string) Result {
	if !a.active {
		return Result{}
	}
	action := a.keys.Action(name)

	switch a.status {
	case lifecycle.StatusReady:
		if action == core.ActionJump || action == core.ActionConfirm {
			return Result{Consumed: true, Accepted: a.target.Start()}
		}
	case lifecycle.StatusCountdown:
		if _, ok := action.Direction(); ok || action == core.ActionJump {
			return Result{Consumed: true}
		}
	case lifecycle.StatusPlaying:
		if d, ok := action.Direction(); ok {
			return Result{Consumed: true, Accepted: a.steer(d)}
		}
		if action == core.ActionJump {
			return Result{Consumed: true, Accepted: a.jump()}
		}
	}
	return Result{}
}

// Pointer handles a horizontal pointer position in logical units.
func (a *Arbiter) Pointer(x float64) Result {
	if !a.active || a.status != lifecycle.StatusPlaying {
		return Result{}
	}
	p, ok := a.target.Game().(registry.Pointer)
	if !ok {
		return Result{}
	}
	p.Point(x, a.target.Bounds())
	return Result{Consumed: true, Accepted: true}
}

func (a *Arbiter) steer(d core.Direction) bool {
	s, ok := a.target.Game().(registry.Steerer)
	return ok && s.Steer(d)
}

func (a *Arbiter) jump() bool {
	j, ok := a.target.Game().(registry.Jumper)
	if !ok || !j.Jump() {
		return false
	}
	if a.audio != nil {
		a.audio.Play(core.CueJump)
	}
	return true
}
