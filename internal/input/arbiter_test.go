package input

import (
	"testing"
	"time"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/draw/cells"
	"github.com/vovakirdan/waitroom/internal/frame"
	"github.com/vovakirdan/waitroom/internal/games/gridsnake"
	"github.com/vovakirdan/waitroom/internal/games/jump"
	"github.com/vovakirdan/waitroom/internal/games/paddleball"
	"github.com/vovakirdan/waitroom/internal/lifecycle"
)

type cueLog []core.Cue

func (l *cueLog) Play(c core.Cue) { *l = append(*l, c) }

func setup(t *testing.T, kind core.GameKind) (*lifecycle.Controller, *Arbiter, *cueLog) {
	t.Helper()
	ctl := lifecycle.New(config.Default(), lifecycle.Deps{Seed: func() int64 { return 3 }})
	surface := cells.New(500, 500)
	surface.SetArea(50, 25)
	ctl.Attach(surface)

	cues := &cueLog{}
	arb := New(ctl, DefaultKeyMap(), cues)
	ctl.Subscribe(arb.Sync)
	if kind != core.GameNone && !ctl.SelectGame(kind) {
		t.Fatalf("SelectGame(%s) failed", kind)
	}
	return ctl, arb, cues
}

func toPlaying(t *testing.T, ctl *lifecycle.Controller, arb *Arbiter) {
	t.Helper()
	if r := arb.Key("enter"); !r.Accepted {
		t.Fatalf("enter in ready = %+v", r)
	}
	frame.Pump(ctl.Scheduler(), time.Second/60, 3, ctl.Deliver)
	if s := ctl.Session().Status; s != lifecycle.StatusPlaying {
		t.Fatalf("status = %v, want playing", s)
	}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{" ", core.ActionJump},
		{"enter", core.ActionConfirm},
		{"esc", core.ActionBack},
		{"r", core.ActionRetry},
		{"y", core.ActionHistory},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.Action(tt.key); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestInactiveInMenu(t *testing.T) {
	_, arb, _ := setup(t, core.GameNone)
	if arb.Active() {
		t.Fatal("arbiter active before any game is selected")
	}
	for _, k := range []string{" ", "enter", "up"} {
		if r := arb.Key(k); r.Consumed || r.Accepted {
			t.Errorf("Key(%q) in menu = %+v", k, r)
		}
	}
}

func TestReadyStartsOnSpace(t *testing.T) {
	ctl, arb, _ := setup(t, core.GameJump)
	if !arb.Active() {
		t.Fatal("arbiter inactive in ready")
	}
	r := arb.Key(" ")
	if !r.Consumed || !r.Accepted {
		t.Fatalf("space in ready = %+v", r)
	}
	s := ctl.Session()
	if s.Status != lifecycle.StatusCountdown || s.Countdown == nil || *s.Countdown != 3 {
		t.Fatalf("session = %+v", s)
	}
}

func TestCountdownSwallowsGameKeys(t *testing.T) {
	ctl, arb, _ := setup(t, core.GameGridSnake)
	arb.Key("enter")
	g := ctl.Game().(*gridsnake.Game)

	for _, k := range []string{"up", "down", " "} {
		r := arb.Key(k)
		if !r.Consumed || r.Accepted {
			t.Errorf("Key(%q) during countdown = %+v", k, r)
		}
	}
	if g.Direction() != core.DirRight {
		t.Errorf("snake steered during countdown: %v", g.Direction())
	}
	if r := arb.Key("enter"); r.Consumed {
		t.Errorf("enter during countdown consumed: %+v", r)
	}
}

func TestJumpWhilePlaying(t *testing.T) {
	ctl, arb, cues := setup(t, core.GameJump)
	toPlaying(t, ctl, arb)
	g := ctl.Game().(*jump.Game)

	if r := arb.Key(" "); !r.Consumed || !r.Accepted {
		t.Fatalf("first jump = %+v", r)
	}
	if g.Grounded() {
		t.Fatal("player still grounded after an accepted jump")
	}
	// Airborne: rejected but still swallowed.
	if r := arb.Key(" "); !r.Consumed || r.Accepted {
		t.Fatalf("second jump = %+v", r)
	}
	if got := cues.count(core.CueJump); got != 1 {
		t.Fatalf("jump cues = %d, want 1", got)
	}
	// Arrows mean nothing to the jump game but are still swallowed.
	if r := arb.Key("down"); !r.Consumed || r.Accepted {
		t.Fatalf("down while jumping = %+v", r)
	}
}

func (l cueLog) count(c core.Cue) int {
	n := 0
	for _, x := range l {
		if x == c {
			n++
		}
	}
	return n
}

func TestSteerWhilePlaying(t *testing.T) {
	ctl, arb, _ := setup(t, core.GameGridSnake)
	toPlaying(t, ctl, arb)
	g := ctl.Game().(*gridsnake.Game)

	tests := []struct {
		key    string
		accept bool
	}{
		{"left", false},  // same axis
		{"up", true},     // turn
		{"right", false}, // one change per tick
		{"down", false},  // one change per tick
	}
	for _, tt := range tests {
		r := arb.Key(tt.key)
		if !r.Consumed || r.Accepted != tt.accept {
			t.Errorf("Key(%q) = %+v, want accepted=%v", tt.key, r, tt.accept)
		}
	}
	if g.Direction() != core.DirRight {
		t.Fatalf("direction committed before the tick: %v", g.Direction())
	}

	frame.Pump(ctl.Scheduler(), time.Second/60, 1, ctl.Deliver)
	if g.Direction() != core.DirUp {
		t.Fatalf("direction after tick = %v, want up", g.Direction())
	}
	if r := arb.Key("right"); !r.Accepted {
		t.Fatalf("turn after tick = %+v", r)
	}
}

func TestPointerMovesPaddle(t *testing.T) {
	ctl, arb, _ := setup(t, core.GamePaddleBall)
	g := ctl.Game().(*paddleball.Game)

	if r := arb.Pointer(300); r.Consumed {
		t.Fatalf("pointer in ready = %+v", r)
	}
	toPlaying(t, ctl, arb)

	tests := []struct {
		x, want float64
	}{
		{300, 260},
		{10, 0},
		{495, 420},
	}
	for _, tt := range tests {
		if r := arb.Pointer(tt.x); !r.Accepted {
			t.Fatalf("Pointer(%v) = %+v", tt.x, r)
		}
		if g.Paddle() != tt.want {
			t.Errorf("Pointer(%v): paddle = %v, want %v", tt.x, g.Paddle(), tt.want)
		}
	}
}

func TestDeregisteredAfterLeaving(t *testing.T) {
	ctl, arb, _ := setup(t, core.GameJump)
	toPlaying(t, ctl, arb)
	ctl.ReturnToMenu()

	if arb.Active() {
		t.Fatal("arbiter still active in menu")
	}
	if r := arb.Key(" "); r.Consumed {
		t.Fatalf("space after leaving = %+v", r)
	}
}
