package jump

import (
	"math"
	"testing"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
)

var bounds = core.Bounds{W: 500, H: 500}

func newGame(seed int64) *Game {
	g := New(config.Default())
	g.Reset(seed)
	return g
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestJumpImpulseThenGravity(t *testing.T) {
	g := newGame(1)
	g.cfg.SpawnChance = 0

	if !g.Jump() {
		t.Fatal("grounded player should accept a jump")
	}
	if g.vy != -15 {
		t.Fatalf("vy after jump = %v, expected -15", g.vy)
	}

	g.Tick(bounds)
	if !near(g.vy, -14.2) {
		t.Errorf("vy after one tick = %v, expected -14.2", g.vy)
	}
	if !near(g.y, -15+0.8) {
		t.Errorf("y after one tick = %v, expected -14.2", g.y)
	}
	if g.Grounded() {
		t.Error("player should be airborne after one tick")
	}
}

func TestNoMidAirJump(t *testing.T) {
	g := newGame(1)
	g.cfg.SpawnChance = 0

	g.Jump()
	g.Tick(bounds)
	if g.Jump() {
		t.Error("mid-air jump should be rejected")
	}
	if !near(g.vy, -14.2) {
		t.Errorf("rejected jump must not change vy, got %v", g.vy)
	}
}

func TestNeverBelowGround(t *testing.T) {
	g := newGame(7)
	g.cfg.SpawnChance = 0

	for i := 0; i < 500; i++ {
		if i%25 == 0 {
			g.Jump()
		}
		g.Tick(bounds)
		if g.y > 0 || g.Height() < 0 {
			t.Fatalf("tick %d: y = %v, player below ground", i, g.y)
		}
	}
}

func TestLandsAndCanJumpAgain(t *testing.T) {
	g := newGame(1)
	g.cfg.SpawnChance = 0

	g.Jump()
	for i := 0; i < 100 && !g.Grounded(); i++ {
		g.Tick(bounds)
	}
	if !g.Grounded() {
		t.Fatal("player should land")
	}
	if !g.Jump() {
		t.Error("landed player should jump again")
	}
}

func TestObstaclesScrollAndCull(t *testing.T) {
	var o Obstacles
	o.Spawn(500, 20, 40)
	o.Spawn(-45, 20, 40) // lands on -50

	o.Advance(5, -50)
	if o.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1 after culling", o.Len())
	}
	if o.All()[0].X != 495 {
		t.Errorf("X = %v, expected 495", o.All()[0].X)
	}
}

func TestCullBoundary(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		kept  bool
	}{
		{"just inside", -40, true},
		{"on the line", -45, false},
		{"past the line", -48, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Obstacles
			o.Spawn(tt.start, 20, 40)
			o.Advance(5, -50)
			if got := o.Len() == 1; got != tt.kept {
				t.Errorf("obstacle at %v kept = %v, expected %v", tt.start-5, got, tt.kept)
			}
		})
	}
}

func TestCollision(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		y    float64
		want bool
	}{
		{"inside window on ground", 40, 0, true},
		{"left of window", 10, 0, false},
		{"right of window", 70, 0, false},
		{"clears the obstacle", 40, -36, false},
		{"not high enough", 40, -30, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var o Obstacles
			o.Spawn(tc.x, 20, 40)
			if got := o.Hits(10, 70, tc.y, 5); got != tc.want {
				t.Errorf("Hits() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHitEndsGameWithoutFurtherMutation(t *testing.T) {
	g := newGame(1)
	g.cfg.SpawnChance = 0
	g.obstacles.Spawn(45, 20, 40)

	res := g.Tick(bounds)
	if !res.Terminal {
		t.Fatal("expected a terminal collision")
	}
	if res.Frame != nil {
		t.Error("terminal tick should not draw")
	}
	before := g.Snapshot()

	res = g.Tick(bounds)
	if !res.Terminal {
		t.Error("ticks after game over should keep reporting terminal")
	}
	if g.Snapshot() != before {
		t.Error("state changed after game over")
	}
	if g.Jump() {
		t.Error("jump after game over should be rejected")
	}
}

func TestScoreDisplayedPerTenTicks(t *testing.T) {
	g := newGame(1)
	g.cfg.SpawnChance = 0

	var res core.TickResult
	for i := 0; i < 25; i++ {
		res = g.Tick(bounds)
	}
	if g.raw != 25 {
		t.Errorf("raw = %d, expected 25", g.raw)
	}
	if res.Score != 2 {
		t.Errorf("displayed score = %d, expected 2", res.Score)
	}
}

func TestDrawList(t *testing.T) {
	g := newGame(1)
	g.cfg.SpawnChance = 0
	g.obstacles.Spawn(300, 20, 40)

	res := g.Tick(bounds)
	if got := res.Frame.Count(core.OpLine); got != 1 {
		t.Errorf("ground lines = %d, expected 1", got)
	}
	if got := res.Frame.Count(core.OpText); got != 2 {
		t.Errorf("glyphs = %d, expected player + 1 obstacle", got)
	}
	if res.Frame[1].From.Y != 460 {
		t.Errorf("ground at y = %v, expected 460", res.Frame[1].From.Y)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(12345)
	g2 := newGame(12345)

	for i := 0; i < 400; i++ {
		if i%40 == 0 {
			g1.Jump()
			g2.Jump()
		}
		g1.Tick(bounds)
		g2.Tick(bounds)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ: %+v vs %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestResetIsCanonical(t *testing.T) {
	g := newGame(3)
	for i := 0; i < 100; i++ {
		g.Jump()
		g.Tick(bounds)
	}

	g.Reset(3)
	want := Snapshot{}
	if g.Snapshot() != want {
		t.Errorf("Snapshot after Reset = %+v, expected zero state", g.Snapshot())
	}
}

func TestEmptyBoundsIsNoop(t *testing.T) {
	g := newGame(1)
	g.Tick(core.Bounds{})
	if g.tick != 0 {
		t.Error("tick without a surface should not advance the simulation")
	}
}
