// Package config provides YAML-based configuration loading for the waiting
// room: surface size, frame rate, countdown, per-game constants, sound,
// theme and logging.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/waitroom/internal/core"
)

// Config is the root configuration document.
type Config struct {
	Surface   SurfaceConfig   `yaml:"surface"`
	Frame     FrameConfig     `yaml:"frame"`
	Countdown CountdownConfig `yaml:"countdown"`
	Jump      JumpConfig      `yaml:"jump"`
	Snake     SnakeConfig     `yaml:"snake"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Sound     SoundConfig     `yaml:"sound"`
	Theme     ThemeConfig     `yaml:"theme"`
	Log       LogConfig       `yaml:"log"`
}

// SurfaceConfig defines the logical drawing surface.
type SurfaceConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	PixelRatio float64 `yaml:"pixel_ratio"` // Used by raster output; 0 means 1
}

// FrameConfig defines the display refresh cadence.
type FrameConfig struct {
	FPS int `yaml:"fps"`
}

// Interval returns the time between display refreshes.
func (f FrameConfig) Interval() time.Duration {
	if f.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(f.FPS)
}

// CountdownConfig defines the pre-game countdown.
type CountdownConfig struct {
	Start int           `yaml:"start"`
	Step  time.Duration `yaml:"step"`
}

// JumpConfig defines physics and layout for the side-scroller.
type JumpConfig struct {
	Gravity        float64 `yaml:"gravity"`
	Impulse        float64 `yaml:"impulse"` // Negative is upwards
	SpawnChance    float64 `yaml:"spawn_chance"`
	Speed          float64 `yaml:"speed"`
	ObstacleWidth  float64 `yaml:"obstacle_width"`
	ObstacleHeight float64 `yaml:"obstacle_height"`
	CullX          float64 `yaml:"cull_x"`
	HitMinX        float64 `yaml:"hit_min_x"`
	HitMaxX        float64 `yaml:"hit_max_x"`
	Clearance      float64 `yaml:"clearance"`
	GroundOffset   float64 `yaml:"ground_offset"`
	PlayerX        float64 `yaml:"player_x"`
	ScoreDivisor   int     `yaml:"score_divisor"`
	GlyphSize      float64 `yaml:"glyph_size"`
	PlayerGlyph    string  `yaml:"player_glyph"`
	ObstacleGlyph  string  `yaml:"obstacle_glyph"`
}

// SnakeConfig defines the grid game.
type SnakeConfig struct {
	Grid         int           `yaml:"grid"`
	Tick         time.Duration `yaml:"tick"`
	FoodScore    int           `yaml:"food_score"`
	FoodAttempts int           `yaml:"food_attempts"`
	FoodGlyph    string        `yaml:"food_glyph"`
}

// PaddleConfig defines the paddle-and-ball game.
type PaddleConfig struct {
	BallX        float64 `yaml:"ball_x"`
	BallY        float64 `yaml:"ball_y"`
	BallDX       float64 `yaml:"ball_dx"`
	BallDY       float64 `yaml:"ball_dy"`
	PaddleX      float64 `yaml:"paddle_x"`
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
	WallMargin   float64 `yaml:"wall_margin"`
	ZoneHeight   float64 `yaml:"zone_height"` // Paddle contact zone, measured from the bottom
	Jitter       float64 `yaml:"jitter"`      // Full width of the horizontal perturbation
	ShadowBlur   float64 `yaml:"shadow_blur"`
	BallGlyph    string  `yaml:"ball_glyph"`
	PaddleLabel  string  `yaml:"paddle_label"`
}

// SoundConfig controls sound cues.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// ThemeConfig holds the palette as hex strings.
type ThemeConfig struct {
	Ink        string `yaml:"ink"`
	Accent     string `yaml:"accent"`
	BodyLight  string `yaml:"body_light"`
	BodyPale   string `yaml:"body_pale"`
	Background string `yaml:"background"` // Raster clear colour; empty is transparent
}

// Palette is the parsed theme.
type Palette struct {
	Ink, Accent, BodyLight, BodyPale, Background core.Color
}

// Palette parses the theme, keeping the built-in colour for any entry that
// fails to parse.
func (t ThemeConfig) Palette() Palette {
	p := Palette{
		Ink:       core.ColorInk,
		Accent:    core.ColorAccent,
		BodyLight: core.ColorBodyLight,
		BodyPale:  core.ColorBodyPale,
	}
	for _, e := range []struct {
		hex string
		dst *core.Color
	}{
		{t.Ink, &p.Ink},
		{t.Accent, &p.Accent},
		{t.BodyLight, &p.BodyLight},
		{t.BodyPale, &p.BodyPale},
		{t.Background, &p.Background},
	} {
		if c, err := core.ParseHex(e.hex); err == nil {
			*e.dst = c
		}
	}
	return p
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used by play; empty means ~/.waitroom/waitroom.log
}

// Validate reports every unusable value.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Surface.Width > 0 && c.Surface.Height > 0, "surface: size must be positive, got %vx%v", c.Surface.Width, c.Surface.Height)
	check(c.Surface.PixelRatio >= 0, "surface: pixel_ratio must not be negative")
	check(c.Frame.FPS > 0, "frame: fps must be positive, got %d", c.Frame.FPS)
	check(c.Countdown.Start >= 0, "countdown: start must not be negative")
	check(c.Countdown.Step > 0, "countdown: step must be positive")
	check(c.Jump.Gravity > 0, "jump: gravity must be positive")
	check(c.Jump.Impulse < 0, "jump: impulse must be negative (upwards)")
	check(c.Jump.SpawnChance >= 0 && c.Jump.SpawnChance <= 1, "jump: spawn_chance must be within [0,1]")
	check(c.Jump.ScoreDivisor > 0, "jump: score_divisor must be positive")
	check(c.Jump.HitMinX < c.Jump.HitMaxX, "jump: hit window is empty")
	check(c.Snake.Grid >= 4, "snake: grid must be at least 4, got %d", c.Snake.Grid)
	check(c.Snake.Tick > 0, "snake: tick must be positive")
	check(c.Snake.FoodAttempts > 0, "snake: food_attempts must be positive")
	check(c.Paddle.PaddleWidth > 0 && c.Paddle.PaddleWidth < c.Surface.Width, "paddle: paddle_width must fit the surface")
	check(c.Paddle.Jitter >= 0, "paddle: jitter must not be negative")
	check(c.Sound.Volume >= 0 && c.Sound.Volume <= 1, "sound: volume must be within [0,1]")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
