package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/waitroom.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Surface: SurfaceConfig{
			Width:      500,
			Height:     500,
			PixelRatio: 1,
		},
		Frame: FrameConfig{FPS: 60},
		Countdown: CountdownConfig{
			Start: 3,
			Step:  time.Second,
		},
		Jump: JumpConfig{
			Gravity:        0.8,
			Impulse:        -15,
			SpawnChance:    0.015,
			Speed:          5,
			ObstacleWidth:  20,
			ObstacleHeight: 40,
			CullX:          -50,
			HitMinX:        10,
			HitMaxX:        70,
			Clearance:      5,
			GroundOffset:   40,
			PlayerX:        55,
			ScoreDivisor:   10,
			GlyphSize:      40,
			PlayerGlyph:    "@",
			ObstacleGlyph:  "Y",
		},
		Snake: SnakeConfig{
			Grid:         20,
			Tick:         160 * time.Millisecond,
			FoodScore:    10,
			FoodAttempts: 100,
			FoodGlyph:    "*",
		},
		Paddle: PaddleConfig{
			BallX:        250,
			BallY:        250,
			BallDX:       4,
			BallDY:       -4,
			PaddleX:      210,
			PaddleWidth:  80,
			PaddleHeight: 14,
			WallMargin:   15,
			ZoneHeight:   40,
			Jitter:       2,
			ShadowBlur:   10,
			BallGlyph:    "o",
			PaddleLabel:  "=",
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  0.4,
		},
		Theme: ThemeConfig{
			Ink:       "#4B4444",
			Accent:    "#FF8450",
			BodyLight: "#FFB3A1",
			BodyPale:  "#FFCFCC",
		},
		Log: LogConfig{Level: "info"},
	}
}
