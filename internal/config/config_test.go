package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/waitroom/internal/core"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML differs from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("snake:\n  grid: 30\n  tick: 100ms\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Snake.Grid != 30 {
		t.Errorf("Snake.Grid = %d, expected 30", cfg.Snake.Grid)
	}
	if cfg.Snake.Tick != 100*time.Millisecond {
		t.Errorf("Snake.Tick = %v, expected 100ms", cfg.Snake.Tick)
	}
	if cfg.Snake.FoodScore != 10 {
		t.Errorf("Snake.FoodScore = %d, expected default 10", cfg.Snake.FoodScore)
	}
	if cfg.Jump.Gravity != 0.8 {
		t.Errorf("Jump.Gravity = %v, expected default 0.8", cfg.Jump.Gravity)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tiny grid", func(c *Config) { c.Snake.Grid = 2 }, "snake: grid"},
		{"zero fps", func(c *Config) { c.Frame.FPS = 0 }, "frame: fps"},
		{"empty surface", func(c *Config) { c.Surface.Width = 0 }, "surface: size"},
		{"downward impulse", func(c *Config) { c.Jump.Impulse = 3 }, "jump: impulse"},
		{"paddle wider than surface", func(c *Config) { c.Paddle.PaddleWidth = 600 }, "paddle: paddle_width"},
		{"loud", func(c *Config) { c.Sound.Volume = 2 }, "sound: volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("countdown:\n  start: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Countdown.Start != 5 {
		t.Errorf("Countdown.Start = %d, expected 5", cfg.Countdown.Start)
	}
	if Locate(path) != path {
		t.Errorf("Locate() = %q, expected %q", Locate(path), path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  grid: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid custom config should be an error")
	}
}

func TestPalette(t *testing.T) {
	p := ThemeConfig{Ink: "#000000", Accent: "nope"}.Palette()
	if p.Ink != core.RGB(0, 0, 0) {
		t.Errorf("Ink = %v, expected black", p.Ink)
	}
	if p.Accent != core.ColorAccent {
		t.Errorf("Accent = %v, expected built-in accent for an unparsable value", p.Accent)
	}
	if p.Background.A != 0 {
		t.Error("empty background should stay transparent")
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waitroom.yaml")
	if err := os.WriteFile(path, []byte("frame:\n  fps: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c Config) {
			select {
			case changes <- c:
			default:
			}
		}, nil)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("frame:\n  fps: 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// A single save may surface as several write events.
	for reloaded := false; !reloaded; {
		select {
		case cfg := <-changes:
			reloaded = cfg.Frame.FPS == 24
		case <-ctx.Done():
			t.Fatal("no reload observed")
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() = %v after cancel", err)
	}
}
