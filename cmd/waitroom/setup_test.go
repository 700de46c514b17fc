package main

import (
	"testing"

	"github.com/vovakirdan/waitroom/internal/config"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name      string
		fps       int
		level     string
		wantFPS   int
		wantLevel string
	}{
		{"no overrides", 0, "", 60, "info"},
		{"fps only", 30, "", 30, "info"},
		{"level only", 0, "debug", 60, "debug"},
		{"both", 120, "warn", 120, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldFPS, oldLevel := flagFPS, flagLogLevel
			t.Cleanup(func() { flagFPS, flagLogLevel = oldFPS, oldLevel })
			flagFPS, flagLogLevel = tt.fps, tt.level

			// A reloaded document that sets both values must not beat the flags.
			cfg := config.Default()
			cfg.Frame.FPS = 60
			cfg.Log.Level = "info"

			got := applyFlags(cfg)
			if got.Frame.FPS != tt.wantFPS {
				t.Errorf("FPS = %d, expected %d", got.Frame.FPS, tt.wantFPS)
			}
			if got.Log.Level != tt.wantLevel {
				t.Errorf("Level = %q, expected %q", got.Log.Level, tt.wantLevel)
			}
		})
	}
}

func TestLoadConfigKeepsOverridesOnError(t *testing.T) {
	oldConfig, oldFPS, oldLevel := flagConfig, flagFPS, flagLogLevel
	t.Cleanup(func() { flagConfig, flagFPS, flagLogLevel = oldConfig, oldFPS, oldLevel })
	flagConfig = t.TempDir() + "/missing.yaml"
	flagFPS, flagLogLevel = 24, "error"

	cfg, err := loadConfig()
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if cfg.Frame.FPS != 24 || cfg.Log.Level != "error" {
		t.Errorf("overrides lost: fps=%d level=%q", cfg.Frame.FPS, cfg.Log.Level)
	}
}
