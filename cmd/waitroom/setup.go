package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/waitroom/internal/config"
)

// loadConfig reads the config file and applies flag overrides. On error the
// defaults are returned, still with the overrides applied.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	return applyFlags(cfg), err
}

// applyFlags lays command-line overrides over a loaded or reloaded config.
func applyFlags(cfg config.Config) config.Config {
	if flagFPS > 0 {
		cfg.Frame.FPS = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.LogConfig, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			logger.Warn("unknown log level, using info", "level", cfg.Level)
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
}

// openLogFile opens the play log. The terminal belongs to the game, so
// nothing may be logged to it.
func openLogFile(cfg config.LogConfig) (io.WriteCloser, error) {
	path := cfg.File
	if path == "" {
		dir := config.Dir()
		if dir == "" {
			return nopCloser{io.Discard}, nil
		}
		path = filepath.Join(dir, "waitroom.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
