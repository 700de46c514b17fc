package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/waitroom/internal/audio"
	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/journal"
	"github.com/vovakirdan/waitroom/internal/platform/tui"
	"github.com/vovakirdan/waitroom/internal/platform/web"
	"github.com/vovakirdan/waitroom/internal/registry"
)

var flagHTTPAddr string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Open the waiting room in this terminal. With a game id the menu is
skipped and the game waits on its ready screen.

Controls:
  Up/Down      - Navigate menu / steer
  Left/Right   - Steer
  Enter/Space  - Select, start, jump
  Mouse        - Move the paddle
  R            - Retry (after game over)
  Y            - Transition history
  Esc/B        - Back
  Q/Ctrl+C     - Quit

With --http the session is mirrored over HTTP: GET /api/session,
GET /api/frame.png, a websocket at /api/ws and POST actions under /api.

Examples:
  waitroom play
  waitroom play jump
  waitroom play paddle-ball --seed 42
  waitroom play --http :8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Mirror the session over HTTP on this address")
}

func runPlay(_ *cobra.Command, args []string) error {
	kind := core.GameNone
	if len(args) == 1 {
		k, ok := core.ParseGameKind(args[0])
		if !ok || !registry.Exists(k) {
			return fmt.Errorf("unknown game %q (run 'waitroom list' to see available games)", args[0])
		}
		kind = k
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal; try 'waitroom serve' or 'waitroom render'")
	}
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg, cfgErr := loadConfig()

	logFile, err := openLogFile(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, cfg.Log, "waitroom")
	if cfgErr != nil {
		logger.Warn("using default configuration", "error", cfgErr)
	}

	store, err := journal.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journal: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := audio.Open(cfg.Sound, logger)
	defer player.Close()

	var hub *web.Hub
	opts := tui.Options{
		Config:    cfg,
		Logger:    logger,
		Audio:     player,
		Journal:   store,
		SessionID: "local",
		Seed:      flagSeed,
		Game:      kind,
		Width:     width,
		Height:    height,
	}
	if flagHTTPAddr != "" {
		hub = web.NewHub()
		opts.Publish = hub.Publish
	}

	p := tui.Program(opts)
	remote := tui.NewRemote(p)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if hub != nil {
		srv := web.New(hub, remote, cfg, logger)
		go func() {
			if err := srv.ListenAndServe(ctx, flagHTTPAddr); err != nil {
				logger.Error("HTTP server stopped", "error", err)
			}
		}()
	}

	if path := config.Locate(flagConfig); path != "" {
		go func() {
			err := config.Watch(ctx, path, func(c config.Config) {
				remote.Reload(applyFlags(c))
			}, func(err error) {
				logger.Warn("config reload failed", "path", path, "error", err)
			})
			if err != nil {
				logger.Warn("not watching config", "path", path, "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}
