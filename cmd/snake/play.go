package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/reward"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg.Log)
	defer closeLog()
	logger.Info("starting", "config", source, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"winning_score", cfg.Rules.WinningScore, "tick", cfg.Timing.TickInterval)

	// Get terminal size before Bubble Tea takes over
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Score history is optional, the game still works without it
	var recorder loop.Recorder
	if cfg.Storage.DBPath != "" {
		store, storeErr := storage.Open(cfg.Storage.DBPath)
		if storeErr != nil {
			logger.Warn("could not open scores database", "error", storeErr)
		} else {
			defer store.Close()
			recorder = store
		}
	}

	keys := tui.DefaultKeyMap()
	model := snake.New(cfg.Snake(), rt.Seed)
	game := loop.New(model, loop.Options{
		TickInterval: cfg.Timing.TickInterval,
		PollInterval: cfg.Timing.PollInterval,
		IdleInterval: cfg.Timing.IdleInterval,
		Reward:       reward.FromDir(reward.ExecutableDir()),
		Recorder:     recorder,
		Logger:       logger,
		Hints:        keys.Hints(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, game, keys, rt); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("exit", "phase", game.Phase())
	return nil
}

// newLogger opens the log file from cfg. Logging is discarded when the path
// is empty or the file cannot be opened.
func newLogger(cfg config.LogConfig) (*log.Logger, func()) {
	discard := log.New(io.Discard)
	path, err := config.ExpandPath(cfg.Path)
	if err != nil || path == "" {
		return discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if level, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger, func() { f.Close() }
}
