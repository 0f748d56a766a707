package tui

import (
	"context"
	"fmt"

	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/console"
	"GuardianesDelFuego/internal/datalab"
	"GuardianesDelFuego/internal/demo"
	"GuardianesDelFuego/internal/logger"

	tea "charm.land/bubbletea/v2"
)

// Options control a local TUI run.
type Options struct {
	Dark bool
}

// NewLocalEnv builds the environment for a session on this machine: host
// clipboard and the configured export folder, followed across reloads.
func NewLocalEnv(ctx context.Context, cfg config.AppConfig, ds *demo.Dataset) Env {
	return Env{
		Ctx:       ctx,
		Data:      ds,
		Config:    cfg,
		Clipboard: datalab.SystemClipboard{},
	}
}

// Start launches the TUI application
func Start(ctx context.Context, cfg config.AppConfig, opts Options) error {
	logger.Info(ctx, "TUI Starting...")

	ds, err := demo.Load()
	if err != nil {
		return fmt.Errorf("loading demo data: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewAppModel(ctx, NewLocalEnv(ctx, cfg, ds), opts.Dark)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	go func() {
		defer logger.Recover(ctx)
		err := config.Watch(ctx, func(c config.AppConfig) {
			program.Send(ConfigChangedMsg{Config: c})
		})
		if err != nil {
			logger.Warn(ctx, "Config watcher stopped: %v", err)
		}
	}()

	console.SetTUIEnabled(true)
	defer console.SetTUIEnabled(false)

	_, err = program.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
