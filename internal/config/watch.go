package config

import (
	"GuardianesDelFuego/internal/logger"
	"GuardianesDelFuego/internal/paths"
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration whenever guardianes.toml changes and passes
// it to onChange. It blocks until ctx is done.
// The directory is watched rather than the file so editors that replace the
// file on save are still picked up.
func Watch(ctx context.Context, onChange func(AppConfig)) error {
	path := paths.GetConfigFilePath()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			conf, err := LoadAppConfig()
			if err != nil {
				logger.Warn(ctx, "Ignoring config change: %v", err)
				continue
			}
			logger.Info(ctx, "Configuration reloaded from %s", path)
			onChange(conf)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn(ctx, "Config watcher error: %v", err)
		}
	}
}
