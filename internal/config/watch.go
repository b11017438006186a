// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AhmedFarag1/go-clean-code/internal/log"
)

// debounce coalesces the burst of fsnotify events editors emit per save.
const debounce = 250 * time.Millisecond

// Watch observes the config file at path and invokes onReload with the
// freshly loaded configuration after each change. Only hot-reloadable
// settings should be applied by the callback; everything else requires a
// restart. Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, onReload func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory, not the file: atomic saves replace the inode and
	// a file-level watch would go stale after the first write.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config directory %s: %w", dir, err)
	}

	logger := log.WithComponent("config")
	logger.Info().
		Str(log.FieldEvent, "config.watch_started").
		Str(log.FieldPath, path).
		Msg("watching config file for changes")

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	reload := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(debounce, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).
				Str(log.FieldEvent, "config.watch_error").
				Msg("config watcher error")
		case <-reload:
			cfg, err := Load(path)
			if err != nil {
				logger.Error().Err(err).
					Str(log.FieldEvent, "config.reload_failed").
					Str(log.FieldPath, path).
					Msg("ignoring invalid config change")
				continue
			}
			logger.Info().
				Str(log.FieldEvent, "config.reloaded").
				Str("log_level", cfg.LogLevel).
				Msg("config reloaded")
			onReload(cfg)
		}
	}
}
