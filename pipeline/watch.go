package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period Watch waits for after the last write.
const DefaultDebounce = 250 * time.Millisecond

// Watch calls fn each time the file at path is written or created, once the
// file has been quiet for debounce. An atomic replace (write elsewhere, then
// rename onto path) is reported as a Create on path. Calls never
// overlap; changes arriving during a call trigger one more call afterwards.
// Errors from fn are logged and watching continues.
//
// The parent directory is watched rather than the file so that editors
// replacing the file atomically are still seen. Watch returns nil when ctx
// is cancelled.
func Watch(ctx context.Context, path string, debounce time.Duration, logger *zap.Logger, fn func(context.Context) error) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("pipeline: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("pipeline: watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("pipeline: watch %s: %w", filepath.Dir(target), err)
	}
	logger.Info("watching input", zap.String("path", target))

	// trigger holds at most one pending run.
	trigger := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			// Rename on path means the input moved away; nothing to re-read.
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("input changed", zap.String("op", ev.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case <-trigger:
			logger.Info("input settled, re-running", zap.String("path", target))
			if err := fn(ctx); err != nil {
				logger.Error("re-run failed", zap.Error(err))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
