package internal

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 100 * time.Millisecond

// Watch calls onChange whenever the file at path is written, created or
// renamed into place. Bursts of events are merged into one call once
// nothing has happened for debounce. Watch blocks until ctx is done or
// the watcher fails.
//
// The parent directory is watched rather than the file itself so that
// editors which save by replacing the file keep being tracked.
func Watch(ctx context.Context, logger *zap.Logger, path string, debounce time.Duration, onChange func()) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", path, err)
	}
	target = filepath.Clean(target)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("error watching %s: %w", filepath.Dir(target), err)
	}
	logger.Debug("Watching file", zap.String("file", target))

	timer := time.NewTimer(time.Hour)
	stopTimer(timer)
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantEvent(event, target) {
				continue
			}
			logger.Debug("File event", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			if pending {
				stopTimer(timer)
			}
			timer.Reset(debounce)
			pending = true
		case <-timer.C:
			if pending {
				pending = false
				onChange()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("error watching %s: %w", target, watchErr)
		}
	}
}

func isRelevantEvent(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
