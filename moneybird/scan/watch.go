package scan

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch re-invokes rescan whenever the file at path changes, debounced so
// a burst of edits collapses into a single run. It blocks until ctx is
// cancelled. Whether to run a watcher at all is the integrator's call;
// the scanner itself never needs one.
//
// The parent directory is watched rather than the file, since editors
// tend to replace files instead of writing them in place.
func Watch(ctx context.Context, path string, debounce time.Duration, rescan func()) error {

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	logger.Debugf("watching %s", path)

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
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(debounce, rescan)
			} else {
				timer.Reset(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("credential file watch: %v", err)
		}
	}
}
