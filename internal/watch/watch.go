// Package watch re-renders a scene file whenever it changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"chardraw/internal/logging"
	"chardraw/internal/scene"
)

// Handler receives each freshly loaded scene. A non-nil err means the file
// could not be loaded; the watch keeps running.
type Handler func(s *scene.Scene, err error)

// Watch loads path once, passes it to fn, then calls fn again after every
// write or create event on path until ctx is done. The containing directory
// is watched so editors that replace the file by rename are still seen.
func Watch(ctx context.Context, path string, fn Handler) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	log := logging.Logger().With("path", abs)
	log.Debug("watch loop starting")
	defer log.Debug("watch loop ended")

	fn(scene.Load(abs))

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !relevant(event) {
				continue
			}
			log.Debug("scene file changed", "op", event.Op.String())
			fn(scene.Load(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				log.Warn("watch events overflowed, reloading")
				fn(scene.Load(abs))
				continue
			}
			log.Error("watch error", "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
