package sepia2

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchFakeSpec reloads fake from the YAML file at path whenever it changes,
// until ctx is done. The parent directory is watched so that editors which
// replace the file by rename are followed. A file that fails to parse is
// logged and the previous bus is kept.
func WatchFakeSpec(ctx context.Context, path string, fake *FakeLib, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := reloadFakeSpec(path, fake); err != nil {
				log.Error("Fake spec reload failed", "path", path, "error", err)
				continue
			}
			log.Info("Fake spec reloaded", "path", path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("Fake spec watcher error", "error", err)
		}
	}
}

func reloadFakeSpec(path string, fake *FakeLib) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	spec, err := ParseFakeSpec(data)
	if err != nil {
		return err
	}
	return fake.Reload(spec)
}
