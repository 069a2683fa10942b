package fleetapi

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/autopeer-io/carview/internal/pkg/metrics"
	"github.com/autopeer-io/carview/pkg/log"
)

// Reload loads path into store. On error the store keeps its current records.
func Reload(store *Store, path string) error {
	records, err := LoadFile(path)
	if err == nil {
		err = store.Replace(records)
	}

	if err != nil {
		metrics.FixtureReloadTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}

	metrics.FixtureReloadTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return nil
}

// Watch reloads path into store whenever the file is written or replaced,
// until ctx is cancelled. The parent directory is watched so that editors
// which save by rename are picked up as well.
func Watch(ctx context.Context, store *Store, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fixture watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	log.Info("Watching fixtures", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := Reload(store, abs); err != nil {
				log.Warn("Fixture reload failed, keeping previous records", "path", abs, "error", err)
				continue
			}
			log.Info("Fixtures reloaded", "path", abs, "records", store.Len())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "Fixture watcher error")
		}
	}
}
