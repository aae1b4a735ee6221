// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package snapshot

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gamelens/gamelens/internal/platform/constants"
	"github.com/gamelens/gamelens/pkg/debounce"
)

// Watcher reloads the source when the snapshot file changes.
//
// It combines two change signals: fsnotify on the snapshot's directory (the
// scraper replaces the file atomically, which surfaces as create/rename on
// the parent) and a stat-based poll for filesystems where inotify is
// unreliable, such as network mounts. Both signals feed one debouncer so a
// multi-event replacement triggers a single reload.
type Watcher struct {
	source       *Source
	logger       *slog.Logger
	pollInterval time.Duration

	lastModTime time.Time
	lastSize    int64
}

// NewWatcher creates a watcher for the source's snapshot file. pollInterval
// is clamped to a sane floor so misconfiguration cannot spin the stat loop.
func NewWatcher(source *Source, pollInterval time.Duration, logger *slog.Logger) *Watcher {
	if pollInterval < constants.SnapshotMinPollInterval {
		pollInterval = constants.SnapshotMinPollInterval
	}
	return &Watcher{
		source:       source,
		logger:       logger.With(slog.String("component", "snapshot_watcher")),
		pollInterval: pollInterval,
	}
}

// Run watches until the context is cancelled. A failed reload logs and keeps
// the previous generation serving; the watcher itself only stops on
// cancellation.
func (w *Watcher) Run(ctx context.Context) {
	reloader := debounce.New(constants.SnapshotReloadDebounce, func() {
		if err := w.source.Load(ctx); err != nil {
			w.logger.Error("snapshot reload failed, previous generation stays active",
				slog.String("error", err.Error()))
		}
	})
	defer reloader.Stop()

	w.recordStat()

	events := w.notifyEvents(ctx)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-events:
			reloader.Trigger()
		case <-ticker.C:
			if w.statChanged() {
				reloader.Trigger()
			}
		}
	}
}

// notifyEvents subscribes to filesystem events for the snapshot file. When
// the subscription cannot be established the returned channel simply never
// fires and the poll loop carries the watcher alone.
func (w *Watcher) notifyEvents(ctx context.Context) <-chan struct{} {
	events := make(chan struct{}, 1)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Warn("fsnotify unavailable, falling back to polling only",
			slog.String("error", err.Error()))
		return events
	}

	dir := filepath.Dir(w.source.path)
	if err := fsWatcher.Add(dir); err != nil {
		w.logger.Warn("cannot watch snapshot directory, falling back to polling only",
			slog.String("dir", dir),
			slog.String("error", err.Error()))
		fsWatcher.Close()
		return events
	}

	target := filepath.Base(w.source.path)
	go func() {
		defer fsWatcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsWatcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case events <- struct{}{}:
				default:
				}
			case err, ok := <-fsWatcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("fsnotify error", slog.String("error", err.Error()))
			}
		}
	}()

	return events
}

func (w *Watcher) recordStat() {
	info, err := os.Stat(w.source.path)
	if err != nil {
		return
	}
	w.lastModTime = info.ModTime()
	w.lastSize = info.Size()
}

// statChanged reports whether the snapshot file differs from the last
// observation, updating the observation either way.
func (w *Watcher) statChanged() bool {
	info, err := os.Stat(w.source.path)
	if err != nil {
		// Mid-replacement the file can be briefly absent; the next
		// tick or the create event picks the new one up.
		return false
	}

	changed := !info.ModTime().Equal(w.lastModTime) || info.Size() != w.lastSize
	w.lastModTime = info.ModTime()
	w.lastSize = info.Size()
	return changed
}
