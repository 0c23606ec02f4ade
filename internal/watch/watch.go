// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch triggers rebuilds when vocabulary sources or templates
// change on disk.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pdiddy/termsite/internal/logging"
)

// DefaultDebounce is the quiet period after the last change before a
// rebuild starts.
const DefaultDebounce = 500 * time.Millisecond

// RebuildFunc is called with the sorted paths that changed since the
// previous call.
type RebuildFunc func(ctx context.Context, changed []string) error

// Watcher watches directory trees and debounces change events.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.Logger
}

// New watches every directory below each of dirs. Empty entries are
// ignored; a directory that does not exist is an error.
func New(dirs []string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}
	w := &Watcher{fs: fw, debounce: debounce, logger: logging.OrNop(logger)}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := w.addTree(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Dirs returns the watched directories.
func (w *Watcher) Dirs() []string {
	dirs := w.fs.WatchList()
	sort.Strings(dirs)
	return dirs
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "watching %s", path)
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && ignored(path) {
			return filepath.SkipDir
		}
		return errors.Wrapf(w.fs.Add(path), "watching %s", path)
	})
}

// Run delivers debounced changes to rebuild until ctx is cancelled.
// Rebuild errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context, rebuild RebuildFunc) error {
	defer w.fs.Close()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		changed = make(map[string]bool)
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("change detected",
				zap.String(logging.FieldFile, ev.Name), zap.String("op", ev.Op.String()))
			changed[ev.Name] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			paths := make([]string, 0, len(changed))
			for p := range changed {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(changed)

			w.logger.Info("rebuilding", zap.Int(logging.FieldCount, len(paths)))
			if err := rebuild(ctx, paths); err != nil {
				w.logger.Error("rebuild failed", zap.Error(err))
			}
		}
	}
}

// relevant filters editor noise and starts watching new directories.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ignored(ev.Name) {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				w.logger.Warn("cannot watch new directory", zap.String(logging.FieldFile, ev.Name), zap.Error(err))
			}
			return true
		}
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// ignored reports hidden files, editor swap files and backups.
func ignored(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") ||
		strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".tmp")
}
