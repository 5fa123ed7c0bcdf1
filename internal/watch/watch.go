// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package watch runs a function whenever a file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

// delay is how long to wait after the last change before calling the
// function. Editors often write a file in several steps.
var delay = 250 * time.Millisecond

var readyHook func() // used in tests, called when File started watching

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a scheduled execution, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}

// File calls f each time the file at path is written, created or replaced,
// until ctx is canceled. It doesn't call f for the current state of the file.
//
// The parent directory is watched instead of the file itself, so that
// editors that save by renaming a new file over the old one are noticed.
func File(ctx context.Context, path string, f func()) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	d := newDebouncer(delay, f)
	defer d.Stop()

	logger.Info(ctx, "watching for changes", slog.String("path", path))
	if readyHook != nil {
		readyHook()
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !shouldRun(event.Name, event.Op) {
				continue
			}
			logger.Info(ctx, "detected change",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			d.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watcher error", slog.Any("err", err))
		case <-ctx.Done():
			return nil
		}
	}
}

// Based on
// https://github.com/brandur/modulir/blob/1ff912fdc45a79cb4d8d9f199d213ae9c3598cbd/watch.go#L201.
func shouldRun(path string, op fsnotify.Op) bool {
	base := filepath.Base(path)

	// Mac OS' worst mistake.
	if base == ".DS_Store" {
		return false
	}

	// Vim creates this temporary file to see whether it can write into a
	// target directory.
	if base == "4913" {
		return false
	}

	// Vim backups.
	if strings.HasSuffix(base, "~") {
		return false
	}

	// Removal is ignored: there is nothing to regenerate from until the file
	// is created again. Renames are followed by a create, and chmod doesn't
	// change the image.
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Write)
}
