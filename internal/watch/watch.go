// Package watch re-inspects target files when they change on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Refresh is called with the original target path after its file changed
// and the debounce window elapsed.
type Refresh func(path string)

// Watch registers the parent directories of paths with fsnotify and calls
// refresh for each target whose file is created or written, until ctx is
// cancelled. Watching directories rather than files keeps editors that
// replace files by rename (write tmp, rename over target) visible.
//
// Events are debounced per batch: rapid successive writes collapse into a
// single refresh per target.
func Watch(ctx context.Context, paths []string, debounce time.Duration, logger *slog.Logger, refresh Refresh) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	wanted := make(map[string]string, len(paths)) // absolute path -> original input
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, absErr := filepath.Abs(p)
		if absErr != nil {
			logger.Warn("watch: resolve failed", slog.String("path", p), slog.String("error", absErr.Error()))
			continue
		}
		wanted[abs] = p
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		if addErr := w.Add(d); addErr != nil {
			logger.Warn("watch: add dir failed", slog.String("dir", d), slog.String("error", addErr.Error()))
		}
	}

	logger.Info("watch: started", slog.Int("targets", len(wanted)))

	pending := make(map[string]struct{})
	var timer *time.Timer
	var timerCh <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerCh = timer.C
			return
		}
		timer.Reset(debounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watch: stopped")
			return nil

		case <-timerCh:
			flushed := make([]string, 0, len(pending))
			for p := range pending {
				flushed = append(flushed, p)
				delete(pending, p)
			}
			sort.Strings(flushed)
			for _, p := range flushed {
				logger.Debug("watch: refreshing", slog.String("target", p))
				refresh(p)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, absErr := filepath.Abs(ev.Name)
			if absErr != nil {
				continue
			}
			orig, tracked := wanted[abs]
			if !tracked || ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			pending[orig] = struct{}{}
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch: error", slog.String("error", watchErr.Error()))
		}
	}
}
