package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes to a fixed set of local files.
//
// Directories are watched rather than the files themselves so that editors
// that save by rename are still noticed.
type Watcher struct {
	log      *zap.Logger
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
}

// NewWatcher watches the given OS paths.
func NewWatcher(log *zap.Logger, paths ...string) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		log:      log,
		watcher:  fw,
		files:    make(map[string]struct{}, len(paths)),
		debounce: 200 * time.Millisecond,
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", d, err)
		}
		log.Debug("watching directory", zap.String("dir", d))
	}
	return w, nil
}

// SetDebounce changes how long Run waits for writes to settle.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Run calls onChange once per burst of writes to any watched file. It returns
// when ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, watched := w.files[abs]; !watched {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("file changed", zap.String("path", abs), zap.String("op", ev.Op.String()))
			pending = true
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", zap.Error(err))

		case <-timer.C:
			if pending {
				pending = false
				onChange()
			}
		}
	}
}
