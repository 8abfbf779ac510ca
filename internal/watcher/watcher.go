// Package watcher streams newly created files that satisfy a finder's
// filter. It watches every directory the finder would descend into and
// debounces bursts of filesystem events into batched callbacks.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/filesift/filesift/internal/finder"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher reports files created under a root that a search of the same
// root would have found: within the depth limit, not hidden or excluded,
// and matching the name pattern.
type Watcher struct {
	fsw      *fsnotify.Watcher
	find     *finder.Finder
	root     string
	debounce time.Duration
	callback func(paths []string)

	cancel   context.CancelFunc
	stopOnce sync.Once
	doneCh   chan struct{}

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer
}

// New creates a watcher rooted at root. debounce is the quiet period
// before accumulated paths are delivered; zero or negative selects the
// default of 500ms.
func New(find *finder.Finder, root string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	w := &Watcher{
		fsw:      fsw,
		find:     find,
		root:     root,
		debounce: debounce,
		pending:  make(map[string]bool),
		doneCh:   make(chan struct{}),
	}
	if err := w.addDirs(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// addDirs registers dir and every subdirectory the finder would descend
// into. Unreadable directories are tolerated the same way a scan
// tolerates them: their subtree simply is not watched.
func (w *Watcher) addDirs(dir string) error {
	if !w.find.DescendsInto(w.root, dir) {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := w.addDirs(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Start begins watching. callback receives a sorted batch of matching
// paths after each debounce window. Start may be called once.
func (w *Watcher) Start(ctx context.Context, callback func(paths []string)) error {
	if callback == nil {
		return errors.New("watcher: nil callback")
	}
	w.callback = callback
	ctx, w.cancel = context.WithCancel(ctx)
	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal; the next event may still land.
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) {
		return
	}
	info, err := os.Lstat(event.Name)
	if err != nil {
		// Already gone; nothing to report.
		return
	}
	if info.IsDir() {
		// New directories join the watch set so files created inside
		// them are seen too.
		_ = w.addDirs(event.Name)
		return
	}
	if !info.Mode().IsRegular() {
		return
	}
	if !w.find.Matches(w.root, event.Name) {
		return
	}

	w.mu.Lock()
	w.pending[event.Name] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	sort.Strings(paths)
	w.callback(paths)
}

// Stop stops the watcher and waits for its event loop to exit. Idempotent.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
			<-w.doneCh
		} else {
			close(w.doneCh)
		}
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.fsw.Close()
	})
	return err
}
