// Package watch reports changed HDL source files using fsnotify. Directories
// are watched recursively, VCS and build directories are skipped, and rapid
// events on one path (editors often write several times per save) are
// debounced.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long a path must stay quiet before it is reported.
const DebounceInterval = 50 * time.Millisecond

var ignoreDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
	"build":        true,
	"obj_dir":      true, // verilator output
	"xsim.dir":     true,
	"work":         true,
}

// Watcher watches a file or a directory tree.
type Watcher struct {
	fw     *fsnotify.Watcher
	filter func(path string) bool
	logger *slog.Logger

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

// New creates a watcher. Only paths accepted by filter are reported; a nil
// filter accepts everything.
func New(filter func(path string) bool, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = func(string) bool { return true }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		fw:     fw,
		filter: filter,
		logger: logger,
		done:   make(chan struct{}),
	}, nil
}

// Watch starts watching root and calls onChange with the absolute path of
// every written or created source file. It returns once watches are in
// place; events are delivered until ctx is done or Stop is called.
func (w *Watcher) Watch(ctx context.Context, root string, onChange func(path string)) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return err
	}

	if info.IsDir() {
		err = filepath.Walk(absRoot, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return nil // skip inaccessible paths
			}
			if fi.IsDir() {
				if ignoreDirs[fi.Name()] && path != absRoot {
					return filepath.SkipDir
				}
				return w.fw.Add(path)
			}
			return nil
		})
	} else {
		// Watch the parent: editors replace files on save, which drops a
		// watch held on the file itself.
		err = w.fw.Add(filepath.Dir(absRoot))
		single := absRoot
		parent := w.filter
		w.filter = func(path string) bool { return path == single && parent(path) }
	}
	if err != nil {
		return err
	}

	go w.loop(ctx, onChange)
	return nil
}

func (w *Watcher) loop(ctx context.Context, onChange func(path string)) {
	// Each event (re)arms a per-path timer; the callback runs once the path
	// has been quiet for DebounceInterval. Fired paths come back through
	// fire so onChange is only ever called from this goroutine.
	pending := make(map[string]*time.Timer)
	fire := make(chan string)
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case path := <-fire:
			delete(pending, path)
			onChange(path)
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			path := event.Name

			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(path); err == nil && fi.IsDir() {
					if !ignoreDirs[fi.Name()] {
						if err := w.fw.Add(path); err != nil {
							w.logger.Warn("watch: add directory failed", "path", path, "err", err)
						}
					}
					continue
				}
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.filter(path) {
				continue
			}

			if t, ok := pending[path]; ok {
				t.Reset(DebounceInterval)
				continue
			}
			pending[path] = time.AfterFunc(DebounceInterval, func() {
				select {
				case fire <- path:
				case <-w.done:
				}
			})
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch: fsnotify error", "err", err)
		}
	}
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	close(w.done)
	w.fw.Close()
}
