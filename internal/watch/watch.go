package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives a debounced batch of changed Python files.
type Handler func(paths []string)

// Watcher re-runs analysis when Python files are saved. Changes are
// debounced so a burst of editor writes triggers a single pass.
type Watcher struct {
	root     string
	debounce time.Duration
	handler  Handler
	fsw      *fsnotify.Watcher
}

// New creates a watcher over root (a file or directory).
func New(root string, debounce time.Duration, handler Handler) (*Watcher, error) {
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:     root,
		debounce: debounce,
		handler:  handler,
		fsw:      fsw,
	}

	if err := w.addRecursive(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run blocks, dispatching debounced batches to the handler until the
// context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.fsw.Close() }()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				// New directories need their own watch
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					_ = w.addRecursive(event.Name)
					continue
				}
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".py") || w.skip(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			pending = make(map[string]struct{})
			w.handler(paths)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// addRecursive watches root and, when it is a directory, every
// subdirectory under it.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The path may have vanished between event and walk
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.skip(path) && path != root {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// skip reports whether a path should be ignored. Only components below the
// watch root count, so a root living under a hidden ancestor (say
// ~/.config/proj) still gets its events.
func (w *Watcher) skip(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	return skipRel(rel)
}

// skipRel excludes hidden directories and Python bytecode caches in a
// root-relative path.
func skipRel(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if part == "__pycache__" {
			return true
		}
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}
