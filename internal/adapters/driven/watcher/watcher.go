// Package watcher re-resolves a composed document whenever any file in
// its inclusion tree changes on disk.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
	"github.com/custodia-labs/weld-cli/internal/core/ports/driving"
	"github.com/custodia-labs/weld-cli/internal/logger"
)

// defaultDebounce coalesces editor save bursts into one re-resolution.
const defaultDebounce = 200 * time.Millisecond

// TreeWatcher watches an entry document and every file it includes,
// emitting a freshly resolved document after each change.
//
// The watch set follows the inclusion tree: after every resolution the
// watcher re-derives the directories to watch from the latest
// IncludedPaths, so includes added or removed by an edit are picked up
// on the next change.
type TreeWatcher struct {
	resolver driving.ResolverService
	entry    string
	debounce time.Duration
}

// New creates a watcher for the given entry document.
func New(resolver driving.ResolverService, entryPath string) *TreeWatcher {
	return &TreeWatcher{
		resolver: resolver,
		entry:    entryPath,
		debounce: defaultDebounce,
	}
}

// Watch resolves the entry document immediately, then re-resolves on
// every change to the inclusion tree. Documents are delivered on the
// returned channel until ctx ends, after which the channel is closed.
func (w *TreeWatcher) Watch(ctx context.Context) (<-chan *domain.ComposedDocument, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	out := make(chan *domain.ComposedDocument, 1)
	go w.run(ctx, fsw, out)
	return out, nil
}

func (w *TreeWatcher) run(ctx context.Context, fsw *fsnotify.Watcher, out chan<- *domain.ComposedDocument) {
	defer close(out)
	defer func() {
		if err := fsw.Close(); err != nil {
			logger.Warn("close watcher: %v", err)
		}
	}()

	w.resolveAndEmit(ctx, fsw, out)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if isContentChange(ev.Op) {
				logger.Debug("change detected: %s (%s)", ev.Name, ev.Op)
				pending = time.After(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)

		case <-pending:
			pending = nil
			w.resolveAndEmit(ctx, fsw, out)
		}
	}
}

// resolveAndEmit runs one resolution, updates the watch set from the
// result, and delivers the document.
func (w *TreeWatcher) resolveAndEmit(ctx context.Context, fsw *fsnotify.Watcher, out chan<- *domain.ComposedDocument) {
	doc, err := w.resolver.ResolveFile(ctx, w.entry)
	if err != nil {
		// Entry unreadable right now; keep watching its directory so a
		// rewrite triggers another attempt.
		logger.Warn("resolve %s: %v", w.entry, err)
		w.updateWatchSet(fsw, nil)
		return
	}

	w.updateWatchSet(fsw, doc.IncludedPaths)

	select {
	case out <- doc:
	case <-ctx.Done():
	}
}

// updateWatchSet points the fsnotify watcher at the directories holding
// the entry and every included file. Directories rather than files are
// watched so deletes and recreations keep firing events.
func (w *TreeWatcher) updateWatchSet(fsw *fsnotify.Watcher, includedPaths []string) {
	dirs := map[string]struct{}{
		filepath.Dir(w.entry): {},
	}
	for _, p := range includedPaths {
		dirs[filepath.Dir(p)] = struct{}{}
	}

	for _, watched := range fsw.WatchList() {
		if _, keep := dirs[watched]; !keep {
			if err := fsw.Remove(watched); err != nil {
				logger.Debug("unwatch %s: %v", watched, err)
			}
		}
		delete(dirs, watched)
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			logger.Warn("watch %s: %v", dir, err)
		}
	}
}

// isContentChange reports whether the event can alter resolution output.
func isContentChange(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) ||
		op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename)
}
