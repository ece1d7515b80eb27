package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the manifest when the file changes on disk, so edited
// content shows up without restarting the kiosk. Rapid successive saves
// (editors often write twice) collapse into a single reload of the final
// contents: each event resets a quiet window, and the load runs only once
// the window elapses.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	onReload func(*Manifest)
	log      *zap.Logger
	quiet    time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for the manifest at path. onReload is called
// from the watcher goroutine with each successfully re-parsed manifest;
// parse failures keep the previous content and are only logged.
func NewWatcher(path string, log *zap.Logger, onReload func(*Manifest)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:  fw,
		path:     path,
		onReload: onReload,
		log:      log,
		quiet:    300 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; events are handled on a goroutine
// until Stop is called or ctx is cancelled. A failed Start leaves the
// watcher stopped; Stop afterwards is safe.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	// Watch the directory, not the file: editors replace files on save,
	// which drops a direct file watch.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.running = true
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event goroutine to drain. Safe
// to call repeatedly, and after a Start that returned an error.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// Trailing-edge debounce: every relevant event re-arms the quiet
	// window, so the last save of a burst is the one that loads.
	var (
		pending  *time.Timer
		pendingC <-chan time.Time
	)
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-pendingC:
			pendingC = nil
			w.reload()
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.NewTimer(w.quiet)
			pendingC = pending.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("content watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) reload() {
	m, err := Load(w.path)
	if err != nil {
		w.log.Warn("manifest reload failed, keeping previous content",
			zap.String("path", w.path), zap.Error(err))
		return
	}
	w.log.Info("manifest reloaded", zap.String("path", w.path))
	w.onReload(m)
}
