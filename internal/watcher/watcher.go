package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/readaid/internal/document"
	"github.com/nguyentantai21042004/readaid/internal/logger"
	"golang.org/x/sync/semaphore"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	settleDelay   time.Duration
	sem           *semaphore.Weighted
	wg            sync.WaitGroup

	mu      sync.Mutex
	pending map[string]*pendingFile
}

// pendingFile is a document waiting for its writes to settle.
type pendingFile struct {
	timer *time.Timer
}

// Start begins monitoring the input directory for new or rewritten documents.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(document.Extensions(), ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.drain()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.drain()
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !w.isDocument(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}
			w.schedule(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.drain()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// schedule (re)arms the settle timer for path.
func (w *implWatcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if p, ok := w.pending[path]; ok && p.timer.Stop() {
		p.timer.Reset(w.settleDelay)
		return
	}

	w.logger.Info(ctx, "New document detected: %s", path)
	p := &pendingFile{}
	w.wg.Add(1)
	p.timer = time.AfterFunc(w.settleDelay, func() { w.fire(ctx, path, p) })
	w.pending[path] = p
}

func (w *implWatcher) fire(ctx context.Context, path string, p *pendingFile) {
	defer w.wg.Done()

	w.mu.Lock()
	if w.pending[path] == p {
		delete(w.pending, path)
	}
	w.mu.Unlock()

	if err := w.sem.Acquire(ctx, 1); err != nil {
		return
	}
	defer w.sem.Release(1)

	if err := w.handler(ctx, path); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
	}
}

// drain cancels timers that have not fired and waits for running handlers.
func (w *implWatcher) drain() {
	w.mu.Lock()
	for path, p := range w.pending {
		if p.timer.Stop() {
			w.wg.Done()
		}
		delete(w.pending, path)
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *implWatcher) isDocument(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return document.IsSupported(path)
}
