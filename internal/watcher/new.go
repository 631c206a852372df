package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/readaid/internal/logger"
	"golang.org/x/sync/semaphore"
)

const (
	defaultMaxConcurrent = 2
	defaultSettleDelay   = 500 * time.Millisecond
)

// New creates a Watcher on inputDir. At most maxConcurrent handlers run at
// once; a file is handed over once no event has touched it for settleDelay.
func New(inputDir string, handler EventHandler, log logger.Logger, maxConcurrent int, settleDelay time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	if settleDelay <= 0 {
		settleDelay = defaultSettleDelay
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		settleDelay:   settleDelay,
		sem:           semaphore.NewWeighted(int64(maxConcurrent)),
		pending:       make(map[string]*pendingFile),
	}, nil
}
