package watcher

import "context"

// Watcher monitors the input directory for documents to process.
type Watcher interface {
	// Start blocks until ctx is cancelled, then waits for in-flight handlers.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one settled document.
type EventHandler func(ctx context.Context, filePath string) error
