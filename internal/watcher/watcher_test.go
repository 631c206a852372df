package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/readaid/internal/logger"
)

func startWatcher(t *testing.T, dir string, handler EventHandler) (context.CancelFunc, <-chan error) {
	t.Helper()
	w, err := New(dir, handler, logger.Nop(), 1, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	return cancel, done
}

func TestWatcherHandlesDocuments(t *testing.T) {
	dir := t.TempDir()
	got := make(chan string, 10)
	cancel, done := startWatcher(t, dir, func(ctx context.Context, path string) error {
		got <- path
		return nil
	})
	defer cancel()

	if err := os.WriteFile(filepath.Join(dir, "image.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".draft.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(want, []byte("Hello there."), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-got:
		if path != want {
			t.Errorf("handler got %q, want %q", path, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	// Create and Write for the same file settle into one call.
	select {
	case path := <-got:
		t.Errorf("unexpected second call for %q", path)
	case <-time.After(400 * time.Millisecond):
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}
}

func TestWatcherWaitsForHandlers(t *testing.T) {
	dir := t.TempDir()
	started := make(chan struct{})
	var once sync.Once
	var mu sync.Mutex
	finished := false

	cancel, done := startWatcher(t, dir, func(ctx context.Context, path string) error {
		once.Do(func() { close(started) })
		time.Sleep(100 * time.Millisecond)
		mu.Lock()
		finished = true
		mu.Unlock()
		return nil
	})

	if err := os.WriteFile(filepath.Join(dir, "slow.md"), []byte("# Slow"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if !finished {
		t.Error("Start() returned before the running handler finished")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.Nop(), 0, 0)
	if err == nil {
		t.Error("New() should fail for a missing directory")
	}
}
