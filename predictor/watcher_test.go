package predictor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func waitFor(cond func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func TestWatcherMarksStaleOnArtifactWrite(t *testing.T) {
	path := writeArtifact(t, treeArtifact)
	watcher, err := NewWatcher(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(other, []byte("unrelated"), 0o600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if watcher.Stale() {
		t.Fatal("unrelated file must not mark the model stale")
	}

	if err := os.WriteFile(path, []byte(treeArtifact), 0o600); err != nil {
		t.Fatal(err)
	}
	if !waitFor(watcher.Stale, 3*time.Second) {
		t.Fatal("expected model to be marked stale")
	}
}
