package predictor

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"shoeprice/monitoring"
)

// Watcher flags the loaded model as stale when its artifact changes on disk.
// It never reloads; a restart picks up the new file.
type Watcher struct {
	path    string
	log     *zap.Logger
	watcher *fsnotify.Watcher
	stale   atomic.Bool
}

func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors and deploy tools often replace files by rename, so watch the directory
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{path: abs, log: log, watcher: fw}, nil
}

// Run consumes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !w.stale.Swap(true) {
				monitoring.ModelStale.Set(1)
				w.log.Warn("model_artifact_changed",
					zap.String("path", w.path),
					zap.String("op", event.Op.String()),
					zap.String("action", "restart the service to load the new model"),
				)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("model_watch_error", zap.Error(err))
		}
	}
}

func (w *Watcher) Stale() bool { return w.stale.Load() }

func (w *Watcher) Close() error { return w.watcher.Close() }
