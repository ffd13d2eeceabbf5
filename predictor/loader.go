package predictor

import (
	"errors"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"shoeprice/ml"
	"shoeprice/monitoring"
)

// ModelSource hands out the process-wide model.
type ModelSource interface {
	Load() (ml.Model, error)
}

// Loader reads the model artifact on first use and memoizes the outcome, failure
// included, for the life of the process.
type Loader struct {
	path string
	log  *zap.Logger
	open func(path string) (ml.Model, error)

	once  sync.Once
	model ml.Model
	err   error
}

func NewLoader(path string, log *zap.Logger) *Loader {
	return &Loader{
		path: path,
		log:  log,
		open: ml.LoadModel,
	}
}

func (l *Loader) Load() (ml.Model, error) {
	l.once.Do(l.load)
	return l.model, l.err
}

func (l *Loader) Path() string { return l.path }

func (l *Loader) load() {
	start := time.Now()
	defer func() {
		monitoring.ModelLoadsTotal.WithLabelValues(monitoring.Outcome(l.err)).Inc()
	}()

	if _, err := os.Stat(l.path); errors.Is(err, os.ErrNotExist) {
		l.err = &AssetLoadError{Kind: AssetMissing, Path: l.path, Err: err}
		l.log.Error("model_artifact_missing", zap.String("path", l.path))
		return
	}

	model, err := l.open(l.path)
	if err != nil {
		l.err = &AssetLoadError{Kind: AssetCorrupt, Path: l.path, Err: err}
		l.log.Error("model_load_failed", zap.String("path", l.path), zap.Error(err))
		return
	}
	l.model = model
	l.log.Info("model_loaded",
		zap.String("path", l.path),
		zap.String("model_type", model.Type()),
		zap.Strings("feature_names", model.FeatureNames()),
		zap.Duration("elapsed", time.Since(start)),
	)
}
