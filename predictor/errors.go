// Package predictor loads the price model once and turns form input into a
// formatted price.
package predictor

import "fmt"

type AssetErrorKind int

const (
	AssetMissing AssetErrorKind = iota + 1
	AssetCorrupt
)

// AssetLoadError means the model artifact could not be loaded. It is fatal for
// rendering until the deployment is fixed and the process restarted.
type AssetLoadError struct {
	Kind AssetErrorKind
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	if e.Kind == AssetMissing {
		return fmt.Sprintf("model file '%s' not found, please create it first", e.Path)
	}
	return fmt.Sprintf("failed to load assets: %v. Make sure your library versions are consistent.", e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// PredictionError is a failure scoped to one submission. The form stays usable.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string { return e.Err.Error() }

func (e *PredictionError) Unwrap() error { return e.Err }
