package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// ArtifactVersion is the only artifact format version this package reads.
const ArtifactVersion = 1

// Artifact is the on-disk JSON envelope of a fitted model.
type Artifact struct {
	FormatVersion int        `json:"format_version"`
	ModelType     string     `json:"model_type"`
	FeatureNames  []string   `json:"feature_names"`
	Nodes         []TreeNode `json:"nodes,omitempty"`
	Coefficients  []float64  `json:"coefficients,omitempty"`
	Intercept     float64    `json:"intercept,omitempty"`
}

// LoadModel reads the artifact at path and builds the model it describes.
func LoadModel(path string) (Model, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var artifact Artifact
	if err := json.Unmarshal(payload, &artifact); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return artifact.Build()
}

// Build turns a decoded artifact into a ready-to-predict model.
func (a Artifact) Build() (Model, error) {
	if a.FormatVersion != ArtifactVersion {
		return nil, fmt.Errorf("unsupported artifact format version %d (want %d)", a.FormatVersion, ArtifactVersion)
	}
	switch a.ModelType {
	case TypeDecisionTreeRegressor:
		return NewDecisionTreeRegressor(a.FeatureNames, a.Nodes)
	case TypeLinearRegression:
		return NewLinearRegression(a.FeatureNames, a.Coefficients, a.Intercept)
	default:
		return nil, fmt.Errorf("unsupported model type %q", a.ModelType)
	}
}

// SaveArtifact writes a as indented JSON to path.
func SaveArtifact(path string, a Artifact) error {
	payload, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}
