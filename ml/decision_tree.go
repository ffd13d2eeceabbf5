package ml

import (
	"errors"
	"fmt"
)

// DecisionTreeRegressor is a fitted regression tree stored as a flat node slice with
// the root at index 0.
type DecisionTreeRegressor struct {
	featureNames []string
	nodes        []TreeNode
}

type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	Value      float64 `json:"value"`
	IsLeaf     bool    `json:"is_leaf"`
}

// NewDecisionTreeRegressor validates the node layout and returns the tree.
func NewDecisionTreeRegressor(featureNames []string, nodes []TreeNode) (*DecisionTreeRegressor, error) {
	if len(featureNames) == 0 {
		return nil, errors.New("feature names empty")
	}
	if len(nodes) == 0 {
		return nil, errors.New("tree has no nodes")
	}
	for i, node := range nodes {
		if node.IsLeaf {
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(featureNames) {
			return nil, fmt.Errorf("node %d: feature index %d out of range", i, node.FeatureIdx)
		}
		// children always come after their parent, which also rules out cycles
		if node.LeftChild <= i || node.LeftChild >= len(nodes) {
			return nil, fmt.Errorf("node %d: invalid left child %d", i, node.LeftChild)
		}
		if node.RightChild <= i || node.RightChild >= len(nodes) {
			return nil, fmt.Errorf("node %d: invalid right child %d", i, node.RightChild)
		}
	}
	return &DecisionTreeRegressor{
		featureNames: append([]string(nil), featureNames...),
		nodes:        append([]TreeNode(nil), nodes...),
	}, nil
}

func (dt *DecisionTreeRegressor) Predict(rows []FeatureRow) ([]float64, error) {
	if len(dt.nodes) == 0 {
		return nil, errors.New("model not fitted")
	}
	if err := alignFeatures(dt.featureNames); err != nil {
		return nil, err
	}
	predictions := make([]float64, len(rows))
	for i, row := range rows {
		value, err := dt.predictOne(FeatureVector(row))
		if err != nil {
			return nil, err
		}
		predictions[i] = value
	}
	return predictions, nil
}

func (dt *DecisionTreeRegressor) predictOne(features []float64) (float64, error) {
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.Value, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return 0, errors.New("feature index out of range")
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(dt.nodes) {
			return 0, errors.New("invalid tree state")
		}
	}
}

func (dt *DecisionTreeRegressor) FeatureNames() []string {
	return append([]string(nil), dt.featureNames...)
}

func (dt *DecisionTreeRegressor) Type() string { return TypeDecisionTreeRegressor }

// Depth returns the number of edges on the longest root-to-leaf path.
func (dt *DecisionTreeRegressor) Depth() int {
	if len(dt.nodes) == 0 {
		return 0
	}
	return dt.depth(0)
}

func (dt *DecisionTreeRegressor) depth(idx int) int {
	node := dt.nodes[idx]
	if node.IsLeaf {
		return 0
	}
	return 1 + max(dt.depth(node.LeftChild), dt.depth(node.RightChild))
}
