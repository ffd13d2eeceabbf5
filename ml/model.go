package ml

const (
	TypeDecisionTreeRegressor = "decision_tree_regressor"
	TypeLinearRegression      = "linear_regression"
)

// Model is a fitted regression model. Implementations are immutable after loading
// and safe for concurrent use.
type Model interface {
	Predict(rows []FeatureRow) ([]float64, error)
	FeatureNames() []string
	Type() string
}
