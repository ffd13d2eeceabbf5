package ml

import "errors"

// LinearRegression predicts intercept + sum(coefficients[i] * x[i]).
type LinearRegression struct {
	featureNames []string
	coefficients []float64
	intercept    float64
}

func NewLinearRegression(featureNames []string, coefficients []float64, intercept float64) (*LinearRegression, error) {
	if len(featureNames) == 0 {
		return nil, errors.New("feature names empty")
	}
	if len(coefficients) != len(featureNames) {
		return nil, errors.New("coefficients and feature names size mismatch")
	}
	return &LinearRegression{
		featureNames: append([]string(nil), featureNames...),
		coefficients: append([]float64(nil), coefficients...),
		intercept:    intercept,
	}, nil
}

func (lr *LinearRegression) Predict(rows []FeatureRow) ([]float64, error) {
	if err := alignFeatures(lr.featureNames); err != nil {
		return nil, err
	}
	predictions := make([]float64, len(rows))
	for i, row := range rows {
		value := lr.intercept
		for j, x := range FeatureVector(row) {
			value += lr.coefficients[j] * x
		}
		predictions[i] = value
	}
	return predictions, nil
}

func (lr *LinearRegression) FeatureNames() []string {
	return append([]string(nil), lr.featureNames...)
}

func (lr *LinearRegression) Type() string { return TypeLinearRegression }
