package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"shoeprice/ml"
	"shoeprice/monitoring"
)

type PredictionResult struct {
	Price     float64 `json:"price"`
	Formatted string  `json:"formatted"`
}

// Predictor runs one prediction per submission against the shared model.
type Predictor struct {
	source ModelSource
	log    *zap.Logger
}

func NewPredictor(source ModelSource, log *zap.Logger) *Predictor {
	return &Predictor{source: source, log: log}
}

// Predict returns an *AssetLoadError when the model is unavailable and a
// *PredictionError for anything that goes wrong with this submission.
func (p *Predictor) Predict(ctx context.Context, in PredictionInput) (PredictionResult, error) {
	model, err := p.source.Load()
	if err != nil {
		return PredictionResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return PredictionResult{}, &PredictionError{Err: err}
	}

	start := time.Now()
	price, err := predictOne(model, in.Row())
	monitoring.PredictionDuration.Observe(time.Since(start).Seconds())
	monitoring.PredictionsTotal.WithLabelValues(monitoring.Outcome(err)).Inc()
	if err != nil {
		p.log.Warn("prediction_failed",
			zap.Int64("how_many_sold", in.HowManySold),
			zap.Float64("rating", in.Rating),
			zap.Error(err),
		)
		return PredictionResult{}, &PredictionError{Err: err}
	}

	p.log.Debug("prediction",
		zap.Int64("how_many_sold", in.HowManySold),
		zap.Float64("rating", in.Rating),
		zap.Float64("price", price),
	)
	return PredictionResult{Price: price, Formatted: FormatPrice(price)}, nil
}

func predictOne(model ml.Model, row ml.FeatureRow) (price float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()

	predictions, err := model.Predict([]ml.FeatureRow{row})
	if err != nil {
		return 0, err
	}
	if len(predictions) == 0 {
		return 0, errors.New("model returned no predictions")
	}
	price = predictions[0]
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("model returned a non-finite prediction: %v", price)
	}
	return price, nil
}
