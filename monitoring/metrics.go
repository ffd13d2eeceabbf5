package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoeprice_predictions_total",
			Help: "Form submissions by outcome",
		},
		[]string{"outcome"},
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shoeprice_prediction_duration_seconds",
			Help:    "Time spent in the model predict call",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	)

	ModelLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoeprice_model_loads_total",
			Help: "Model artifact load attempts by outcome",
		},
		[]string{"outcome"},
	)

	ModelStale = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shoeprice_model_stale",
			Help: "1 when the artifact changed on disk after the model was loaded",
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shoeprice_sessions_active",
			Help: "Sessions currently held in the session cache",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoeprice_http_requests_total",
			Help: "HTTP requests by method and status code",
		},
		[]string{"method", "status"},
	)
)

// Outcome maps an error to its outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
