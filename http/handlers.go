package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shoeprice/predictor"
)

// App holds what the handlers share: the model source, the predictor and the
// per-browser form state.
type App struct {
	source    predictor.ModelSource
	predictor *predictor.Predictor
	sessions  *SessionStore
	stale     func() bool
	log       *zap.Logger
}

func NewApp(source predictor.ModelSource, sessions *SessionStore, log *zap.Logger) *App {
	return &App{
		source:    source,
		predictor: predictor.NewPredictor(source, log),
		sessions:  sessions,
		stale:     func() bool { return false },
		log:       log,
	}
}

// SetStaleCheck reports artifact staleness on /healthz.
func (a *App) SetStaleCheck(fn func() bool) {
	if fn != nil {
		a.stale = fn
	}
}

// NewRouter registers every route on a gorilla/mux router
func NewRouter(app *App) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", app.handleForm).Methods(http.MethodGet)
	r.HandleFunc("/", app.handleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/healthz", app.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

type healthResponse struct {
	Status       string   `json:"status"`
	ModelLoaded  bool     `json:"model_loaded"`
	ModelType    string   `json:"model_type,omitempty"`
	FeatureNames []string `json:"feature_names,omitempty"`
	Stale        bool     `json:"stale"`
	Error        string   `json:"error,omitempty"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	model, err := a.source.Load()
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		respondJSON(w, a.log, healthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	respondJSON(w, a.log, healthResponse{
		Status:       "ok",
		ModelLoaded:  true,
		ModelType:    model.Type(),
		FeatureNames: model.FeatureNames(),
		Stale:        a.stale(),
	})
}

// jsonError is the JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

func respondJSON(w http.ResponseWriter, log *zap.Logger, data interface{}) {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn("encode_json_failed", zap.Error(err))
	}
}

func isAssetError(err error) bool {
	var assetErr *predictor.AssetLoadError
	return errors.As(err, &assetErr)
}
