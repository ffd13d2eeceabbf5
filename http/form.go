package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"shoeprice/predictor"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"rating": func(v float64) string { return fmt.Sprintf("%.1f", v) },
}).ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Fatal  string
	Input  predictor.PredictionInput
	Result string
	Error  string

	MinHowManySold int64
	MinRating      float64
	MaxRating      float64
	RatingStep     float64
}

func newPageData(input predictor.PredictionInput) pageData {
	return pageData{
		Input:          input,
		MinHowManySold: predictor.MinHowManySold,
		MinRating:      predictor.MinRating,
		MaxRating:      predictor.MaxRating,
		RatingStep:     predictor.RatingStep,
	}
}

func (a *App) handleForm(w http.ResponseWriter, r *http.Request) {
	if _, err := a.source.Load(); err != nil {
		a.renderFatal(w, r, err)
		return
	}
	_, input := a.sessions.Session(w, r)
	a.render(w, r, http.StatusOK, newPageData(input))
}

func (a *App) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if _, err := a.source.Load(); err != nil {
		a.renderFatal(w, r, err)
		return
	}
	id, input := a.sessions.Session(w, r)

	if err := r.ParseForm(); err != nil {
		page := newPageData(input)
		page.Error = err.Error()
		a.render(w, r, http.StatusBadRequest, page)
		return
	}

	parsed, err := predictor.ParseInput(r.PostForm.Get("how_many_sold"), r.PostForm.Get("rating"))
	if err != nil {
		page := newPageData(input)
		page.Error = err.Error()
		a.render(w, r, http.StatusOK, page)
		return
	}
	a.sessions.Save(id, parsed)

	page := newPageData(parsed)
	result, err := a.predictor.Predict(r.Context(), parsed)
	switch {
	case isAssetError(err):
		a.renderFatal(w, r, err)
		return
	case err != nil:
		page.Error = err.Error()
	default:
		page.Result = result.Formatted
	}
	a.render(w, r, http.StatusOK, page)
}

func (a *App) renderFatal(w http.ResponseWriter, r *http.Request, err error) {
	a.render(w, r, http.StatusInternalServerError, pageData{Fatal: err.Error()})
}

func (a *App) render(w http.ResponseWriter, r *http.Request, status int, page pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, page); err != nil {
		a.log.Error("render_failed", zap.String("request_id", GetRequestID(r.Context())), zap.Error(err))
	}
}
