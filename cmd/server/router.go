package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nextstep/subway-api/internal/api"
	apiMiddleware "github.com/nextstep/subway-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}

	stationHandler := api.NewStationHandler(app.stationService)
	lineHandler := api.NewLineHandler(app.lineService)

	r.Route("/stations", stationHandler.Routes)
	r.Route("/lines", lineHandler.Routes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, app.metricsPath(), app.metrics.Handler())
	}

	return r
}

func (app *application) metricsPath() string {
	if app.config.Metrics.Path == "" {
		return "/metrics"
	}
	return app.config.Metrics.Path
}
