package http

import (
	"net/http"

	"logmetrics/internal/shared/loggers"
	"logmetrics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Routes
	router.Get("/up", errorHandlingAdapter(NewUpHandler()))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
