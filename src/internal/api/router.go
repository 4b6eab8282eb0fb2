package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(loadConfig ConfigLoader, newFetcher FetcherFactory) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	r.Use(PrivateSubnetOnly)

	h := NewHandler(loadConfig, newFetcher)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.CheckHealth)

		r.Route("/pipelines", func(r chi.Router) {
			r.Get("/", h.GetPipelines)
			r.Get("/{name}/render", h.RenderPipeline)
		})
	})

	return r
}
