package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/panelgate-dev/panelgate/internal/handler"
	"github.com/panelgate-dev/panelgate/internal/middleware"
	"github.com/panelgate-dev/panelgate/internal/setup"
)

// New wires the gateway routes. Everything under the session guard talks to
// the backend through the API client.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Public.API.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.Get("/healthz", handler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	h := deps.Handler
	r.Group(func(r chi.Router) {
		r.Use(deps.Session.Guard())

		r.Get("/dashboard", h.Dashboard)
		r.Get("/pages/{page}", h.Page)

		r.Get("/resources/{resource}/search", h.Search)
		r.Get("/resources/{resource}/actions/{action}", h.ResourceAction)
		r.Post("/resources/{resource}/actions/{action}", h.ResourceAction)
		r.Get("/resources/{resource}/records/{record}/{action}", h.RecordAction)
		r.Post("/resources/{resource}/records/{record}/{action}", h.RecordAction)
		r.Get("/resources/{resource}/bulk/{action}", h.BulkAction)
		r.Post("/resources/{resource}/bulk/{action}", h.BulkAction)
	})

	return r
}
