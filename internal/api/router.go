package api

import (
	"log/slog"
	"net/http"

	"github.com/Priya8975/travel-agency/internal/metrics"
	"github.com/Priya8975/travel-agency/internal/ratelimit"
	"github.com/Priya8975/travel-agency/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router. limiter may be nil, in
// which case /subscribe is not rate limited.
func NewRouter(s Store, renderer *render.Renderer, limiter *ratelimit.RateLimiter, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(m.Middleware)

	// Cross-origin access is granted to the subscribe endpoint and the JSON
	// API only; HTML pages, static assets and /metrics stay same-origin.
	apiCORS := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})

	// Handlers
	pages := NewPageHandler(s, renderer, logger)
	subHandler := NewSubscriberHandler(s, m, logger)
	statsHandler := NewStatsHandler(s, logger)

	r.NotFound(pages.NotFound)

	r.Get("/", pages.Index)
	r.Get("/continent/{id:[0-9]+}", pages.Continent)
	r.Get("/destination/{id:[0-9]+}", pages.Destination)

	r.Group(func(r chi.Router) {
		r.Use(apiCORS)
		// Preflights are answered by apiCORS; the route only has to exist so
		// chi does not reject OPTIONS with 405 before the middleware runs.
		r.Options("/subscribe", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter.Middleware)
			}
			r.Post("/subscribe", subHandler.Subscribe)
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiCORS)
		r.Get("/health", HealthHandler(s, logger))
		r.Get("/stats", statsHandler.Get)
	})

	r.Handle("/metrics", m.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", render.StaticHandler()))

	return r
}
