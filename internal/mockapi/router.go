// Package mockapi serves the storefront services as the REST/JSON backend
// the remote client talks to.
package mockapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/pkg/health"
	"github.com/doulovera/proyx-app/pkg/middleware"
)

// ServiceName labels metrics and spans emitted by the router.
const ServiceName = "mockapi"

// NewRouter creates a chi router with every backend route registered.
func NewRouter(
	services service.Services,
	tokens middleware.TokenValidator,
	healthHandler *health.Handler,
	logger *slog.Logger,
	corsConfig middleware.CORSConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(corsConfig))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing(ServiceName))
	r.Use(middleware.PrometheusMetrics(ServiceName))
	r.Use(middleware.RequestLogger(logger))

	r.Get("/healthz", healthHandler.LivenessHandler())
	r.Get("/readyz", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	h := NewHandler(services, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Use(middleware.Auth(tokens))
			r.Use(middleware.RequestLogger(logger))
			r.Get("/me", h.GetProfile)
			r.Put("/me", h.UpdateProfile)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.Get("/featured", h.FeaturedEvents)
			r.Get("/upcoming", h.UpcomingEvents)
			r.Get("/trending", h.TrendingEvents)

			r.Group(func(r chi.Router) {
				r.Use(ContentTypeJSON)
				r.Use(middleware.Auth(tokens))
				r.Use(middleware.RequestLogger(logger))
				r.Post("/{id}/tickets", h.PurchaseTickets)
			})
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", h.ListStores)
			r.Get("/featured", h.FeaturedStores)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/featured", h.FeaturedProducts)
			r.Get("/trending", h.TrendingProducts)
		})
	})

	return r
}

// WithProfiling serves the pprof endpoints in front of h, restricted to
// allowedCIDRs.
func WithProfiling(h http.Handler, allowedCIDRs []string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	middleware.RegisterPprof(r, allowedCIDRs, logger)
	r.Mount("/", h)
	return r
}
