package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fincon/service"
)

type RouterConfig struct {
	Explainer   *service.ExplanationService
	Limiter     Limiter
	CORSOrigins []string
	Version     string
	// RequestTimeout bounds every request, including the model call.
	RequestTimeout time.Duration
}

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	AIEnabled bool   `json:"aiEnabled"`
}

// NewRouter wires the calculators and the explanation proxy. Only
// /api/explain is rate limited.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:         300,
	}))
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Version:   cfg.Version,
			AIEnabled: cfg.Explainer != nil && cfg.Explainer.Enabled(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/retirement", CalculateRetirement)
		r.Post("/loan", CalculateLoan)
		r.Post("/epf-ria", CalculateEPFRIA)

		if cfg.Explainer != nil {
			explain := NewExplainHandler(cfg.Explainer)
			r.Group(func(r chi.Router) {
				if cfg.Limiter != nil {
					r.Use(RateLimitMiddleware(cfg.Limiter))
				}
				r.Post("/explain", explain.Explain)
			})
		}
	})

	return r
}
