package api

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kahua-labs/malama/internal/oahu"
	"github.com/kahua-labs/malama/internal/scoring"
	"github.com/kahua-labs/malama/internal/session"
)

func NewRouter(engine *scoring.Engine, sessions session.Store, factors oahu.Factors, adminToken string, displayLimit, rateLimit int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimit))

	served := &atomic.Int64{}
	calculations := NewCalculationsHandler(engine, sessions, displayLimit, served)
	reference := NewReferenceHandler(factors)
	admin := NewAdminHandler(sessions, served)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/factors", reference.Factors)
		r.Get("/options", reference.Options)
		r.Get("/resources", reference.Resources)

		r.Group(func(r chi.Router) {
			r.Use(SessionIDMiddleware)
			r.Post("/calculations", calculations.Create)
			r.Get("/calculations/latest", calculations.Latest)
			r.Delete("/calculations/latest", calculations.Reset)
			r.Get("/calculations/latest/explain", calculations.Explain)
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
