package http

import (
	"github.com/careerhub/ticketing-core/internal/idempotency"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/careerhub/ticketing-core/internal/rateLimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(h *Handlers, logger observability.Logger, rl *rateLimit.RateLimiter, idemp *idempotency.Idempotency) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(MetricsMiddleware)
	r.Use(LoggerMiddleware(logger))
	r.Use(TracingMiddleware)
	r.Use(JWTMiddleware)
	r.Use(RateLimitMiddleware(rl))
	r.Use(IdempotencyMiddleware(idemp))

	r.Post("/v1/tickets", h.IssueTicket)
	r.Post("/v1/tickets/validate", h.ValidateTicket)
	r.Post("/v1/tickets/{ticketId}/use", h.UseTicket)
	r.Post("/v1/tickets/{ticketId}/cancel", h.CancelTicket)
	r.Get("/v1/tickets/{ticketId}", h.GetTicket)
	r.Get("/v1/events/{id}/capacity", h.EventCapacity)
	r.Post("/v1/salary/estimate", h.EstimateSalary)
	r.Get("/v1/healthz", h.Healthz)
	r.Get("/v1/readyz", h.Readyz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
