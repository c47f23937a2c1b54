package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/config"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/transport/middleware"
)

// RouterDeps collects what NewRouter mounts.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	Limiter     *middleware.RateLimiter // nil disables rate limiting
	Validator   middleware.TokenValidator
	Health      *HealthHandler
	Invitations *InvitationHandler
	ServiceName string
}

// NewRouter builds the HTTP handler. Probes are served without
// authentication or rate limiting; every request is traced.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		traceRoute,
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFoundOrForbidden, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Group(func(r chi.Router) {
		var limit middleware.Middleware
		if d.Limiter != nil {
			limit = d.Limiter.Limit(d.RateLimit.RequestsPerMin)
		}
		r.Use(middleware.Chain(middleware.Auth(d.Validator), limit))

		r.Route("/invitations", func(r chi.Router) {
			r.Get("/mine", d.Invitations.ListMine)
			r.Get("/by-agenda/{agendaId}", d.Invitations.ListByAgenda)
			r.Patch("/{id}/status", d.Invitations.UpdateStatus)
			r.Post("/{id}/delegate", d.Invitations.Delegate)
			r.Get("/{id}/delegation-chain", d.Invitations.DelegationChain)
			r.Get("/{id}/can-delegate", d.Invitations.CanDelegate)
		})
		r.Post("/agendas/{agendaId}/invitations:generate", d.Invitations.Generate)
	})

	return otelhttp.NewHandler(r, d.ServiceName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method
		}),
	)
}

// traceRoute renames the server span after the matched route pattern once
// chi has routed the request, keeping ids out of span names.
func traceRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return
		}
		if pattern := rctx.RoutePattern(); pattern != "" {
			span := trace.SpanFromContext(r.Context())
			span.SetName(r.Method + " " + pattern)
			span.SetAttributes(attribute.String("http.route", pattern))
		}
	})
}
