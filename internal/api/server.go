// SPDX-License-Identifier: MIT

// Package api is the HTTP transport layer. Requests flow through the
// middleware stack into a handler, get validated, hit the staff service and
// come back out as a JSON response. Handlers hold no business logic.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AhmedFarag1/go-clean-code/internal/health"
	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

// Config carries the transport-level settings for the server.
type Config struct {
	RateLimitEnabled  bool
	RequestsPerMinute int
}

// Server wires the staff service and health manager to HTTP routes.
type Server struct {
	cfg    Config
	svc    *staff.Service
	health *health.Manager
}

// New constructs the API server.
func New(cfg Config, svc *staff.Service, healthMgr *health.Manager) *Server {
	return &Server{
		cfg:    cfg,
		svc:    svc,
		health: healthMgr,
	}
}

// Router builds the chi router with the full middleware stack and all routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	// Recoverer outermost, correlation before logging, limiter last so
	// rejected requests are still logged and measured.
	r.Use(Recoverer)
	r.Use(RequestID)
	r.Use(SecurityHeaders)
	r.Use(Metrics)
	r.Use(Logging)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		if s.cfg.RateLimitEnabled {
			r.Use(RateLimit(s.cfg.RequestsPerMinute))
		}
		r.Route("/employees", func(r chi.Router) {
			r.Post("/", s.handleCreateEmployee)
			r.Get("/", s.handleListEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetEmployee)
				r.Delete("/", s.handleDeleteEmployee)
				r.Get("/payroll", s.handlePayroll)
			})
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.health.Health(r.Context()))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	resp := s.health.Ready(r.Context())
	code := http.StatusOK
	if !resp.Ready {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
