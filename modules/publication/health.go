package publication

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/publication/pkg/httpserver"
)

// HealthService exposes liveness and readiness probes.
type HealthService struct {
	log    *slog.Logger
	checks []httpserver.Check
}

// NewHealthService creates a HealthService; checks gate readiness.
func NewHealthService(log *slog.Logger, checks ...httpserver.Check) *HealthService {
	return &HealthService{log: log, checks: checks}
}

func (s *HealthService) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/live", httpserver.Liveness())
	r.Get("/ready", httpserver.Readiness(s.log, s.checks...))
	return r
}
