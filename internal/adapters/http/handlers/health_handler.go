package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/logging"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// readinessTimeout caps a whole readiness probe so a hung database cannot
// pin the orchestrator's request.
const readinessTimeout = 3 * time.Second

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler reports readiness from registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health and GET /health/live. The process answering
// is the only thing it checks.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered dependency
// passes, 503 with the failing checks otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: statusReady, Checks: map[string]string{}}
	for name, err := range h.registry.CheckAll(ctx) {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	code := http.StatusOK
	if resp.Status == statusNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
