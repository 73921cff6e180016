package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// HealthHandler serves the unauthenticated health endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	now      func() time.Time
}

// NewHealthHandler reports readiness from registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry, now: time.Now}
}

// Health handles GET /health: {"status":"OK","timestamp":...}. It never
// consults the registry.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, dto.NewHealthResponse(h.now()))
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.NewReadinessResponse(h.registry.CheckAll(r.Context()))

	status := http.StatusOK
	if !resp.Ready() {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, r, status, resp)
}
