package handlers

import (
	"net/http"
	"time"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	breaker := h.tacticus.BreakerState()
	checks := map[string]interface{}{
		"redis":            h.store.Ping(ctx) == nil,
		"upstream_breaker": breaker,
	}

	ready := checks["redis"] == true && breaker != "open"

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":  ready,
		"checks": checks,
	})
}
