package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tacticusops/raid-dashboard/internal/models"
)

// SetPlayerName stores a display name for an opaque user id
// @Summary Map a user id to a display name
// @Tags Players
// @Accept json
// @Produce json
// @Param userId path string true "Opaque user id"
// @Param body body models.SetNameRequest true "Display name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid body"
// @Router /players/{userId}/name [put]
func (h *Handler) SetPlayerName(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		h.errorResponse(w, http.StatusBadRequest, "userId required")
		return
	}

	var req models.SetNameRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "name must be 1-64 characters")
		return
	}

	if err := h.store.SetName(r.Context(), userID, req.Name); err != nil {
		h.logger.Errorw("Failed to store display name", "userId", userID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "failed to store name")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]string{
		"userId": userID,
		"name":   req.Name,
	})
}

// GetPlayerNames returns the full display-name mapping
// @Summary List user id to display name mappings
// @Tags Players
// @Produce json
// @Success 200 {object} map[string]string
// @Router /players/names [get]
func (h *Handler) GetPlayerNames(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.store.AllNames(r.Context()))
}
