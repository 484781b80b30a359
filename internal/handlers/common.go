package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tacticusops/raid-dashboard/internal/models"
	"github.com/tacticusops/raid-dashboard/internal/tacticus"
)

// apiKeyCookie carries the credential for the rendered dashboard pages.
// API clients send the X-API-KEY header instead.
const apiKeyCookie = "tacticus_api_key"

// apiKeyFrom extracts the opaque upstream credential from the request:
// X-API-KEY header, Authorization bearer, or the dashboard cookie.
func apiKeyFrom(r *http.Request) string {
	if key := r.Header.Get("X-API-KEY"); key != "" {
		return key
	}
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if c, err := r.Cookie(apiKeyCookie); err == nil {
		return c.Value
	}
	return ""
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// upstreamError maps client errors onto HTTP responses the same way the
// upstream reports them: missing key is the caller's fault, 403/404 pass
// through, everything else is a bad gateway.
func (h *Handler) upstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tacticus.ErrNoAPIKey):
		h.errorResponse(w, http.StatusUnauthorized, "no API key set")
	case errors.Is(err, tacticus.ErrForbidden):
		h.errorResponse(w, http.StatusForbidden, "invalid API key or insufficient permissions")
	case errors.Is(err, tacticus.ErrNotFound):
		h.errorResponse(w, http.StatusNotFound, "not found")
	default:
		h.logger.Errorw("Upstream fetch failed", "error", err)
		h.errorResponse(w, http.StatusBadGateway, "upstream unavailable")
	}
}

// raidEntries serves the raid feed read-through: cache hit unless refresh is
// forced, otherwise fetch and repopulate. An upstream 404 means no raid data,
// which the reports treat as an empty entry list.
func (h *Handler) raidEntries(r *http.Request, refresh bool) ([]models.RaidEntry, error) {
	ctx := r.Context()
	apiKey := apiKeyFrom(r)
	if apiKey == "" {
		return nil, tacticus.ErrNoAPIKey
	}

	if !refresh {
		if entries, ok := h.store.CachedEntries(ctx, apiKey); ok {
			return entries, nil
		}
	}

	resp, err := h.tacticus.GuildRaid(ctx, apiKey)
	if err != nil {
		if errors.Is(err, tacticus.ErrNotFound) {
			return []models.RaidEntry{}, nil
		}
		return nil, err
	}

	h.store.PutEntries(ctx, apiKey, resp.Entries)
	return resp.Entries, nil
}

func refreshRequested(r *http.Request) bool {
	return r.URL.Query().Get("refresh") == "1"
}
