package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tacticusops/raid-dashboard/internal/models"
	"github.com/tacticusops/raid-dashboard/internal/raid"
	"github.com/tacticusops/raid-dashboard/internal/tacticus"
	"github.com/tacticusops/raid-dashboard/internal/web"
)

// Index renders the connect page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, func(w http.ResponseWriter) error {
		return web.RenderIndex(w, web.IndexData{Connected: apiKeyFrom(r) != ""})
	})
}

// Connect verifies the submitted API key against the upstream before
// storing it in the dashboard cookie, mirroring the connect flow of the
// JSON API's credential pass-through.
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	apiKey := r.FormValue("api_key")
	if apiKey == "" {
		h.renderPage(w, func(w http.ResponseWriter) error {
			return web.RenderIndex(w, web.IndexData{Error: "Please enter an API key"})
		})
		return
	}

	if _, err := h.tacticus.Player(r.Context(), apiKey); err != nil {
		msg := "Failed to connect to the Tacticus API"
		switch {
		case errors.Is(err, tacticus.ErrForbidden):
			msg = "Invalid API key or insufficient permissions"
		case errors.Is(err, tacticus.ErrNotFound):
			msg = "Player not found"
		}
		h.renderPage(w, func(w http.ResponseWriter) error {
			return web.RenderIndex(w, web.IndexData{Error: msg})
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     apiKeyCookie,
		Value:    apiKey,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/raid", http.StatusSeeOther)
}

// Disconnect clears the credential cookie and drops its cached feed.
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if apiKey := apiKeyFrom(r); apiKey != "" {
		h.store.InvalidateEntries(r.Context(), apiKey)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     apiKeyCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RaidPage renders the encounter leaderboard.
func (h *Handler) RaidPage(w http.ResponseWriter, r *http.Request) {
	if apiKeyFrom(r) == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := web.LeaderboardData{}
	entries, err := h.raidEntries(r, refreshRequested(r))
	if err != nil {
		data.Error = pageError(err)
	} else {
		data.Encounters = raid.Encounters(entries)
	}

	h.renderPage(w, func(w http.ResponseWriter) error {
		return web.RenderLeaderboard(w, data)
	})
}

// EncounterPage renders the per-player breakdown for one encounter.
func (h *Handler) EncounterPage(w http.ResponseWriter, r *http.Request) {
	if apiKeyFrom(r) == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	set, err := strconv.Atoi(chi.URLParam(r, "set"))
	if err != nil {
		http.Error(w, "set must be an integer", http.StatusBadRequest)
		return
	}

	key := models.EncounterKey{
		BossType: chi.URLParam(r, "boss"),
		Rarity:   models.ParseRarity(chi.URLParam(r, "rarity")),
		Set:      set,
	}

	data := web.EncounterData{Boss: key.BossType, Rarity: key.Rarity, Set: key.Set}
	entries, err := h.raidEntries(r, refreshRequested(r))
	if err != nil {
		data.Error = pageError(err)
	} else {
		filtered := raid.FilterEncounter(entries, key)
		data.Players = raid.Players(filtered, h.store.AllNames(r.Context()))
	}

	h.renderPage(w, func(w http.ResponseWriter) error {
		return web.RenderEncounter(w, data)
	})
}

func (h *Handler) renderPage(w http.ResponseWriter, render func(http.ResponseWriter) error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render(w); err != nil {
		h.logger.Errorw("Template render failed", "error", err)
	}
}

func pageError(err error) string {
	switch {
	case errors.Is(err, tacticus.ErrNoAPIKey):
		return "Please enter your API key first"
	case errors.Is(err, tacticus.ErrForbidden):
		return "Invalid API key or insufficient permissions (Guild scope required)"
	default:
		return "Error fetching raid data"
	}
}
