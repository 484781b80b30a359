package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tacticusops/raid-dashboard/internal/models"
	"github.com/tacticusops/raid-dashboard/internal/raid"
)

// GetPlayer proxies the upstream player profile
// @Summary Player profile
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.PlayerResponse
// @Failure 401 {object} map[string]string "Missing API key"
// @Failure 403 {object} map[string]string "Invalid API key"
// @Failure 404 {object} map[string]string "Player not found"
// @Router /player [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.tacticus.Player(r.Context(), apiKeyFrom(r))
	if err != nil {
		h.upstreamError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, player)
}

// GetGuild proxies the upstream guild payload
// @Summary Guild overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.GuildResponse
// @Failure 401 {object} map[string]string "Missing API key"
// @Failure 404 {object} map[string]string "Player is not in a guild"
// @Router /guild [get]
func (h *Handler) GetGuild(w http.ResponseWriter, r *http.Request) {
	guild, err := h.tacticus.Guild(r.Context(), apiKeyFrom(r))
	if err != nil {
		h.upstreamError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, guild)
}

// GetSummary returns player, guild and raid leaderboard in one response
// @Summary Combined dashboard summary
// @Description Player profile, guild overview and encounter leaderboard fetched concurrently
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard summary"
// @Failure 401 {object} map[string]string "Missing API key"
// @Router /summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	apiKey := apiKeyFrom(r)

	var (
		player *models.PlayerResponse
		guild  *models.GuildResponse
	)
	var summaries []models.EncounterSummary

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		p, err := h.tacticus.Player(ctx, apiKey)
		if err != nil {
			return err
		}
		player = p
		return nil
	})

	g.Go(func() error {
		gu, err := h.tacticus.Guild(ctx, apiKey)
		if err != nil {
			// A player without a guild still gets their profile.
			h.logger.Warnw("Guild fetch failed for summary", "error", err)
			return nil
		}
		guild = gu
		return nil
	})

	g.Go(func() error {
		entries, err := h.raidEntries(r, false)
		if err != nil {
			h.logger.Warnw("Raid fetch failed for summary", "error", err)
			return nil
		}
		summaries = raid.Encounters(entries)
		return nil
	})

	if err := g.Wait(); err != nil {
		h.upstreamError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"player":     player,
		"guild":      guild,
		"encounters": summaries,
	})
}
