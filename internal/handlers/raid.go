package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tacticusops/raid-dashboard/internal/models"
	"github.com/tacticusops/raid-dashboard/internal/raid"
)

// GetRaidEntries returns the raw raid attack log
// @Summary Raw guild-raid entries
// @Description Get the cached raid attack log for the credential's guild
// @Tags Raid
// @Produce json
// @Param refresh query int false "Set 1 to bypass the cache" default(0)
// @Success 200 {object} map[string]interface{} "Entry list"
// @Failure 401 {object} map[string]string "Missing API key"
// @Failure 403 {object} map[string]string "Invalid API key"
// @Router /raid/entries [get]
func (h *Handler) GetRaidEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.raidEntries(r, refreshRequested(r))
	if err != nil {
		h.upstreamError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}

// GetRaidLeaderboard returns the per-encounter damage leaderboard
// @Summary Guild-raid encounter leaderboard
// @Description One summary row per boss encounter: total damage, tiers seen, damage statistics
// @Tags Raid
// @Produce json
// @Param refresh query int false "Set 1 to bypass the cache" default(0)
// @Success 200 {object} map[string]interface{} "Encounter summaries"
// @Failure 401 {object} map[string]string "Missing API key"
// @Router /raid/leaderboard [get]
func (h *Handler) GetRaidLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.raidEntries(r, refreshRequested(r))
	if err != nil {
		h.upstreamError(w, err)
		return
	}

	summaries := raid.Encounters(entries)

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"encounters": summaries,
		"total":      len(summaries),
	})
}

// GetEncounterPlayers returns the per-player breakdown for one encounter
// @Summary Per-player breakdown for a boss encounter
// @Description Player damage totals and statistics for the selected (boss, rarity, set)
// @Tags Raid
// @Produce json
// @Param boss path string true "Boss type"
// @Param rarity path string true "Rarity (Common..Mythic)"
// @Param set path int true "Set number"
// @Success 200 {object} map[string]interface{} "Player summaries"
// @Failure 400 {object} map[string]string "Bad set number"
// @Failure 401 {object} map[string]string "Missing API key"
// @Router /raid/encounters/{boss}/{rarity}/{set}/players [get]
func (h *Handler) GetEncounterPlayers(w http.ResponseWriter, r *http.Request) {
	boss := chi.URLParam(r, "boss")
	rarity := chi.URLParam(r, "rarity")

	set, err := strconv.Atoi(chi.URLParam(r, "set"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "set must be an integer")
		return
	}

	entries, err := h.raidEntries(r, refreshRequested(r))
	if err != nil {
		h.upstreamError(w, err)
		return
	}

	key := models.EncounterKey{
		BossType: boss,
		Rarity:   models.ParseRarity(rarity),
		Set:      set,
	}

	filtered := raid.FilterEncounter(entries, key)
	players := raid.Players(filtered, h.store.AllNames(r.Context()))

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"boss":    boss,
		"rarity":  key.Rarity,
		"set":     set,
		"players": players,
	})
}
