package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tacticusops/raid-dashboard/docs"
	"github.com/tacticusops/raid-dashboard/internal/ratelimit"
)

// RouterConfig carries the router-level settings.
type RouterConfig struct {
	AllowedOrigins []string
	RateLimiter    *ratelimit.Keyed
}

// Router builds the full route tree: dashboard pages at the root, JSON API
// under /api/v1, and the operational endpoints.
func (h *Handler) Router(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "PUT", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-API-KEY", "Authorization"},
		AllowCredentials: true,
	}))
	if cfg.RateLimiter != nil {
		r.Use(h.RateLimit(cfg.RateLimiter))
	}

	// Dashboard pages
	r.Get("/", h.Index)
	r.Post("/connect", h.Connect)
	r.Get("/disconnect", h.Disconnect)
	r.Get("/raid", h.RaidPage)
	r.Get("/raid/{boss}/{rarity}/{set}", h.EncounterPage)

	// JSON API
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/player", h.GetPlayer)
		r.Get("/guild", h.GetGuild)
		r.Get("/summary", h.GetSummary)

		r.Route("/raid", func(r chi.Router) {
			r.Get("/entries", h.GetRaidEntries)
			r.Get("/leaderboard", h.GetRaidLeaderboard)
			r.Get("/encounters/{boss}/{rarity}/{set}/players", h.GetEncounterPlayers)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/names", h.GetPlayerNames)
			r.Put("/{userId}/name", h.SetPlayerName)
		})
	})

	// Operational
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
