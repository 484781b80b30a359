// Package web renders the server-side dashboard pages. Templates are
// embedded so the binary stays self-contained.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/tacticusops/raid-dashboard/internal/models"
)

//go:embed templates/*.tmpl
var files embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"fmtDamage": func(d int64) string {
		if d >= 1_000_000 {
			return fmt.Sprintf("%.2fM", float64(d)/1_000_000)
		}
		if d >= 1_000 {
			return fmt.Sprintf("%.1fK", float64(d)/1_000)
		}
		return fmt.Sprintf("%d", d)
	},
	"fmtFloat": func(f float64) string {
		return fmt.Sprintf("%.1f", f)
	},
}).ParseFS(files, "templates/*.tmpl"))

// IndexData drives the connect page.
type IndexData struct {
	Connected bool
	Error     string
}

// LeaderboardData drives the encounter leaderboard page.
type LeaderboardData struct {
	Encounters []models.EncounterSummary
	Error      string
}

// EncounterData drives the per-player breakdown page.
type EncounterData struct {
	Boss    string
	Rarity  models.Rarity
	Set     int
	Players []models.PlayerSummary
	Error   string
}

func RenderIndex(w io.Writer, data IndexData) error {
	return tmpl.ExecuteTemplate(w, "index.tmpl", data)
}

func RenderLeaderboard(w io.Writer, data LeaderboardData) error {
	return tmpl.ExecuteTemplate(w, "leaderboard.tmpl", data)
}

func RenderEncounter(w io.Writer, data EncounterData) error {
	return tmpl.ExecuteTemplate(w, "encounter.tmpl", data)
}
