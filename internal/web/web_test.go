package web

import (
	"strings"
	"testing"

	"github.com/tacticusops/raid-dashboard/internal/models"
)

func TestRenderIndex(t *testing.T) {
	var sb strings.Builder
	if err := RenderIndex(&sb, IndexData{}); err != nil {
		t.Fatalf("RenderIndex error: %v", err)
	}
	if !strings.Contains(sb.String(), `name="api_key"`) {
		t.Error("disconnected index must show the API key form")
	}

	sb.Reset()
	if err := RenderIndex(&sb, IndexData{Connected: true}); err != nil {
		t.Fatalf("RenderIndex error: %v", err)
	}
	if !strings.Contains(sb.String(), "/disconnect") {
		t.Error("connected index must offer disconnect")
	}
}

func TestRenderLeaderboard(t *testing.T) {
	var sb strings.Builder
	data := LeaderboardData{
		Encounters: []models.EncounterSummary{
			{Name: "Szarekh", Rarity: models.RarityEpic, Set: 1, TotalDamage: 1_500_000, TierCount: 3, AvgDamage: 120000.5},
		},
	}
	if err := RenderLeaderboard(&sb, data); err != nil {
		t.Fatalf("RenderLeaderboard error: %v", err)
	}

	out := sb.String()
	for _, want := range []string{"Szarekh", "Epic", "1.50M", "/raid/Szarekh/Epic/1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderLeaderboardEmpty(t *testing.T) {
	var sb strings.Builder
	if err := RenderLeaderboard(&sb, LeaderboardData{}); err != nil {
		t.Fatalf("RenderLeaderboard error: %v", err)
	}
	if !strings.Contains(sb.String(), "No raid entries") {
		t.Error("empty leaderboard must say so")
	}
}

func TestRenderEncounterFallsBackToUserID(t *testing.T) {
	var sb strings.Builder
	data := EncounterData{
		Boss:   "Ghazghkull",
		Rarity: models.RarityRare,
		Set:    2,
		Players: []models.PlayerSummary{
			{UserID: "u1", DisplayName: "Alice", TotalDamage: 500},
			{UserID: "opaque-id", TotalDamage: 300},
		},
	}
	if err := RenderEncounter(&sb, data); err != nil {
		t.Fatalf("RenderEncounter error: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "Alice") {
		t.Error("mapped player must render display name")
	}
	if !strings.Contains(out, "opaque-id") {
		t.Error("unmapped player must fall back to user id")
	}
}
