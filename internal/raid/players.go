package raid

import (
	"sort"

	"github.com/tacticusops/raid-dashboard/internal/models"
)

// NameResolver maps opaque user ids to display names. A userId the resolver
// does not know yields the empty string.
type NameResolver interface {
	DisplayName(userID string) string
}

// NameMap adapts a plain map to NameResolver.
type NameMap map[string]string

func (m NameMap) DisplayName(userID string) string { return m[userID] }

type playerAccum struct {
	userID  string
	total   int64
	damages []int64 // non-bomb only
}

// Players groups the entries of a single already-filtered encounter by
// attacking player. Total damage includes bomb entries; AttackCount and the
// statistical figures count non-bomb entries only. A nil resolver leaves
// every display name empty. Empty input yields an empty slice.
func Players(entries []models.RaidEntry, names NameResolver) []models.PlayerSummary {
	groups := make(map[string]*playerAccum)
	order := make([]string, 0)

	for _, e := range entries {
		acc, ok := groups[e.UserID]
		if !ok {
			acc = &playerAccum{userID: e.UserID}
			groups[e.UserID] = acc
			order = append(order, e.UserID)
		}

		acc.total += e.DamageDealt
		if e.DamageType != models.DamageTypeBomb {
			acc.damages = append(acc.damages, e.DamageDealt)
		}
	}

	summaries := make([]models.PlayerSummary, 0, len(order))
	for _, userID := range order {
		acc := groups[userID]
		avg, _, min, max := summarize(acc.damages)

		displayName := ""
		if names != nil {
			displayName = names.DisplayName(userID)
		}

		summaries = append(summaries, models.PlayerSummary{
			UserID:      userID,
			DisplayName: displayName,
			TotalDamage: acc.total,
			AttackCount: len(acc.damages),
			AvgDamage:   avg,
			MinDamage:   min,
			MaxDamage:   max,
		})
	}

	// Stable so equal totals keep discovery order.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalDamage > summaries[j].TotalDamage
	})

	return summaries
}
