// Package raid implements the guild-raid damage aggregation engine.
// It consumes the flat attack log from the upstream feed and produces the
// encounter leaderboard and per-player breakdowns. The engine is purely
// functional: it takes slices, returns fresh summary slices, performs no I/O
// and holds no state, so concurrent calls need no synchronization.
package raid

import (
	"sort"

	"github.com/tacticusops/raid-dashboard/internal/models"
)

// encounterAccum is the running state for one encounter group.
type encounterAccum struct {
	key     models.EncounterKey
	total   int64
	tiers   map[int]struct{}
	damages []int64 // non-bomb only
}

// Encounters groups raid entries by (bossType, rarity, set) and produces one
// summary row per distinct encounter. Total damage includes every entry;
// the statistical figures cover non-bomb entries only. Empty input yields an
// empty slice, not an error.
func Encounters(entries []models.RaidEntry) []models.EncounterSummary {
	groups := make(map[models.EncounterKey]*encounterAccum)
	order := make([]models.EncounterKey, 0)

	for _, e := range entries {
		e = e.Normalize()
		key := e.Key()

		acc, ok := groups[key]
		if !ok {
			acc = &encounterAccum{key: key, tiers: make(map[int]struct{})}
			groups[key] = acc
			order = append(order, key)
		}

		acc.total += e.DamageDealt
		acc.tiers[e.Tier] = struct{}{}
		if e.DamageType != models.DamageTypeBomb {
			acc.damages = append(acc.damages, e.DamageDealt)
		}
	}

	summaries := make([]models.EncounterSummary, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		avg, stddev, min, max := summarize(acc.damages)
		summaries = append(summaries, models.EncounterSummary{
			Name:         key.BossType,
			Rarity:       key.Rarity,
			Set:          key.Set,
			TotalDamage:  acc.total,
			TierCount:    len(acc.tiers),
			SampleCount:  len(acc.damages),
			AvgDamage:    avg,
			StddevDamage: stddev,
			MinDamage:    min,
			MaxDamage:    max,
		})
	}

	// Rarity rank desc (unknown last), then set desc, then total damage desc.
	// Stable so ties keep discovery order.
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.Rarity.Rank() != b.Rarity.Rank() {
			return a.Rarity.Rank() > b.Rarity.Rank()
		}
		if a.Set != b.Set {
			return a.Set > b.Set
		}
		return a.TotalDamage > b.TotalDamage
	})

	return summaries
}

// FilterEncounter returns the entries belonging to one encounter, matched by
// exact key equality after normalization.
func FilterEncounter(entries []models.RaidEntry, key models.EncounterKey) []models.RaidEntry {
	filtered := make([]models.RaidEntry, 0)
	for _, e := range entries {
		if e.Key() == key {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
