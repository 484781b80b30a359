package models

// DamageTypeBomb marks bomb attacks. Bomb damage counts toward encounter and
// player totals but is excluded from the statistical figures so it does not
// skew "typical attack" numbers.
const DamageTypeBomb = "Bomb"

// Rarity is the difficulty rarity of a boss encounter.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
	RarityUnknown   Rarity = "Unknown"
)

var rarityRanks = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityMythic:    5,
}

// ParseRarity maps a feed value onto the closed enumeration. Anything the
// enumeration does not name collapses to RarityUnknown.
func ParseRarity(s string) Rarity {
	if _, ok := rarityRanks[Rarity(s)]; ok {
		return Rarity(s)
	}
	return RarityUnknown
}

// Rank returns the sort rank of the rarity. Known rarities order
// Common < Uncommon < Rare < Epic < Legendary < Mythic; unknown rarities
// get -1 so they land after every known one when sorting descending.
func (r Rarity) Rank() int {
	if rank, ok := rarityRanks[r]; ok {
		return rank
	}
	return -1
}

// RaidEntry is one logged guild-raid attack from the upstream feed.
// No uniqueness is assumed; duplicate entries simply accumulate.
type RaidEntry struct {
	BossType    string `json:"type"`
	Rarity      string `json:"rarity"`
	Set         int    `json:"set"`
	Tier        int    `json:"tier"`
	UserID      string `json:"userId"`
	DamageDealt int64  `json:"damageDealt"`
	DamageType  string `json:"damageType"`

	// Passthrough fields the feed carries; not used by the aggregators.
	EncounterIndex int   `json:"encounterIndex,omitempty"`
	RemainingHP    int64 `json:"remainingHp,omitempty"`
	MaxHP          int64 `json:"maxHp,omitempty"`
	StartedOn      int64 `json:"startedOn,omitempty"`
	CompletedOn    int64 `json:"completedOn,omitempty"`
}

// Normalize fills defaults for missing feed fields: empty boss type and
// rarity become "Unknown". Numeric fields already zero-default on decode.
func (e RaidEntry) Normalize() RaidEntry {
	if e.BossType == "" {
		e.BossType = "Unknown"
	}
	if e.Rarity == "" {
		e.Rarity = string(RarityUnknown)
	}
	return e
}

// Key returns the encounter identity of the entry.
func (e RaidEntry) Key() EncounterKey {
	e = e.Normalize()
	return EncounterKey{
		BossType: e.BossType,
		Rarity:   ParseRarity(e.Rarity),
		Set:      e.Set,
	}
}

// EncounterKey identifies one boss encounter: two entries with the same key
// belong to the same encounter even across different tiers. It is a value
// type usable directly as a map key.
type EncounterKey struct {
	BossType string
	Rarity   Rarity
	Set      int
}

// RaidResponse is the upstream guild-raid payload.
type RaidResponse struct {
	Season  int         `json:"season,omitempty"`
	Entries []RaidEntry `json:"entries"`
}

// EncounterSummary is one leaderboard row, aggregated over every entry that
// shares an EncounterKey. TotalDamage includes bomb damage; the statistical
// fields are computed over non-bomb entries only and default to 0 when no
// such entries exist.
type EncounterSummary struct {
	Name         string  `json:"name"`
	Rarity       Rarity  `json:"rarity"`
	Set          int     `json:"set"`
	TotalDamage  int64   `json:"totalDamage"`
	TierCount    int     `json:"tierCount"`
	SampleCount  int     `json:"sampleCount"`
	AvgDamage    float64 `json:"avgDamage"`
	StddevDamage float64 `json:"stddevDamage"`
	MinDamage    int64   `json:"minDamage"`
	MaxDamage    int64   `json:"maxDamage"`
}

// PlayerSummary is one player's aggregate within a single encounter.
// TotalDamage includes bomb damage; AttackCount and the statistical fields
// cover non-bomb attacks only.
type PlayerSummary struct {
	UserID      string  `json:"userId"`
	DisplayName string  `json:"displayName"`
	TotalDamage int64   `json:"totalDamage"`
	AttackCount int     `json:"attackCount"`
	AvgDamage   float64 `json:"avgDamage"`
	MinDamage   int64   `json:"minDamage"`
	MaxDamage   int64   `json:"maxDamage"`
}
