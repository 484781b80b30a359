package models

// Typed subsets of the upstream Tacticus payloads. Only the fields the
// dashboard renders are named.

// PlayerResponse is the upstream /player payload.
type PlayerResponse struct {
	Player struct {
		Details struct {
			Name            string `json:"name"`
			PowerLevel      int64  `json:"powerLevel"`
			GuildID         string `json:"guildId,omitempty"`
			CombatUnitCount int    `json:"combatUnitCount,omitempty"`
		} `json:"details"`
	} `json:"player"`
	MetaData struct {
		LastUpdatedOn int64    `json:"lastUpdatedOn,omitempty"`
		Scopes        []string `json:"scopes,omitempty"`
	} `json:"metaData"`
}

// GuildMember is one member of the guild roster.
type GuildMember struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
	Level  int    `json:"level,omitempty"`
}

// GuildResponse is the upstream /guild payload.
type GuildResponse struct {
	Guild struct {
		GuildID          string        `json:"guildId"`
		GuildTag         string        `json:"guildTag"`
		Name             string        `json:"name"`
		Level            int           `json:"level"`
		Members          []GuildMember `json:"members"`
		GuildRaidSeasons []int         `json:"guildRaidSeasons,omitempty"`
	} `json:"guild"`
}

// SetNameRequest is the body of PUT /api/v1/players/{userId}/name.
type SetNameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}
