package entity

import "time"

// ClubStats is the typed shape of the per-club aggregate counters.
// Stored as a JSONB column.
type ClubStats struct {
	MatchesPlayed int `json:"matches_played"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	GoalsFor      int `json:"goals_for"`
	GoalsAgainst  int `json:"goals_against"`
}

// Club is a CRUD-managed resource. Logo is a URL supplied by clients.
type Club struct {
	ID          string
	Name        string
	Logo        string
	Description string
	Stats       ClubStats
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
