package entity

import "time"

// PlayerStats is the typed shape of per-player counters, stored as JSONB.
type PlayerStats struct {
	Appearances int     `json:"appearances"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	YellowCards int     `json:"yellow_cards"`
	RedCards    int     `json:"red_cards"`
	Rating      float64 `json:"rating"`
}

// Player references its club by name, not id. Dangling references are
// permitted; nothing cascades when a club is renamed or deleted.
type Player struct {
	ID        string
	Name      string
	Club      string
	Stats     PlayerStats
	CreatedAt time.Time
	UpdatedAt time.Time
}
