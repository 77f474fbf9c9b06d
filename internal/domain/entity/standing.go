package entity

import "time"

// Standing is one league-table row. Club references Club.Name.
type Standing struct {
	ID             string
	Club           string
	Points         int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StandingRow is a Standing joined with the club's logo for the display
// read path. Logo is empty when the club reference dangles.
type StandingRow struct {
	Standing
	Logo string
}
