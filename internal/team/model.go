package team

import "time"

// Team represents a row in the teams table.
type Team struct {
	ID             int64
	Name           string
	CoachName      string
	FoundationYear *int
	TournamentID   int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
