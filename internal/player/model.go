package player

import "time"

// Player represents a row in the players table. TeamID is nil for free
// agents and for players whose team was deleted.
type Player struct {
	ID           int64
	Name         string
	Age          int
	Gender       string
	Position     string
	HeightCM     float64
	WeightKG     float64
	JerseyNumber int
	TeamID       *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// View is a Player joined with its team name for listing. TeamName is nil
// when the player has no team.
type View struct {
	Player
	TeamName *string
}
