package tournament

import "time"

// Types a tournament can be scheduled as.
const (
	TypeLeague   = "League"
	TypeKnockout = "Knockout"
)

// DefaultID is the id of the tournament seeded by the initial migration.
// Teams and matches attach to it when no tournament is given.
const DefaultID int64 = 1

// Tournament represents a row in the tournaments table.
type Tournament struct {
	ID          int64
	Name        string
	Type        string
	HostCountry string
	TeamCount   int
	MatchCount  int
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
