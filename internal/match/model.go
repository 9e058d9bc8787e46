package match

import "time"

// Status is the lifecycle state of a match. A match is created Scheduled and
// becomes Completed exactly once, when its result is recorded.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
)

// Match represents a row in the matches table. Goal fields are nil until the
// result is recorded.
type Match struct {
	ID           int64
	TournamentID int64
	Team1ID      int64
	Team2ID      int64
	Date         time.Time
	Venue        string
	Status       Status
	Team1Goals   *int
	Team2Goals   *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// View is a Match joined with both team names for listing.
type View struct {
	Match
	Team1Name string
	Team2Name string
}
