package match

import (
	"context"
	"errors"
)

// ErrMatchNotFound is returned when a match record is not found.
var ErrMatchNotFound = errors.New("match not found")

// ErrSameTeams is returned when a match is created with the same team on
// both sides.
var ErrSameTeams = errors.New("a match requires two different teams")

// ErrTeamNotFound is returned when a referenced team does not exist.
var ErrTeamNotFound = errors.New("team not found")

// ErrTournamentNotFound is returned when the referenced tournament does not exist.
var ErrTournamentNotFound = errors.New("tournament not found")

// Repository provides operations on the matches table. Matches are never
// deleted: a completed match backs the aggregates in team_stats, and its
// score is applied through the result recorder, not through the repository.
type Repository interface {
	Create(ctx context.Context, m *Match) error
	GetByID(ctx context.Context, id int64) (*Match, error)
	List(ctx context.Context) ([]View, error)
}
