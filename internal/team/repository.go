package team

import (
	"context"
	"errors"
)

// ErrTeamNotFound is returned when a team record is not found.
var ErrTeamNotFound = errors.New("team not found")

// ErrTeamHasMatches is returned when attempting to delete a team that is
// referenced by recorded matches. Deleting such a team would corrupt the
// standings, so the delete is rejected.
var ErrTeamHasMatches = errors.New("team has matches")

// ErrTournamentNotFound is returned when the referenced tournament does not exist.
var ErrTournamentNotFound = errors.New("tournament not found")

// Repository provides CRUD operations on the teams table.
type Repository interface {
	Create(ctx context.Context, t *Team) error
	GetByID(ctx context.Context, id int64) (*Team, error)
	List(ctx context.Context) ([]Team, error)
	Delete(ctx context.Context, id int64) error
}
