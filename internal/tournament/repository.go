package tournament

import (
	"context"
	"errors"
)

// ErrTournamentNotFound is returned when a tournament record is not found.
var ErrTournamentNotFound = errors.New("tournament not found")

// ErrTournamentInUse is returned when attempting to delete a tournament that
// teams or matches still reference.
var ErrTournamentInUse = errors.New("tournament is in use")

// Repository provides CRUD operations on the tournaments table.
type Repository interface {
	Create(ctx context.Context, t *Tournament) error
	GetByID(ctx context.Context, id int64) (*Tournament, error)
	List(ctx context.Context) ([]Tournament, error)
	Update(ctx context.Context, t *Tournament) error
	Delete(ctx context.Context, id int64) error
}
