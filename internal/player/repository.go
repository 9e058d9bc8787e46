package player

import (
	"context"
	"errors"
)

// ErrPlayerNotFound is returned when a player record is not found.
var ErrPlayerNotFound = errors.New("player not found")

// ErrTeamNotFound is returned when the referenced team does not exist.
var ErrTeamNotFound = errors.New("team not found")

// Repository provides CRUD operations on the players table.
type Repository interface {
	Create(ctx context.Context, p *Player) error
	GetByID(ctx context.Context, id int64) (*Player, error)
	List(ctx context.Context) ([]View, error)
	Update(ctx context.Context, p *Player) error
	Delete(ctx context.Context, id int64) error
}
