package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new player record.
func (r *PostgresRepository) Create(ctx context.Context, p *Player) error {
	query := `
		INSERT INTO players (name, age, gender, position, height_cm, weight_kg, jersey_number, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		p.Name, p.Age, p.Gender, p.Position,
		p.HeightCM, p.WeightKG, p.JerseyNumber, p.TeamID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrTeamNotFound
		}
		return fmt.Errorf("inserting player: %w", err)
	}

	return nil
}

// GetByID retrieves a single player by its id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Player, error) {
	query := `
		SELECT id, name, age, gender, position, height_cm, weight_kg, jersey_number, team_id, created_at, updated_at
		FROM players
		WHERE id = $1`

	var p Player
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Age, &p.Gender, &p.Position,
		&p.HeightCM, &p.WeightKG, &p.JerseyNumber, &p.TeamID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return &p, nil
}

// List retrieves all players joined with their team name, ordered by player
// name ascending.
func (r *PostgresRepository) List(ctx context.Context) ([]View, error) {
	query := `
		SELECT p.id, p.name, p.age, p.gender, p.position,
			p.height_cm, p.weight_kg, p.jersey_number, p.team_id,
			p.created_at, p.updated_at, t.name
		FROM players p
		LEFT JOIN teams t ON p.team_id = t.id
		ORDER BY p.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	defer rows.Close()

	var players []View
	for rows.Next() {
		var v View
		err := rows.Scan(
			&v.ID, &v.Name, &v.Age, &v.Gender, &v.Position,
			&v.HeightCM, &v.WeightKG, &v.JerseyNumber, &v.TeamID,
			&v.CreatedAt, &v.UpdatedAt, &v.TeamName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player row: %w", err)
		}
		players = append(players, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating player rows: %w", err)
	}

	if players == nil {
		players = []View{}
	}

	return players, nil
}

// Update replaces all user-editable fields of a player.
func (r *PostgresRepository) Update(ctx context.Context, p *Player) error {
	query := `
		UPDATE players
		SET name = $2, age = $3, gender = $4, position = $5,
			height_cm = $6, weight_kg = $7, jersey_number = $8, team_id = $9,
			updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Name, p.Age, p.Gender, p.Position,
		p.HeightCM, p.WeightKG, p.JerseyNumber, p.TeamID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPlayerNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrTeamNotFound
		}
		return fmt.Errorf("updating player: %w", err)
	}

	return nil
}

// Delete removes a player by id.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}

	return nil
}
