package team

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

// Create inserts a new team record together with its zeroed team_stats row.
// Both inserts happen in one transaction so a team can never exist without
// an aggregate row for the standings.
func (r *PostgresRepository) Create(ctx context.Context, t *Team) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO teams (name, coach_name, foundation_year, tournament_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, query, t.Name, t.CoachName, t.FoundationYear, t.TournamentID).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("inserting team: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO team_stats (team_id) VALUES ($1)`, t.ID); err != nil {
		return fmt.Errorf("inserting team stats: %w", err)
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a single team by its id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Team, error) {
	query := `
		SELECT id, name, coach_name, foundation_year, tournament_id, created_at, updated_at
		FROM teams
		WHERE id = $1`

	var t Team
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.Name, &t.CoachName, &t.FoundationYear, &t.TournamentID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return &t, nil
}

// List retrieves all teams ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]Team, error) {
	query := `
		SELECT id, name, coach_name, foundation_year, tournament_id, created_at, updated_at
		FROM teams
		ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		err := rows.Scan(&t.ID, &t.Name, &t.CoachName, &t.FoundationYear, &t.TournamentID, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}

	if teams == nil {
		teams = []Team{}
	}

	return teams, nil
}

// Delete removes a team by id. Players referencing the team are detached by
// the ON DELETE SET NULL constraint; the team_stats row cascades away.
// Returns ErrTeamHasMatches when recorded matches still reference the team
// (FK RESTRICT).
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM teams WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrTeamHasMatches
		}
		return fmt.Errorf("deleting team: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	return nil
}
