package tournament

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

const allColumns = `id, name, type, host_country, team_count, match_count,
	start_date, end_date, created_at, updated_at`

// scanTournament scans a single Tournament from a row.
func scanTournament(row pgx.Row) (*Tournament, error) {
	var t Tournament
	err := row.Scan(
		&t.ID, &t.Name, &t.Type, &t.HostCountry,
		&t.TeamCount, &t.MatchCount,
		&t.StartDate, &t.EndDate,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("scanning tournament row: %w", err)
	}
	return &t, nil
}

// Create inserts a new tournament record.
func (r *PostgresRepository) Create(ctx context.Context, t *Tournament) error {
	query := `
		INSERT INTO tournaments (name, type, host_country, team_count, match_count, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.Name, t.Type, t.HostCountry, t.TeamCount, t.MatchCount, t.StartDate, t.EndDate,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting tournament: %w", err)
	}

	return nil
}

// GetByID retrieves a single tournament by its id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Tournament, error) {
	query := fmt.Sprintf(`SELECT %s FROM tournaments WHERE id = $1`, allColumns)
	return scanTournament(r.pool.QueryRow(ctx, query, id))
}

// List retrieves all tournaments ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]Tournament, error) {
	query := fmt.Sprintf(`SELECT %s FROM tournaments ORDER BY id ASC`, allColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tournaments: %w", err)
	}
	defer rows.Close()

	var tournaments []Tournament
	for rows.Next() {
		var t Tournament
		err := rows.Scan(
			&t.ID, &t.Name, &t.Type, &t.HostCountry,
			&t.TeamCount, &t.MatchCount,
			&t.StartDate, &t.EndDate,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning tournament row: %w", err)
		}
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tournament rows: %w", err)
	}

	if tournaments == nil {
		tournaments = []Tournament{}
	}

	return tournaments, nil
}

// Update replaces all user-editable fields of a tournament.
func (r *PostgresRepository) Update(ctx context.Context, t *Tournament) error {
	query := `
		UPDATE tournaments
		SET name = $2, type = $3, host_country = $4, team_count = $5,
			match_count = $6, start_date = $7, end_date = $8, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.ID, t.Name, t.Type, t.HostCountry, t.TeamCount, t.MatchCount, t.StartDate, t.EndDate,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("updating tournament: %w", err)
	}

	return nil
}

// Delete removes a tournament by id. Returns ErrTournamentInUse when teams
// or matches still reference it (FK RESTRICT).
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrTournamentInUse
		}
		return fmt.Errorf("deleting tournament: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTournamentNotFound
	}

	return nil
}
