package match

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

// Create inserts a new match in Scheduled status.
func (r *PostgresRepository) Create(ctx context.Context, m *Match) error {
	if m.Team1ID == m.Team2ID {
		return ErrSameTeams
	}

	query := `
		INSERT INTO matches (tournament_id, team1_id, team2_id, match_date, venue, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	m.Status = StatusScheduled
	err := r.pool.QueryRow(ctx, query,
		m.TournamentID, m.Team1ID, m.Team2ID, m.Date, m.Venue, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				if pgErr.ConstraintName == "matches_tournament_id_fkey" {
					return ErrTournamentNotFound
				}
				return ErrTeamNotFound
			case "23514":
				return ErrSameTeams
			}
		}
		return fmt.Errorf("inserting match: %w", err)
	}

	return nil
}

// GetByID retrieves a single match by its id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Match, error) {
	query := `
		SELECT id, tournament_id, team1_id, team2_id, match_date, venue, status,
			team1_goals, team2_goals, created_at, updated_at
		FROM matches
		WHERE id = $1`

	var m Match
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.TournamentID, &m.Team1ID, &m.Team2ID,
		&m.Date, &m.Venue, &m.Status,
		&m.Team1Goals, &m.Team2Goals,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("querying match: %w", err)
	}

	return &m, nil
}

// List retrieves all matches joined with both team names, ordered by
// (match_date, id) ascending. The ordering keeps the fixture list stable for
// callers and must not change.
func (r *PostgresRepository) List(ctx context.Context) ([]View, error) {
	query := `
		SELECT m.id, m.tournament_id, m.team1_id, m.team2_id, m.match_date, m.venue, m.status,
			m.team1_goals, m.team2_goals, m.created_at, m.updated_at,
			t1.name, t2.name
		FROM matches m
		JOIN teams t1 ON m.team1_id = t1.id
		JOIN teams t2 ON m.team2_id = t2.id
		ORDER BY m.match_date ASC, m.id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	defer rows.Close()

	var matches []View
	for rows.Next() {
		var v View
		err := rows.Scan(
			&v.ID, &v.TournamentID, &v.Team1ID, &v.Team2ID,
			&v.Date, &v.Venue, &v.Status,
			&v.Team1Goals, &v.Team2Goals,
			&v.CreatedAt, &v.UpdatedAt,
			&v.Team1Name, &v.Team2Name,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning match row: %w", err)
		}
		matches = append(matches, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating match rows: %w", err)
	}

	if matches == nil {
		matches = []View{}
	}

	return matches, nil
}
