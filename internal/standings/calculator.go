package standings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTeamNotFound is returned when no aggregate row exists for a team.
var ErrTeamNotFound = errors.New("team not found")

// Calculator derives the leaderboard and win percentages from team_stats.
type Calculator struct {
	pool *pgxpool.Pool
}

// NewCalculator creates a Calculator backed by the given connection pool.
func NewCalculator(pool *pgxpool.Pool) *Calculator {
	return &Calculator{pool: pool}
}

// Leaderboard returns one row per team ordered by points descending, then
// goals scored descending, then team id ascending. The final tie-break on id
// makes the order a total order: repeated calls over unchanged data return
// identical rankings.
func (c *Calculator) Leaderboard(ctx context.Context) ([]Row, error) {
	query := `
		SELECT t.id, t.name, s.matches_played, s.wins, s.draws, s.losses,
			s.goals_for, s.goals_against, s.total_points
		FROM team_stats s
		JOIN teams t ON t.id = s.team_id
		ORDER BY s.total_points DESC, s.goals_for DESC, t.id ASC`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var board []Row
	for rows.Next() {
		var r Row
		err := rows.Scan(
			&r.TeamID, &r.TeamName, &r.MatchesPlayed,
			&r.Wins, &r.Draws, &r.Losses,
			&r.GoalsFor, &r.GoalsAgainst, &r.TotalPoints,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning leaderboard row: %w", err)
		}
		board = append(board, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leaderboard rows: %w", err)
	}

	if board == nil {
		board = []Row{}
	}

	return board, nil
}

// WinPercentage returns the team's wins as a percentage of matches played.
func (c *Calculator) WinPercentage(ctx context.Context, teamID int64) (float64, error) {
	var wins, played int
	err := c.pool.QueryRow(ctx,
		`SELECT wins, matches_played FROM team_stats WHERE team_id = $1`,
		teamID,
	).Scan(&wins, &played)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrTeamNotFound
		}
		return 0, fmt.Errorf("querying team stats: %w", err)
	}

	return Percentage(wins, played), nil
}

// Percentage computes wins/played*100, returning 0 for a team that has not
// played yet.
func Percentage(wins, played int) float64 {
	if played == 0 {
		return 0.0
	}
	return float64(wins) / float64(played) * 100
}
