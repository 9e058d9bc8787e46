package result

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PranavOaR/leaguehub/internal/match"
)

// ErrMatchNotFound is returned when the match does not exist.
var ErrMatchNotFound = errors.New("match not found")

// ErrMatchCompleted is returned when a result has already been recorded for
// the match. Re-recording is rejected, never re-applied.
var ErrMatchCompleted = errors.New("match result already recorded")

// ErrTeamMismatch is returned when the submitted team ids are not the two
// teams the match was scheduled with.
var ErrTeamMismatch = errors.New("team ids do not match the scheduled match")

// ErrNegativeGoals is returned when a submitted score is negative.
var ErrNegativeGoals = errors.New("goals must be non-negative")

// ErrTeamNotFound is returned when a team has no aggregate row to update.
var ErrTeamNotFound = errors.New("team not found")

// Recorder applies final scores to scheduled matches. The match status
// transition and both teams' aggregate updates happen in one transaction;
// on any failure nothing is applied.
type Recorder struct {
	pool *pgxpool.Pool
}

// NewRecorder creates a Recorder backed by the given connection pool.
func NewRecorder(pool *pgxpool.Pool) *Recorder {
	return &Recorder{pool: pool}
}

// Record marks the match Completed with the given score and folds the
// outcome into both teams' team_stats rows.
func (r *Recorder) Record(ctx context.Context, matchID, team1ID int64, goals1 int, team2ID int64, goals2 int) error {
	if goals1 < 0 || goals2 < 0 {
		return ErrNegativeGoals
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the match row for the duration of the compound update so the
	// status check and the aggregate increments cannot interleave with a
	// concurrent recording of the same match.
	var (
		scheduled1, scheduled2 int64
		status                 match.Status
	)
	err = tx.QueryRow(ctx,
		`SELECT team1_id, team2_id, status FROM matches WHERE id = $1 FOR UPDATE`,
		matchID,
	).Scan(&scheduled1, &scheduled2, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("querying match: %w", err)
	}

	if status == match.StatusCompleted {
		return ErrMatchCompleted
	}
	if scheduled1 != team1ID || scheduled2 != team2ID {
		return ErrTeamMismatch
	}

	_, err = tx.Exec(ctx, `
		UPDATE matches
		SET status = $2, team1_goals = $3, team2_goals = $4, updated_at = now()
		WHERE id = $1`,
		matchID, match.StatusCompleted, goals1, goals2)
	if err != nil {
		return fmt.Errorf("completing match: %w", err)
	}

	d1, d2 := Outcome(goals1, goals2)
	if err := applyDelta(ctx, tx, team1ID, d1); err != nil {
		return err
	}
	if err := applyDelta(ctx, tx, team2ID, d2); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func applyDelta(ctx context.Context, tx pgx.Tx, teamID int64, d Delta) error {
	result, err := tx.Exec(ctx, `
		UPDATE team_stats
		SET matches_played = matches_played + 1,
			wins = wins + $2,
			draws = draws + $3,
			losses = losses + $4,
			goals_for = goals_for + $5,
			goals_against = goals_against + $6,
			total_points = total_points + $7
		WHERE team_id = $1`,
		teamID, d.Wins, d.Draws, d.Losses, d.GoalsFor, d.GoalsAgainst, d.Points)
	if err != nil {
		return fmt.Errorf("updating stats for team %d: %w", teamID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("updating stats for team %d: %w", teamID, ErrTeamNotFound)
	}
	return nil
}
