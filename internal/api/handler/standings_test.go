package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PranavOaR/leaguehub/internal/api/handler"
	"github.com/PranavOaR/leaguehub/internal/api/response"
	"github.com/PranavOaR/leaguehub/internal/standings"
)

type mockStandings struct {
	leaderboardFn   func(ctx context.Context) ([]standings.Row, error)
	winPercentageFn func(ctx context.Context, teamID int64) (float64, error)
}

func (m *mockStandings) Leaderboard(ctx context.Context) ([]standings.Row, error) {
	return m.leaderboardFn(ctx)
}

func (m *mockStandings) WinPercentage(ctx context.Context, teamID int64) (float64, error) {
	return m.winPercentageFn(ctx, teamID)
}

func standingsRouter(calc handler.StandingsProvider) *chi.Mux {
	h := handler.NewStandingsHandler(calc)
	r := chi.NewRouter()
	r.Get("/leaderboard", h.Leaderboard)
	r.Get("/teams/{id}/win-percentage", h.WinPercentage)
	return r
}

func TestLeaderboard_Success(t *testing.T) {
	t.Parallel()

	calc := &mockStandings{
		leaderboardFn: func(_ context.Context) ([]standings.Row, error) {
			return []standings.Row{
				{TeamID: 1, TeamName: "Alpha", MatchesPlayed: 2, Wins: 2, GoalsFor: 5, GoalsAgainst: 1, TotalPoints: 6},
				{TeamID: 2, TeamName: "Beta", MatchesPlayed: 2, Losses: 2, GoalsFor: 1, GoalsAgainst: 5},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rec := httptest.NewRecorder()
	standingsRouter(calc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var env response.ListEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.Nil(t, env.Error)
	assert.Equal(t, 2, env.Meta.Total)

	items := env.Data.([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "Alpha", first["teamName"])
	assert.Equal(t, float64(6), first["totalPoints"])
}

func TestLeaderboard_Empty(t *testing.T) {
	t.Parallel()

	calc := &mockStandings{
		leaderboardFn: func(_ context.Context) ([]standings.Row, error) {
			return []standings.Row{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rec := httptest.NewRecorder()
	standingsRouter(calc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var env response.ListEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.Equal(t, 0, env.Meta.Total)
	assert.NotNil(t, env.Data, "empty leaderboard must encode as [], not null")
}

func TestLeaderboard_CalcError(t *testing.T) {
	t.Parallel()

	calc := &mockStandings{
		leaderboardFn: func(_ context.Context) ([]standings.Row, error) {
			return nil, errors.New("connection refused")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rec := httptest.NewRecorder()
	standingsRouter(calc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
}

func TestWinPercentage_Success(t *testing.T) {
	t.Parallel()

	calc := &mockStandings{
		winPercentageFn: func(_ context.Context, teamID int64) (float64, error) {
			assert.Equal(t, int64(3), teamID)
			return 50.0, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/teams/3/win-percentage", nil)
	rec := httptest.NewRecorder()
	standingsRouter(calc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	data := env.Data.(map[string]any)
	assert.Equal(t, float64(3), data["teamId"])
	assert.Equal(t, 50.0, data["winPercentage"])
}

func TestWinPercentage_TeamNotFound(t *testing.T) {
	t.Parallel()

	calc := &mockStandings{
		winPercentageFn: func(_ context.Context, _ int64) (float64, error) {
			return 0, standings.ErrTeamNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/teams/99/win-percentage", nil)
	rec := httptest.NewRecorder()
	standingsRouter(calc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
