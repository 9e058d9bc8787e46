package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PranavOaR/leaguehub/internal/api/handler"
	"github.com/PranavOaR/leaguehub/internal/api/response"
	"github.com/PranavOaR/leaguehub/internal/team"
)

type mockTeamRepo struct {
	createFn  func(ctx context.Context, t *team.Team) error
	getByIDFn func(ctx context.Context, id int64) (*team.Team, error)
	listFn    func(ctx context.Context) ([]team.Team, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockTeamRepo) Create(ctx context.Context, t *team.Team) error {
	return m.createFn(ctx, t)
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id int64) (*team.Team, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTeamRepo) List(ctx context.Context) ([]team.Team, error) {
	return m.listFn(ctx)
}

func (m *mockTeamRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func teamRouter(repo team.Repository) *chi.Mux {
	h := handler.NewTeamHandler(repo)
	r := chi.NewRouter()
	r.Post("/teams", h.Create)
	r.Get("/teams", h.List)
	r.Delete("/teams/{id}", h.Delete)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestTeamCreate_Success(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		createFn: func(_ context.Context, tm *team.Team) error {
			tm.ID = 7
			tm.CreatedAt = time.Now()
			tm.UpdatedAt = tm.CreatedAt
			return nil
		},
	}

	body := `{"name": "Arsenal", "coachName": "Mikel Arteta", "foundationYear": 1886}`
	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(body))
	rec := httptest.NewRecorder()
	teamRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	data := env.Data.(map[string]any)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "Arsenal", data["name"])
}

func TestTeamCreate_InvalidJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	teamRouter(&mockTeamRepo{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_JSON", env.Error.Code)
}

func TestTeamCreate_ValidationError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(`{"name": ""}`))
	rec := httptest.NewRecorder()
	teamRouter(&mockTeamRepo{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.NotEmpty(t, env.Error.Details)
}

func TestTeamCreate_UnknownTournament(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		createFn: func(_ context.Context, _ *team.Team) error {
			return team.ErrTournamentNotFound
		},
	}

	body := `{"name": "Ghosts", "coachName": "Nobody", "tournamentId": 99}`
	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(body))
	rec := httptest.NewRecorder()
	teamRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestTeamList_Success(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		listFn: func(_ context.Context) ([]team.Team, error) {
			return []team.Team{
				{ID: 1, Name: "Arsenal", CoachName: "Mikel Arteta", TournamentID: 1},
				{ID: 2, Name: "Chelsea", CoachName: "Enzo Maresca", TournamentID: 1},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	rec := httptest.NewRecorder()
	teamRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var env response.ListEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.Nil(t, env.Error)
	assert.Equal(t, 2, env.Meta.Total)
	assert.Len(t, env.Data.([]any), 2)
}

func TestTeamList_RepoError(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		listFn: func(_ context.Context) ([]team.Team, error) {
			return nil, errors.New("connection refused")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	rec := httptest.NewRecorder()
	teamRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
}

func TestTeamDelete_Success(t *testing.T) {
	t.Parallel()

	var gotID int64
	repo := &mockTeamRepo{
		deleteFn: func(_ context.Context, id int64) error {
			gotID = id
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/teams/5", nil)
	rec := httptest.NewRecorder()
	teamRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(5), gotID)
}

func TestTeamDelete_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			return team.ErrTeamNotFound
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/teams/5", nil)
	rec := httptest.NewRecorder()
	teamRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestTeamDelete_HasMatches(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			return team.ErrTeamHasMatches
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/teams/5", nil)
	rec := httptest.NewRecorder()
	teamRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TEAM_HAS_MATCHES", env.Error.Code)
}

func TestTeamDelete_InvalidID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/teams/abc", nil)
	rec := httptest.NewRecorder()
	teamRouter(&mockTeamRepo{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}
